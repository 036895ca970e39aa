package dto

// CreateRatingRequest holds the seven aspect scores and the period.
// Scores use pointers so a missing field is distinguishable from zero.
type CreateRatingRequest struct {
	ServiceOrientation       *int   `json:"serviceOrientation" validate:"required,min=1,max=5"`
	AchievementOrientation   *int   `json:"achievementOrientation" validate:"required,min=1,max=5"`
	Teamwork                 *int   `json:"teamwork" validate:"required,min=1,max=5"`
	ProductKnowledge         *int   `json:"productKnowledge" validate:"required,min=1,max=5"`
	OrganizationalCommitment *int   `json:"organizationalCommitment" validate:"required,min=1,max=5"`
	Performance              *int   `json:"performance" validate:"required,min=1,max=5"`
	Initiative               *int   `json:"initiative" validate:"required,min=1,max=5"`
	Month                    string `json:"month" validate:"required"`
	Year                     int    `json:"year" validate:"required"`
}

// RatingResult returns the computed outcome of a submission.
type RatingResult struct {
	Perner       string  `json:"perner"`
	EmployeeName string  `json:"employeeName"`
	TotalScore   int     `json:"totalScore"`
	Average      float64 `json:"average"`
	Category     string  `json:"category"`
	Month        string  `json:"month"`
	Year         int     `json:"year"`
}
