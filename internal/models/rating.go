package models

import "time"

// Rating categories derived from the weighted total score.
const (
	RatingCategoryGood     = "Recommended/Good"
	RatingCategoryAdequate = "Considered/Adequate"
	RatingCategoryPoor     = "Not Recommended/Poor"
)

// Months accepted as a rating period, in calendar order.
var RatingMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidRatingMonth reports whether the name is a canonical month.
func ValidRatingMonth(month string) bool {
	for _, m := range RatingMonths {
		if m == month {
			return true
		}
	}
	return false
}

// Rating stores one evaluation per employee per period. Rows are
// immutable once written.
type Rating struct {
	ID                       string    `db:"id" json:"id"`
	Perner                   string    `db:"perner" json:"perner"`
	ServiceOrientation       int       `db:"service_orientation" json:"serviceOrientation"`
	AchievementOrientation   int       `db:"achievement_orientation" json:"achievementOrientation"`
	Teamwork                 int       `db:"teamwork" json:"teamwork"`
	ProductKnowledge         int       `db:"product_knowledge" json:"productKnowledge"`
	OrganizationalCommitment int       `db:"organizational_commitment" json:"organizationalCommitment"`
	Performance              int       `db:"performance" json:"performance"`
	Initiative               int       `db:"initiative" json:"initiative"`
	TotalScore               int       `db:"total_score" json:"totalScore"`
	Average                  float64   `db:"average" json:"average"`
	Category                 string    `db:"category" json:"category"`
	Month                    string    `db:"month" json:"month"`
	Year                     int       `db:"year" json:"year"`
	CreatedAt                time.Time `db:"created_at" json:"createdAt"`
}

// RatingRecap projects eligible employees with their rating, if any.
type RatingRecap struct {
	Perner     string   `db:"perner" json:"perner"`
	Name       string   `db:"name" json:"name"`
	Unit       string   `db:"unit" json:"unit"`
	SubUnit    string   `db:"sub_unit" json:"subUnit"`
	Position   string   `db:"position" json:"position"`
	TotalScore *int     `db:"total_score" json:"totalScore,omitempty"`
	Average    *float64 `db:"average" json:"average,omitempty"`
	Category   *string  `db:"category" json:"category,omitempty"`
	Month      *string  `db:"month" json:"month,omitempty"`
	Year       *int     `db:"year" json:"year,omitempty"`
}

// RatingRecapFilter narrows the recap to a single period.
type RatingRecapFilter struct {
	Month string
	Year  int
}
