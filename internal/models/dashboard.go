package models

// UnitHeadcount counts active employees per organizational unit.
type UnitHeadcount struct {
	Unit  string `db:"unit" json:"unit"`
	Count int    `db:"count" json:"count"`
}

// DashboardSummary aggregates headline numbers for the landing page.
type DashboardSummary struct {
	TotalEmployees   int             `json:"totalEmployees"`
	ActiveEmployees  int             `json:"activeEmployees"`
	UnitHeadcounts   []UnitHeadcount `json:"unitHeadcounts"`
	PendingMutations int             `json:"pendingMutations"`
	RatingsThisYear  int             `json:"ratingsThisYear"`
}
