package models

// EmployeeStatus enumerates activity states in the directory.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

// Employee mirrors a row in the employee directory. The directory is
// owned by HR ingest jobs; this service only reads it.
type Employee struct {
	Perner         string         `db:"perner" json:"perner"`
	Name           string         `db:"name" json:"name"`
	Status         EmployeeStatus `db:"status" json:"status"`
	Unit           string         `db:"unit" json:"unit"`
	SubUnit        string         `db:"sub_unit" json:"subUnit"`
	Position       string         `db:"position" json:"position"`
	City           string         `db:"city" json:"city"`
	SupervisorNIK  string         `db:"supervisor_nik" json:"supervisorNik"`
	SupervisorName string         `db:"supervisor_name" json:"supervisorName"`
	BudgetSource   string         `db:"budget_source" json:"budgetSource"`
	JoinedSince    string         `db:"joined_since" json:"joinedSince"`
}

// EmployeeFilter captures directory listing criteria.
type EmployeeFilter struct {
	SupervisorNIK string
	Unit          string
	Search        string
	Page          int
	PageSize      int
}
