package models

import "time"

// MutationStatus captures workflow states for transfer requests.
//
// PENDING is the initial state; APPROVED and REJECTED are terminal.
// RejectionReason is set when a request is rejected and cleared on
// approval, so a populated reason implies REJECTED status.
type MutationStatus string

const (
	MutationStatusPending  MutationStatus = "PENDING"
	MutationStatusApproved MutationStatus = "APPROVED"
	MutationStatusRejected MutationStatus = "REJECTED"
)

// Mutation stores an employee transfer request awaiting review.
type Mutation struct {
	ID              string         `db:"id" json:"id"`
	Perner          string         `db:"perner" json:"perner"`
	NewUnit         string         `db:"new_unit" json:"newUnit"`
	NewSubUnit      string         `db:"new_sub_unit" json:"newSubUnit"`
	NewPosition     string         `db:"new_position" json:"newPosition"`
	Status          MutationStatus `db:"status" json:"status"`
	RejectionReason *string        `db:"rejection_reason" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
}

// MutationRecord is the listing projection joined with the employee row.
type MutationRecord struct {
	ID           string         `db:"id" json:"id"`
	Perner       string         `db:"perner" json:"perner"`
	EmployeeName string         `db:"employee_name" json:"employeeName"`
	NewUnit      string         `db:"new_unit" json:"newUnit"`
	NewSubUnit   string         `db:"new_sub_unit" json:"newSubUnit"`
	NewPosition  string         `db:"new_position" json:"newPosition"`
	Status       MutationStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
}

// MutationDetail joins the request with current employee attributes.
type MutationDetail struct {
	Perner          string         `db:"perner" json:"perner"`
	EmployeeName    string         `db:"employee_name" json:"employeeName"`
	CurrentUnit     string         `db:"current_unit" json:"currentUnit"`
	CurrentSubUnit  string         `db:"current_sub_unit" json:"currentSubUnit"`
	CurrentPosition string         `db:"current_position" json:"currentPosition"`
	SupervisorNIK   string         `db:"supervisor_nik" json:"supervisorNik"`
	SupervisorName  string         `db:"supervisor_name" json:"supervisorName"`
	NewUnit         string         `db:"new_unit" json:"newUnit"`
	NewSubUnit      string         `db:"new_sub_unit" json:"newSubUnit"`
	NewPosition     string         `db:"new_position" json:"newPosition"`
	Status          MutationStatus `db:"status" json:"status"`
	RejectionReason *string        `db:"rejection_reason" json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `db:"created_at" json:"createdAt"`
}

// MutationUpdate groups the optional fields a pending request may change.
type MutationUpdate struct {
	NewUnit     *string
	NewSubUnit  *string
	NewPosition *string
}

// IsEmpty reports whether the update carries no changes.
func (u MutationUpdate) IsEmpty() bool {
	return u.NewUnit == nil && u.NewSubUnit == nil && u.NewPosition == nil
}
