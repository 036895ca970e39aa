package dto

// CreateMutationRequest payload for submitting a transfer request.
type CreateMutationRequest struct {
	Perner      string `json:"perner" validate:"required"`
	NewUnit     string `json:"newUnit" validate:"required"`
	NewSubUnit  string `json:"newSubUnit" validate:"required"`
	NewPosition string `json:"newPosition" validate:"required"`
}

// UpdateMutationRequest carries optional fields; nil means untouched.
type UpdateMutationRequest struct {
	NewUnit     *string `json:"newUnit"`
	NewSubUnit  *string `json:"newSubUnit"`
	NewPosition *string `json:"newPosition"`
}

// RejectMutationRequest captures the mandatory rejection reason.
type RejectMutationRequest struct {
	Reason string `json:"reason"`
}
