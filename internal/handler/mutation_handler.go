package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
	"github.com/rahmadf/hcm-reg3-api/pkg/response"
)

type mutationService interface {
	Create(ctx context.Context, req dto.CreateMutationRequest) (*models.Mutation, error)
	List(ctx context.Context) ([]models.MutationRecord, error)
	GetDetail(ctx context.Context, perner string) (*models.MutationDetail, error)
	Update(ctx context.Context, perner string, req dto.UpdateMutationRequest) error
	Approve(ctx context.Context, perner string) error
	Reject(ctx context.Context, perner, reason string) error
	Delete(ctx context.Context, perner string) error
}

// MutationHandler exposes REST endpoints for the transfer workflow.
type MutationHandler struct {
	service mutationService
}

// NewMutationHandler constructs the handler.
func NewMutationHandler(service mutationService) *MutationHandler {
	return &MutationHandler{service: service}
}

// Create godoc
// @Summary Submit a transfer request
// @Tags Mutations
// @Accept json
// @Produce json
// @Param payload body dto.CreateMutationRequest true "Mutation payload"
// @Success 201 {object} response.Envelope
// @Router /mutations [post]
func (h *MutationHandler) Create(c *gin.Context) {
	var req dto.CreateMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid mutation payload"))
		return
	}
	mutation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, mutation, nil)
}

// List godoc
// @Summary List transfer requests
// @Tags Mutations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /mutations [get]
func (h *MutationHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Get godoc
// @Summary Get transfer request detail
// @Tags Mutations
// @Produce json
// @Param perner path string true "Employee perner"
// @Success 200 {object} response.Envelope
// @Router /mutations/{perner} [get]
func (h *MutationHandler) Get(c *gin.Context) {
	detail, err := h.service.GetDetail(c.Request.Context(), c.Param("perner"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, detail, nil)
}

// Update godoc
// @Summary Update a pending transfer request
// @Tags Mutations
// @Accept json
// @Produce json
// @Param perner path string true "Employee perner"
// @Param payload body dto.UpdateMutationRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /mutations/{perner} [put]
func (h *MutationHandler) Update(c *gin.Context) {
	var req dto.UpdateMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid mutation payload"))
		return
	}
	if err := h.service.Update(c.Request.Context(), c.Param("perner"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"perner": c.Param("perner"), "updated": true}, nil)
}

// Approve godoc
// @Summary Approve a transfer request
// @Tags Mutations
// @Produce json
// @Param perner path string true "Employee perner"
// @Success 200 {object} response.Envelope
// @Router /mutations/{perner}/approve [post]
func (h *MutationHandler) Approve(c *gin.Context) {
	perner := c.Param("perner")
	if err := h.service.Approve(c.Request.Context(), perner); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"perner": perner, "status": models.MutationStatusApproved}, nil)
}

// Reject godoc
// @Summary Reject a transfer request
// @Tags Mutations
// @Accept json
// @Produce json
// @Param perner path string true "Employee perner"
// @Param payload body dto.RejectMutationRequest true "Rejection reason"
// @Success 200 {object} response.Envelope
// @Router /mutations/{perner}/reject [post]
func (h *MutationHandler) Reject(c *gin.Context) {
	var req dto.RejectMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rejection payload"))
		return
	}
	perner := c.Param("perner")
	if err := h.service.Reject(c.Request.Context(), perner, req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"perner": perner, "status": models.MutationStatusRejected}, nil)
}

// Delete godoc
// @Summary Delete a transfer request
// @Tags Mutations
// @Produce json
// @Param perner path string true "Employee perner"
// @Success 200 {object} response.Envelope
// @Router /mutations/{perner} [delete]
func (h *MutationHandler) Delete(c *gin.Context) {
	perner := c.Param("perner")
	if err := h.service.Delete(c.Request.Context(), perner); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"perner": perner, "deleted": true}, nil)
}
