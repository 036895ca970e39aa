package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	"github.com/rahmadf/hcm-reg3-api/internal/repository"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

type mutationStore interface {
	Create(ctx context.Context, mutation *models.Mutation) error
	FindByPerner(ctx context.Context, perner string) (*models.Mutation, error)
	ExistsTarget(ctx context.Context, perner, newUnit, newSubUnit string) (bool, error)
	List(ctx context.Context) ([]models.MutationRecord, error)
	GetDetail(ctx context.Context, perner string) (*models.MutationDetail, error)
	UpdateFields(ctx context.Context, perner string, update models.MutationUpdate) error
	UpdateStatus(ctx context.Context, perner string, status models.MutationStatus, reason *string) error
	Delete(ctx context.Context, perner string) error
}

type employeeDirectory interface {
	FindByPerner(ctx context.Context, perner string) (*models.Employee, error)
}

type unitCatalog interface {
	IsValid(unit, subUnit string) bool
}

// MutationService runs the transfer request workflow: PENDING requests
// may be edited, then a reviewer approves or rejects them.
type MutationService struct {
	repo        mutationStore
	employees   employeeDirectory
	catalog     unitCatalog
	validator   *validator.Validate
	logger      *zap.Logger
	invalidator summaryInvalidator
}

// NewMutationService constructs the service. The invalidator may be nil.
func NewMutationService(repo mutationStore, employees employeeDirectory, catalog unitCatalog, validate *validator.Validate, logger *zap.Logger, invalidator summaryInvalidator) *MutationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &MutationService{
		repo:        repo,
		employees:   employees,
		catalog:     catalog,
		validator:   validate,
		logger:      logger,
		invalidator: invalidator,
	}
}

func (s *MutationService) invalidateSummary(ctx context.Context) {
	if s.invalidator != nil {
		s.invalidator.InvalidateSummary(ctx)
	}
}

// Create stores a new transfer request after validating the target
// against the unit catalog and rejecting duplicate submissions.
func (s *MutationService) Create(ctx context.Context, req dto.CreateMutationRequest) (*models.Mutation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mutation payload")
	}
	if !s.catalog.IsValid(req.NewUnit, req.NewSubUnit) {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("sub-unit %q is not valid for unit %q", req.NewSubUnit, req.NewUnit))
	}

	duplicate, err := s.repo.ExistsTarget(ctx, req.Perner, req.NewUnit, req.NewSubUnit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check duplicate mutation")
	}
	if duplicate {
		return nil, appErrors.Clone(appErrors.ErrConflict, "a mutation with the same target unit and sub-unit already exists")
	}

	if _, err := s.employees.FindByPerner(ctx, req.Perner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("employee %s not found", req.Perner))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}

	mutation := &models.Mutation{
		Perner:      req.Perner,
		NewUnit:     req.NewUnit,
		NewSubUnit:  req.NewSubUnit,
		NewPosition: req.NewPosition,
		Status:      models.MutationStatusPending,
	}
	if err := s.repo.Create(ctx, mutation); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a mutation with the same target unit and sub-unit already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create mutation")
	}
	s.logger.Info("mutation submitted",
		zap.String("perner", mutation.Perner),
		zap.String("new_unit", mutation.NewUnit),
		zap.String("new_sub_unit", mutation.NewSubUnit),
	)
	s.invalidateSummary(ctx)
	return mutation, nil
}

// List returns all requests joined with employee names.
func (s *MutationService) List(ctx context.Context) ([]models.MutationRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list mutations")
	}
	return records, nil
}

// GetDetail returns the request joined with current employee attributes.
func (s *MutationService) GetDetail(ctx context.Context, perner string) (*models.MutationDetail, error) {
	detail, err := s.repo.GetDetail(ctx, perner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mutation detail")
	}
	return detail, nil
}

// Update changes the supplied target fields of a pending request.
// Supplied units are re-validated against the catalog.
func (s *MutationService) Update(ctx context.Context, perner string, req dto.UpdateMutationRequest) error {
	mutation, err := s.repo.FindByPerner(ctx, perner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load mutation")
	}
	if mutation.Status != models.MutationStatusPending {
		return appErrors.Clone(appErrors.ErrInvalidState, "only pending mutations may be updated")
	}

	// Validate the pair that would result from the update, so a new
	// unit cannot be stored alongside a retained sub-unit it does not
	// list.
	targetUnit := mutation.NewUnit
	if req.NewUnit != nil {
		targetUnit = strings.TrimSpace(*req.NewUnit)
	}
	targetSubUnit := mutation.NewSubUnit
	if req.NewSubUnit != nil {
		targetSubUnit = strings.TrimSpace(*req.NewSubUnit)
	}
	if req.NewUnit != nil || req.NewSubUnit != nil {
		if !s.catalog.IsValid(targetUnit, targetSubUnit) {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("sub-unit %q is not valid for unit %q", targetSubUnit, targetUnit))
		}
	}

	update := models.MutationUpdate{
		NewUnit:     req.NewUnit,
		NewSubUnit:  req.NewSubUnit,
		NewPosition: req.NewPosition,
	}
	if update.IsEmpty() {
		return nil
	}
	if err := s.repo.UpdateFields(ctx, perner, update); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update mutation")
	}
	return nil
}

// Approve marks the request APPROVED and clears any rejection reason.
// There is deliberately no pending-state guard here: re-approving a
// reviewed request overrides the previous decision, matching how the
// review desk has always operated.
func (s *MutationService) Approve(ctx context.Context, perner string) error {
	if err := s.repo.UpdateStatus(ctx, perner, models.MutationStatusApproved, nil); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to approve mutation")
	}
	s.logger.Info("mutation approved", zap.String("perner", perner))
	s.invalidateSummary(ctx)
	return nil
}

// Reject marks the request REJECTED with a mandatory reason.
func (s *MutationService) Reject(ctx context.Context, perner, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return appErrors.Clone(appErrors.ErrValidation, "rejection reason is required")
	}
	if err := s.repo.UpdateStatus(ctx, perner, models.MutationStatusRejected, &reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reject mutation")
	}
	s.logger.Info("mutation rejected", zap.String("perner", perner))
	s.invalidateSummary(ctx)
	return nil
}

// Delete removes the request unconditionally.
func (s *MutationService) Delete(ctx context.Context, perner string) error {
	if err := s.repo.Delete(ctx, perner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no mutation found for employee %s", perner))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete mutation")
	}
	s.invalidateSummary(ctx)
	return nil
}
