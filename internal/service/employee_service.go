package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

type employeeLister interface {
	employeeDirectory
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error)
	SupervisorExists(ctx context.Context, nik string) (bool, error)
}

const employeePageSize = 20

// EmployeeService reads the employee directory with role-based scoping:
// managers only see employees reporting to them.
type EmployeeService struct {
	repo   employeeLister
	logger *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(repo employeeLister, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, logger: logger}
}

// List returns a directory page visible to the actor.
func (s *EmployeeService) List(ctx context.Context, query dto.EmployeeListQuery, actor *models.JWTClaims) ([]models.Employee, *models.Pagination, error) {
	if actor == nil {
		return nil, nil, appErrors.ErrUnauthorized
	}
	filter := models.EmployeeFilter{
		Unit:     query.Unit,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: employeePageSize,
	}
	if scope, err := s.supervisorScope(ctx, actor); err != nil {
		return nil, nil, err
	} else if scope != "" {
		filter.SupervisorNIK = scope
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pagination := &models.Pagination{Page: page, PageSize: employeePageSize, TotalCount: total}
	return employees, pagination, nil
}

// Get fetches a single employee, enforcing the actor's scope.
func (s *EmployeeService) Get(ctx context.Context, perner string, actor *models.JWTClaims) (*models.Employee, error) {
	if actor == nil {
		return nil, appErrors.ErrUnauthorized
	}
	employee, err := s.repo.FindByPerner(ctx, perner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("employee %s not found", perner))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	if actor.Role == models.RoleManager && employee.SupervisorNIK != actor.Username {
		return nil, appErrors.ErrForbidden
	}
	return employee, nil
}

// supervisorScope narrows listings for managers to their own reports.
// A manager account whose NIK supervises nobody is misconfigured and
// gets no directory access at all.
func (s *EmployeeService) supervisorScope(ctx context.Context, actor *models.JWTClaims) (string, error) {
	if actor.Role != models.RoleManager {
		return "", nil
	}
	exists, err := s.repo.SupervisorExists(ctx, actor.Username)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve supervisor scope")
	}
	if !exists {
		s.logger.Warn("manager account has no direct reports", zap.String("nik", actor.Username))
		return "", appErrors.Clone(appErrors.ErrForbidden, "no employees report to this account")
	}
	return actor.Username, nil
}
