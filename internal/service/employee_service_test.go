package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

type stubEmployeeLister struct {
	stubEmployeeDirectory
	lastFilter models.EmployeeFilter
}

func (s *stubEmployeeLister) List(_ context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	s.lastFilter = filter
	var matched []models.Employee
	for _, employee := range s.employees {
		if filter.SupervisorNIK != "" && employee.SupervisorNIK != filter.SupervisorNIK {
			continue
		}
		matched = append(matched, *employee)
	}
	return matched, len(matched), nil
}

func (s *stubEmployeeLister) SupervisorExists(_ context.Context, nik string) (bool, error) {
	for _, employee := range s.employees {
		if employee.SupervisorNIK == nik {
			return true, nil
		}
	}
	return false, nil
}

func newEmployeeFixture() (*EmployeeService, *stubEmployeeLister) {
	lister := &stubEmployeeLister{stubEmployeeDirectory: stubEmployeeDirectory{employees: map[string]*models.Employee{
		"70001234": {Perner: "70001234", Name: "Siti Rahma", SupervisorNIK: "880123", Unit: "Witel Bandung"},
		"70005678": {Perner: "70005678", Name: "Budi Santoso", SupervisorNIK: "880456", Unit: "Witel Cirebon"},
	}}}
	return NewEmployeeService(lister, nil), lister
}

func TestEmployeeListRequiresActor(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, _, err := svc.List(context.Background(), dto.EmployeeListQuery{}, nil)

	assertAppError(t, err, appErrors.ErrUnauthorized)
}

func TestEmployeeListScopesManagers(t *testing.T) {
	svc, lister := newEmployeeFixture()

	employees, pagination, err := svc.List(context.Background(), dto.EmployeeListQuery{},
		&models.JWTClaims{Username: "880123", Role: models.RoleManager})

	require.NoError(t, err)
	assert.Equal(t, "880123", lister.lastFilter.SupervisorNIK)
	require.Len(t, employees, 1)
	assert.Equal(t, "70001234", employees[0].Perner)
	assert.Equal(t, 1, pagination.TotalCount)
}

func TestEmployeeListRejectsManagerWithoutReports(t *testing.T) {
	svc, _ := newEmployeeFixture()

	_, _, err := svc.List(context.Background(), dto.EmployeeListQuery{},
		&models.JWTClaims{Username: "880777", Role: models.RoleManager})

	assertAppError(t, err, appErrors.ErrForbidden)
}

func TestEmployeeListUnscopedForHC(t *testing.T) {
	svc, lister := newEmployeeFixture()

	employees, _, err := svc.List(context.Background(), dto.EmployeeListQuery{},
		&models.JWTClaims{Username: "880999", Role: models.RoleHC})

	require.NoError(t, err)
	assert.Empty(t, lister.lastFilter.SupervisorNIK)
	assert.Len(t, employees, 2)
}

func TestEmployeeGetEnforcesManagerScope(t *testing.T) {
	svc, _ := newEmployeeFixture()
	manager := &models.JWTClaims{Username: "880123", Role: models.RoleManager}

	employee, err := svc.Get(context.Background(), "70001234", manager)
	require.NoError(t, err)
	assert.Equal(t, "Siti Rahma", employee.Name)

	_, err = svc.Get(context.Background(), "70005678", manager)
	assertAppError(t, err, appErrors.ErrForbidden)

	_, err = svc.Get(context.Background(), "70009999", manager)
	assertAppError(t, err, appErrors.ErrNotFound)
}
