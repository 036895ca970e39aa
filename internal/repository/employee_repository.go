package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
)

const employeeColumns = `perner, name, status, unit, sub_unit, position, city,
       supervisor_nik, supervisor_name, budget_source, joined_since`

// EmployeeRepository reads the employee directory. The directory is
// populated by HR ingest jobs; this service never writes to it.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs the repository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// FindByPerner fetches one employee by identifier.
func (r *EmployeeRepository) FindByPerner(ctx context.Context, perner string) (*models.Employee, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE perner = $1`, employeeColumns)
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, perner); err != nil {
		return nil, err
	}
	return &employee, nil
}

// List returns employees matching the provided filters with a total count.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	conditions := []string{"1=1"}
	args := make([]interface{}, 0, 3)

	if filter.SupervisorNIK != "" {
		args = append(args, filter.SupervisorNIK)
		conditions = append(conditions, fmt.Sprintf("supervisor_nik = $%d", len(args)))
	}
	if filter.Unit != "" {
		args = append(args, filter.Unit)
		conditions = append(conditions, fmt.Sprintf("unit = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		conditions = append(conditions, fmt.Sprintf("(LOWER(name) LIKE $%d OR perner LIKE $%d)", len(args), len(args)))
	}

	where := strings.Join(conditions, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s ORDER BY perner ASC LIMIT %d OFFSET %d`,
		employeeColumns, where, size, offset)

	var employees []models.Employee
	if err := r.db.SelectContext(ctx, &employees, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}
	return employees, total, nil
}

// SupervisorExists reports whether any employee reports to the given NIK.
func (r *EmployeeRepository) SupervisorExists(ctx context.Context, nik string) (bool, error) {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM employees WHERE supervisor_nik = $1 LIMIT 1`, nik)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check supervisor: %w", err)
	}
	return true, nil
}

// CountAll returns total and active employee counts.
func (r *EmployeeRepository) CountAll(ctx context.Context) (total int, active int, err error) {
	if err = r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM employees`); err != nil {
		return 0, 0, fmt.Errorf("count employees: %w", err)
	}
	if err = r.db.GetContext(ctx, &active, `SELECT COUNT(*) FROM employees WHERE status = $1`, models.EmployeeStatusActive); err != nil {
		return 0, 0, fmt.Errorf("count active employees: %w", err)
	}
	return total, active, nil
}

// UnitHeadcounts groups active employees per unit.
func (r *EmployeeRepository) UnitHeadcounts(ctx context.Context) ([]models.UnitHeadcount, error) {
	const query = `SELECT unit, COUNT(*) AS count FROM employees WHERE status = $1 GROUP BY unit ORDER BY unit ASC`
	var counts []models.UnitHeadcount
	if err := r.db.SelectContext(ctx, &counts, query, models.EmployeeStatusActive); err != nil {
		return nil, fmt.Errorf("unit headcounts: %w", err)
	}
	return counts, nil
}
