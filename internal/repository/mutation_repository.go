package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
)

// MutationRepository persists transfer request data.
type MutationRepository struct {
	db *sqlx.DB
}

// NewMutationRepository constructs the repository.
func NewMutationRepository(db *sqlx.DB) *MutationRepository {
	return &MutationRepository{db: db}
}

// Create inserts a new mutation row.
func (r *MutationRepository) Create(ctx context.Context, mutation *models.Mutation) error {
	if mutation.ID == "" {
		mutation.ID = uuid.NewString()
	}
	if mutation.Status == "" {
		mutation.Status = models.MutationStatusPending
	}
	if mutation.CreatedAt.IsZero() {
		mutation.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO mutations
	(id, perner, new_unit, new_sub_unit, new_position, status, rejection_reason, created_at)
	VALUES (:id, :perner, :new_unit, :new_sub_unit, :new_position, :status, :rejection_reason, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, mutation); err != nil {
		if translated := translateUniqueViolation(err); translated == ErrDuplicateKey {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create mutation: %w", err)
	}
	return nil
}

// FindByPerner fetches the mutation row for an employee.
func (r *MutationRepository) FindByPerner(ctx context.Context, perner string) (*models.Mutation, error) {
	const query = `SELECT id, perner, new_unit, new_sub_unit, new_position, status, rejection_reason, created_at
	FROM mutations WHERE perner = $1 ORDER BY created_at DESC LIMIT 1`
	var mutation models.Mutation
	if err := r.db.GetContext(ctx, &mutation, query, perner); err != nil {
		return nil, err
	}
	return &mutation, nil
}

// ExistsTarget checks for an existing request with the same target.
func (r *MutationRepository) ExistsTarget(ctx context.Context, perner, newUnit, newSubUnit string) (bool, error) {
	const query = `SELECT 1 FROM mutations WHERE perner = $1 AND new_unit = $2 AND new_sub_unit = $3 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, perner, newUnit, newSubUnit); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check duplicate mutation: %w", err)
	}
	return true, nil
}

// List returns all requests joined with the owning employee (latest first).
func (r *MutationRepository) List(ctx context.Context) ([]models.MutationRecord, error) {
	const query = `SELECT m.id, m.perner, e.name AS employee_name, m.new_unit, m.new_sub_unit,
       m.new_position, m.status, m.created_at
	FROM mutations m
	INNER JOIN employees e ON e.perner = m.perner
	ORDER BY m.created_at DESC`
	var records []models.MutationRecord
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list mutations: %w", err)
	}
	return records, nil
}

// GetDetail joins the request with current employee attributes.
func (r *MutationRepository) GetDetail(ctx context.Context, perner string) (*models.MutationDetail, error) {
	const query = `SELECT m.perner, e.name AS employee_name, e.unit AS current_unit,
       e.sub_unit AS current_sub_unit, e.position AS current_position,
       e.supervisor_nik, e.supervisor_name,
       m.new_unit, m.new_sub_unit, m.new_position, m.status, m.rejection_reason, m.created_at
	FROM mutations m
	INNER JOIN employees e ON e.perner = m.perner
	WHERE m.perner = $1
	ORDER BY m.created_at DESC LIMIT 1`
	var detail models.MutationDetail
	if err := r.db.GetContext(ctx, &detail, query, perner); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateFields changes only the supplied target columns.
func (r *MutationRepository) UpdateFields(ctx context.Context, perner string, update models.MutationUpdate) error {
	setParts := make([]string, 0, 3)
	args := map[string]interface{}{"perner": perner}
	if update.NewUnit != nil {
		setParts = append(setParts, "new_unit = :new_unit")
		args["new_unit"] = *update.NewUnit
	}
	if update.NewSubUnit != nil {
		setParts = append(setParts, "new_sub_unit = :new_sub_unit")
		args["new_sub_unit"] = *update.NewSubUnit
	}
	if update.NewPosition != nil {
		setParts = append(setParts, "new_position = :new_position")
		args["new_position"] = *update.NewPosition
	}
	if len(setParts) == 0 {
		return nil
	}
	query := fmt.Sprintf("UPDATE mutations SET %s WHERE perner = :perner", strings.Join(setParts, ", "))
	result, err := r.db.NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("update mutation fields: %w", err)
	}
	return requireRowsAffected(result)
}

// UpdateStatus records a review decision. Approvals clear any stored
// rejection reason; rejections store the supplied one.
func (r *MutationRepository) UpdateStatus(ctx context.Context, perner string, status models.MutationStatus, reason *string) error {
	const query = `UPDATE mutations SET status = :status, rejection_reason = :rejection_reason WHERE perner = :perner`
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"perner":           perner,
		"status":           status,
		"rejection_reason": reason,
	})
	if err != nil {
		return fmt.Errorf("update mutation status: %w", err)
	}
	return requireRowsAffected(result)
}

// Delete removes the request row for an employee.
func (r *MutationRepository) Delete(ctx context.Context, perner string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM mutations WHERE perner = $1`, perner)
	if err != nil {
		return fmt.Errorf("delete mutation: %w", err)
	}
	return requireRowsAffected(result)
}

// CountByStatus counts requests in the given state.
func (r *MutationRepository) CountByStatus(ctx context.Context, status models.MutationStatus) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM mutations WHERE status = $1`, status); err != nil {
		return 0, fmt.Errorf("count mutations: %w", err)
	}
	return count, nil
}

func requireRowsAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
