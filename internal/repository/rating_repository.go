package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
)

// RatingRepository persists performance rating data.
type RatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository constructs the repository.
func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create inserts a rating row. Rows are never updated afterwards.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO ratings
	(id, perner, service_orientation, achievement_orientation, teamwork, product_knowledge,
	 organizational_commitment, performance, initiative, total_score, average, category,
	 month, year, created_at)
	VALUES (:id, :perner, :service_orientation, :achievement_orientation, :teamwork, :product_knowledge,
	 :organizational_commitment, :performance, :initiative, :total_score, :average, :category,
	 :month, :year, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, rating); err != nil {
		if translated := translateUniqueViolation(err); translated == ErrDuplicateKey {
			return ErrDuplicateKey
		}
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

// ExistsForPeriod checks for a rating in the given period.
func (r *RatingRepository) ExistsForPeriod(ctx context.Context, perner, month string, year int) (bool, error) {
	const query = `SELECT 1 FROM ratings WHERE perner = $1 AND month = $2 AND year = $3 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, perner, month, year); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check rating period: %w", err)
	}
	return true, nil
}

// ListRecap projects active employees of the eligible unit with their
// ratings, optionally narrowed to a single period.
func (r *RatingRepository) ListRecap(ctx context.Context, eligibleUnit string, filter models.RatingRecapFilter) ([]models.RatingRecap, error) {
	query := `SELECT e.perner, e.name, e.unit, e.sub_unit, e.position,
       r.total_score, r.average, r.category, r.month, r.year
	FROM employees e
	LEFT JOIN ratings r ON r.perner = e.perner`
	args := []interface{}{models.EmployeeStatusActive, eligibleUnit}
	if filter.Month != "" {
		query += fmt.Sprintf(" AND r.month = $%d", len(args)+1)
		args = append(args, filter.Month)
	}
	if filter.Year > 0 {
		query += fmt.Sprintf(" AND r.year = $%d", len(args)+1)
		args = append(args, filter.Year)
	}
	query += " WHERE e.status = $1 AND e.unit = $2"
	if filter.Month != "" || filter.Year > 0 {
		query += " AND r.total_score IS NOT NULL"
	}
	query += " ORDER BY e.perner ASC"

	var recaps []models.RatingRecap
	if err := r.db.SelectContext(ctx, &recaps, query, args...); err != nil {
		return nil, fmt.Errorf("list rating recap: %w", err)
	}
	return recaps, nil
}

// CountForYear counts ratings submitted in a calendar year.
func (r *RatingRepository) CountForYear(ctx context.Context, year int) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ratings WHERE year = $1`, year); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}
