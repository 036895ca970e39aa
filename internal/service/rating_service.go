package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	"github.com/rahmadf/hcm-reg3-api/internal/repository"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
	"github.com/rahmadf/hcm-reg3-api/pkg/export"
)

type ratingStore interface {
	Create(ctx context.Context, rating *models.Rating) error
	ExistsForPeriod(ctx context.Context, perner, month string, year int) (bool, error)
	ListRecap(ctx context.Context, eligibleUnit string, filter models.RatingRecapFilter) ([]models.RatingRecap, error)
}

// RatingServiceConfig bounds eligibility and accepted periods.
type RatingServiceConfig struct {
	EligibleUnit string
	MinYear      int
}

// RatingService validates eligibility and periods, computes weighted
// scores, and persists one immutable rating per employee per period.
type RatingService struct {
	repo        ratingStore
	employees   employeeDirectory
	validator   *validator.Validate
	logger      *zap.Logger
	now         func() time.Time
	cfg         RatingServiceConfig
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	invalidator summaryInvalidator
}

// NewRatingService constructs the service. The invalidator may be nil.
func NewRatingService(repo ratingStore, employees employeeDirectory, validate *validator.Validate, logger *zap.Logger, cfg RatingServiceConfig, invalidator summaryInvalidator) *RatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if cfg.MinYear <= 0 {
		cfg.MinYear = 2024
	}
	return &RatingService{
		repo:        repo,
		employees:   employees,
		validator:   validate,
		logger:      logger,
		now:         time.Now,
		cfg:         cfg,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		invalidator: invalidator,
	}
}

// Create runs eligibility, period and uniqueness checks in order, then
// computes and stores the rating. The first failing check wins.
func (s *RatingService) Create(ctx context.Context, perner string, req dto.CreateRatingRequest) (*dto.RatingResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status,
			"all seven aspect scores are required and must be between 1 and 5")
	}

	employee, err := s.employees.FindByPerner(ctx, perner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("employee %s not found", perner))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	if employee.Status != models.EmployeeStatusActive || employee.Unit != s.cfg.EligibleUnit {
		return nil, appErrors.Clone(appErrors.ErrIneligible,
			fmt.Sprintf("ratings may only be given to active employees of %s", s.cfg.EligibleUnit))
	}

	if err := s.validatePeriod(req.Month, req.Year); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForPeriod(ctx, perner, req.Month, req.Year)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check rating period")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict,
			fmt.Sprintf("a rating for employee %s already exists for %s %d", perner, req.Month, req.Year))
	}

	scores := aspectScores{
		ServiceOrientation:       *req.ServiceOrientation,
		AchievementOrientation:   *req.AchievementOrientation,
		Teamwork:                 *req.Teamwork,
		ProductKnowledge:         *req.ProductKnowledge,
		OrganizationalCommitment: *req.OrganizationalCommitment,
		Performance:              *req.Performance,
		Initiative:               *req.Initiative,
	}
	total, average, category := computeScore(scores)

	rating := &models.Rating{
		Perner:                   perner,
		ServiceOrientation:       scores.ServiceOrientation,
		AchievementOrientation:   scores.AchievementOrientation,
		Teamwork:                 scores.Teamwork,
		ProductKnowledge:         scores.ProductKnowledge,
		OrganizationalCommitment: scores.OrganizationalCommitment,
		Performance:              scores.Performance,
		Initiative:               scores.Initiative,
		TotalScore:               total,
		Average:                  average,
		Category:                 category,
		Month:                    req.Month,
		Year:                     req.Year,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, appErrors.Clone(appErrors.ErrConflict,
				fmt.Sprintf("a rating for employee %s already exists for %s %d", perner, req.Month, req.Year))
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create rating")
	}

	s.logger.Info("rating submitted",
		zap.String("perner", perner),
		zap.Int("total_score", total),
		zap.String("category", category),
	)
	if s.invalidator != nil {
		s.invalidator.InvalidateSummary(ctx)
	}
	return &dto.RatingResult{
		Perner:       perner,
		EmployeeName: employee.Name,
		TotalScore:   total,
		Average:      average,
		Category:     category,
		Month:        req.Month,
		Year:         req.Year,
	}, nil
}

// ListRecap projects eligible employees with their ratings, optionally
// narrowed to a period.
func (s *RatingService) ListRecap(ctx context.Context, filter models.RatingRecapFilter) ([]models.RatingRecap, error) {
	if filter.Month != "" && !models.ValidRatingMonth(filter.Month) {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("%q is not a valid month name", filter.Month))
	}
	if filter.Year != 0 && filter.Year < s.cfg.MinYear {
		return nil, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("year must be %d or later", s.cfg.MinYear))
	}
	recaps, err := s.repo.ListRecap(ctx, s.cfg.EligibleUnit, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rating recap")
	}
	return recaps, nil
}

// ExportRecap renders the recap as CSV or PDF bytes.
func (s *RatingService) ExportRecap(ctx context.Context, filter models.RatingRecapFilter, format string) ([]byte, string, error) {
	recaps, err := s.ListRecap(ctx, filter)
	if err != nil {
		return nil, "", err
	}
	dataset := recapDataset(recaps)
	switch format {
	case "csv":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(dataset, "Employee Rating Recap")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func (s *RatingService) validatePeriod(month string, year int) error {
	if !models.ValidRatingMonth(month) {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("%q is not a valid month name", month))
	}
	currentYear := s.now().Year()
	if year < s.cfg.MinYear || year > currentYear {
		return appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("year must be between %d and %d", s.cfg.MinYear, currentYear))
	}
	return nil
}

func recapDataset(recaps []models.RatingRecap) export.Dataset {
	headers := []string{"Perner", "Name", "Unit", "Sub Unit", "Position", "Score", "Average", "Category", "Period"}
	rows := make([]map[string]string, 0, len(recaps))
	for _, recap := range recaps {
		row := map[string]string{
			"Perner":   recap.Perner,
			"Name":     recap.Name,
			"Unit":     recap.Unit,
			"Sub Unit": recap.SubUnit,
			"Position": recap.Position,
			"Score":    "-",
			"Average":  "-",
			"Category": "-",
			"Period":   "-",
		}
		if recap.TotalScore != nil {
			row["Score"] = strconv.Itoa(*recap.TotalScore)
		}
		if recap.Average != nil {
			row["Average"] = strconv.FormatFloat(*recap.Average, 'f', 2, 64)
		}
		if recap.Category != nil {
			row["Category"] = *recap.Category
		}
		if recap.Month != nil && recap.Year != nil {
			row["Period"] = fmt.Sprintf("%s %d", *recap.Month, *recap.Year)
		}
		rows = append(rows, row)
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
