package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

const dashboardSummaryKey = "dashboard:summary"

// summaryInvalidator drops cached dashboard aggregates after a write
// changes the numbers they are built from.
type summaryInvalidator interface {
	InvalidateSummary(ctx context.Context)
}

type headcountCounter interface {
	CountAll(ctx context.Context) (total int, active int, err error)
	UnitHeadcounts(ctx context.Context) ([]models.UnitHeadcount, error)
}

type mutationCounter interface {
	CountByStatus(ctx context.Context, status models.MutationStatus) (int, error)
}

type ratingCounter interface {
	CountForYear(ctx context.Context, year int) (int, error)
}

// DashboardService aggregates headline numbers for the landing page.
type DashboardService struct {
	employees headcountCounter
	mutations mutationCounter
	ratings   ratingCounter
	cache     *CacheService
	cacheTTL  time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewDashboardService constructs the service. The cache may be nil.
func NewDashboardService(employees headcountCounter, mutations mutationCounter, ratings ratingCounter, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		employees: employees,
		mutations: mutations,
		ratings:   ratings,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Summary returns the dashboard aggregate, served from cache when warm.
func (s *DashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var cached models.DashboardSummary
	if hit, err := s.cache.Get(ctx, dashboardSummaryKey, &cached); err == nil && hit {
		return &cached, nil
	}

	total, active, err := s.employees.CountAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count employees")
	}
	headcounts, err := s.employees.UnitHeadcounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load unit headcounts")
	}
	pending, err := s.mutations.CountByStatus(ctx, models.MutationStatusPending)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count pending mutations")
	}
	ratings, err := s.ratings.CountForYear(ctx, s.now().Year())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count ratings")
	}

	summary := &models.DashboardSummary{
		TotalEmployees:   total,
		ActiveEmployees:  active,
		UnitHeadcounts:   headcounts,
		PendingMutations: pending,
		RatingsThisYear:  ratings,
	}
	if err := s.cache.Set(ctx, dashboardSummaryKey, summary, s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache dashboard summary", zap.Error(err))
	}
	return summary, nil
}

// InvalidateSummary drops the cached aggregate after a write.
func (s *DashboardService) InvalidateSummary(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardSummaryKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard summary", zap.Error(err))
	}
}
