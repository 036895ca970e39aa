package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

const testEligibleUnit = "Kantor Telkom Regional III"

type stubRatingStore struct {
	ratings map[string]*models.Rating
	recaps  []models.RatingRecap
}

func newStubRatingStore() *stubRatingStore {
	return &stubRatingStore{ratings: map[string]*models.Rating{}}
}

func periodKey(perner, month string, year int) string {
	return fmt.Sprintf("%s:%s:%d", perner, month, year)
}

func (s *stubRatingStore) Create(_ context.Context, rating *models.Rating) error {
	s.ratings[periodKey(rating.Perner, rating.Month, rating.Year)] = rating
	return nil
}

func (s *stubRatingStore) ExistsForPeriod(_ context.Context, perner, month string, year int) (bool, error) {
	_, ok := s.ratings[periodKey(perner, month, year)]
	return ok, nil
}

func (s *stubRatingStore) ListRecap(_ context.Context, _ string, _ models.RatingRecapFilter) ([]models.RatingRecap, error) {
	return s.recaps, nil
}

func newRatingFixture() (*RatingService, *stubRatingStore) {
	svc, store, _ := newRatingFixtureWithInvalidator()
	return svc, store
}

func newRatingFixtureWithInvalidator() (*RatingService, *stubRatingStore, *invalidatorRecorder) {
	store := newStubRatingStore()
	directory := &stubEmployeeDirectory{employees: map[string]*models.Employee{
		"70001234": {Perner: "70001234", Name: "Siti Rahma", Status: models.EmployeeStatusActive, Unit: testEligibleUnit},
		"70005678": {Perner: "70005678", Name: "Budi Santoso", Status: models.EmployeeStatusActive, Unit: "Witel Bandung"},
		"70009012": {Perner: "70009012", Name: "Dewi Lestari", Status: models.EmployeeStatusInactive, Unit: testEligibleUnit},
	}}
	recorder := &invalidatorRecorder{}
	svc := NewRatingService(store, directory, nil, nil, RatingServiceConfig{EligibleUnit: testEligibleUnit, MinYear: 2024}, recorder)
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return svc, store, recorder
}

func ratingRequest(raw int, month string, year int) dto.CreateRatingRequest {
	scores := make([]*int, 7)
	for i := range scores {
		value := raw
		scores[i] = &value
	}
	return dto.CreateRatingRequest{
		ServiceOrientation:       scores[0],
		AchievementOrientation:   scores[1],
		Teamwork:                 scores[2],
		ProductKnowledge:         scores[3],
		OrganizationalCommitment: scores[4],
		Performance:              scores[5],
		Initiative:               scores[6],
		Month:                    month,
		Year:                     year,
	}
}

func TestRatingCreateComputesWeightedScore(t *testing.T) {
	svc, store := newRatingFixture()

	result, err := svc.Create(context.Background(), "70001234", ratingRequest(5, "March", 2025))

	require.NoError(t, err)
	assert.Equal(t, 100, result.TotalScore)
	assert.Equal(t, 5.00, result.Average)
	assert.Equal(t, models.RatingCategoryGood, result.Category)
	assert.Equal(t, "Siti Rahma", result.EmployeeName)

	stored := store.ratings[periodKey("70001234", "March", 2025)]
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.TotalScore)
	assert.Equal(t, models.RatingCategoryGood, stored.Category)
}

func TestRatingCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "99999999", ratingRequest(4, "March", 2025))

	assertAppError(t, err, appErrors.ErrNotFound)
}

func TestRatingCreateRejectsOtherUnit(t *testing.T) {
	svc, store := newRatingFixture()

	_, err := svc.Create(context.Background(), "70005678", ratingRequest(4, "March", 2025))

	assertAppError(t, err, appErrors.ErrIneligible)
	assert.Empty(t, store.ratings)
}

func TestRatingCreateRejectsInactiveEmployee(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "70009012", ratingRequest(4, "March", 2025))

	assertAppError(t, err, appErrors.ErrIneligible)
}

func TestRatingCreateRejectsScoreOutOfRange(t *testing.T) {
	svc, _ := newRatingFixture()

	req := ratingRequest(4, "March", 2025)
	bad := 6
	req.Teamwork = &bad
	_, err := svc.Create(context.Background(), "70001234", req)
	assertAppError(t, err, appErrors.ErrValidation)

	req = ratingRequest(4, "March", 2025)
	req.Performance = nil
	_, err = svc.Create(context.Background(), "70001234", req)
	assertAppError(t, err, appErrors.ErrValidation)
}

func TestRatingCreateRejectsBadPeriod(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "70001234", ratingRequest(4, "Maret", 2025))
	assertAppError(t, err, appErrors.ErrValidation)

	_, err = svc.Create(context.Background(), "70001234", ratingRequest(4, "March", 2023))
	assertAppError(t, err, appErrors.ErrValidation)

	_, err = svc.Create(context.Background(), "70001234", ratingRequest(4, "March", 2026))
	assertAppError(t, err, appErrors.ErrValidation)
}

func TestRatingCreateRejectsDuplicatePeriod(t *testing.T) {
	svc, _ := newRatingFixture()

	_, err := svc.Create(context.Background(), "70001234", ratingRequest(4, "March", 2025))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "70001234", ratingRequest(5, "March", 2025))
	assertAppError(t, err, appErrors.ErrConflict)

	_, err = svc.Create(context.Background(), "70001234", ratingRequest(5, "April", 2025))
	assert.NoError(t, err)
}

func TestRatingCreateInvalidatesDashboardSummary(t *testing.T) {
	svc, _, recorder := newRatingFixtureWithInvalidator()

	_, err := svc.Create(context.Background(), "70001234", ratingRequest(4, "March", 2025))
	require.NoError(t, err)
	assert.Equal(t, 1, recorder.calls)

	_, err = svc.Create(context.Background(), "70001234", ratingRequest(4, "March", 2025))
	assertAppError(t, err, appErrors.ErrConflict)
	assert.Equal(t, 1, recorder.calls)
}

func TestRatingListRecapValidatesFilter(t *testing.T) {
	svc, store := newRatingFixture()
	store.recaps = []models.RatingRecap{{Perner: "70001234", Name: "Siti Rahma", Unit: testEligibleUnit}}

	recaps, err := svc.ListRecap(context.Background(), models.RatingRecapFilter{})
	require.NoError(t, err)
	assert.Len(t, recaps, 1)

	_, err = svc.ListRecap(context.Background(), models.RatingRecapFilter{Month: "Smarch"})
	assertAppError(t, err, appErrors.ErrValidation)

	_, err = svc.ListRecap(context.Background(), models.RatingRecapFilter{Year: 2020})
	assertAppError(t, err, appErrors.ErrValidation)
}

func TestRatingExportRecap(t *testing.T) {
	svc, store := newRatingFixture()
	score := 84
	average := 4.00
	category := models.RatingCategoryGood
	month := "March"
	year := 2025
	store.recaps = []models.RatingRecap{
		{Perner: "70001234", Name: "Siti Rahma", Unit: testEligibleUnit, SubUnit: "HC Services", Position: "Officer",
			TotalScore: &score, Average: &average, Category: &category, Month: &month, Year: &year},
		{Perner: "70004321", Name: "Budi Santoso", Unit: testEligibleUnit, SubUnit: "Finance", Position: "Officer"},
	}

	payload, contentType, err := svc.ExportRecap(context.Background(), models.RatingRecapFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "Siti Rahma")
	assert.Contains(t, string(payload), "Recommended/Good")
	assert.Contains(t, string(payload), "March 2025")

	payload, contentType, err = svc.ExportRecap(context.Background(), models.RatingRecapFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.NotEmpty(t, payload)

	_, _, err = svc.ExportRecap(context.Background(), models.RatingRecapFilter{}, "xlsx")
	assertAppError(t, err, appErrors.ErrValidation)
}
