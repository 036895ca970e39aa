package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
)

type ratingServiceMock struct {
	createResp *dto.RatingResult
	createErr  error
	recapResp  []models.RatingRecap
	recapErr   error
	exportBody []byte
	exportType string
	exportErr  error

	lastPerner string
	lastFilter models.RatingRecapFilter
	lastFormat string
}

func (m *ratingServiceMock) Create(_ context.Context, perner string, _ dto.CreateRatingRequest) (*dto.RatingResult, error) {
	m.lastPerner = perner
	return m.createResp, m.createErr
}

func (m *ratingServiceMock) ListRecap(_ context.Context, filter models.RatingRecapFilter) ([]models.RatingRecap, error) {
	m.lastFilter = filter
	return m.recapResp, m.recapErr
}

func (m *ratingServiceMock) ExportRecap(_ context.Context, filter models.RatingRecapFilter, format string) ([]byte, string, error) {
	m.lastFilter = filter
	m.lastFormat = format
	return m.exportBody, m.exportType, m.exportErr
}

func ratingPayload(raw int) dto.CreateRatingRequest {
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
		Month:                    "March",
		Year:                     2025,
	}
}

func TestRatingHandlerCreate(t *testing.T) {
	mockSvc := &ratingServiceMock{
		createResp: &dto.RatingResult{Perner: "70001234", TotalScore: 100, Average: 5.00, Category: models.RatingCategoryGood},
	}
	handler := NewRatingHandler(mockSvc)

	c, w := postContext(t, "/ratings/70001234", ratingPayload(5))
	c.Params = gin.Params{{Key: "perner", Value: "70001234"}}

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "70001234", mockSvc.lastPerner)
	assert.Contains(t, w.Body.String(), `"totalScore":100`)
	assert.Contains(t, w.Body.String(), "Recommended/Good")
}

func TestRatingHandlerCreateIneligible(t *testing.T) {
	mockSvc := &ratingServiceMock{createErr: appErrors.ErrIneligible}
	handler := NewRatingHandler(mockSvc)

	c, w := postContext(t, "/ratings/70005678", ratingPayload(4))
	c.Params = gin.Params{{Key: "perner", Value: "70005678"}}

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INELIGIBLE")
}

func TestRatingHandlerRecapPassesFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &ratingServiceMock{recapResp: []models.RatingRecap{{Perner: "70001234"}}}
	handler := NewRatingHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/ratings?month=March&year=2025", nil)
	c.Request = req

	handler.Recap(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "March", mockSvc.lastFilter.Month)
	assert.Equal(t, 2025, mockSvc.lastFilter.Year)
}

func TestRatingHandlerRecapBadYear(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewRatingHandler(&ratingServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/ratings?year=abc", nil)
	c.Request = req

	handler.Recap(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRatingHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &ratingServiceMock{exportBody: []byte("Perner,Name\n"), exportType: "text/csv"}
	handler := NewRatingHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/ratings/export?format=csv", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormat)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "rating-recap-")
}

func TestRatingHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &ratingServiceMock{exportErr: appErrors.ErrValidation}
	handler := NewRatingHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/ratings/export?format=xlsx", nil)
	c.Request = req

	handler.Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
