package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
	"github.com/rahmadf/hcm-reg3-api/pkg/response"
)

type ratingService interface {
	Create(ctx context.Context, perner string, req dto.CreateRatingRequest) (*dto.RatingResult, error)
	ListRecap(ctx context.Context, filter models.RatingRecapFilter) ([]models.RatingRecap, error)
	ExportRecap(ctx context.Context, filter models.RatingRecapFilter, format string) ([]byte, string, error)
}

// RatingHandler exposes REST endpoints for performance ratings.
type RatingHandler struct {
	service ratingService
}

// NewRatingHandler constructs the handler.
func NewRatingHandler(service ratingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Create godoc
// @Summary Submit a performance rating
// @Tags Ratings
// @Accept json
// @Produce json
// @Param perner path string true "Employee perner"
// @Param payload body dto.CreateRatingRequest true "Aspect scores and period"
// @Success 201 {object} response.Envelope
// @Router /ratings/{perner} [post]
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rating payload"))
		return
	}
	result, err := h.service.Create(c.Request.Context(), c.Param("perner"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, result, nil)
}

// Recap godoc
// @Summary List the rating recap
// @Tags Ratings
// @Produce json
// @Param month query string false "Month name"
// @Param year query int false "Year"
// @Success 200 {object} response.Envelope
// @Router /ratings [get]
func (h *RatingHandler) Recap(c *gin.Context) {
	filter, err := recapFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	recaps, err := h.service.ListRecap(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recaps, nil)
}

// Export godoc
// @Summary Export the rating recap as CSV or PDF
// @Tags Ratings
// @Produce octet-stream
// @Param format query string true "csv or pdf"
// @Param month query string false "Month name"
// @Param year query int false "Year"
// @Success 200 {file} binary
// @Router /ratings/export [get]
func (h *RatingHandler) Export(c *gin.Context) {
	filter, err := recapFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.ExportRecap(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("rating-recap-%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

func recapFilterFromQuery(c *gin.Context) (models.RatingRecapFilter, error) {
	filter := models.RatingRecapFilter{Month: c.Query("month")}
	if rawYear := c.Query("year"); rawYear != "" {
		year, err := strconv.Atoi(rawYear)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "year must be a number")
		}
		filter.Year = year
	}
	return filter, nil
}
