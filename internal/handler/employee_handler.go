package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rahmadf/hcm-reg3-api/internal/dto"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	appErrors "github.com/rahmadf/hcm-reg3-api/pkg/errors"
	"github.com/rahmadf/hcm-reg3-api/pkg/response"
)

type employeeService interface {
	List(ctx context.Context, query dto.EmployeeListQuery, actor *models.JWTClaims) ([]models.Employee, *models.Pagination, error)
	Get(ctx context.Context, perner string, actor *models.JWTClaims) (*models.Employee, error)
}

// EmployeeHandler exposes directory endpoints.
type EmployeeHandler struct {
	service employeeService
}

// NewEmployeeHandler constructs the handler.
func NewEmployeeHandler(service employeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List godoc
// @Summary List employees visible to the caller
// @Tags Employees
// @Produce json
// @Param unit query string false "Unit name"
// @Param search query string false "Name or perner fragment"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	query := dto.EmployeeListQuery{
		Unit:   strings.TrimSpace(c.Query("unit")),
		Search: strings.TrimSpace(c.Query("search")),
	}
	if rawPage := c.Query("page"); rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "page must be a positive number"))
			return
		}
		query.Page = page
	}
	employees, pagination, err := h.service.List(c.Request.Context(), query, claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employees, pagination)
}

// Get godoc
// @Summary Get a single employee
// @Tags Employees
// @Produce json
// @Param perner path string true "Employee perner"
// @Success 200 {object} response.Envelope
// @Router /employees/{perner} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	employee, err := h.service.Get(c.Request.Context(), c.Param("perner"), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, employee, nil)
}
