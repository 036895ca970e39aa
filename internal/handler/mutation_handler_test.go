package handler

import (
	"bytes"
	"context"
	"encoding/json"
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

type mutationServiceMock struct {
	createResp *models.Mutation
	createErr  error
	listResp   []models.MutationRecord
	listErr    error
	detailResp *models.MutationDetail
	detailErr  error
	updateErr  error
	approveErr error
	rejectErr  error
	deleteErr  error

	lastPerner string
	lastReason string
	lastCreate dto.CreateMutationRequest
}

func (m *mutationServiceMock) Create(_ context.Context, req dto.CreateMutationRequest) (*models.Mutation, error) {
	m.lastCreate = req
	return m.createResp, m.createErr
}

func (m *mutationServiceMock) List(_ context.Context) ([]models.MutationRecord, error) {
	return m.listResp, m.listErr
}

func (m *mutationServiceMock) GetDetail(_ context.Context, perner string) (*models.MutationDetail, error) {
	m.lastPerner = perner
	return m.detailResp, m.detailErr
}

func (m *mutationServiceMock) Update(_ context.Context, perner string, _ dto.UpdateMutationRequest) error {
	m.lastPerner = perner
	return m.updateErr
}

func (m *mutationServiceMock) Approve(_ context.Context, perner string) error {
	m.lastPerner = perner
	return m.approveErr
}

func (m *mutationServiceMock) Reject(_ context.Context, perner, reason string) error {
	m.lastPerner = perner
	m.lastReason = reason
	return m.rejectErr
}

func (m *mutationServiceMock) Delete(_ context.Context, perner string) error {
	m.lastPerner = perner
	return m.deleteErr
}

func postContext(t *testing.T, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestMutationHandlerCreate(t *testing.T) {
	mockSvc := &mutationServiceMock{
		createResp: &models.Mutation{Perner: "70001234", Status: models.MutationStatusPending},
	}
	handler := NewMutationHandler(mockSvc)

	c, w := postContext(t, "/mutations", dto.CreateMutationRequest{
		Perner:      "70001234",
		NewUnit:     "Witel Cirebon",
		NewSubUnit:  "Consumer Service",
		NewPosition: "Account Manager",
	})

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "70001234", mockSvc.lastCreate.Perner)
	assert.Contains(t, w.Body.String(), `"status":"PENDING"`)
}

func TestMutationHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMutationHandler(&mutationServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/mutations", bytes.NewBufferString(`{"perner":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutationHandlerCreateConflict(t *testing.T) {
	mockSvc := &mutationServiceMock{createErr: appErrors.ErrConflict}
	handler := NewMutationHandler(mockSvc)

	c, w := postContext(t, "/mutations", dto.CreateMutationRequest{
		Perner:      "70001234",
		NewUnit:     "Witel Cirebon",
		NewSubUnit:  "Consumer Service",
		NewPosition: "Account Manager",
	})

	handler.Create(c)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestMutationHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &mutationServiceMock{detailErr: appErrors.ErrNotFound}
	handler := NewMutationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/mutations/70009999", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "perner", Value: "70009999"}}

	handler.Get(c)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "70009999", mockSvc.lastPerner)
}

func TestMutationHandlerReject(t *testing.T) {
	mockSvc := &mutationServiceMock{}
	handler := NewMutationHandler(mockSvc)

	c, w := postContext(t, "/mutations/70001234/reject", dto.RejectMutationRequest{Reason: "headcount freeze"})
	c.Params = gin.Params{{Key: "perner", Value: "70001234"}}

	handler.Reject(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "70001234", mockSvc.lastPerner)
	assert.Equal(t, "headcount freeze", mockSvc.lastReason)
	assert.Contains(t, w.Body.String(), `"status":"REJECTED"`)
}

func TestMutationHandlerUpdateInvalidState(t *testing.T) {
	mockSvc := &mutationServiceMock{updateErr: appErrors.ErrInvalidState}
	handler := NewMutationHandler(mockSvc)

	position := "Officer"
	c, w := postContext(t, "/mutations/70001234", dto.UpdateMutationRequest{NewPosition: &position})
	c.Params = gin.Params{{Key: "perner", Value: "70001234"}}

	handler.Update(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestMutationHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &mutationServiceMock{}
	handler := NewMutationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/mutations/70001234", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "perner", Value: "70001234"}}

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "70001234", mockSvc.lastPerner)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
