package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/logger"
	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubService struct {
	createResp *models.LeadCreateResponse
	createErr  error
	statusResp *models.LeadStatusResponse
	statusErr  error

	gotLead   models.LeadRequest
	gotStatus models.LeadStatusRequest
}

func (s *stubService) CreateLead(_ context.Context, lead models.LeadRequest) (*models.LeadCreateResponse, error) {
	s.gotLead = lead
	return s.createResp, s.createErr
}

func (s *stubService) GetStatus(_ context.Context, req models.LeadStatusRequest) (*models.LeadStatusResponse, error) {
	s.gotStatus = req
	return s.statusResp, s.statusErr
}

func newTestRouter(svc *stubService, leads store.LeadStore) *gin.Engine {
	reg := prometheus.NewRegistry()
	handlers := NewHandlers(svc, leads, logger.Discard())
	return NewRouter(handlers, metrics.New(reg), reg, logger.Discard())
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const leadJSON = `{
	"loan_type": "home_loan",
	"loan_amount": 2500000,
	"loan_tenure": 240,
	"pan_number": "ABCDE1234F",
	"first_name": "Asha",
	"last_name": "Verma",
	"mobile_number": "9876543210",
	"email": "asha@example.com",
	"dob": "15/03/1990",
	"pin_code": "122001"
}`

func TestIndexAndHealth(t *testing.T) {
	router := newTestRouter(&stubService{}, store.NewMemoryStore())

	w := do(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "POST /api/v1/lead/create")

	w = do(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"`+ServiceName+`"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(&stubService{}, store.NewMemoryStore())
	do(router, http.MethodGet, "/health", "")

	w := do(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "leadgw_http_requests_total")
}

func TestCreateLead(t *testing.T) {
	svc := &stubService{createResp: &models.LeadCreateResponse{BasicApplicationID: "BA-1", Message: "Lead Created Successfully."}}
	router := newTestRouter(svc, store.NewMemoryStore())

	w := do(router, http.MethodPost, "/api/v1/lead/create", leadJSON)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"basic_application_id":"BA-1","message":"Lead Created Successfully."}`, w.Body.String())
	assert.Equal(t, "9876543210", svc.gotLead.MobileNumber)
	assert.Equal(t, "2500000", svc.gotLead.LoanAmount.String())
}

func TestCreateLeadMalformedJSON(t *testing.T) {
	router := newTestRouter(&stubService{}, store.NewMemoryStore())

	w := do(router, http.MethodPost, "/api/v1/lead/create", `{"loan_type": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(apperrors.CodeBadRequest), decodeError(t, w).Error.Code)
}

func TestCreateLeadMissingFields(t *testing.T) {
	router := newTestRouter(&stubService{}, store.NewMemoryStore())

	w := do(router, http.MethodPost, "/api/v1/lead/create", `{"loan_type":"home_loan"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, string(apperrors.CodeValidation), body.Error.Code)
	assert.Contains(t, body.Error.Detail, "PANNumber")
}

func TestCreateLeadErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.New(apperrors.CodeValidation, "Invalid loan type"), http.StatusUnprocessableEntity},
		{"remote", apperrors.New(apperrors.CodeRemote, "Failed to create lead in Basic Application API: 500"), http.StatusBadGateway},
		{"persistence", apperrors.New(apperrors.CodePersistence, "Failed to save lead data to database"), http.StatusInternalServerError},
		{"notification", apperrors.New(apperrors.CodeNotification, "Failed to send WhatsApp confirmation"), http.StatusInternalServerError},
		{"configuration", apperrors.New(apperrors.CodeConfiguration, "missing credentials"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{createErr: tt.err}, store.NewMemoryStore())

			w := do(router, http.MethodPost, "/api/v1/lead/create", leadJSON)

			assert.Equal(t, tt.status, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, string(apperrors.CodeOf(tt.err)), body.Error.Code)
			assert.Equal(t, tt.err.Error(), body.Error.Detail)
		})
	}
}

func TestGetLeadStatus(t *testing.T) {
	svc := &stubService{statusResp: &models.LeadStatusResponse{Status: "Sanctioned", Message: "Your lead status is: Sanctioned"}}
	router := newTestRouter(svc, store.NewMemoryStore())

	w := do(router, http.MethodPost, "/api/v1/lead/status", `{"basic_application_id":"BA-1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Sanctioned","message":"Your lead status is: Sanctioned"}`, w.Body.String())
	assert.Equal(t, "BA-1", svc.gotStatus.BasicApplicationID)
	assert.Empty(t, svc.gotStatus.MobileNumber)
}

func TestGetLeadStatusWithoutIdentifiers(t *testing.T) {
	svc := &stubService{statusErr: apperrors.New(apperrors.CodeBadRequest,
		"Either mobile number or basic application ID must be provided")}
	router := newTestRouter(svc, store.NewMemoryStore())

	w := do(router, http.MethodPost, "/api/v1/lead/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLeads(t *testing.T) {
	leads := store.NewMemoryStore()
	for _, id := range []string{"BA-1", "BA-2", "BA-3"} {
		_, err := leads.Save(context.Background(), models.LeadRequest{MobileNumber: "9876543210"},
			map[string]any{"result": map[string]any{"basicAppId": id}})
		require.NoError(t, err)
	}
	router := newTestRouter(&stubService{}, leads)

	w := do(router, http.MethodGet, "/api/v1/leads?limit=2", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Leads []models.LeadRecord `json:"leads"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "BA-3", body.Leads[0].BasicApplicationID)

	w = do(router, http.MethodGet, "/api/v1/leads?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/v1/leads", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(&stubService{}, store.NewMemoryStore())
	w := do(router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
