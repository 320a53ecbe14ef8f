package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/services"
	"lead-gateway/pkg/store"
)

const (
	ServiceName = "Lead Creation & Status API"
	Version     = "1.0.0"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	leadService services.LeadService
	leads       store.LeadStore
	log         *slog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(leadService services.LeadService, leads store.LeadStore, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.Default()
	}
	return &Handlers{
		leadService: leadService,
		leads:       leads,
		log:         log,
	}
}

// Index describes the API
func (h *Handlers) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": ServiceName,
		"version": Version,
		"endpoints": gin.H{
			"create_lead": "POST /api/v1/lead/create",
			"get_status":  "POST /api/v1/lead/status",
			"list_leads":  "GET /api/v1/leads",
		},
	})
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// CreateLead registers a new lead with the loan API
func (h *Handlers) CreateLead(c *gin.Context) {
	var lead models.LeadRequest
	if !h.bind(c, &lead) {
		return
	}

	resp, err := h.leadService.CreateLead(c.Request.Context(), lead)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetLeadStatus reports the status of a lead by mobile number or application id
func (h *Handlers) GetLeadStatus(c *gin.Context) {
	var req models.LeadStatusRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.leadService.GetStatus(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLeads returns the most recently recorded leads
func (h *Handlers) ListLeads(c *gin.Context) {
	limit := store.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.respondError(c, apperrors.New(apperrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = store.NormalizeLimit(n)
	}

	leads := h.leads.List(c.Request.Context(), limit)
	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// bind decodes the JSON body into dst. Malformed JSON is a 400 and missing
// required fields are a 422.
func (h *Handlers) bind(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		h.respondError(c, apperrors.New(apperrors.CodeValidation,
			"Missing required fields: "+strings.Join(fields, ", ")))
		return false
	}

	h.log.Debug("invalid request body", "path", c.FullPath(), "error", err)
	h.respondError(c, apperrors.New(apperrors.CodeBadRequest, "Invalid JSON format"))
	return false
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := apperrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "path", c.FullPath(), "code", code, "error", err)
	}

	detail := err.Error()
	if code == apperrors.CodeInternal {
		detail = "Internal server error"
	}
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":   code,
			"detail": detail,
		},
	})
}
