package basic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/utils"
)

const (
	createLeadPath  = "/api/v1/NewApplication/FullfilmentByBasic"
	getActivityPath = "/api/v1/Application/Activity/GetActivity/%s/%s"

	// statusFallback is reported when a 200 response carries no latestStatus.
	statusFallback = "Not found"
)

// Client defines the interface for interacting with the Basic loan origination API
type Client interface {
	CreateLead(ctx context.Context, lead models.LeadRequest) (*CreateResult, error)
	GetStatus(ctx context.Context, mobile, applicationID string) (*StatusResult, bool)
}

// LeadLookup resolves a missing identifier from locally stored leads.
type LeadLookup interface {
	FindByMobile(ctx context.Context, mobile string) *models.LeadRecord
	FindByApplicationID(ctx context.Context, applicationID string) *models.LeadRecord
}

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CreateResult is a successfully created remote lead.
type CreateResult struct {
	ApplicationID string
	Raw           map[string]any
}

// StatusResult is a lead status reported by the loan API.
type StatusResult struct {
	ApplicationID string
	MobileNumber  string
	Status        string
	Raw           map[string]any
}

type clientImpl struct {
	baseURL string
	signer  *Signer
	leads   LeadLookup
	http    HTTPDoer
	log     *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures the loan API client.
type Option func(*clientImpl)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *clientImpl) {
		c.http = doer
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *clientImpl) {
		c.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *clientImpl) {
		c.metrics = m
	}
}

// NewClient creates a new loan API client. Calls carry no timeout.
func NewClient(baseURL string, signer *Signer, leads LeadLookup, opts ...Option) Client {
	c := &clientImpl{
		baseURL: baseURL,
		signer:  signer,
		leads:   leads,
		http:    &http.Client{},
		log:     slog.Default(),
		tracer:  otel.Tracer("lead-gateway/pkg/clients/basic"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *clientImpl) CreateLead(ctx context.Context, lead models.LeadRequest) (*CreateResult, error) {
	ctx, span := c.tracer.Start(ctx, "basic.CreateLead")
	defer span.End()

	result, err := c.createLead(ctx, lead)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("basic.application_id", result.ApplicationID))
	return result, nil
}

func (c *clientImpl) createLead(ctx context.Context, lead models.LeadRequest) (*CreateResult, error) {
	if c.baseURL == "" {
		return nil, apperrors.New(apperrors.CodeConfiguration, "Basic Application API URL not configured")
	}

	body, err := json.Marshal(buildPayload(lead))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "error creating payload")
	}

	endpoint := c.baseURL + createLeadPath
	status, respBody, err := c.do(ctx, http.MethodPost, endpoint, body)
	c.observe("create", status, err)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		return nil, apperrors.New(apperrors.CodeRemote,
			fmt.Sprintf("Failed to create lead in Basic Application API: %s", string(respBody)))
	}

	var raw map[string]any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeRemote, "error parsing Basic Application API response")
	}

	applicationID := models.RemoteApplicationID(raw)
	if applicationID == "" {
		return nil, apperrors.New(apperrors.CodeRemote, "Failed to generate Basic Application ID")
	}

	c.log.Info("created lead in Basic Application API",
		"application_id", applicationID,
		"mobile_hash", utils.HashString(lead.MobileNumber),
	)
	return &CreateResult{ApplicationID: applicationID, Raw: raw}, nil
}

// GetStatus resolves whichever identifier is missing from stored leads and
// queries the activity endpoint. Every failure is reported as not found.
func (c *clientImpl) GetStatus(ctx context.Context, mobile, applicationID string) (*StatusResult, bool) {
	ctx, span := c.tracer.Start(ctx, "basic.GetStatus")
	defer span.End()

	mobile, applicationID, ok := c.resolve(ctx, mobile, applicationID)
	if !ok {
		span.SetAttributes(attribute.Bool("basic.resolved", false))
		return nil, false
	}
	span.SetAttributes(attribute.String("basic.application_id", applicationID))

	result, err := c.fetchStatus(ctx, mobile, applicationID)
	if err != nil {
		span.RecordError(err)
		c.log.Warn("lead status lookup failed",
			"application_id", applicationID,
			"mobile_hash", utils.HashString(mobile),
			"error", err,
		)
		return nil, false
	}
	return result, true
}

// resolve runs the identifier fallback chain: both given, mobile only,
// application id only, neither.
func (c *clientImpl) resolve(ctx context.Context, mobile, applicationID string) (string, string, bool) {
	switch {
	case mobile != "" && applicationID != "":
		return mobile, applicationID, true
	case mobile != "":
		rec := c.leads.FindByMobile(ctx, mobile)
		if rec == nil || rec.BasicApplicationID == "" {
			return "", "", false
		}
		return mobile, rec.BasicApplicationID, true
	case applicationID != "":
		rec := c.leads.FindByApplicationID(ctx, applicationID)
		if rec == nil || rec.MobileNumber == "" {
			return "", "", false
		}
		return rec.MobileNumber, applicationID, true
	default:
		return "", "", false
	}
}

func (c *clientImpl) fetchStatus(ctx context.Context, mobile, applicationID string) (*StatusResult, error) {
	if c.baseURL == "" {
		return nil, apperrors.New(apperrors.CodeConfiguration, "Basic Application API URL not configured")
	}

	endpoint := c.baseURL + fmt.Sprintf(getActivityPath, url.PathEscape(applicationID), url.PathEscape(mobile))
	status, respBody, err := c.do(ctx, http.MethodGet, endpoint, nil)
	c.observe("activity", status, err)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, apperrors.New(apperrors.CodeRemote, fmt.Sprintf("activity endpoint returned %d", status))
	}

	var raw map[string]any
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeRemote, "error parsing activity response")
	}

	// A null latestStatus reads as missing.
	latest := statusFallback
	if v := models.Lookup(raw, "result", "latestStatus"); v != nil {
		latest = models.LookupString(raw, "result", "latestStatus")
	}

	return &StatusResult{
		ApplicationID: applicationID,
		MobileNumber:  mobile,
		Status:        latest,
		Raw:           raw,
	}, nil
}

// do signs and issues one request. It returns the status code and body; a
// non-nil error means no usable response was received.
func (c *clientImpl) do(ctx context.Context, method, endpoint string, body []byte) (int, []byte, error) {
	headers, err := c.signer.Sign(endpoint, method, body)
	if err != nil {
		return 0, nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, apperrors.Wrap(err, apperrors.CodeInternal, "error creating request")
	}
	headers.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, apperrors.Wrap(err, apperrors.CodeRemote,
			fmt.Sprintf("Error calling Basic Application API: %v", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, apperrors.Wrap(err, apperrors.CodeRemote, "error reading response")
	}
	return resp.StatusCode, respBody, nil
}

func (c *clientImpl) observe(endpoint string, status int, err error) {
	if c.metrics == nil {
		return
	}
	label := strconv.Itoa(status)
	if err != nil && status == 0 {
		label = string(apperrors.CodeOf(err))
	}
	c.metrics.RemoteCalls.WithLabelValues(endpoint, label).Inc()
}
