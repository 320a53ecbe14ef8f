package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/clients/basic"
	"lead-gateway/pkg/clients/gupshup"
	"lead-gateway/pkg/config"
	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/store"
	"lead-gateway/pkg/utils"
)

const (
	LeadCreatedMessage = "Lead Created Successfully."
	NotFoundStatus     = "Not Found"

	// Indian numbers are stored without the country code.
	phonePrefix = "+91"
)

// LeadService defines the interface for the lead creation and status flows
type LeadService interface {
	CreateLead(ctx context.Context, lead models.LeadRequest) (*models.LeadCreateResponse, error)
	GetStatus(ctx context.Context, req models.LeadStatusRequest) (*models.LeadStatusResponse, error)
}

type leadServiceImpl struct {
	loanClient   basic.Client
	leads        store.LeadStore
	notifier     gupshup.Client
	createPolicy string
	trackingURL  string
	log          *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

// Option configures the lead service.
type Option func(*leadServiceImpl)

// WithCreateNotifyPolicy sets how a failed creation notification is treated.
func WithCreateNotifyPolicy(policy string) Option {
	return func(s *leadServiceImpl) {
		s.createPolicy = policy
	}
}

// WithTrackingURL sets the manual tracking link returned for unknown leads.
func WithTrackingURL(u string) Option {
	return func(s *leadServiceImpl) {
		s.trackingURL = u
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *leadServiceImpl) {
		s.log = log
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *leadServiceImpl) {
		s.metrics = m
	}
}

// NewLeadService creates a new lead service
func NewLeadService(
	loanClient basic.Client,
	leads store.LeadStore,
	notifier gupshup.Client,
	opts ...Option,
) LeadService {
	s := &leadServiceImpl{
		loanClient:   loanClient,
		leads:        leads,
		notifier:     notifier,
		createPolicy: config.NotifyPolicyStrict,
		trackingURL:  "https://www.basichomeloan.com/track-your-application",
		log:          slog.Default(),
		tracer:       otel.Tracer("lead-gateway/pkg/services"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateLead validates the lead, registers it with the loan API, records it
// locally and sends the WhatsApp confirmation. Each step runs only if the
// previous one succeeded.
func (s *leadServiceImpl) CreateLead(ctx context.Context, lead models.LeadRequest) (*models.LeadCreateResponse, error) {
	ctx, span := s.tracer.Start(ctx, "services.CreateLead")
	defer span.End()

	phoneHash := utils.HashString(lead.MobileNumber)
	log := s.log.With("phone_hash", phoneHash)

	resp, err := s.createLead(ctx, log, lead)
	if err != nil {
		code := apperrors.CodeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.countCreate(string(code))
		log.Warn("lead creation failed", "code", code, "error", err)
		return nil, err
	}

	span.SetAttributes(attribute.String("lead.application_id", resp.BasicApplicationID))
	s.countCreate("created")
	log.Info("lead created", "application_id", resp.BasicApplicationID)
	return resp, nil
}

func (s *leadServiceImpl) createLead(ctx context.Context, log *slog.Logger, lead models.LeadRequest) (*models.LeadCreateResponse, error) {
	if err := utils.ValidateLead(lead); err != nil {
		return nil, err
	}

	result, err := s.loanClient.CreateLead(ctx, lead)
	if err != nil {
		return nil, err
	}
	applicationID := result.ApplicationID

	recordID, err := s.leads.Save(ctx, lead, result.Raw)
	if err != nil {
		return nil, &apperrors.Error{
			Code:    apperrors.CodePersistence,
			Message: fmt.Sprintf("Failed to save lead data to database for application %s: %v", applicationID, err),
			Err:     err,
		}
	}
	log.Debug("lead recorded", "record_id", recordID, "application_id", applicationID)

	outcome := s.notifier.NotifyCreated(ctx, lead.FullName(), lead.LoanType, applicationID, phonePrefix+lead.MobileNumber)
	switch Classify(outcome, s.createPolicy) {
	case FailedFatal:
		return nil, apperrors.New(apperrors.CodeNotification,
			"Failed to send WhatsApp confirmation: "+outcome.Message)
	case FailedIgnorable:
		log.Warn("lead creation confirmation not sent", "application_id", applicationID, "message", outcome.Message)
	}

	return &models.LeadCreateResponse{
		BasicApplicationID: applicationID,
		Message:            LeadCreatedMessage,
	}, nil
}

// GetStatus reports the loan API status for a lead. Unknown leads get the
// manual tracking hint instead of an error, and the WhatsApp update never
// affects the response.
func (s *leadServiceImpl) GetStatus(ctx context.Context, req models.LeadStatusRequest) (*models.LeadStatusResponse, error) {
	ctx, span := s.tracer.Start(ctx, "services.GetStatus")
	defer span.End()

	if err := utils.ValidateStatusRequest(req); err != nil {
		s.countStatus("invalid")
		return nil, err
	}

	result, found := s.loanClient.GetStatus(ctx, req.MobileNumber, req.BasicApplicationID)
	if !found {
		span.SetAttributes(attribute.Bool("lead.found", false))
		s.countStatus("not_found")
		return &models.LeadStatusResponse{
			Status:  NotFoundStatus,
			Message: "We couldn't find your details. You can track your application manually at: " + s.trackingURL,
		}, nil
	}

	span.SetAttributes(attribute.Bool("lead.found", true), attribute.String("lead.status", result.Status))
	s.countStatus("found")

	if !s.leads.UpdateStatus(ctx, result.ApplicationID, result.Status) {
		s.log.Debug("local lead status not updated", "application_id", result.ApplicationID)
	}
	s.notifyStatus(ctx, req, result)

	return &models.LeadStatusResponse{
		Status:  result.Status,
		Message: "Your lead status is: " + result.Status,
	}, nil
}

// notifyStatus messages the customer about their status. The phone comes
// from the request or, failing that, the record the application id resolved
// to; the display name always comes from the latest record for that phone.
func (s *leadServiceImpl) notifyStatus(ctx context.Context, req models.LeadStatusRequest, result *basic.StatusResult) {
	mobile := req.MobileNumber
	if mobile == "" && req.BasicApplicationID != "" {
		if record := s.leads.FindByApplicationID(ctx, req.BasicApplicationID); record != nil {
			mobile = record.MobileNumber
		}
	}
	if mobile == "" {
		return
	}

	log := s.log.With("phone_hash", utils.HashString(mobile))
	record := s.leads.FindByMobile(ctx, mobile)
	if record == nil {
		log.Info("no local record for status notification")
		return
	}

	outcome := s.notifier.NotifyStatus(ctx, phonePrefix+mobile, record.FullName(), result.Status)
	if d := Classify(outcome, config.NotifyPolicyBestEffort); d != Succeeded {
		log.Warn("lead status update not sent", "disposition", d.String(), "message", outcome.Message)
	}
}

func (s *leadServiceImpl) countCreate(outcome string) {
	if s.metrics != nil {
		s.metrics.LeadsCreated.WithLabelValues(outcome).Inc()
	}
}

func (s *leadServiceImpl) countStatus(result string) {
	if s.metrics != nil {
		s.metrics.StatusLookups.WithLabelValues(result).Inc()
	}
}
