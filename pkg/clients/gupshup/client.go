package gupshup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/utils"
)

// DefaultTimeout bounds every message submission.
const DefaultTimeout = 30 * time.Second

// Template kinds, used as the metrics label.
const (
	KindCreation = "lead_creation"
	KindStatus   = "lead_status"
)

// Client defines the interface for sending WhatsApp template messages via Gupshup
type Client interface {
	NotifyCreated(ctx context.Context, name, loanType, applicationID, phone string) models.Outcome
	NotifyStatus(ctx context.Context, phone, name, status string) models.Outcome
}

// Template identifies an approved message template and its sender name.
type Template struct {
	ID      string
	SrcName string
}

// Config holds the gateway endpoint, credentials and templates.
type Config struct {
	APIURL   string
	APIKey   string
	Source   string
	Creation Template
	Status   Template
}

type clientImpl struct {
	cfg     Config
	http    *http.Client
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the Gupshup client.
type Option func(*clientImpl)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientImpl) {
		c.http = client
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

// NewClient creates a new Gupshup client
func NewClient(cfg Config, opts ...Option) Client {
	c := &clientImpl{
		cfg:  cfg,
		http: &http.Client{Timeout: DefaultTimeout},
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NotifyCreated confirms a new lead. The approved template takes the
// customer name and application id; loanType is not a template parameter.
func (c *clientImpl) NotifyCreated(ctx context.Context, name, loanType, applicationID, phone string) models.Outcome {
	c.log.Debug("sending lead creation confirmation", "loan_type", loanType, "application_id", applicationID)
	return c.send(ctx, KindCreation, "lead creation confirmation", c.cfg.Creation, phone, []string{name, applicationID})
}

// NotifyStatus tells the customer the current status of their lead.
func (c *clientImpl) NotifyStatus(ctx context.Context, phone, name, status string) models.Outcome {
	return c.send(ctx, KindStatus, "lead status update", c.cfg.Status, phone, []string{name, status})
}

type templatePayload struct {
	ID     string   `json:"id"`
	Params []string `json:"params"`
}

func (c *clientImpl) send(ctx context.Context, kind, label string, tpl Template, phone string, params []string) models.Outcome {
	outcome := c.post(ctx, label, tpl, phone, params)

	if c.metrics != nil {
		c.metrics.Notifications.WithLabelValues(kind, strconv.FormatBool(outcome.Success)).Inc()
	}
	if outcome.Success {
		c.log.Info("whatsapp message accepted", "kind", kind, "destination_hash", utils.HashString(phone))
	} else {
		c.log.Warn("whatsapp message failed", "kind", kind, "destination_hash", utils.HashString(phone), "message", outcome.Message)
	}
	return outcome
}

func (c *clientImpl) post(ctx context.Context, label string, tpl Template, phone string, params []string) models.Outcome {
	template, err := json.Marshal(templatePayload{ID: tpl.ID, Params: params})
	if err != nil {
		return models.FailedOutcome(fmt.Sprintf("Error sending %s: %v", label, err), err.Error())
	}

	form := url.Values{}
	form.Set("channel", "whatsapp")
	form.Set("source", c.cfg.Source)
	form.Set("destination", phone)
	form.Set("src.name", tpl.SrcName)
	form.Set("template", string(template))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return models.FailedOutcome(fmt.Sprintf("Error sending %s: %v", label, err), err.Error())
	}

	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apikey", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return models.FailedOutcome(fmt.Sprintf("Error sending %s: %v", label, err), err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.FailedOutcome(fmt.Sprintf("Error sending %s: %v", label, err), err.Error())
	}

	// Gupshup answers 202 when the message is queued for delivery.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return models.FailedOutcome(
			fmt.Sprintf("Failed to send %s. Status: %d", label, resp.StatusCode),
			string(body),
		)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		data = map[string]any{"response": string(body)}
	}
	return models.Outcome{
		Success: true,
		Message: fmt.Sprintf("%s sent successfully", capitalize(label)),
		Data:    data,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
