package supabase

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
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/models"
	"lead-gateway/pkg/store"
	"lead-gateway/pkg/utils"
)

const table = "leads"

type clientImpl struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
	now     func() time.Time
}

// Option configures the Supabase client.
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

// NewClient creates a lead store backed by the Supabase REST API
func NewClient(baseURL, apiKey string, opts ...Option) store.LeadStore {
	c := &clientImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// leadRow is the insert shape. The table assigns id.
type leadRow struct {
	BasicApplicationID string          `json:"basic_application_id"`
	CustomerID         *string         `json:"customer_id"`
	RelationID         *string         `json:"relation_id"`
	FirstName          string          `json:"first_name"`
	LastName           string          `json:"last_name"`
	MobileNumber       string          `json:"mobile_number"`
	Email              string          `json:"email"`
	PANNumber          string          `json:"pan_number"`
	LoanType           string          `json:"loan_type"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	LoanTenure         int             `json:"loan_tenure"`
	Gender             string          `json:"gender"`
	DOB                *string         `json:"dob"`
	PinCode            string          `json:"pin_code"`
	BasicAPIResponse   json.RawMessage `json:"basic_api_response"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

func (c *clientImpl) Save(ctx context.Context, lead models.LeadRequest, remote map[string]any) (string, error) {
	record, err := store.BuildRecord(lead, remote, c.now())
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(leadRow{
		BasicApplicationID: record.BasicApplicationID,
		CustomerID:         record.CustomerID,
		RelationID:         record.RelationID,
		FirstName:          record.FirstName,
		LastName:           record.LastName,
		MobileNumber:       record.MobileNumber,
		Email:              record.Email,
		PANNumber:          record.PANNumber,
		LoanType:           record.LoanType,
		LoanAmount:         record.LoanAmount,
		LoanTenure:         record.LoanTenure,
		Gender:             record.Gender,
		DOB:                record.DOB,
		PinCode:            record.PinCode,
		BasicAPIResponse:   record.BasicAPIResponse,
		Status:             record.Status,
		CreatedAt:          record.CreatedAt,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodePersistence, "error creating payload")
	}

	rows, err := c.do(ctx, http.MethodPost, c.tableURL(nil), payload)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodePersistence,
			fmt.Sprintf("Failed to save lead %s to database", record.BasicApplicationID))
	}
	if len(rows) == 0 {
		return "", apperrors.New(apperrors.CodePersistence, "Failed to save lead data to database")
	}

	c.log.Info("lead saved", "id", rows[0].ID, "application_id", record.BasicApplicationID)
	return rows[0].ID, nil
}

func (c *clientImpl) FindByMobile(ctx context.Context, mobile string) *models.LeadRecord {
	return c.findOne(ctx, "mobile_number", mobile)
}

func (c *clientImpl) FindByApplicationID(ctx context.Context, applicationID string) *models.LeadRecord {
	return c.findOne(ctx, "basic_application_id", applicationID)
}

func (c *clientImpl) findOne(ctx context.Context, column, value string) *models.LeadRecord {
	query := url.Values{}
	query.Set("select", "*")
	query.Set(column, "eq."+value)
	query.Set("order", "created_at.desc")
	query.Set("limit", "1")

	rows, err := c.do(ctx, http.MethodGet, c.tableURL(query), nil)
	if err != nil {
		key := value
		if column == "mobile_number" {
			key = utils.HashString(value)
		}
		c.log.Error("lead lookup failed", "field", column, "key", key, "error", err)
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func (c *clientImpl) UpdateStatus(ctx context.Context, applicationID, status string) bool {
	query := url.Values{}
	query.Set("basic_application_id", "eq."+applicationID)

	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return false
	}

	rows, err := c.do(ctx, http.MethodPatch, c.tableURL(query), payload)
	if err != nil {
		c.log.Error("lead status update failed", "application_id", applicationID, "error", err)
		return false
	}
	return len(rows) > 0
}

func (c *clientImpl) List(ctx context.Context, limit int) []models.LeadRecord {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")
	query.Set("limit", strconv.Itoa(store.NormalizeLimit(limit)))

	rows, err := c.do(ctx, http.MethodGet, c.tableURL(query), nil)
	if err != nil {
		c.log.Error("lead list failed", "error", err)
		return []models.LeadRecord{}
	}
	if rows == nil {
		return []models.LeadRecord{}
	}
	return rows
}

func (c *clientImpl) tableURL(query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends a PostgREST request and decodes the returned rows.
func (c *clientImpl) do(ctx context.Context, method, u string, payload []byte) ([]models.LeadRecord, error) {
	if c.baseURL == "" || c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeConfiguration, "SUPABASE_URL and SUPABASE_KEY must be configured")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Supabase: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("error from Supabase API (%d): %s", resp.StatusCode, string(respBody))
	}

	rows := []models.LeadRecord{}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return rows, nil
	}
	if err := json.Unmarshal(respBody, &rows); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	return rows, nil
}
