package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Notification policies for the lead creation flow.
const (
	NotifyPolicyStrict     = "strict"
	NotifyPolicyBestEffort = "best_effort"
)

// LeadStoreMemory opts into the in-process lead store. Leads kept there do
// not survive a restart.
const LeadStoreMemory = "memory"

const (
	defaultGupshupAPIURL = "https://api.gupshup.io/wa/api/v1/msg"
	defaultTrackingURL   = "https://www.basichomeloan.com/track-your-application"
)

// Config holds all application configuration values
type Config struct {
	Host  string
	Port  int
	Debug bool

	BasicAPIURL string
	BasicUserID string
	BasicAPIKey string

	DatabaseURL string
	SupabaseURL string
	SupabaseKey string
	LeadStore   string

	GupshupAPIURL             string
	GupshupAPIKey             string
	GupshupSource             string
	GupshupCreationTemplateID string
	GupshupStatusTemplateID   string
	GupshupCreationSrcName    string
	GupshupStatusSrcName      string

	NotifyCreatePolicy string
	TrackingURL        string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Host:  envOr("HOST", "0.0.0.0"),
		Port:  envInt("PORT", 8000),
		Debug: strings.EqualFold(envOr("DEBUG", "true"), "true"),

		BasicAPIURL: strings.TrimRight(os.Getenv("BASIC_APPLICATION_API_URL"), "/"),
		BasicUserID: os.Getenv("BASIC_APPLICATION_USER_ID"),
		BasicAPIKey: os.Getenv("BASIC_APPLICATION_API_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SupabaseURL: strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseKey: os.Getenv("SUPABASE_KEY"),
		LeadStore:   strings.ToLower(strings.TrimSpace(os.Getenv("LEAD_STORE"))),

		GupshupAPIURL:             envOr("GUPSHUP_API_URL", defaultGupshupAPIURL),
		GupshupAPIKey:             os.Getenv("GUPSHUP_API_KEY"),
		GupshupSource:             os.Getenv("GUPSHUP_SOURCE"),
		GupshupCreationTemplateID: os.Getenv("GUPSHUP_LEAD_CREATION_TEMPLATE_ID"),
		GupshupStatusTemplateID:   os.Getenv("GUPSHUP_LEAD_STATUS_TEMPLATE_ID"),
		GupshupCreationSrcName:    os.Getenv("GUPSHUP_LEAD_CREATION_SRC_NAME"),
		GupshupStatusSrcName:      os.Getenv("GUPSHUP_LEAD_STATUS_SRC_NAME"),

		NotifyCreatePolicy: strings.ToLower(envOr("NOTIFY_CREATE_POLICY", NotifyPolicyStrict)),
		TrackingURL:        envOr("TRACKING_URL", defaultTrackingURL),
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// HasDatastore reports whether a Postgres or Supabase datastore is configured.
func (c *Config) HasDatastore() bool {
	return c.DatabaseURL != "" || (c.SupabaseURL != "" && c.SupabaseKey != "")
}

// Validate reports settings that are missing or malformed. Loan API
// credentials are not checked here: signing reports them per request.
func (c *Config) Validate() error {
	var errs []error
	if c.BasicAPIURL == "" {
		errs = append(errs, errors.New("BASIC_APPLICATION_API_URL is required"))
	}
	if !c.HasDatastore() && c.LeadStore != LeadStoreMemory {
		errs = append(errs, errors.New("DATABASE_URL or SUPABASE_URL and SUPABASE_KEY are required (or LEAD_STORE=memory)"))
	}
	switch c.NotifyCreatePolicy {
	case NotifyPolicyStrict, NotifyPolicyBestEffort:
	default:
		errs = append(errs, errors.New("NOTIFY_CREATE_POLICY must be strict or best_effort"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, errors.New("PORT must be between 1 and 65535"))
	}
	return errors.Join(errs...)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}
