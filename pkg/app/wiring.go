// Package app builds the gateway's object graph from configuration.
package app

import (
	"context"
	"log/slog"

	"lead-gateway/pkg/apperrors"
	"lead-gateway/pkg/clients/basic"
	"lead-gateway/pkg/clients/gupshup"
	"lead-gateway/pkg/clients/supabase"
	"lead-gateway/pkg/config"
	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/services"
	"lead-gateway/pkg/store"
)

// OpenLeadStore picks the datastore: Postgres when DATABASE_URL is set,
// otherwise Supabase, otherwise an in-memory store when LEAD_STORE=memory.
// The returned func releases the store.
func OpenLeadStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.LeadStore, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, apperrors.Wrap(err, apperrors.CodeConfiguration, "error connecting to database")
		}
		log.Info("using postgres lead store")
		return pg, pg.Close, nil

	case cfg.SupabaseURL != "" && cfg.SupabaseKey != "":
		log.Info("using supabase lead store", "url", cfg.SupabaseURL)
		return supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, supabase.WithLogger(log)), func() {}, nil

	case cfg.LeadStore == config.LeadStoreMemory:
		log.Warn("no datastore configured, leads are kept in memory only")
		return store.NewMemoryStore(), func() {}, nil

	default:
		return nil, nil, apperrors.New(apperrors.CodeConfiguration,
			"DATABASE_URL or SUPABASE_URL and SUPABASE_KEY must be configured")
	}
}

// NewSigner builds the loan API signer from configuration.
func NewSigner(cfg *config.Config) *basic.Signer {
	return basic.NewSigner(cfg.BasicUserID, cfg.BasicAPIKey)
}

// NewLeadService wires the loan API client and notifier around leads.
func NewLeadService(cfg *config.Config, leads store.LeadStore, m *metrics.Metrics, log *slog.Logger) services.LeadService {
	loanClient := basic.NewClient(cfg.BasicAPIURL, NewSigner(cfg), leads,
		basic.WithLogger(log),
		basic.WithMetrics(m),
	)

	notifier := gupshup.NewClient(gupshup.Config{
		APIURL: cfg.GupshupAPIURL,
		APIKey: cfg.GupshupAPIKey,
		Source: cfg.GupshupSource,
		Creation: gupshup.Template{
			ID:      cfg.GupshupCreationTemplateID,
			SrcName: cfg.GupshupCreationSrcName,
		},
		Status: gupshup.Template{
			ID:      cfg.GupshupStatusTemplateID,
			SrcName: cfg.GupshupStatusSrcName,
		},
	},
		gupshup.WithLogger(log),
		gupshup.WithMetrics(m),
	)

	return services.NewLeadService(loanClient, leads, notifier,
		services.WithCreateNotifyPolicy(cfg.NotifyCreatePolicy),
		services.WithTrackingURL(cfg.TrackingURL),
		services.WithLogger(log),
		services.WithMetrics(m),
	)
}
