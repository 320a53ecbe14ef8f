package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"lead-gateway/pkg/app"
	"lead-gateway/pkg/config"
	"lead-gateway/pkg/logger"
	"lead-gateway/pkg/store"
)

func leadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Inspect recorded leads",
	}
	cmd.AddCommand(leadsListCmd())
	return cmd
}

func leadsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the most recent leads as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			leads, closeStore, err := app.OpenLeadStore(cmd.Context(), cfg, logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Debug))
			if err != nil {
				return err
			}
			defer closeStore()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(leads.List(cmd.Context(), limit))
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", store.DefaultListLimit, "maximum number of leads")
	return cmd
}
