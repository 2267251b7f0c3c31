package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregator_backend",
		Short: "User profile aggregator HTTP server",
		Long: `Serves GET /api/user, a random person enriched with country metadata,
exchange rates against USD and KZT and recent news. Upstreams without an
API key fall back to built-in static tables.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	cmd.Flags().Int("port", 3000, "Port to listen on (overrides PORT)")
	cmd.Flags().Bool("production", false, "Run in production mode (overrides IS_PRODUCTION)")
	_ = viper.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("IS_PRODUCTION", cmd.Flags().Lookup("production"))

	return cmd
}
