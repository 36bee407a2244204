package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"labforge/internal/config"
	"labforge/internal/logging"
	"labforge/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lab VM provisioning server",
	Long:  `Start the HTTP server that accepts provisioning requests. All settings are read from the config file and GCP_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logging.Logger().Fatal("Failed to load configuration", zap.Error(err))
		}

		logging.Logger().Info("Configuration loaded",
			zap.String("provider", cfg.Provider),
			zap.String("project", cfg.ProjectID),
			zap.String("zone", cfg.Zone),
			zap.String("network", cfg.Network),
			zap.String("addr", cfg.ListenAddr),
		)

		srv, err := server.NewServer(context.Background(), cfg)
		if err != nil {
			logging.Logger().Fatal("Failed to create server", zap.Error(err))
		}

		if err := srv.Start(); err != nil {
			logging.Logger().Fatal("Server failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
