package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tbcare/screening-api/internal/service"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Manage stored export files",
}

var pruneOlderThan time.Duration

var exportsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete exports older than the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logr, err := bootstrap()
		if err != nil {
			return err
		}
		defer logr.Sync() //nolint:errcheck

		backend, err := newExportBackend(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		retention := pruneOlderThan
		if retention <= 0 {
			retention = cfg.Exports.SignedURLTTL
		}

		svc := service.NewExportService(nil, nil, nil, backend, nil, nil, logr)
		removed, err := svc.Prune(cmd.Context(), retention)
		if err != nil {
			return err
		}
		logr.Info("prune finished", zap.Int("removed", removed), zap.Duration("older_than", retention))
		return nil
	},
}

func init() {
	exportsPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0, "retention period (defaults to EXPORTS_SIGNED_URL_TTL)")
	exportsCmd.AddCommand(exportsPruneCmd)
	rootCmd.AddCommand(exportsCmd)
}
