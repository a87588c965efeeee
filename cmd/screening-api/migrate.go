package main

import (
	"github.com/spf13/cobra"

	"github.com/tbcare/screening-api/pkg/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all up migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error { return m.Up() })
	},
}

var migrateDownSteps int

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error { return m.Down(migrateDownSteps) })
	},
}

func init() {
	migrateDownCmd.Flags().IntVarP(&migrateDownSteps, "steps", "n", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withMigrator(run func(*database.Migrator) error) (err error) {
	cfg, logr, err := bootstrap()
	if err != nil {
		return err
	}
	defer logr.Sync() //nolint:errcheck

	migrator, err := database.NewMigrator(cfg.Database, cfg.MigrationsPath, logr)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrator.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return run(migrator)
}
