package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"community_site/internal/config"
	"community_site/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			gdb, err := db.Connect(cmd.Context(), cfg.DSN)
			if err != nil {
				return err
			}
			return db.AutoMigrate(gdb)
		},
	}
}
