package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"community_site/internal/config"
	"community_site/internal/db"
	"community_site/internal/seed"
)

func newSeedCmd() *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the first administrator and optional demo content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			gdb, err := db.Connect(cmd.Context(), cfg.DSN)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(gdb); err != nil {
				return err
			}
			return seed.FirstSetup(cmd.Context(), gdb, opts)
		},
	}
	cmd.Flags().StringVar(&opts.AdminEmail, "admin-email", os.Getenv("SEED_ADMIN_EMAIL"), "administrator email")
	cmd.Flags().StringVar(&opts.AdminPassword, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "administrator password")
	cmd.Flags().BoolVar(&opts.Sample, "sample", false, "also insert demo posts, events and gallery items")
	return cmd
}
