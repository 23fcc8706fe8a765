package main

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/tenancy/internal"
	"github.com/spf13/cobra"
)

func migrateCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(
		migrateSubCmd(load, "up", "Apply all pending migrations", internal.RunMigrations),
		migrateSubCmd(load, "status", "Show status of all migrations", internal.MigrationStatus),
		migrateSubCmd(load, "down", "Roll back the most recent migration", internal.RollbackMigration),
	)
	return cmd
}

func migrateSubCmd(load configLoader, use, short string, run func(*sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(db); err != nil {
				return err
			}
			if use != "status" {
				fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", use)
			}
			return nil
		},
	}
}
