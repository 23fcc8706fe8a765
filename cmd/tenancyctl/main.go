// Command tenancyctl runs operator tasks against a tenancy database:
// migrations, overdue reports and sweeps, and test tokens for the API.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/dukerupert/tenancy/internal"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd(internal.NewConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configLoader returns the process configuration. Tests swap it out.
type configLoader func() (*internal.Config, error)

func newRootCmd(load configLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tenancyctl",
		Short:         "Tenancy operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		migrateCmd(load),
		invoicesCmd(load),
		tokenCmd(load),
	)
	return rootCmd
}

func openDB(cfg *internal.Config) (*sql.DB, error) {
	if cfg.DatabaseUrl == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return db, nil
}
