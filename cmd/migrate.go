// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/storefront-service/migrations"
)

var errPendingMigrations = errors.New("migrations are pending")

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the storefront schema. Without a subcommand every pending migration is applied.`,
	Args:  cobra.NoArgs,
	RunE:  withProvider(migrateUp),
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE:  withProvider(migrateUp),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [version]",
	Short: "Roll back the last migration, or every migration above version",
	Args:  cobra.MaximumNArgs(1),
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, args []string, out io.Writer, format string) error {
		if len(args) == 0 {
			r, err := p.Down(ctx)
			if err != nil {
				return err
			}
			return printResults(out, format, []*goose.MigrationResult{r})
		}

		version, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || version < 0 {
			return fmt.Errorf("invalid version number: %q", args[0])
		}

		results, err := p.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return printResults(out, format, results)
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and when they were applied",
	Args:  cobra.NoArgs,
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, _ []string, out io.Writer, format string) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}

		if format == "json" {
			return json.NewEncoder(out).Encode(statuses)
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "APPLIED AT\tMIGRATION")
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%s\n", applied, s.Source.Path)
		}
		return w.Flush()
	}),
}

var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Exit non zero when migrations are pending",
	Args:  cobra.NoArgs,
	RunE: withProvider(func(ctx context.Context, p *goose.Provider, _ []string, out io.Writer, format string) error {
		pending, err := p.HasPending(ctx)
		if err != nil {
			return fmt.Errorf("failed to check pending migrations: %w", err)
		}

		current, err := p.GetDBVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		status := "ok"
		if pending {
			status = "pending"
		}

		if format == "json" {
			if err := json.NewEncoder(out).Encode(map[string]any{"status": status, "version": current}); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "schema version %d, %s\n", current, status)
		}

		if pending {
			return errPendingMigrations
		}
		return nil
	}),
}

type providerFunc func(ctx context.Context, p *goose.Provider, args []string, out io.Writer, format string) error

// withProvider opens the database named by --dsn and hands a goose provider
// over the embedded migrations to fn.
func withProvider(fn providerFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")

		db, err := openDB(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		var opts []goose.ProviderOption
		if format == "json" {
			opts = append(opts, goose.WithLogger(goose.NopLogger()))
		}

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
		if err != nil {
			return fmt.Errorf("failed to create goose provider: %w", err)
		}

		cmd.SilenceUsage = true
		return fn(cmd.Context(), provider, args, cmd.OutOrStdout(), format)
	}
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("no DSN given, set --dsn or $DSN")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

func migrateUp(ctx context.Context, p *goose.Provider, _ []string, out io.Writer, format string) error {
	results, err := p.Up(ctx)
	if err != nil {
		return err
	}
	return printResults(out, format, results)
}

func printResults(out io.Writer, format string, results []*goose.MigrationResult) error {
	if format == "json" {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "no migrations to run")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}
	return nil
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}
