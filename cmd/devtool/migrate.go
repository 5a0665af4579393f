package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/osse101/PackOpener_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("subcommand required: up, down, status")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, dbURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := database.NewMigrator(pool, getEnv("MIGRATIONS_DIR", defaultMigrationsDir))
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()

	switch args[0] {
	case "up":
		n, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Applied %d migration(s)", n)
	case "down":
		if err := migrator.Down(ctx); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		states, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		printMigrationStatus(states)
	default:
		return fmt.Errorf("unknown migrate subcommand %q", args[0])
	}
	return nil
}

func printMigrationStatus(states []database.MigrationState) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED\tAPPLIED AT\tFILE")
	for _, s := range states {
		appliedAt := "-"
		if s.Applied {
			appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "%d\t%t\t%s\t%s\n", s.Version, s.Applied, appliedAt, s.Path)
	}
	_ = w.Flush()
}
