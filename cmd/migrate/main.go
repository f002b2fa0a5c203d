// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [-cmd=up|down|status] [-to=VERSION]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up, down or status")
	to := flag.Int64("to", -1, "target version for up/down (default: all pending for up, one step for down)")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		log.Fatalf("migrator: %v", err)
	}

	if err := run(ctx, provider, *cmd, *to); err != nil {
		log.Fatalf("%s: %v", *cmd, err)
	}
}

func run(ctx context.Context, p *goose.Provider, cmd string, to int64) error {
	switch cmd {
	case "up":
		var (
			results []*goose.MigrationResult
			err     error
		)
		if to >= 0 {
			results, err = p.UpTo(ctx, to)
		} else {
			results, err = p.Up(ctx)
		}
		if err != nil {
			return err
		}
		printResults(results)
	case "down":
		if to >= 0 {
			results, err := p.DownTo(ctx, to)
			if err != nil {
				return err
			}
			printResults(results)
			return nil
		}
		result, err := p.Down(ctx)
		if err != nil {
			return err
		}
		printResults([]*goose.MigrationResult{result})
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = "applied " + s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%5d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func printResults(results []*goose.MigrationResult) {
	if len(results) == 0 {
		fmt.Println("No migrations to apply.")
		return
	}
	for _, r := range results {
		fmt.Printf("%5d  %-40s %s (%s)\n", r.Source.Version, r.Source.Path, r.Direction, r.Duration.Round(time.Millisecond))
	}
}
