// Command seed is the identity-table seeding CLI.
//
// Usage:
//
//	bdl-seed people
//	bdl-seed teams --dir ./data
//	bdl-seed venues --dir ./data
//	bdl-seed hof --dir ./data
//	bdl-seed all --dir ./data
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/db"
	"github.com/timothyf/baseball-data-lab-web/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "bdl-seed",
		Short: "Baseball Data Lab identity-table seeding CLI",
	}

	root.AddCommand(peopleCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(venuesCmd())
	root.AddCommand(hofCmd())
	root.AddCommand(allCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func peopleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "Seed player identities from the Chadwick register",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result := seed.SeedPeople(ctx, pool.Pool, cfg, logger)
				report("People seed finished", start, result)
				return nil
			})
		},
	}
}

func teamsCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Seed team identities from teams.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result := seed.SeedTeams(ctx, pool.Pool, dir, logger)
				report("Teams seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./data", "Directory holding the reference CSVs")
	return cmd
}

func venuesCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "Seed ballparks from venues.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result := seed.SeedVenues(ctx, pool.Pool, dir, logger)
				report("Venues seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./data", "Directory holding the reference CSVs")
	return cmd
}

func hofCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "hof",
		Short: "Seed hall of fame votes from hall_of_fame.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				result := seed.SeedHallOfFame(ctx, pool.Pool, dir, logger)
				report("Hall of fame seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./data", "Directory holding the reference CSVs")
	return cmd
}

func allCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Seed every identity table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				var result seed.Result
				result.Add(seed.SeedTeams(ctx, pool.Pool, dir, logger))
				result.Add(seed.SeedVenues(ctx, pool.Pool, dir, logger))
				result.Add(seed.SeedHallOfFame(ctx, pool.Pool, dir, logger))
				result.Add(seed.SeedPeople(ctx, pool.Pool, cfg, logger))
				report("Full seed finished", start, result)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "./data", "Directory holding the reference CSVs")
	return cmd
}

func report(msg string, start time.Time, result seed.Result) {
	logger.Info(msg,
		"duration", time.Since(start).Round(time.Second),
		"summary", result.Summary())
	for _, e := range result.Errors {
		logger.Error("seed error", "error", e)
	}
}

// runSeed handles config loading, DB connection, and context cancellation.
func runSeed(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
