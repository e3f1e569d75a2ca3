package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timothyf/baseball-data-lab-web/internal/config"
)

// SeedTeams rebuilds the team identity table from teams.csv in dir.
func SeedTeams(ctx context.Context, pool *pgxpool.Pool, dir string, logger *slog.Logger) Result {
	var result Result

	t, err := openCSV(dir, "teams.csv")
	if err != nil {
		result.AddError(err.Error())
		return result
	}
	if _, err := pool.Exec(ctx, "TRUNCATE "+config.TeamIDInfosTable); err != nil {
		result.AddErrorf("truncate %s: %v", config.TeamIDInfosTable, err)
		return result
	}

	columns := []string{
		"mlbam_team_id", "abbrev", "full_name", "location_name", "team_name",
		"league", "fg_team_id", "mlbam_league_id", "mlbam_division_id",
		"bref_team_id", "retrosheet_team_id", "active_from", "active_to",
	}
	var rows [][]any
	for _, row := range t.rows {
		if t.field(row, "full_name") == "" {
			continue
		}
		rows = append(rows, []any{
			intOrNil(t.field(row, "mlbam_team_id")),
			strOrNil(t.field(row, "abbrev")),
			t.field(row, "full_name"),
			strOrNil(t.field(row, "location_name")),
			strOrNil(t.field(row, "team_name")),
			strOrNil(t.field(row, "league")),
			intOrNil(t.field(row, "fg_team_id")),
			intOrNil(t.field(row, "mlbam_league_id")),
			intOrNil(t.field(row, "mlbam_division_id")),
			strOrNil(t.field(row, "bref_team_id")),
			strOrNil(t.field(row, "retrosheet_team_id")),
			intOrNil(t.field(row, "active_from")),
			intOrNil(t.field(row, "active_to")),
		})
	}

	n, err := pool.CopyFrom(ctx, pgx.Identifier{config.TeamIDInfosTable}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		result.AddErrorf("copy teams: %v", err)
		return result
	}
	result.TeamsInserted = int(n)
	logger.Info("Teams seeded", "rows", n)
	return result
}

// SeedVenues rebuilds the venue table from venues.csv in dir.
func SeedVenues(ctx context.Context, pool *pgxpool.Pool, dir string, logger *slog.Logger) Result {
	var result Result

	t, err := openCSV(dir, "venues.csv")
	if err != nil {
		result.AddError(err.Error())
		return result
	}
	if _, err := pool.Exec(ctx, "TRUNCATE "+config.VenuesTable); err != nil {
		result.AddErrorf("truncate %s: %v", config.VenuesTable, err)
		return result
	}

	columns := []string{"mlbam_id", "name", "link", "active", "season"}
	var rows [][]any
	for _, row := range t.rows {
		mlbamID := intOrNil(t.field(row, "mlbam_id"))
		if mlbamID == nil {
			continue
		}
		rows = append(rows, []any{
			mlbamID,
			t.field(row, "name"),
			strOrNil(t.field(row, "link")),
			t.field(row, "active") == "true" || t.field(row, "active") == "True",
			intOrNil(t.field(row, "season")),
		})
	}

	n, err := pool.CopyFrom(ctx, pgx.Identifier{config.VenuesTable}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		result.AddErrorf("copy venues: %v", err)
		return result
	}
	result.VenuesInserted = int(n)
	logger.Info("Venues seeded", "rows", n)
	return result
}

// SeedHallOfFame rebuilds the vote table from hall_of_fame.csv in dir.
func SeedHallOfFame(ctx context.Context, pool *pgxpool.Pool, dir string, logger *slog.Logger) Result {
	var result Result

	t, err := openCSV(dir, "hall_of_fame.csv")
	if err != nil {
		result.AddError(err.Error())
		return result
	}
	if _, err := pool.Exec(ctx, "TRUNCATE "+config.HallOfFameVotesTable); err != nil {
		result.AddErrorf("truncate %s: %v", config.HallOfFameVotesTable, err)
		return result
	}

	columns := []string{"bbref_id", "year", "voted_by", "category", "inducted", "votes", "ballots", "needed", "needed_note"}
	var rows [][]any
	for _, row := range t.rows {
		bbrefID := t.field(row, "bbref_id")
		year := intOrNil(t.field(row, "year"))
		if bbrefID == "" || year == nil {
			continue
		}
		rows = append(rows, []any{
			bbrefID,
			year,
			strOrNil(t.field(row, "voted_by")),
			strOrNil(t.field(row, "category")),
			t.field(row, "inducted") == "Y",
			intOrNil(t.field(row, "votes")),
			intOrNil(t.field(row, "ballots")),
			intOrNil(t.field(row, "needed")),
			strOrNil(t.field(row, "needed_note")),
		})
	}

	n, err := pool.CopyFrom(ctx, pgx.Identifier{config.HallOfFameVotesTable}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		result.AddErrorf("copy hall of fame votes: %v", err)
		return result
	}
	result.VotesInserted = int(n)
	logger.Info("Hall of fame votes seeded", "rows", n)
	return result
}

func openCSV(dir, name string) (*table, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return parseCSV(f)
}
