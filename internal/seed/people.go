package seed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timothyf/baseball-data-lab-web/internal/config"
)

// registerShards enumerates the Chadwick register people files.
var registerShards = []string{
	"0", "1", "2", "3", "4", "5", "6", "7",
	"8", "9", "a", "b", "c", "d", "e", "f",
}

var peopleColumns = []string{
	"key_person", "key_uuid", "key_mlbam", "key_retro",
	"key_bbref", "key_bbref_minors", "key_fangraphs",
	"name_first", "name_last", "name_given", "name_suffix", "name_full",
}

// personRow builds one player_id_infos row from a register record.
// Rows with neither an MLBAM nor a bbref id are skipped; amateur and
// foreign-league identities are of no use to the API.
func personRow(t *table, row []string) ([]any, bool) {
	keyPerson := t.field(row, "key_person")
	if keyPerson == "" {
		return nil, false
	}
	keyMLBAM := t.field(row, "key_mlbam")
	keyBBRef := t.field(row, "key_bbref")
	if keyMLBAM == "" && keyBBRef == "" {
		return nil, false
	}
	first := t.field(row, "name_first")
	last := t.field(row, "name_last")
	return []any{
		keyPerson,
		strOrNil(t.field(row, "key_uuid")),
		strOrNil(keyMLBAM),
		strOrNil(t.field(row, "key_retro")),
		strOrNil(keyBBRef),
		strOrNil(t.field(row, "key_bbref_minors")),
		strOrNil(t.field(row, "key_fangraphs")),
		strOrNil(first),
		strOrNil(last),
		strOrNil(t.field(row, "name_given")),
		strOrNil(t.field(row, "name_suffix")),
		strings.TrimSpace(first + " " + last),
	}, true
}

// SeedPeople rebuilds the player identity table from the Chadwick
// register. The table is truncated first; the register is the source of
// truth for every id crosswalk.
func SeedPeople(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) Result {
	var result Result

	if _, err := pool.Exec(ctx, "TRUNCATE "+config.PlayerIDInfosTable); err != nil {
		result.AddErrorf("truncate %s: %v", config.PlayerIDInfosTable, err)
		return result
	}

	httpc := &http.Client{Timeout: 120 * time.Second}
	for _, shard := range registerShards {
		count, err := seedPeopleShard(ctx, pool, httpc, cfg.RegisterBaseURL, shard)
		if err != nil {
			result.AddErrorf("shard %s: %v", shard, err)
			continue
		}
		result.PeopleInserted += count
		logger.Info("Register shard done", "shard", shard, "rows", count)
	}
	return result
}

func seedPeopleShard(ctx context.Context, pool *pgxpool.Pool, httpc *http.Client, baseURL, shard string) (int, error) {
	u := fmt.Sprintf("%s/people-%s.csv", baseURL, shard)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("register shard returned %d", resp.StatusCode)
	}

	t, err := parseCSV(resp.Body)
	if err != nil {
		return 0, err
	}

	var rows [][]any
	for _, row := range t.rows {
		values, ok := personRow(t, row)
		if !ok {
			continue
		}
		rows = append(rows, values)
	}

	n, err := pool.CopyFrom(ctx,
		pgx.Identifier{config.PlayerIDInfosTable},
		peopleColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy people: %w", err)
	}
	return int(n), nil
}
