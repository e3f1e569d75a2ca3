// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timothyf/baseball-data-lab-web/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers every statement the API layer uses.
// The identity tables are read-only at request time, so the statement set
// is small and stable. Prepared statements eliminate parse overhead on
// every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Players: search + id resolution
		"player_search":       "SELECT id, name_full, key_mlbam FROM player_id_infos WHERE name_full ILIKE '%' || $1 || '%' ORDER BY name_full LIMIT $2",
		"player_mlbam_by_id":  "SELECT key_mlbam FROM player_id_infos WHERE id = $1",
		"player_mlbam_exists": "SELECT 1 FROM player_id_infos WHERE key_mlbam = $1 LIMIT 1",
		"players_by_bbref":    "SELECT key_bbref, key_mlbam, name_full, name_first, name_last FROM player_id_infos WHERE key_bbref = ANY($1)",

		// Teams: search + id resolution + current-row lookup
		"team_search":          "SELECT id, full_name, mlbam_team_id FROM team_id_infos WHERE full_name ILIKE '%' || $1 || '%' ORDER BY full_name LIMIT $2",
		"team_current_by_mlbam": "SELECT id, full_name, mlbam_team_id, location_name, abbrev FROM team_id_infos WHERE mlbam_team_id = $1 AND active_to IS NULL LIMIT 1",
		"team_mlbam_by_id":     "SELECT mlbam_team_id FROM team_id_infos WHERE id = $1",
		"team_mlbam_exists":    "SELECT 1 FROM team_id_infos WHERE mlbam_team_id = $1 LIMIT 1",
		"team_abbrev_by_mlbam": "SELECT abbrev FROM team_id_infos WHERE mlbam_team_id = $1 LIMIT 1",

		// Venues
		"venue_by_mlbam": "SELECT mlbam_id, name, link, active, season FROM venues WHERE mlbam_id = $1 LIMIT 1",

		// Hall of fame: one row per inducted player, highest year wins
		"hof_inducted_players": "SELECT bbref_id, year, voted_by FROM hall_of_fame_votes WHERE inducted AND category = 'Player' ORDER BY bbref_id, year",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
