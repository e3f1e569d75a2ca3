package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores bundles the pgx-backed store implementations over one pool.
type Stores struct {
	Players    PlayerStore
	Teams      TeamStore
	Venues     VenueStore
	HallOfFame HallOfFameStore
}

// NewPGX builds the store set over a pgx pool. Queries refer to the
// prepared statements registered in internal/db.
func NewPGX(pool *pgxpool.Pool) Stores {
	return Stores{
		Players:    &pgxPlayerStore{pool: pool},
		Teams:      &pgxTeamStore{pool: pool},
		Venues:     &pgxVenueStore{pool: pool},
		HallOfFame: &pgxHallOfFameStore{pool: pool},
	}
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

type pgxPlayerStore struct {
	pool *pgxpool.Pool
}

func (s *pgxPlayerStore) SearchByName(ctx context.Context, q string, limit int) ([]PlayerSearchRow, error) {
	rows, err := s.pool.Query(ctx, "player_search", q, limit)
	if err != nil {
		return nil, fmt.Errorf("player search: %w", err)
	}
	defer rows.Close()

	var out []PlayerSearchRow
	for rows.Next() {
		var r PlayerSearchRow
		if err := rows.Scan(&r.ID, &r.NameFull, &r.KeyMLBAM); err != nil {
			return nil, fmt.Errorf("scan player search row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *pgxPlayerStore) AggregatorIDBySurrogate(ctx context.Context, id int64) (string, error) {
	var key *string
	err := s.pool.QueryRow(ctx, "player_mlbam_by_id", id).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("player mlbam by id: %w", err)
	}
	if key == nil {
		return "", nil
	}
	return *key, nil
}

func (s *pgxPlayerStore) AggregatorIDExists(ctx context.Context, keyMLBAM string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, "player_mlbam_exists", keyMLBAM).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("player mlbam exists: %w", err)
	}
	return true, nil
}

func (s *pgxPlayerStore) ByBBRefIDs(ctx context.Context, bbrefIDs []string) (map[string]PlayerIdentity, error) {
	rows, err := s.pool.Query(ctx, "players_by_bbref", bbrefIDs)
	if err != nil {
		return nil, fmt.Errorf("players by bbref: %w", err)
	}
	defer rows.Close()

	out := make(map[string]PlayerIdentity, len(bbrefIDs))
	for rows.Next() {
		var p PlayerIdentity
		if err := rows.Scan(&p.KeyBBRef, &p.KeyMLBAM, &p.NameFull, &p.NameFirst, &p.NameLast); err != nil {
			return nil, fmt.Errorf("scan player identity: %w", err)
		}
		out[p.KeyBBRef] = p
	}
	return out, rows.Err()
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

type pgxTeamStore struct {
	pool *pgxpool.Pool
}

func (s *pgxTeamStore) SearchByName(ctx context.Context, q string, limit int) ([]TeamSearchRow, error) {
	rows, err := s.pool.Query(ctx, "team_search", q, limit)
	if err != nil {
		return nil, fmt.Errorf("team search: %w", err)
	}
	defer rows.Close()

	var out []TeamSearchRow
	for rows.Next() {
		var r TeamSearchRow
		if err := rows.Scan(&r.ID, &r.FullName, &r.MLBAMTeamID); err != nil {
			return nil, fmt.Errorf("scan team search row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *pgxTeamStore) CurrentByAggregatorID(ctx context.Context, mlbamTeamID int64) (TeamInfoRow, error) {
	var r TeamInfoRow
	err := s.pool.QueryRow(ctx, "team_current_by_mlbam", mlbamTeamID).
		Scan(&r.ID, &r.FullName, &r.MLBAMTeamID, &r.LocationName, &r.Abbrev)
	if errors.Is(err, pgx.ErrNoRows) {
		return TeamInfoRow{}, ErrNotFound
	}
	if err != nil {
		return TeamInfoRow{}, fmt.Errorf("team current by mlbam: %w", err)
	}
	return r, nil
}

func (s *pgxTeamStore) AggregatorIDBySurrogate(ctx context.Context, id int64) (int64, error) {
	var mlbamID *int64
	err := s.pool.QueryRow(ctx, "team_mlbam_by_id", id).Scan(&mlbamID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("team mlbam by id: %w", err)
	}
	if mlbamID == nil {
		return 0, nil
	}
	return *mlbamID, nil
}

func (s *pgxTeamStore) AggregatorIDExists(ctx context.Context, mlbamTeamID int64) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, "team_mlbam_exists", mlbamTeamID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("team mlbam exists: %w", err)
	}
	return true, nil
}

func (s *pgxTeamStore) AbbrevByAggregatorID(ctx context.Context, mlbamTeamID int64) (string, error) {
	var abbrev *string
	err := s.pool.QueryRow(ctx, "team_abbrev_by_mlbam", mlbamTeamID).Scan(&abbrev)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("team abbrev by mlbam: %w", err)
	}
	if abbrev == nil {
		return "", nil
	}
	return *abbrev, nil
}

// --------------------------------------------------------------------------
// Venues
// --------------------------------------------------------------------------

type pgxVenueStore struct {
	pool *pgxpool.Pool
}

func (s *pgxVenueStore) ByAggregatorID(ctx context.Context, mlbamID int64) (Venue, error) {
	var v Venue
	err := s.pool.QueryRow(ctx, "venue_by_mlbam", mlbamID).
		Scan(&v.MLBAMID, &v.Name, &v.Link, &v.Active, &v.Season)
	if errors.Is(err, pgx.ErrNoRows) {
		return Venue{}, ErrNotFound
	}
	if err != nil {
		return Venue{}, fmt.Errorf("venue by mlbam: %w", err)
	}
	return v, nil
}

// --------------------------------------------------------------------------
// Hall of fame
// --------------------------------------------------------------------------

type pgxHallOfFameStore struct {
	pool *pgxpool.Pool
}

func (s *pgxHallOfFameStore) InductedPlayers(ctx context.Context) ([]InductedPlayer, error) {
	rows, err := s.pool.Query(ctx, "hof_inducted_players")
	if err != nil {
		return nil, fmt.Errorf("hof inducted players: %w", err)
	}
	defer rows.Close()

	var out []InductedPlayer
	for rows.Next() {
		var p InductedPlayer
		if err := rows.Scan(&p.BBRefID, &p.Year, &p.VotedBy); err != nil {
			return nil, fmt.Errorf("scan inducted player: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return LatestInductions(out), nil
}
