// Package store provides read-only access to the locally seeded identity
// tables. All mutation happens in cmd/seed; request handling never writes.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

// PlayerSearchRow is one player search result before id normalization.
type PlayerSearchRow struct {
	ID       int64
	NameFull string
	KeyMLBAM *string
}

// PlayerIdentity carries the identity fields needed to enrich external
// records (hall of fame, reverse lookups).
type PlayerIdentity struct {
	KeyBBRef  string
	KeyMLBAM  *string
	NameFull  string
	NameFirst string
	NameLast  string
}

// TeamSearchRow is one team search result.
type TeamSearchRow struct {
	ID          int64
	FullName    string
	MLBAMTeamID *int64
}

// TeamInfoRow is the current (active_to IS NULL) row for a franchise.
type TeamInfoRow struct {
	ID           int64
	FullName     string
	MLBAMTeamID  *int64
	LocationName *string
	Abbrev       *string
}

// Venue is one ballpark-season row.
type Venue struct {
	MLBAMID int64
	Name    string
	Link    *string
	Active  bool
	Season  *int64
}

// InductedPlayer is the latest induction-qualifying hall of fame vote row
// for one bbref id.
type InductedPlayer struct {
	BBRefID string
	Year    int
	VotedBy *string
}

// PlayerStore reads the player identity table.
type PlayerStore interface {
	// SearchByName returns up to limit rows whose full name contains q,
	// case-insensitively, ordered by full name.
	SearchByName(ctx context.Context, q string, limit int) ([]PlayerSearchRow, error)
	// AggregatorIDBySurrogate returns the raw key_mlbam value for an
	// internal row id. Empty string means the row exists but the key is
	// null; ErrNotFound means no row.
	AggregatorIDBySurrogate(ctx context.Context, id int64) (string, error)
	// AggregatorIDExists reports whether any row carries the given raw
	// key_mlbam value.
	AggregatorIDExists(ctx context.Context, keyMLBAM string) (bool, error)
	// ByBBRefIDs returns identity rows keyed by bbref id.
	ByBBRefIDs(ctx context.Context, bbrefIDs []string) (map[string]PlayerIdentity, error)
}

// TeamStore reads the team identity table.
type TeamStore interface {
	SearchByName(ctx context.Context, q string, limit int) ([]TeamSearchRow, error)
	// CurrentByAggregatorID returns the active_to IS NULL row for an
	// aggregator team id, or ErrNotFound.
	CurrentByAggregatorID(ctx context.Context, mlbamTeamID int64) (TeamInfoRow, error)
	// AggregatorIDBySurrogate returns mlbam_team_id for an internal row
	// id. Zero means the row exists but the id is null; ErrNotFound means
	// no row.
	AggregatorIDBySurrogate(ctx context.Context, id int64) (int64, error)
	AggregatorIDExists(ctx context.Context, mlbamTeamID int64) (bool, error)
	// AbbrevByAggregatorID returns the team abbreviation, or ErrNotFound.
	AbbrevByAggregatorID(ctx context.Context, mlbamTeamID int64) (string, error)
}

// VenueStore reads the venue table.
type VenueStore interface {
	ByAggregatorID(ctx context.Context, mlbamID int64) (Venue, error)
}

// LatestInductions reduces inducted vote rows to one row per bbref id,
// keeping the highest year. First-seen order of bbref ids is preserved.
func LatestInductions(rows []InductedPlayer) []InductedPlayer {
	index := map[string]int{}
	out := make([]InductedPlayer, 0, len(rows))
	for _, r := range rows {
		if i, ok := index[r.BBRefID]; ok {
			if r.Year > out[i].Year {
				out[i] = r
			}
			continue
		}
		index[r.BBRefID] = len(out)
		out = append(out, r)
	}
	return out
}

// HallOfFameStore reads the hall of fame vote table.
type HallOfFameStore interface {
	// InductedPlayers returns one row per bbref id with an inducted
	// "Player"-category vote, using the row with the maximum year.
	InductedPlayers(ctx context.Context) ([]InductedPlayer, error)
}
