// Package identity normalizes heterogeneous external identifiers and
// resolves user-supplied path ids to the aggregator ids upstream calls
// need.
//
// The identity tables are seeded from CSVs whose numeric id columns were
// serialized through floats, so an aggregator id sometimes arrives as
// "123.0". Every consumer goes through NormalizeAggregatorID before
// treating the value as an integer.
package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/timothyf/baseball-data-lab-web/internal/store"
)

// NormalizeAggregatorID strips exactly a trailing ".0" left by
// float-serialized ids. Strings not ending in ".0" pass through unchanged.
func NormalizeAggregatorID(raw string) string {
	if strings.HasSuffix(raw, ".0") {
		return raw[:len(raw)-2]
	}
	return raw
}

// NormalizePtr normalizes an optional aggregator id, mapping nil to nil.
func NormalizePtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	n := NormalizeAggregatorID(*raw)
	return &n
}

// Resolution is the outcome of resolving a path id to an aggregator id.
// Fallback marks the tolerant default: the identity table knew nothing
// about the path id and it was assumed to already be an aggregator id.
// Callers can count fallback hits as a signal of identity-table staleness.
type Resolution struct {
	AggregatorID int64
	Fallback     bool
}

// Resolver resolves internal-or-external path ids against the identity
// tables.
type Resolver struct {
	players store.PlayerStore
	teams   store.TeamStore
	logger  *slog.Logger
}

// NewResolver creates a Resolver. logger may be nil.
func NewResolver(players store.PlayerStore, teams store.TeamStore, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{players: players, teams: teams, logger: logger}
}

// Player resolves a path id to a player aggregator id. The steps are:
// lookup by internal surrogate key, then by raw aggregator id, then the
// fallback of taking the path id itself as the aggregator id. It never
// fails on an unknown id; only storage errors surface.
func (r *Resolver) Player(ctx context.Context, pathID int64) (Resolution, error) {
	key, err := r.players.AggregatorIDBySurrogate(ctx, pathID)
	if err != nil && err != store.ErrNotFound {
		return Resolution{}, err
	}
	if err == nil && key != "" {
		id, convErr := strconv.ParseInt(NormalizeAggregatorID(key), 10, 64)
		if convErr != nil {
			return Resolution{}, fmt.Errorf("malformed key_mlbam %q for player row %d: %w", key, pathID, convErr)
		}
		return Resolution{AggregatorID: id}, nil
	}

	ok, err := r.players.AggregatorIDExists(ctx, strconv.FormatInt(pathID, 10))
	if err != nil {
		return Resolution{}, err
	}
	if ok {
		return Resolution{AggregatorID: pathID}, nil
	}

	r.logger.Warn("player id resolution fell back to path id", "path_id", pathID)
	return Resolution{AggregatorID: pathID, Fallback: true}, nil
}

// Team resolves a path id to a team aggregator id: by internal surrogate
// key, then by raw aggregator id. Unlike Player there is no tolerant
// fallback: every team-scoped endpoint requires a known identity row, so
// an unmatched id returns store.ErrNotFound.
func (r *Resolver) Team(ctx context.Context, pathID int64) (int64, error) {
	mlbamID, err := r.teams.AggregatorIDBySurrogate(ctx, pathID)
	if err != nil && err != store.ErrNotFound {
		return 0, err
	}
	if err == nil && mlbamID != 0 {
		return mlbamID, nil
	}

	ok, err := r.teams.AggregatorIDExists(ctx, pathID)
	if err != nil {
		return 0, err
	}
	if ok {
		return pathID, nil
	}
	return 0, store.ErrNotFound
}
