// Package upstream wraps the external sports-data sources (the MLB Stats
// API, the Fangraphs leaderboard feed, Baseball Savant, the Chadwick
// register) behind one adapter interface. The adapter owns no business
// logic: it shapes inputs, returns raw payloads, and wraps transport
// errors. Retries, pagination, and schema quirks belong to the sources
// themselves.
package upstream

import (
	"context"
	"time"

	"github.com/timothyf/baseball-data-lab-web/internal/leaders"
)

// IdentityRecord is the result of a reverse id lookup against the
// Chadwick register.
type IdentityRecord struct {
	KeyMLBAM  string
	NameFirst string
	NameLast  string
}

// Client is the aggregation-client adapter: one method per upstream
// capability. Every method takes already-normalized aggregator ids and
// plain parameters and returns the raw upstream payload unchanged.
type Client interface {
	// Schedule and games
	ScheduleForDateRange(ctx context.Context, start, end time.Time) ([]map[string]any, error)
	GameLiveFeed(ctx context.Context, gamePk int64) (map[string]any, error)
	GameBoxscore(ctx context.Context, gamePk int64) (map[string]any, error)
	StandingsData(ctx context.Context, season int, leagueIDs string) (map[string]any, error)

	// Players
	PlayerInfo(ctx context.Context, mlbamID int64) (map[string]any, error)
	PlayerCareerStats(ctx context.Context, mlbamID int64, group string) (map[string]any, error)
	PlayerGameLog(ctx context.Context, mlbamID int64, statType string, season int) (map[string]any, error)
	BattingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error)
	PitchingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error)
	MonthlySplits(ctx context.Context, mlbamID int64, season int) (batting, pitching []map[string]any, err error)
	StatcastBatter(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error)
	StatcastPitcher(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error)
	PlayerHeadshot(ctx context.Context, mlbamID int64) ([]byte, error)
	PeopleByIDs(ctx context.Context, mlbamIDs []string) ([]map[string]any, error)
	ReverseLookup(ctx context.Context, bbrefID string) (*IdentityRecord, error)

	// Teams
	Team(ctx context.Context, teamID int64) (map[string]any, error)
	TeamLogoURL(teamID int64) string
	TeamSpotURL(teamID int64, sizePx int) string
	TeamRecord(ctx context.Context, teamID int64, season int) (map[string]any, error)
	RecentSchedule(ctx context.Context, teamID int64) (map[string]any, error)
	ActiveRoster(ctx context.Context, teamID int64, season int) (map[string]any, error)

	// Leaderboards
	BattingLeaderboards(ctx context.Context, season int) (*leaders.Table, error)
	PitchingLeaderboards(ctx context.Context, season int) (*leaders.Table, error)
}
