package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/timothyf/baseball-data-lab-web/internal/leaders"
)

// BattingLeaderboards fetches the season batting leaderboard table from
// the Fangraphs major-league leaders feed.
func (c *HTTPClient) BattingLeaderboards(ctx context.Context, season int) (*leaders.Table, error) {
	return c.leaderboards(ctx, "bat", season)
}

// PitchingLeaderboards fetches the season pitching leaderboard table.
func (c *HTTPClient) PitchingLeaderboards(ctx context.Context, season int) (*leaders.Table, error) {
	return c.leaderboards(ctx, "pit", season)
}

func (c *HTTPClient) leaderboards(ctx context.Context, stats string, season int) (*leaders.Table, error) {
	params := url.Values{}
	params.Set("pos", "all")
	params.Set("stats", stats)
	params.Set("lg", "all")
	params.Set("qual", "0")
	params.Set("season", strconv.Itoa(season))
	params.Set("season1", strconv.Itoa(season))
	params.Set("ind", "0")
	params.Set("month", "0")
	params.Set("pageitems", "2000")
	params.Set("pagenum", "1")

	u := c.fangraphsBase + "/api/leaders/major-league/data?" + params.Encode()
	body, err := c.get(ctx, c.httpClient, u)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Data []leaders.Row `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode leaderboard feed: %w", err)
	}
	return &leaders.Table{Rows: payload.Data}, nil
}
