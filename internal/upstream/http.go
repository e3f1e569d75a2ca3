package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/timothyf/baseball-data-lab-web/internal/config"
)

// monthlySplitsTimeout bounds the direct by-month hydrate call, which is
// enrichment only and must not stall a splits request.
const monthlySplitsTimeout = 10 * time.Second

// HTTPClient implements Client over the public HTTP sources. One
// long-lived instance is built at startup and shared by all handlers.
type HTTPClient struct {
	httpClient    *http.Client
	monthlyClient *http.Client
	statsAPIBase  string
	fangraphsBase string
	savantBase    string
	spotsBase     string
	headshotBase  string
	registerBase  string
	limiter       *rate.Limiter
	logger        *slog.Logger
}

// NewHTTPClient creates the shared upstream client with rate limiting.
func NewHTTPClient(cfg *config.Config, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(cfg.UpstreamRateLimit) / 60.0
	return &HTTPClient{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		monthlyClient: &http.Client{Timeout: monthlySplitsTimeout},
		statsAPIBase:  strings.TrimRight(cfg.StatsAPIBaseURL, "/"),
		fangraphsBase: strings.TrimRight(cfg.FangraphsBaseURL, "/"),
		savantBase:    strings.TrimRight(cfg.SavantBaseURL, "/"),
		spotsBase:     strings.TrimRight(cfg.SpotsBaseURL, "/"),
		headshotBase:  strings.TrimRight(cfg.HeadshotBaseURL, "/"),
		registerBase:  strings.TrimRight(cfg.RegisterBaseURL, "/"),
		limiter:       rate.NewLimiter(rate.Limit(rps), 5),
		logger:        logger,
	}
}

// get performs a rate-limited GET and returns the response body.
func (c *HTTPClient) get(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream %s returned %d: %s", req.URL.Path, resp.StatusCode, truncate(body, 200))
	}

	return body, nil
}

// getJSON performs a GET and decodes the body into a generic map.
func (c *HTTPClient) getJSON(ctx context.Context, rawURL string) (map[string]any, error) {
	body, err := c.get(ctx, c.httpClient, rawURL)
	if err != nil {
		return nil, err
	}
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// statsURL builds a Stats API URL. version is "v1" or "v1.1".
func (c *HTTPClient) statsURL(version, path string, params url.Values) string {
	u := c.statsAPIBase + "/api/" + version + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}

// objectList converts a decoded JSON array into a list of objects,
// skipping non-object elements.
func objectList(v any) []map[string]any {
	items, _ := v.([]any)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// firstPerson returns people[0] from a Stats API people payload.
func firstPerson(payload map[string]any) (map[string]any, error) {
	people := objectList(payload["people"])
	if len(people) == 0 {
		return nil, fmt.Errorf("empty people payload")
	}
	return people[0], nil
}

// --------------------------------------------------------------------------
// Schedule and games
// --------------------------------------------------------------------------

func (c *HTTPClient) ScheduleForDateRange(ctx context.Context, start, end time.Time) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("sportId", "1")
	params.Set("startDate", start.Format("2006-01-02"))
	params.Set("endDate", end.Format("2006-01-02"))
	payload, err := c.getJSON(ctx, c.statsURL("v1", "/schedule", params))
	if err != nil {
		return nil, err
	}
	return objectList(payload["dates"]), nil
}

func (c *HTTPClient) GameLiveFeed(ctx context.Context, gamePk int64) (map[string]any, error) {
	return c.getJSON(ctx, c.statsURL("v1.1", fmt.Sprintf("/game/%d/feed/live", gamePk), nil))
}

func (c *HTTPClient) GameBoxscore(ctx context.Context, gamePk int64) (map[string]any, error) {
	return c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/game/%d/boxscore", gamePk), nil))
}

func (c *HTTPClient) StandingsData(ctx context.Context, season int, leagueIDs string) (map[string]any, error) {
	params := url.Values{}
	params.Set("leagueId", leagueIDs)
	params.Set("season", strconv.Itoa(season))
	return c.getJSON(ctx, c.statsURL("v1", "/standings", params))
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

func (c *HTTPClient) PlayerInfo(ctx context.Context, mlbamID int64) (map[string]any, error) {
	params := url.Values{}
	params.Set("hydrate", "currentTeam,draft")
	payload, err := c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/people/%d", mlbamID), params))
	if err != nil {
		return nil, err
	}
	return firstPerson(payload)
}

func (c *HTTPClient) PlayerCareerStats(ctx context.Context, mlbamID int64, group string) (map[string]any, error) {
	params := url.Values{}
	params.Set("stats", "career")
	params.Set("group", group)
	return c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/people/%d/stats", mlbamID), params))
}

func (c *HTTPClient) PlayerGameLog(ctx context.Context, mlbamID int64, statType string, season int) (map[string]any, error) {
	params := url.Values{}
	params.Set("stats", "gameLog")
	params.Set("group", statType)
	params.Set("season", strconv.Itoa(season))
	return c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/people/%d/stats", mlbamID), params))
}

func (c *HTTPClient) BattingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error) {
	return c.statSplits(ctx, mlbamID, "hitting", season)
}

func (c *HTTPClient) PitchingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error) {
	return c.statSplits(ctx, mlbamID, "pitching", season)
}

func (c *HTTPClient) statSplits(ctx context.Context, mlbamID int64, group string, season int) (map[string]any, error) {
	params := url.Values{}
	params.Set("stats", "statSplits")
	params.Set("group", group)
	params.Set("sitCodes", "vl,vr,h,a")
	params.Set("season", strconv.Itoa(season))
	return c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/people/%d/stats", mlbamID), params))
}

// MonthlySplits calls the Stats API directly with a by-month hydrate and
// a short fixed timeout, splitting the result into hitting and pitching
// groups.
func (c *HTTPClient) MonthlySplits(ctx context.Context, mlbamID int64, season int) ([]map[string]any, []map[string]any, error) {
	hydrate := fmt.Sprintf("stats(group=[hitting,pitching],type=byMonth,season=%d)", season)
	u := c.statsURL("v1", fmt.Sprintf("/people/%d", mlbamID), nil) + "?hydrate=" + url.QueryEscape(hydrate)

	body, err := c.get(ctx, c.monthlyClient, u)
	if err != nil {
		return nil, nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, fmt.Errorf("decode monthly splits: %w", err)
	}
	person, err := firstPerson(payload)
	if err != nil {
		return nil, nil, err
	}

	var batting, pitching []map[string]any
	for _, group := range objectList(person["stats"]) {
		display, _ := group["group"].(map[string]any)["displayName"].(string)
		splits := objectList(group["splits"])
		switch display {
		case "hitting":
			batting = splits
		case "pitching":
			pitching = splits
		}
	}
	return batting, pitching, nil
}

func (c *HTTPClient) PlayerHeadshot(ctx context.Context, mlbamID int64) ([]byte, error) {
	u := fmt.Sprintf("%s/image/upload/d_people:generic:headshot:67:current.png/w_213,q_auto:best/v1/people/%d/headshot/67/current",
		c.headshotBase, mlbamID)
	return c.get(ctx, c.httpClient, u)
}

func (c *HTTPClient) PeopleByIDs(ctx context.Context, mlbamIDs []string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("personIds", strings.Join(mlbamIDs, ","))
	payload, err := c.getJSON(ctx, c.statsURL("v1", "/people", params))
	if err != nil {
		return nil, err
	}
	return objectList(payload["people"]), nil
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

func (c *HTTPClient) Team(ctx context.Context, teamID int64) (map[string]any, error) {
	payload, err := c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/teams/%d", teamID), nil))
	if err != nil {
		return nil, err
	}
	teams := objectList(payload["teams"])
	if len(teams) == 0 {
		return nil, fmt.Errorf("empty teams payload for team %d", teamID)
	}
	return teams[0], nil
}

// TeamLogoURL builds the static logo URL for a team. No fetch happens;
// the asset host serves it directly to the frontend.
func (c *HTTPClient) TeamLogoURL(teamID int64) string {
	return fmt.Sprintf("https://www.mlbstatic.com/team-logos/%d.svg", teamID)
}

// TeamSpotURL builds the pixel-sized "spot" logo URL for a team.
func (c *HTTPClient) TeamSpotURL(teamID int64, sizePx int) string {
	return fmt.Sprintf("%s/%d/spots/%d", c.spotsBase, teamID, sizePx)
}

// TeamRecord extracts one team's record from the season standings.
func (c *HTTPClient) TeamRecord(ctx context.Context, teamID int64, season int) (map[string]any, error) {
	standings, err := c.StandingsData(ctx, season, config.DefaultLeagueIDs)
	if err != nil {
		return nil, err
	}
	for _, record := range objectList(standings["records"]) {
		for _, teamRec := range objectList(record["teamRecords"]) {
			team, _ := teamRec["team"].(map[string]any)
			if id, ok := teamIDOf(team); ok && id == teamID {
				return teamRec, nil
			}
		}
	}
	return nil, fmt.Errorf("no record for team %d in season %d", teamID, season)
}

func teamIDOf(team map[string]any) (int64, bool) {
	if team == nil {
		return 0, false
	}
	if f, ok := team["id"].(float64); ok {
		return int64(f), true
	}
	return 0, false
}

func (c *HTTPClient) RecentSchedule(ctx context.Context, teamID int64) (map[string]any, error) {
	params := url.Values{}
	params.Set("hydrate", "previousSchedule(limit=5),nextSchedule(limit=5)")
	payload, err := c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/teams/%d", teamID), params))
	if err != nil {
		return nil, err
	}
	teams := objectList(payload["teams"])
	if len(teams) == 0 {
		return nil, fmt.Errorf("empty teams payload for team %d", teamID)
	}
	return teams[0], nil
}

func (c *HTTPClient) ActiveRoster(ctx context.Context, teamID int64, season int) (map[string]any, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))
	return c.getJSON(ctx, c.statsURL("v1", fmt.Sprintf("/teams/%d/roster/active", teamID), params))
}
