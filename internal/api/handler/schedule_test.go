package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequiresDate(t *testing.T) {
	d := newTestDeps()

	rec := d.get("/api/schedule/", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = d.get("/api/schedule/?date=04-01-2025", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid date format", decodeObject(t, rec.Body.Bytes())["error"])
}

func TestScheduleAttachesLogos(t *testing.T) {
	d := newTestDeps()
	d.client.scheduleFn = func(_ context.Context, start, end time.Time) ([]map[string]any, error) {
		assert.Equal(t, "2025-06-01", start.Format("2006-01-02"))
		assert.Equal(t, start, end)
		return []map[string]any{{
			"date": "2025-06-01",
			"games": []any{map[string]any{
				"teams": map[string]any{
					"home": map[string]any{"team": map[string]any{"id": 116.0}},
					"away": map[string]any{"team": map[string]any{"id": 121.0}},
				},
			}},
		}}, nil
	}

	rec := d.get("/api/schedule/?date=2025-06-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	days := decodeList(t, rec.Body.Bytes())
	require.Len(t, days, 1)
	game := days[0]["games"].([]any)[0].(map[string]any)
	home := game["teams"].(map[string]any)["home"].(map[string]any)["team"].(map[string]any)
	assert.Equal(t, "https://spots.test/116/32", home["logo_url"])
}

func TestGameDataMergesBoxscore(t *testing.T) {
	d := newTestDeps()
	d.client.liveFeedFn = func(_ context.Context, gamePk int64) (map[string]any, error) {
		assert.Equal(t, int64(777), gamePk)
		return map[string]any{"gameData": map[string]any{}, "liveData": map[string]any{}}, nil
	}
	d.client.boxscoreFn = func(context.Context, int64) (map[string]any, error) {
		return map[string]any{"teams": map[string]any{}}, nil
	}

	rec := d.get("/api/games/777/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	live := got["liveData"].(map[string]any)
	assert.Contains(t, live, "boxscore")
}

func TestGameDataBoxscoreFailureDegrades(t *testing.T) {
	d := newTestDeps()
	d.client.liveFeedFn = func(context.Context, int64) (map[string]any, error) {
		return map[string]any{"liveData": map[string]any{}}, nil
	}
	// boxscoreFn unset: the secondary fetch fails.

	rec := d.get("/api/games/777/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decodeObject(t, rec.Body.Bytes())["liveData"].(map[string]any)
	assert.NotContains(t, live, "boxscore")
}

func TestGameDataLiveFeedFailureIs500(t *testing.T) {
	d := newTestDeps()
	rec := d.get("/api/games/777/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func standingsPayload() map[string]any {
	return map[string]any{"records": []any{
		map[string]any{"teamRecords": []any{
			map[string]any{
				"team":              map[string]any{"id": 116.0},
				"winningPercentage": ".600",
			},
			map[string]any{
				"team":              map[string]any{"id": 121.0},
				"winningPercentage": ".400",
			},
		}},
	}}
}

func predictionFeed(homeID, awayID float64) map[string]any {
	return map[string]any{"gameData": map[string]any{"teams": map[string]any{
		"home": map[string]any{"id": homeID},
		"away": map[string]any{"id": awayID},
	}}}
}

func TestPredictGameProbabilitiesSumToOne(t *testing.T) {
	d := newTestDeps()
	d.client.liveFeedFn = func(context.Context, int64) (map[string]any, error) {
		return predictionFeed(116, 121), nil
	}
	d.client.standingsFn = func(context.Context, int, string) (map[string]any, error) {
		return standingsPayload(), nil
	}

	rec := d.get("/api/games/777/prediction/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	home := got["home"].(float64)
	away := got["away"].(float64)
	assert.InDelta(t, 0.6, home, 1e-9)
	assert.InDelta(t, 1.0, home+away, 1e-9)
}

func TestPredictGameUnknownTeamsDefault(t *testing.T) {
	d := newTestDeps()
	d.client.liveFeedFn = func(context.Context, int64) (map[string]any, error) {
		return predictionFeed(900, 901), nil
	}
	d.client.standingsFn = func(context.Context, int, string) (map[string]any, error) {
		return standingsPayload(), nil
	}

	rec := d.get("/api/games/777/prediction/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	assert.InDelta(t, 0.5, got["home"].(float64), 1e-9)
	assert.InDelta(t, 0.5, got["away"].(float64), 1e-9)
}

func TestStandingsCachesPayload(t *testing.T) {
	d := newTestDeps()
	calls := 0
	d.client.standingsFn = func(context.Context, int, string) (map[string]any, error) {
		calls++
		return standingsPayload(), nil
	}

	first := d.get("/api/standings/", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := d.get("/api/standings/", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)
}

func TestStandingsErrorNotCached(t *testing.T) {
	d := newTestDeps()
	calls := 0
	d.client.standingsFn = func(context.Context, int, string) (map[string]any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("upstream down")
		}
		return standingsPayload(), nil
	}

	rec := d.get("/api/standings/", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = d.get("/api/standings/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, calls)
}

func TestStandingsETag(t *testing.T) {
	d := newTestDeps()
	d.client.standingsFn = func(context.Context, int, string) (map[string]any, error) {
		return standingsPayload(), nil
	}

	first := d.get("/api/standings/", nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := d.get("/api/standings/", http.Header{"If-None-Match": []string{etag}})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
}
