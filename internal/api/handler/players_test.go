package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timothyf/baseball-data-lab-web/internal/store"
)

func strPtr(s string) *string { return &s }

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func decodeObject(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestPlayerSearchNormalizesIDs(t *testing.T) {
	d := newTestDeps()
	d.players.searchRows = []store.PlayerSearchRow{
		{ID: 1, NameFull: "Mike Trout", KeyMLBAM: strPtr("545361.0")},
		{ID: 2, NameFull: "Nolan Ryan", KeyMLBAM: nil},
	}
	d.client.peopleFn = func(_ context.Context, ids []string) ([]map[string]any, error) {
		assert.Equal(t, []string{"545361"}, ids)
		return []map[string]any{{
			"id":          545361.0,
			"currentTeam": map[string]any{"name": "Los Angeles Angels"},
		}}, nil
	}

	rec := d.get("/api/players/?q=trout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	results := decodeList(t, rec.Body.Bytes())
	require.Len(t, results, 2)
	assert.Equal(t, "545361", results[0]["key_mlbam"])
	assert.Equal(t, "Los Angeles Angels", results[0]["team_name"])
	assert.Nil(t, results[1]["key_mlbam"])
	assert.Nil(t, results[1]["team_name"])
}

func TestPlayerSearchEmptyQuery(t *testing.T) {
	d := newTestDeps()
	rec := d.get("/api/players/?q=", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeList(t, rec.Body.Bytes()))
}

func TestPlayerSearchEnrichmentDegrades(t *testing.T) {
	d := newTestDeps()
	d.players.searchRows = []store.PlayerSearchRow{
		{ID: 1, NameFull: "Mike Trout", KeyMLBAM: strPtr("545361")},
	}
	// peopleFn unset: the lookup fails, team names stay null.

	rec := d.get("/api/players/?q=trout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decodeList(t, rec.Body.Bytes())
	assert.Nil(t, results[0]["team_name"])
}

func TestPlayerInfoResolvesSurrogate(t *testing.T) {
	d := newTestDeps()
	d.players.bySurrogate = map[int64]string{7: "545361.0"}
	var calledWith int64
	d.client.playerInfoFn = func(_ context.Context, mlbamID int64) (map[string]any, error) {
		calledWith = mlbamID
		return map[string]any{"fullName": "Mike Trout"}, nil
	}

	rec := d.get("/api/players/7/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(545361), calledWith)
	assert.Equal(t, "Mike Trout", decodeObject(t, rec.Body.Bytes())["name"])
}

func TestPlayerInfoFallbackToPathID(t *testing.T) {
	d := newTestDeps()
	var calledWith int64
	d.client.playerInfoFn = func(_ context.Context, mlbamID int64) (map[string]any, error) {
		calledWith = mlbamID
		return map[string]any{"fullName": "Unknown"}, nil
	}

	rec := d.get("/api/players/999999/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(999999), calledWith)
}

func TestPlayerStatsCombinesGroups(t *testing.T) {
	d := newTestDeps()
	d.client.careerStatsFn = func(_ context.Context, _ int64, group string) (map[string]any, error) {
		return map[string]any{"group": group}, nil
	}

	rec := d.get("/api/players/545361/stats/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	assert.Equal(t, "hitting", got["batting"].(map[string]any)["group"])
	assert.Equal(t, "pitching", got["pitching"].(map[string]any)["group"])
}

func TestPlayerSplitsMonthlyDegrades(t *testing.T) {
	d := newTestDeps()
	d.client.battingSplitsFn = func(context.Context, int64, int) (map[string]any, error) {
		return map[string]any{"stats": []any{}}, nil
	}
	d.client.pitchingSplitsFn = func(context.Context, int64, int) (map[string]any, error) {
		return map[string]any{"stats": []any{}}, nil
	}
	// monthlySplitsFn unset: the monthly fetch fails and degrades.

	rec := d.get("/api/players/545361/splits/?season=2025", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	monthly := got["monthly"].(map[string]any)
	assert.Empty(t, monthly["batting"])
	assert.Empty(t, monthly["pitching"])
	assert.NotNil(t, monthly["batting"])
}

func TestStatcastRequiresDates(t *testing.T) {
	d := newTestDeps()
	for _, path := range []string{
		"/api/players/545361/statcast/batter/",
		"/api/players/545361/statcast/pitcher/?start_date=2025-04-01",
	} {
		rec := d.get(path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		got := decodeObject(t, rec.Body.Bytes())
		assert.Contains(t, got["error"], "start_date and end_date")
	}
}

func TestStatcastBatterRows(t *testing.T) {
	d := newTestDeps()
	d.client.statcastBatterFn = func(_ context.Context, mlbamID int64, start, end string) ([]map[string]any, error) {
		assert.Equal(t, "2025-04-01", start)
		assert.Equal(t, "2025-04-30", end)
		return []map[string]any{{"pitch_type": "FF"}}, nil
	}

	rec := d.get("/api/players/545361/statcast/batter/?start_date=2025-04-01&end_date=2025-04-30", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeList(t, rec.Body.Bytes())
	require.Len(t, rows, 1)
}

func TestPlayerHeadshot(t *testing.T) {
	d := newTestDeps()
	d.client.headshotFn = func(context.Context, int64) ([]byte, error) {
		return []byte{0x89, 0x50, 0x4e, 0x47}, nil
	}

	rec := d.get("/api/player/545361/headshot/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, rec.Body.Bytes())
}

func TestPlayerUpstreamErrorIsFlat(t *testing.T) {
	d := newTestDeps()
	// playerInfoFn unset: upstream fails.
	rec := d.get("/api/players/545361/", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeObject(t, rec.Body.Bytes())
	require.Len(t, got, 1)
	assert.Contains(t, got, "error")
}
