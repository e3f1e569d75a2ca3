package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceNonFinite(t *testing.T) {
	in := map[string]any{
		"ok":  1.5,
		"nan": math.NaN(),
		"inf": math.Inf(1),
		"nested": map[string]any{
			"neg_inf": math.Inf(-1),
			"list":    []any{math.NaN(), 2.0, "text"},
		},
	}

	got := ReplaceNonFinite(in).(map[string]any)
	assert.Equal(t, 1.5, got["ok"])
	assert.Nil(t, got["nan"])
	assert.Nil(t, got["inf"])
	nested := got["nested"].(map[string]any)
	assert.Nil(t, nested["neg_inf"])
	list := nested["list"].([]any)
	assert.Nil(t, list[0])
	assert.Equal(t, 2.0, list[1])
	assert.Equal(t, "text", list[2])
}

func TestReplaceNonFiniteRowSlice(t *testing.T) {
	rows := []map[string]any{{"v": math.NaN()}, {"v": 3.0}}
	got := ReplaceNonFinite(rows).([]map[string]any)
	assert.Nil(t, got[0]["v"])
	assert.Equal(t, 3.0, got[1]["v"])
}

func TestAttachScheduleLogos(t *testing.T) {
	homeTeam := map[string]any{"id": 116.0, "name": "Detroit Tigers"}
	awayTeam := map[string]any{"id": 121.0, "name": "New York Mets"}
	days := []map[string]any{{
		"date": "2025-06-01",
		"games": []any{map[string]any{
			"teams": map[string]any{
				"home": map[string]any{"team": homeTeam},
				"away": map[string]any{"team": awayTeam},
			},
		}},
	}}

	AttachScheduleLogos(days, func(teamID int64) (string, error) {
		if teamID == 121 {
			return "", errors.New("unavailable")
		}
		return "https://logos.example/116.svg", nil
	})

	assert.Equal(t, "https://logos.example/116.svg", homeTeam["logo_url"])
	assert.Nil(t, awayTeam["logo_url"])
}

func TestMergeGameData(t *testing.T) {
	home := map[string]any{"id": 116.0}
	feed := map[string]any{
		"gameData": map[string]any{
			"teams": map[string]any{"home": home},
		},
		"liveData": map[string]any{"plays": map[string]any{}},
	}
	boxscore := map[string]any{"teams": map[string]any{}}

	MergeGameData(feed, boxscore, func(int64) (string, error) {
		return "logo", nil
	})

	live := feed["liveData"].(map[string]any)
	assert.Equal(t, boxscore, live["boxscore"])
	assert.Contains(t, live, "plays")
	assert.Equal(t, "logo", home["logo_url"])
}

func TestMergeGameDataNilBoxscore(t *testing.T) {
	feed := map[string]any{"liveData": map[string]any{}}
	MergeGameData(feed, nil, func(int64) (string, error) { return "", nil })
	assert.NotContains(t, feed["liveData"].(map[string]any), "boxscore")
}

func TestFlattenPlayerInfo(t *testing.T) {
	info := map[string]any{
		"fullName":           "Tarik Skubal",
		"fullFMLName":        "Tarik Daniel Skubal",
		"birthDate":          "1996-11-20",
		"birthCity":          "Hayward",
		"birthStateProvince": "CA",
		"birthCountry":       "USA",
		"height":             "6' 3\"",
		"weight":             240.0,
		"mlbDebutDate":       "2020-08-18",
		"currentTeam":        map[string]any{"id": 116.0, "name": "Detroit Tigers"},
		"primaryPosition":    map[string]any{"name": "Pitcher"},
		"batSide":            map[string]any{"description": "Right"},
		"pitchHand":          map[string]any{"description": "Left"},
		"drafts": []any{map[string]any{
			"year":            "2018",
			"pickRound":       "9",
			"roundPickNumber": 15.0,
			"pickNumber":      255.0,
			"team":            map[string]any{"id": 116.0, "name": "Detroit Tigers"},
			"school":          map[string]any{"name": "Seattle University"},
		}},
	}

	got := FlattenPlayerInfo(info)
	assert.Equal(t, "Tarik Skubal", got["name"])
	assert.Equal(t, "Tarik Daniel Skubal", got["full_name"])
	assert.Equal(t, "Detroit Tigers", got["team_name"])
	assert.Equal(t, "Pitcher", got["position"])
	assert.Equal(t, "Hayward, CA, USA", got["birth_place"])
	assert.Equal(t, "Right", got["bat_side"])
	assert.Equal(t, "Left", got["throw_side"])

	draft := got["draft"].(map[string]any)
	assert.Equal(t, "9", draft["round"])
	assert.Equal(t, 15.0, draft["pick"])
	assert.Equal(t, 255.0, draft["overall"])
}

func TestFlattenPlayerInfoSparse(t *testing.T) {
	got := FlattenPlayerInfo(map[string]any{"fullName": "Mystery Player"})
	assert.Equal(t, "Mystery Player", got["name"])
	assert.Nil(t, got["birth_place"])
	assert.Nil(t, got["draft"])
	assert.Nil(t, got["team_name"])
}

func TestBirthPlacePartial(t *testing.T) {
	got := FlattenPlayerInfo(map[string]any{
		"birthCity":    "San Pedro de Macoris",
		"birthCountry": "Dominican Republic",
	})
	assert.Equal(t, "San Pedro de Macoris, Dominican Republic", got["birth_place"])
}

func TestMergeSplitsSortsMonths(t *testing.T) {
	monthly := []map[string]any{
		{"month": 8.0, "avg": ".300"},
		{"month": 4.0, "avg": ".250"},
		{"month": 6.0, "avg": ".280"},
	}

	got := MergeSplits(map[string]any{"a": 1}, map[string]any{"b": 2}, monthly, nil)
	m := got["monthly"].(map[string]any)
	bat := m["batting"].([]map[string]any)
	require.Len(t, bat, 3)
	months := []any{bat[0]["month"], bat[1]["month"], bat[2]["month"]}
	assert.Equal(t, []any{4.0, 6.0, 8.0}, months)

	// A failed monthly fetch yields empty lists, never null.
	pit := m["pitching"].([]map[string]any)
	assert.NotNil(t, pit)
	assert.Empty(t, pit)
}
