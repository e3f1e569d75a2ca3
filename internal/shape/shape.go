// Package shape reshapes raw upstream payloads into the flatter contracts
// the frontend consumes. Every function is a pure transformation over
// decoded JSON (map[string]any / []any) values.
package shape

import (
	"math"
	"sort"
)

// Map reads a nested object field, returning an empty map when the field
// is absent or not an object.
func Map(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}

// Int64 reads a numeric field as int64. JSON numbers decode as float64.
func Int64(m map[string]any, key string) (int64, bool) {
	switch v := m[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// ReplaceNonFinite recursively replaces NaN and infinite floats with nil.
// JSON has no representation for them and encoding/json refuses to
// marshal them, but some upstream numeric sources produce them.
func ReplaceNonFinite(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case map[string]any:
		for k, vv := range t {
			t[k] = ReplaceNonFinite(vv)
		}
		return t
	case []any:
		for i, vv := range t {
			t[i] = ReplaceNonFinite(vv)
		}
		return t
	case []map[string]any:
		for _, m := range t {
			ReplaceNonFinite(m)
		}
		return t
	default:
		return v
	}
}

// LogoFunc resolves a team aggregator id to a logo URL.
type LogoFunc func(teamID int64) (string, error)

// AttachScheduleLogos sets logo_url on each side's team object of every
// game in every date bucket. A per-team failure degrades that one team's
// logo_url to nil instead of failing the schedule.
func AttachScheduleLogos(days []map[string]any, logo LogoFunc) {
	for _, day := range days {
		games, _ := day["games"].([]any)
		for _, g := range games {
			game, ok := g.(map[string]any)
			if !ok {
				continue
			}
			teams := Map(game, "teams")
			for _, side := range []string{"home", "away"} {
				team, ok := Map(teams, side)["team"].(map[string]any)
				if !ok {
					continue
				}
				id, ok := Int64(team, "id")
				if !ok {
					continue
				}
				url, err := logo(id)
				if err != nil {
					team["logo_url"] = nil
					continue
				}
				team["logo_url"] = url
			}
		}
	}
}

// MergeGameData enriches a live-feed payload in place: the boxscore is
// merged under liveData.boxscore when present, and logo URLs are attached
// to the home/away team objects. boxscore may be nil (the secondary fetch
// is enrichment, not required).
func MergeGameData(feed, boxscore map[string]any, logo LogoFunc) {
	if boxscore != nil {
		live, ok := feed["liveData"].(map[string]any)
		if !ok {
			live = map[string]any{}
			feed["liveData"] = live
		}
		live["boxscore"] = boxscore
	}

	teams := Map(Map(feed, "gameData"), "teams")
	for _, side := range []string{"home", "away"} {
		team, ok := teams[side].(map[string]any)
		if !ok {
			continue
		}
		id, ok := Int64(team, "id")
		if !ok {
			continue
		}
		url, err := logo(id)
		if err != nil {
			team["logo_url"] = nil
			continue
		}
		team["logo_url"] = url
	}
}

// FlattenPlayerInfo converts the nested upstream person payload into the
// flat player-info contract.
func FlattenPlayerInfo(info map[string]any) map[string]any {
	team := Map(info, "currentTeam")
	pos := Map(info, "primaryPosition")
	bat := Map(info, "batSide")
	throw := Map(info, "pitchHand")

	return map[string]any{
		"team_id":        team["id"],
		"team_name":      team["name"],
		"position":       pos["name"],
		"name":           info["fullName"],
		"full_name":      info["fullFMLName"],
		"birth_date":     info["birthDate"],
		"birth_place":    birthPlace(info),
		"height":         info["height"],
		"weight":         info["weight"],
		"bat_side":       bat["description"],
		"throw_side":     throw["description"],
		"draft":          draftInfo(info),
		"mlb_debut_date": info["mlbDebutDate"],
	}
}

// birthPlace joins city, state/province, and country with commas,
// omitting absent parts. All three absent yields nil.
func birthPlace(info map[string]any) any {
	place := ""
	for _, key := range []string{"birthCity", "birthStateProvince", "birthCountry"} {
		part, _ := info[key].(string)
		if part == "" {
			continue
		}
		if place != "" {
			place += ", "
		}
		place += part
	}
	if place == "" {
		return nil
	}
	return place
}

// draftInfo re-keys the first element of the drafts list, or nil when the
// player was never drafted.
func draftInfo(info map[string]any) any {
	drafts, _ := info["drafts"].([]any)
	if len(drafts) == 0 {
		return nil
	}
	first, ok := drafts[0].(map[string]any)
	if !ok || len(first) == 0 {
		return nil
	}
	team := Map(first, "team")
	return map[string]any{
		"year":      first["year"],
		"round":     first["pickRound"],
		"pick":      first["roundPickNumber"],
		"overall":   first["pickNumber"],
		"team_id":   team["id"],
		"team_name": team["name"],
		"school":    first["school"],
	}
}

// MergeSplits combines the three independent splits fetches into one
// payload. Monthly lists are sorted ascending by month number.
func MergeSplits(batting, pitching map[string]any, monthlyBat, monthlyPit []map[string]any) map[string]any {
	SortByMonth(monthlyBat)
	SortByMonth(monthlyPit)
	if monthlyBat == nil {
		monthlyBat = []map[string]any{}
	}
	if monthlyPit == nil {
		monthlyPit = []map[string]any{}
	}
	return map[string]any{
		"batting":  batting,
		"pitching": pitching,
		"monthly": map[string]any{
			"batting":  monthlyBat,
			"pitching": monthlyPit,
		},
	}
}

// SortByMonth orders split records ascending by their month field.
// Records without a month sort first.
func SortByMonth(splits []map[string]any) {
	sort.SliceStable(splits, func(i, j int) bool {
		a, _ := Int64(splits[i], "month")
		b, _ := Int64(splits[j], "month")
		return a < b
	})
}
