package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/shape"
)

// scheduleLogoSizePx is the pixel size requested for schedule and game
// detail team logos.
const scheduleLogoSizePx = 32

// Schedule returns the day's schedule with per-team logo URLs attached.
// @Summary Schedule for a date
// @Tags schedule
// @Param date query string true "YYYY-MM-DD"
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorBody
// @Router /api/schedule/ [get]
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		respond.Error(w, http.StatusBadRequest, "date parameter is required")
		return
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date format")
		return
	}

	days, err := h.client.ScheduleForDateRange(r.Context(), day, day)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	shape.AttachScheduleLogos(days, func(teamID int64) (string, error) {
		return h.client.TeamSpotURL(teamID, scheduleLogoSizePx), nil
	})
	respond.JSON(w, http.StatusOK, days)
}

// GameData returns the live feed for one game, enriched with the
// boxscore and team logos. The boxscore fetch is enrichment only; its
// failure never fails the request.
// @Summary Game detail
// @Tags schedule
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/games/{gamePk}/ [get]
func (h *Handler) GameData(w http.ResponseWriter, r *http.Request) {
	gamePk, ok := pathID(r, "gamePk")
	if !ok {
		respond.Error(w, http.StatusBadRequest, "invalid game id")
		return
	}

	feed, err := h.client.GameLiveFeed(r.Context(), gamePk)
	if err != nil {
		slog.Error("fetch game live feed failed", "game_pk", gamePk, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	boxscore, err := h.client.GameBoxscore(r.Context(), gamePk)
	if err != nil {
		boxscore = nil
	}

	shape.MergeGameData(feed, boxscore, func(teamID int64) (string, error) {
		return h.client.TeamSpotURL(teamID, scheduleLogoSizePx), nil
	})
	respond.JSON(w, http.StatusOK, feed)
}

// PredictGame estimates win probabilities for one game from the current
// standings. Probabilities always sum to 1; both sides default to 0.5
// when winning percentages are unavailable or sum to zero.
// @Summary Game win probability
// @Tags schedule
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/games/{gamePk}/prediction/ [get]
func (h *Handler) PredictGame(w http.ResponseWriter, r *http.Request) {
	gamePk, ok := pathID(r, "gamePk")
	if !ok {
		respond.Error(w, http.StatusBadRequest, "invalid game id")
		return
	}

	feed, err := h.client.GameLiveFeed(r.Context(), gamePk)
	if err != nil {
		slog.Error("predict game failed", "game_pk", gamePk, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	teams := shape.Map(shape.Map(feed, "gameData"), "teams")
	homeID, _ := shape.Int64(shape.Map(teams, "home"), "id")
	awayID, _ := shape.Int64(shape.Map(teams, "away"), "id")

	data, _, err := h.cachedStandings(r.Context(), h.currentSeason(), config.DefaultLeagueIDs)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	var standings map[string]any
	if err := json.Unmarshal(data, &standings); err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	winPct := winningPercentages(standings)
	homePct, ok := winPct[homeID]
	if !ok {
		homePct = 0.5
	}
	awayPct, ok := winPct[awayID]
	if !ok {
		awayPct = 0.5
	}

	homeProb := 0.5
	if homePct+awayPct > 0 {
		homeProb = homePct / (homePct + awayPct)
	}
	respond.JSON(w, http.StatusOK, map[string]float64{
		"home": homeProb,
		"away": 1.0 - homeProb,
	})
}

// winningPercentages maps team aggregator id to winning percentage from
// a standings payload, skipping unparsable entries.
func winningPercentages(standings map[string]any) map[int64]float64 {
	out := map[int64]float64{}
	records, _ := standings["records"].([]any)
	for _, rec := range records {
		record, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		teamRecords, _ := record["teamRecords"].([]any)
		for _, tr := range teamRecords {
			teamRec, ok := tr.(map[string]any)
			if !ok {
				continue
			}
			id, ok := shape.Int64(shape.Map(teamRec, "team"), "id")
			if !ok {
				continue
			}
			pctStr, _ := teamRec["winningPercentage"].(string)
			var pct float64
			if _, err := fmt.Sscanf(pctStr, "%f", &pct); err != nil {
				continue
			}
			out[id] = pct
		}
	}
	return out
}

// Standings returns current-season standings, memoized for one hour.
// @Summary Current standings
// @Tags schedule
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/standings/ [get]
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	data, hit, err := h.cachedStandings(r.Context(), h.currentSeason(), config.DefaultLeagueIDs)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	etag := cache.ComputeETag(data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.NotModified(w, etag)
		return
	}
	respond.RawJSON(w, data, etag, cache.TTLStandings, hit)
}

// cachedStandings serves the standings payload through the short-TTL
// cache. Nothing is cached on upstream failure.
func (h *Handler) cachedStandings(ctx context.Context, season int, leagueIDs string) ([]byte, bool, error) {
	key := fmt.Sprintf("standings:%d:%s", season, leagueIDs)
	if data, ok := h.cache.Get(ctx, key); ok {
		return data, true, nil
	}

	payload, err := h.client.StandingsData(ctx, season, leagueIDs)
	if err != nil {
		return nil, false, err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, false, fmt.Errorf("encode standings: %w", err)
	}
	h.cache.Set(ctx, key, data, cache.TTLStandings)
	return data, false, nil
}
