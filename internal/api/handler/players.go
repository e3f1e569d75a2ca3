package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/identity"
	"github.com/timothyf/baseball-data-lab-web/internal/shape"
)

// PlayerSearch searches players by name against the identity table.
// @Summary Player search
// @Tags players
// @Param q query string false "substring of the player's full name"
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/players/ [get]
func (h *Handler) PlayerSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respond.JSON(w, http.StatusOK, []any{})
		return
	}

	rows, err := h.players.SearchByName(r.Context(), query, searchLimit)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Normalize ids first so team enrichment can batch one upstream call.
	var mlbamIDs []string
	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		key := identity.NormalizePtr(row.KeyMLBAM)
		if key != nil {
			mlbamIDs = append(mlbamIDs, *key)
		}
		results = append(results, map[string]any{
			"id":        row.ID,
			"name_full": row.NameFull,
			"key_mlbam": key,
			"team_name": nil,
		})
	}

	// Current-team names are enrichment; a failed people call degrades to
	// null team names.
	if len(mlbamIDs) > 0 {
		if people, err := h.client.PeopleByIDs(r.Context(), mlbamIDs); err == nil {
			teamNames := map[string]any{}
			for _, person := range people {
				id, ok := shape.Int64(person, "id")
				if !ok {
					continue
				}
				if name, ok := shape.Map(person, "currentTeam")["name"]; ok {
					teamNames[strconv.FormatInt(id, 10)] = name
				}
			}
			for _, result := range results {
				if key, ok := result["key_mlbam"].(*string); ok && key != nil {
					if name, ok := teamNames[*key]; ok {
						result["team_name"] = name
					}
				}
			}
		}
	}

	respond.JSON(w, http.StatusOK, results)
}

// PlayerInfo returns flattened basic information about a player. The
// path id may be an internal surrogate key or a raw aggregator id.
// @Summary Player info
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/players/{id}/ [get]
func (h *Handler) PlayerInfo(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}

	info, err := h.client.PlayerInfo(r.Context(), res.AggregatorID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, shape.FlattenPlayerInfo(info))
}

// PlayerStats returns career batting and pitching statistics.
// @Summary Player career stats
// @Tags players
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/players/{id}/stats/ [get]
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}

	batting, err := h.client.PlayerCareerStats(r.Context(), res.AggregatorID, "hitting")
	if err != nil {
		slog.Error("fetch career batting stats failed", "mlbam_id", res.AggregatorID, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	pitching, err := h.client.PlayerCareerStats(r.Context(), res.AggregatorID, "pitching")
	if err != nil {
		slog.Error("fetch career pitching stats failed", "mlbam_id", res.AggregatorID, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	data := map[string]any{"batting": batting, "pitching": pitching}
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(data))
}

// PlayerSplits combines season batting/pitching splits with by-month
// splits. The monthly portion degrades to empty lists on failure.
// @Summary Player splits
// @Tags players
// @Param season query int false "4-digit season, defaults to current year"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/players/{id}/splits/ [get]
func (h *Handler) PlayerSplits(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}
	season := h.seasonParam(r)

	batting, err := h.client.BattingSplits(r.Context(), res.AggregatorID, season)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	pitching, err := h.client.PitchingSplits(r.Context(), res.AggregatorID, season)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	monthlyBat, monthlyPit, err := h.client.MonthlySplits(r.Context(), res.AggregatorID, season)
	if err != nil {
		slog.Error("fetch monthly splits failed", "mlbam_id", res.AggregatorID, "error", err)
		monthlyBat, monthlyPit = nil, nil
	}

	data := shape.MergeSplits(batting, pitching, monthlyBat, monthlyPit)
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(data))
}

// PlayerGameLog returns per-game statistics for one season.
// @Summary Player game log
// @Tags players
// @Param stat_type query string false "hitting or pitching"
// @Param season query int false "4-digit season"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/players/{id}/gamelog/ [get]
func (h *Handler) PlayerGameLog(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}

	statType := r.URL.Query().Get("stat_type")
	if statType == "" {
		statType = "hitting"
	}
	season := h.seasonParam(r)

	data, err := h.client.PlayerGameLog(r.Context(), res.AggregatorID, statType, season)
	if err != nil {
		slog.Error("fetch game log failed", "mlbam_id", res.AggregatorID, "error", err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(data))
}

// StatcastBatter returns Statcast rows for a batter over a date range.
// @Summary Statcast batter data
// @Tags players
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorBody
// @Router /api/players/{id}/statcast/batter/ [get]
func (h *Handler) StatcastBatter(w http.ResponseWriter, r *http.Request) {
	h.statcast(w, r, h.client.StatcastBatter)
}

// StatcastPitcher returns Statcast rows for a pitcher over a date range.
// @Summary Statcast pitcher data
// @Tags players
// @Param start_date query string true "YYYY-MM-DD"
// @Param end_date query string true "YYYY-MM-DD"
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} respond.ErrorBody
// @Router /api/players/{id}/statcast/pitcher/ [get]
func (h *Handler) StatcastPitcher(w http.ResponseWriter, r *http.Request) {
	h.statcast(w, r, h.client.StatcastPitcher)
}

func (h *Handler) statcast(w http.ResponseWriter, r *http.Request,
	fetch func(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error)) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		respond.Error(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	rows, err := fetch(r.Context(), res.AggregatorID, startDate, endDate)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(rows))
}

// PlayerHeadshot proxies the player's headshot image.
// @Summary Player headshot
// @Tags players
// @Produce png
// @Success 200 {file} binary
// @Router /api/player/{id}/headshot/ [get]
func (h *Handler) PlayerHeadshot(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resolvePlayer(w, r)
	if !ok {
		return
	}

	img, err := h.client.PlayerHeadshot(r.Context(), res.AggregatorID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.Binary(w, "image/png", img)
}

// resolvePlayer maps the path id to an aggregator id, writing a 400 on
// a malformed path segment.
func (h *Handler) resolvePlayer(w http.ResponseWriter, r *http.Request) (identity.Resolution, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid player id")
		return identity.Resolution{}, false
	}
	res, err := h.resolver.Player(r.Context(), id)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return identity.Resolution{}, false
	}
	return res, true
}
