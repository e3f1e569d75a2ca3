package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/leaders"
	"github.com/timothyf/baseball-data-lab-web/internal/shape"
	"github.com/timothyf/baseball-data-lab-web/internal/store"
)

// TeamSearch searches teams by name against the identity table.
// @Summary Team search
// @Tags teams
// @Param q query string false "substring of the team's full name"
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /api/teams/ [get]
func (h *Handler) TeamSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		respond.JSON(w, http.StatusOK, []any{})
		return
	}

	rows, err := h.teams.SearchByName(r.Context(), query, searchLimit)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		var mlbamID any
		if row.MLBAMTeamID != nil {
			mlbamID = strconv.FormatInt(*row.MLBAMTeamID, 10)
		}
		results = append(results, map[string]any{
			"id":            row.ID,
			"full_name":     row.FullName,
			"mlbam_team_id": mlbamID,
		})
	}
	respond.JSON(w, http.StatusOK, results)
}

// TeamInfo returns the current franchise row joined with venue data.
// Unknown teams are a 404; there is no tolerant fallback for teams.
// @Summary Team info
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorBody
// @Router /api/teams/{id}/ [get]
func (h *Handler) TeamInfo(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	row, err := h.teams.CurrentByAggregatorID(r.Context(), mlbamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Team not found")
		} else {
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	result := map[string]any{
		"id":            strconv.FormatInt(row.ID, 10),
		"full_name":     row.FullName,
		"mlbam_team_id": strconv.FormatInt(mlbamID, 10),
		"location_name": row.LocationName,
		"abbrev":        row.Abbrev,
		"venue_id":      nil,
		"venue_name":    nil,
		"logo_url":      h.client.TeamLogoURL(mlbamID),
	}

	// Venue comes from the upstream team record joined against the local
	// venue table. Either half failing degrades to null venue fields.
	// Venue and team ids are serialized as strings like every other id.
	if team, err := h.client.Team(r.Context(), mlbamID); err == nil {
		if venueID, ok := shape.Int64(shape.Map(team, "venue"), "id"); ok {
			result["venue_id"] = strconv.FormatInt(venueID, 10)
			if venue, err := h.venues.ByAggregatorID(r.Context(), venueID); err == nil {
				result["venue_name"] = venue.Name
				result["venue"] = map[string]any{
					"mlbam_id": strconv.FormatInt(venue.MLBAMID, 10),
					"name":     venue.Name,
					"link":     venue.Link,
					"active":   venue.Active,
					"season":   venue.Season,
				}
			}
		}
	} else {
		slog.Error("fetch team failed", "mlbam_team_id", mlbamID, "error", err)
	}

	respond.JSON(w, http.StatusOK, result)
}

// TeamLogo returns the team's logo URL as plain text.
// @Summary Team logo URL
// @Tags teams
// @Produce plain
// @Success 200 {string} string
// @Router /api/teams/{id}/logo/ [get]
func (h *Handler) TeamLogo(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}
	respond.Text(w, h.client.TeamLogoURL(mlbamID))
}

// TeamRecord returns the team's win-loss record for one season.
// @Summary Team season record
// @Tags teams
// @Param season query int false "4-digit season"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorBody
// @Router /api/teams/{id}/record/ [get]
func (h *Handler) TeamRecord(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	season := h.currentSeason()
	if s := r.URL.Query().Get("season"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid season")
			return
		}
		season = parsed
	}

	record, err := h.client.TeamRecord(r.Context(), mlbamID, season)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(record))
}

// TeamRecentSchedule returns the team's games around today.
// @Summary Team recent schedule
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/teams/{id}/recent_schedule/ [get]
func (h *Handler) TeamRecentSchedule(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	sched, err := h.client.RecentSchedule(r.Context(), mlbamID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, sched)
}

// TeamRoster returns the team's active roster for one season.
// @Summary Team active roster
// @Tags teams
// @Param season query int false "4-digit season"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/teams/{id}/roster/ [get]
func (h *Handler) TeamRoster(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	roster, err := h.client.ActiveRoster(r.Context(), mlbamID, h.seasonParam(r))
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	respond.JSON(w, http.StatusOK, roster)
}

// TeamLeaders returns the single statistical leader per category for one
// team, filtered from the league-wide leaderboard feed by abbreviation.
// @Summary Team statistical leaders
// @Tags teams
// @Param season query int false "4-digit season"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorBody
// @Router /api/teams/{id}/leaders/ [get]
func (h *Handler) TeamLeaders(w http.ResponseWriter, r *http.Request) {
	mlbamID, ok := h.resolveTeam(w, r)
	if !ok {
		return
	}

	abbrev, err := h.teams.AbbrevByAggregatorID(r.Context(), mlbamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Team not found")
		} else {
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	season := h.seasonParam(r)
	bat, err := h.client.BattingLeaderboards(r.Context(), season)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	pit, err := h.client.PitchingLeaderboards(r.Context(), season)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	bat = leaders.FilterTeam(leaders.QualifyBatting(bat, leaders.QualifyingThreshold), abbrev)
	pit = leaders.FilterTeam(leaders.QualifyPitching(pit, leaders.QualifyingThreshold), abbrev)
	respond.JSON(w, http.StatusOK, leaders.TeamLeaders(bat, pit))
}

// resolveTeam maps the path id to an aggregator team id. Unknown or
// malformed ids terminate the request.
func (h *Handler) resolveTeam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := pathID(r, "id")
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid team id")
		return 0, false
	}
	mlbamID, err := h.resolver.Team(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Team not found")
		} else {
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}
		return 0, false
	}
	return mlbamID, true
}
