package handler

import (
	"net/http"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/leaders"
)

// LeagueLeaders returns the top five qualified players per statistic,
// league-wide, for batting and pitching.
// @Summary League statistical leaders
// @Tags leaders
// @Param season query int false "4-digit season"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/leaders/ [get]
func (h *Handler) LeagueLeaders(w http.ResponseWriter, r *http.Request) {
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

	bat = leaders.QualifyBatting(bat, leaders.QualifyingThreshold)
	pit = leaders.QualifyPitching(pit, leaders.QualifyingThreshold)
	respond.JSON(w, http.StatusOK, leaders.Leaderboards(bat, pit, leaders.LeagueTopN))
}
