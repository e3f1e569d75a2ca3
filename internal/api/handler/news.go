package handler

import (
	"net/http"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
)

// headlines is a static placeholder feed until a real news source is
// wired in.
var headlines = []map[string]any{
	{"title": "Pennant races tighten as September begins", "source": "League Wire"},
	{"title": "Rookie class putting up historic numbers", "source": "League Wire"},
	{"title": "Trade deadline moves paying off for contenders", "source": "League Wire"},
}

// News returns the current headline feed.
// @Summary News headlines
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/news/ [get]
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"headlines": headlines})
}
