package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/identity"
	"github.com/timothyf/baseball-data-lab-web/internal/shape"
)

// InductedPlayers returns every player inducted into the hall of fame,
// enriched with identity-table names, aggregator ids, and positions.
// @Summary Hall of fame inductees
// @Tags halloffame
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/players/halloffame/ [get]
func (h *Handler) InductedPlayers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inducted, err := h.hof.InductedPlayers(ctx)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	bbrefIDs := make([]string, 0, len(inducted))
	for _, p := range inducted {
		bbrefIDs = append(bbrefIDs, p.BBRefID)
	}
	identities, err := h.players.ByBBRefIDs(ctx, bbrefIDs)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	players := make([]map[string]any, 0, len(inducted))
	for _, p := range inducted {
		entry := map[string]any{
			"bbref_id": p.BBRefID,
			"year":     p.Year,
			"voted_by": p.VotedBy,
			"mlbam_id": nil,
			"name":     nil,
			"position": nil,
		}

		var mlbamID string
		if id, ok := identities[p.BBRefID]; ok {
			entry["name"] = id.NameFull
			if id.KeyMLBAM != nil {
				mlbamID = identity.NormalizeAggregatorID(*id.KeyMLBAM)
			}
		} else if rec, err := h.client.ReverseLookup(ctx, p.BBRefID); err == nil && rec != nil {
			// Inductee predates the local identity table; the register
			// still knows the id and name.
			entry["name"] = rec.NameFirst + " " + rec.NameLast
			mlbamID = rec.KeyMLBAM
		}

		if mlbamID != "" {
			entry["mlbam_id"] = mlbamID
			if pos := h.playerPosition(ctx, mlbamID); pos != "" {
				entry["position"] = pos
			}
		}

		players = append(players, entry)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i]["year"].(int) < players[j]["year"].(int)
	})
	respond.JSON(w, http.StatusOK, map[string]any{"players": players})
}

// playerPosition returns a player's primary position name, memoized for
// an hour. Empty results are memoized too, on the same TTL.
func (h *Handler) playerPosition(ctx context.Context, mlbamID string) string {
	key := fmt.Sprintf("player-info:%s", mlbamID)
	if data, ok := h.cache.Get(ctx, key); ok {
		return string(data)
	}

	pos := ""
	if id, err := strconv.ParseInt(mlbamID, 10, 64); err == nil {
		info, err := h.client.PlayerInfo(ctx, id)
		if err != nil {
			slog.Error("fetch player position failed", "mlbam_id", mlbamID, "error", err)
		} else {
			pos, _ = shape.Map(info, "primaryPosition")["name"].(string)
		}
	}
	h.cache.Set(ctx, key, []byte(pos), cache.TTLPlayerPosition)
	return pos
}
