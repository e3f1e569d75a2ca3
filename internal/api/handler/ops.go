package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/shape"
)

// upstreamOp is one entry in the closed operation registry: a fixed set
// of named adapter calls exposed for debugging and ad-hoc frontend use.
// The registry is an explicit allow-list, never derived from the adapter
// type, so adding a method to the adapter does not silently expose it.
type upstreamOp struct {
	// Required query parameters, reported in the listing and enforced
	// before dispatch.
	Required []string
	Optional []string
	run      func(ctx context.Context, h *Handler, q url.Values) (any, error)
}

func opInt64(q url.Values, name string) (int64, error) {
	return strconv.ParseInt(q.Get(name), 10, 64)
}

func (h *Handler) opSeason(q url.Values) int {
	if s := q.Get("season"); s != "" {
		if season, err := strconv.Atoi(s); err == nil {
			return season
		}
	}
	return h.currentSeason()
}

var upstreamOps = map[string]upstreamOp{
	"schedule": {
		Required: []string{"start_date", "end_date"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			start, err := time.Parse("2006-01-02", q.Get("start_date"))
			if err != nil {
				return nil, errBadParam("start_date")
			}
			end, err := time.Parse("2006-01-02", q.Get("end_date"))
			if err != nil {
				return nil, errBadParam("end_date")
			}
			return h.client.ScheduleForDateRange(ctx, start, end)
		},
	},
	"game_live_feed": {
		Required: []string{"game_pk"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			gamePk, err := opInt64(q, "game_pk")
			if err != nil {
				return nil, errBadParam("game_pk")
			}
			return h.client.GameLiveFeed(ctx, gamePk)
		},
	},
	"game_boxscore": {
		Required: []string{"game_pk"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			gamePk, err := opInt64(q, "game_pk")
			if err != nil {
				return nil, errBadParam("game_pk")
			}
			return h.client.GameBoxscore(ctx, gamePk)
		},
	},
	"standings": {
		Optional: []string{"season", "league_ids"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			leagueIDs := q.Get("league_ids")
			if leagueIDs == "" {
				leagueIDs = config.DefaultLeagueIDs
			}
			return h.client.StandingsData(ctx, h.opSeason(q), leagueIDs)
		},
	},
	"player_info": {
		Required: []string{"player_id"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			id, err := opInt64(q, "player_id")
			if err != nil {
				return nil, errBadParam("player_id")
			}
			return h.client.PlayerInfo(ctx, id)
		},
	},
	"player_career_stats": {
		Required: []string{"player_id"},
		Optional: []string{"group"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			id, err := opInt64(q, "player_id")
			if err != nil {
				return nil, errBadParam("player_id")
			}
			group := q.Get("group")
			if group == "" {
				group = "hitting"
			}
			return h.client.PlayerCareerStats(ctx, id, group)
		},
	},
	"team": {
		Required: []string{"team_id"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			id, err := opInt64(q, "team_id")
			if err != nil {
				return nil, errBadParam("team_id")
			}
			return h.client.Team(ctx, id)
		},
	},
	"team_record": {
		Required: []string{"team_id"},
		Optional: []string{"season"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			id, err := opInt64(q, "team_id")
			if err != nil {
				return nil, errBadParam("team_id")
			}
			return h.client.TeamRecord(ctx, id, h.opSeason(q))
		},
	},
	"active_roster": {
		Required: []string{"team_id"},
		Optional: []string{"season"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			id, err := opInt64(q, "team_id")
			if err != nil {
				return nil, errBadParam("team_id")
			}
			return h.client.ActiveRoster(ctx, id, h.opSeason(q))
		},
	},
	"batting_leaderboards": {
		Optional: []string{"season"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			t, err := h.client.BattingLeaderboards(ctx, h.opSeason(q))
			if err != nil {
				return nil, err
			}
			return t.Rows, nil
		},
	},
	"pitching_leaderboards": {
		Optional: []string{"season"},
		run: func(ctx context.Context, h *Handler, q url.Values) (any, error) {
			t, err := h.client.PitchingLeaderboards(ctx, h.opSeason(q))
			if err != nil {
				return nil, err
			}
			return t.Rows, nil
		},
	},
}

type badParamError string

func (e badParamError) Error() string { return "Invalid or missing parameter: " + string(e) }

func errBadParam(name string) error { return badParamError(name) }

// UpstreamOps lists the registered upstream operations and their
// parameters.
// @Summary List upstream operations
// @Tags upstream
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/upstream/methods/ [get]
func (h *Handler) UpstreamOps(w http.ResponseWriter, r *http.Request) {
	ops := make([]map[string]any, 0, len(upstreamOps))
	for name, op := range upstreamOps {
		ops = append(ops, map[string]any{
			"name":     name,
			"required": append([]string{}, op.Required...),
			"optional": append([]string{}, op.Optional...),
		})
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i]["name"].(string) < ops[j]["name"].(string)
	})
	respond.JSON(w, http.StatusOK, map[string]any{"methods": ops})
}

// UpstreamOp dispatches one registered upstream operation by name.
// @Summary Execute an upstream operation
// @Tags upstream
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody
// @Router /api/upstream/{op}/ [get]
func (h *Handler) UpstreamOp(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "op")
	op, ok := upstreamOps[name]
	if !ok {
		respond.Error(w, http.StatusNotFound, "Unknown operation: "+name)
		return
	}

	q := r.URL.Query()
	for _, param := range op.Required {
		if q.Get(param) == "" {
			respond.Error(w, http.StatusBadRequest, "Missing required parameter: "+param)
			return
		}
	}

	result, err := op.run(r.Context(), h, q)
	if err != nil {
		var bad badParamError
		if errors.As(err, &bad) {
			respond.Error(w, http.StatusBadRequest, bad.Error())
		} else {
			respond.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respond.JSON(w, http.StatusOK, shape.ReplaceNonFinite(result))
}
