package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/leaders"
	"github.com/timothyf/baseball-data-lab-web/internal/store"
	"github.com/timothyf/baseball-data-lab-web/internal/upstream"
)

var errNotStubbed = errors.New("not stubbed")

// fakePlayerStore backs the player identity interface with fixed maps.
type fakePlayerStore struct {
	searchRows  []store.PlayerSearchRow
	bySurrogate map[int64]string
	existing    map[string]bool
	byBBRef     map[string]store.PlayerIdentity
}

func (f *fakePlayerStore) SearchByName(_ context.Context, q string, limit int) ([]store.PlayerSearchRow, error) {
	if len(f.searchRows) > limit {
		return f.searchRows[:limit], nil
	}
	return f.searchRows, nil
}

func (f *fakePlayerStore) AggregatorIDBySurrogate(_ context.Context, id int64) (string, error) {
	key, ok := f.bySurrogate[id]
	if !ok {
		return "", store.ErrNotFound
	}
	return key, nil
}

func (f *fakePlayerStore) AggregatorIDExists(_ context.Context, keyMLBAM string) (bool, error) {
	return f.existing[keyMLBAM], nil
}

func (f *fakePlayerStore) ByBBRefIDs(_ context.Context, ids []string) (map[string]store.PlayerIdentity, error) {
	out := map[string]store.PlayerIdentity{}
	for _, id := range ids {
		if identity, ok := f.byBBRef[id]; ok {
			out[id] = identity
		}
	}
	return out, nil
}

type fakeTeamStore struct {
	searchRows  []store.TeamSearchRow
	current     map[int64]store.TeamInfoRow
	bySurrogate map[int64]int64
	existing    map[int64]bool
	abbrevs     map[int64]string
}

func (f *fakeTeamStore) SearchByName(_ context.Context, q string, limit int) ([]store.TeamSearchRow, error) {
	return f.searchRows, nil
}

func (f *fakeTeamStore) CurrentByAggregatorID(_ context.Context, mlbamTeamID int64) (store.TeamInfoRow, error) {
	row, ok := f.current[mlbamTeamID]
	if !ok {
		return store.TeamInfoRow{}, store.ErrNotFound
	}
	return row, nil
}

func (f *fakeTeamStore) AggregatorIDBySurrogate(_ context.Context, id int64) (int64, error) {
	mlbamID, ok := f.bySurrogate[id]
	if !ok {
		return 0, store.ErrNotFound
	}
	return mlbamID, nil
}

func (f *fakeTeamStore) AggregatorIDExists(_ context.Context, mlbamTeamID int64) (bool, error) {
	return f.existing[mlbamTeamID], nil
}

func (f *fakeTeamStore) AbbrevByAggregatorID(_ context.Context, mlbamTeamID int64) (string, error) {
	abbrev, ok := f.abbrevs[mlbamTeamID]
	if !ok {
		return "", store.ErrNotFound
	}
	return abbrev, nil
}

type fakeVenueStore struct {
	venues map[int64]store.Venue
}

func (f *fakeVenueStore) ByAggregatorID(_ context.Context, mlbamID int64) (store.Venue, error) {
	v, ok := f.venues[mlbamID]
	if !ok {
		return store.Venue{}, store.ErrNotFound
	}
	return v, nil
}

type fakeHOFStore struct {
	players []store.InductedPlayer
}

func (f *fakeHOFStore) InductedPlayers(context.Context) ([]store.InductedPlayer, error) {
	return f.players, nil
}

// fakeClient implements upstream.Client with per-method stubs. Unset
// methods fail loudly so a test never silently exercises the zero value.
type fakeClient struct {
	scheduleFn        func(ctx context.Context, start, end time.Time) ([]map[string]any, error)
	liveFeedFn        func(ctx context.Context, gamePk int64) (map[string]any, error)
	boxscoreFn        func(ctx context.Context, gamePk int64) (map[string]any, error)
	standingsFn       func(ctx context.Context, season int, leagueIDs string) (map[string]any, error)
	playerInfoFn      func(ctx context.Context, mlbamID int64) (map[string]any, error)
	careerStatsFn     func(ctx context.Context, mlbamID int64, group string) (map[string]any, error)
	gameLogFn         func(ctx context.Context, mlbamID int64, statType string, season int) (map[string]any, error)
	battingSplitsFn   func(ctx context.Context, mlbamID int64, season int) (map[string]any, error)
	pitchingSplitsFn  func(ctx context.Context, mlbamID int64, season int) (map[string]any, error)
	monthlySplitsFn   func(ctx context.Context, mlbamID int64, season int) ([]map[string]any, []map[string]any, error)
	statcastBatterFn  func(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error)
	statcastPitcherFn func(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error)
	headshotFn        func(ctx context.Context, mlbamID int64) ([]byte, error)
	peopleFn          func(ctx context.Context, mlbamIDs []string) ([]map[string]any, error)
	reverseLookupFn   func(ctx context.Context, bbrefID string) (*upstream.IdentityRecord, error)
	teamFn            func(ctx context.Context, teamID int64) (map[string]any, error)
	teamRecordFn      func(ctx context.Context, teamID int64, season int) (map[string]any, error)
	recentScheduleFn  func(ctx context.Context, teamID int64) (map[string]any, error)
	activeRosterFn    func(ctx context.Context, teamID int64, season int) (map[string]any, error)
	battingBoardsFn   func(ctx context.Context, season int) (*leaders.Table, error)
	pitchingBoardsFn  func(ctx context.Context, season int) (*leaders.Table, error)
}

func (f *fakeClient) ScheduleForDateRange(ctx context.Context, start, end time.Time) ([]map[string]any, error) {
	if f.scheduleFn == nil {
		return nil, errNotStubbed
	}
	return f.scheduleFn(ctx, start, end)
}

func (f *fakeClient) GameLiveFeed(ctx context.Context, gamePk int64) (map[string]any, error) {
	if f.liveFeedFn == nil {
		return nil, errNotStubbed
	}
	return f.liveFeedFn(ctx, gamePk)
}

func (f *fakeClient) GameBoxscore(ctx context.Context, gamePk int64) (map[string]any, error) {
	if f.boxscoreFn == nil {
		return nil, errNotStubbed
	}
	return f.boxscoreFn(ctx, gamePk)
}

func (f *fakeClient) StandingsData(ctx context.Context, season int, leagueIDs string) (map[string]any, error) {
	if f.standingsFn == nil {
		return nil, errNotStubbed
	}
	return f.standingsFn(ctx, season, leagueIDs)
}

func (f *fakeClient) PlayerInfo(ctx context.Context, mlbamID int64) (map[string]any, error) {
	if f.playerInfoFn == nil {
		return nil, errNotStubbed
	}
	return f.playerInfoFn(ctx, mlbamID)
}

func (f *fakeClient) PlayerCareerStats(ctx context.Context, mlbamID int64, group string) (map[string]any, error) {
	if f.careerStatsFn == nil {
		return nil, errNotStubbed
	}
	return f.careerStatsFn(ctx, mlbamID, group)
}

func (f *fakeClient) PlayerGameLog(ctx context.Context, mlbamID int64, statType string, season int) (map[string]any, error) {
	if f.gameLogFn == nil {
		return nil, errNotStubbed
	}
	return f.gameLogFn(ctx, mlbamID, statType, season)
}

func (f *fakeClient) BattingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error) {
	if f.battingSplitsFn == nil {
		return nil, errNotStubbed
	}
	return f.battingSplitsFn(ctx, mlbamID, season)
}

func (f *fakeClient) PitchingSplits(ctx context.Context, mlbamID int64, season int) (map[string]any, error) {
	if f.pitchingSplitsFn == nil {
		return nil, errNotStubbed
	}
	return f.pitchingSplitsFn(ctx, mlbamID, season)
}

func (f *fakeClient) MonthlySplits(ctx context.Context, mlbamID int64, season int) ([]map[string]any, []map[string]any, error) {
	if f.monthlySplitsFn == nil {
		return nil, nil, errNotStubbed
	}
	return f.monthlySplitsFn(ctx, mlbamID, season)
}

func (f *fakeClient) StatcastBatter(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error) {
	if f.statcastBatterFn == nil {
		return nil, errNotStubbed
	}
	return f.statcastBatterFn(ctx, mlbamID, startDate, endDate)
}

func (f *fakeClient) StatcastPitcher(ctx context.Context, mlbamID int64, startDate, endDate string) ([]map[string]any, error) {
	if f.statcastPitcherFn == nil {
		return nil, errNotStubbed
	}
	return f.statcastPitcherFn(ctx, mlbamID, startDate, endDate)
}

func (f *fakeClient) PlayerHeadshot(ctx context.Context, mlbamID int64) ([]byte, error) {
	if f.headshotFn == nil {
		return nil, errNotStubbed
	}
	return f.headshotFn(ctx, mlbamID)
}

func (f *fakeClient) PeopleByIDs(ctx context.Context, mlbamIDs []string) ([]map[string]any, error) {
	if f.peopleFn == nil {
		return nil, errNotStubbed
	}
	return f.peopleFn(ctx, mlbamIDs)
}

func (f *fakeClient) ReverseLookup(ctx context.Context, bbrefID string) (*upstream.IdentityRecord, error) {
	if f.reverseLookupFn == nil {
		return nil, nil
	}
	return f.reverseLookupFn(ctx, bbrefID)
}

func (f *fakeClient) Team(ctx context.Context, teamID int64) (map[string]any, error) {
	if f.teamFn == nil {
		return nil, errNotStubbed
	}
	return f.teamFn(ctx, teamID)
}

func (f *fakeClient) TeamLogoURL(teamID int64) string {
	return fmt.Sprintf("https://logos.test/%d.svg", teamID)
}

func (f *fakeClient) TeamSpotURL(teamID int64, sizePx int) string {
	return fmt.Sprintf("https://spots.test/%d/%d", teamID, sizePx)
}

func (f *fakeClient) TeamRecord(ctx context.Context, teamID int64, season int) (map[string]any, error) {
	if f.teamRecordFn == nil {
		return nil, errNotStubbed
	}
	return f.teamRecordFn(ctx, teamID, season)
}

func (f *fakeClient) RecentSchedule(ctx context.Context, teamID int64) (map[string]any, error) {
	if f.recentScheduleFn == nil {
		return nil, errNotStubbed
	}
	return f.recentScheduleFn(ctx, teamID)
}

func (f *fakeClient) ActiveRoster(ctx context.Context, teamID int64, season int) (map[string]any, error) {
	if f.activeRosterFn == nil {
		return nil, errNotStubbed
	}
	return f.activeRosterFn(ctx, teamID, season)
}

func (f *fakeClient) BattingLeaderboards(ctx context.Context, season int) (*leaders.Table, error) {
	if f.battingBoardsFn == nil {
		return nil, errNotStubbed
	}
	return f.battingBoardsFn(ctx, season)
}

func (f *fakeClient) PitchingLeaderboards(ctx context.Context, season int) (*leaders.Table, error) {
	if f.pitchingBoardsFn == nil {
		return nil, errNotStubbed
	}
	return f.pitchingBoardsFn(ctx, season)
}

// testDeps bundles the fakes behind one Handler.
type testDeps struct {
	players *fakePlayerStore
	teams   *fakeTeamStore
	venues  *fakeVenueStore
	hof     *fakeHOFStore
	client  *fakeClient
	cache   cache.Cache
}

func newTestDeps() *testDeps {
	return &testDeps{
		players: &fakePlayerStore{},
		teams:   &fakeTeamStore{},
		venues:  &fakeVenueStore{},
		hof:     &fakeHOFStore{},
		client:  &fakeClient{},
		cache:   cache.NewMemory(true),
	}
}

func (d *testDeps) handler() *Handler {
	return New(store.Stores{
		Players:    d.players,
		Teams:      d.teams,
		Venues:     d.venues,
		HallOfFame: d.hof,
	}, d.client, d.cache, nil, &config.Config{})
}

// router mounts the API routes the way the server does, so path params
// resolve through chi.
func (d *testDeps) router() http.Handler {
	h := d.handler()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.PlayerSearch)
			r.Get("/halloffame/", h.InductedPlayers)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.PlayerInfo)
				r.Get("/stats/", h.PlayerStats)
				r.Get("/splits/", h.PlayerSplits)
				r.Get("/gamelog/", h.PlayerGameLog)
				r.Get("/statcast/batter/", h.StatcastBatter)
				r.Get("/statcast/pitcher/", h.StatcastPitcher)
			})
		})
		r.Get("/player/{id}/headshot/", h.PlayerHeadshot)
		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.TeamSearch)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.TeamInfo)
				r.Get("/logo/", h.TeamLogo)
				r.Get("/record/", h.TeamRecord)
				r.Get("/recent_schedule/", h.TeamRecentSchedule)
				r.Get("/roster/", h.TeamRoster)
				r.Get("/leaders/", h.TeamLeaders)
			})
		})
		r.Get("/schedule/", h.Schedule)
		r.Route("/games/{gamePk}", func(r chi.Router) {
			r.Get("/", h.GameData)
			r.Get("/prediction/", h.PredictGame)
		})
		r.Get("/standings/", h.Standings)
		r.Get("/leaders/", h.LeagueLeaders)
		r.Get("/news/", h.News)
		r.Get("/upstream/methods/", h.UpstreamOps)
		r.Get("/upstream/{op}/", h.UpstreamOp)
	})
	return r
}

func (d *testDeps) get(path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	d.router().ServeHTTP(rec, req)
	return rec
}
