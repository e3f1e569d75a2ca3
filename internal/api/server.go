package api

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/timothyf/baseball-data-lab-web/internal/api/handler"
	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/store"
	"github.com/timothyf/baseball-data-lab-web/internal/upstream"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(st store.Stores, client upstream.Client, appCache cache.Cache,
	dbHealth handler.DBHealthChecker, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "Link", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(st, client, appCache, dbHealth, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Players
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

		// Teams
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

		// Schedule, games, standings
		r.Get("/schedule/", h.Schedule)
		r.Route("/games/{gamePk}", func(r chi.Router) {
			r.Get("/", h.GameData)
			r.Get("/prediction/", h.PredictGame)
		})
		r.Get("/standings/", h.Standings)

		// League-wide leaderboards
		r.Get("/leaders/", h.LeagueLeaders)

		// News
		r.Get("/news/", h.News)

		// Upstream operation registry
		r.Get("/upstream/methods/", h.UpstreamOps)
		r.Get("/upstream/{op}/", h.UpstreamOp)
	})

	// Route catalog, walked from the full mux so paths come back
	// fully-prefixed.
	r.Get("/api/endpoints/", endpointList(r))

	return r
}

// endpointList walks the router and returns every registered GET route.
// The walk happens on first request, after route registration settles.
func endpointList(router chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var routes []string
		chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == http.MethodGet {
				routes = append(routes, route)
			}
			return nil
		})
		sort.Strings(routes)
		respond.JSON(w, http.StatusOK, map[string]any{"endpoints": routes})
	}
}
