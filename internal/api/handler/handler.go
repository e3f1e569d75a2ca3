// Package handler provides HTTP handlers for all API endpoints.
// Handlers resolve path ids against the identity stores, call the shared
// upstream client, and reshape payloads; failures surface as a flat
// {"error": message} body.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/identity"
	"github.com/timothyf/baseball-data-lab-web/internal/store"
	"github.com/timothyf/baseball-data-lab-web/internal/upstream"
)

// searchLimit caps player and team search results.
const searchLimit = 10

// DBHealthChecker reports database connectivity for the health endpoint.
type DBHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers. One
// instance is built at startup; the upstream client and the pool live as
// long as the process.
type Handler struct {
	players  store.PlayerStore
	teams    store.TeamStore
	venues   store.VenueStore
	hof      store.HallOfFameStore
	resolver *identity.Resolver
	client   upstream.Client
	cache    cache.Cache
	dbHealth DBHealthChecker
	cfg      *config.Config
	now      func() time.Time
}

// New creates a Handler with shared dependencies. dbHealth may be nil.
func New(st store.Stores, client upstream.Client, c cache.Cache, dbHealth DBHealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		players:  st.Players,
		teams:    st.Teams,
		venues:   st.Venues,
		hof:      st.HallOfFame,
		resolver: identity.NewResolver(st.Players, st.Teams, nil),
		client:   client,
		cache:    c,
		dbHealth: dbHealth,
		cfg:      cfg,
		now:      time.Now,
	}
}

// currentSeason is the 4-digit year used when a season parameter is
// absent.
func (h *Handler) currentSeason() int {
	return h.now().Year()
}

// pathID parses an integer path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// seasonParam parses an optional ?season= query parameter, defaulting to
// the current year. Malformed values fall back to the default, matching
// the tolerant contract of the splits and gamelog endpoints.
func (h *Handler) seasonParam(r *http.Request) int {
	if s := r.URL.Query().Get("season"); s != "" {
		if season, err := strconv.Atoi(s); err == nil {
			return season
		}
	}
	return h.currentSeason()
}

// Root serves API info at /.
// @Summary API root info
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"name":    "Baseball Data Lab API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.dbHealth == nil || h.dbHealth.HealthCheck(r.Context()) != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(r.Context()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
