// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/seed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultLeagueIDs selects the American and National leagues in every
// standings call.
const DefaultLeagueIDs = "103,104"

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	PlayerIDInfosTable   = "player_id_infos"
	TeamIDInfosTable     = "team_id_infos"
	VenuesTable          = "venues"
	HallOfFameVotesTable = "hall_of_fame_votes"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Upstream data sources
	StatsAPIBaseURL   string
	FangraphsBaseURL  string
	SavantBaseURL     string
	SpotsBaseURL      string
	HeadshotBaseURL   string
	RegisterBaseURL   string
	UpstreamRateLimit int // requests per minute

	// Cache
	CacheEnabled bool
	RedisURL     string // empty = in-memory cache
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", envOr("SUPABASE_DATABASE_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL or SUPABASE_DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		StatsAPIBaseURL:   envOr("STATSAPI_BASE_URL", "https://statsapi.mlb.com"),
		FangraphsBaseURL:  envOr("FANGRAPHS_BASE_URL", "https://www.fangraphs.com"),
		SavantBaseURL:     envOr("SAVANT_BASE_URL", "https://baseballsavant.mlb.com"),
		SpotsBaseURL:      envOr("SPOTS_BASE_URL", "https://midfield.mlbstatic.com/v1/team"),
		HeadshotBaseURL:   envOr("HEADSHOT_BASE_URL", "https://img.mlbstatic.com/mlb-photos"),
		RegisterBaseURL:   envOr("REGISTER_BASE_URL", "https://raw.githubusercontent.com/chadwickbureau/register/master/data"),
		UpstreamRateLimit: envInt("UPSTREAM_REQUESTS_PER_MINUTE", 240),

		CacheEnabled: envBool("CACHE_ENABLED", true),
		RedisURL:     envOr("REDIS_URL", ""),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
