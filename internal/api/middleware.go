package api

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/timothyf/baseball-data-lab-web/internal/api/respond"
)

// TimingMiddleware adds an X-Process-Time header to every response.
func TimingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		w.Header().Set("X-Process-Time", fmt.Sprintf("%.2fms", float64(elapsed.Microseconds())/1000.0))
	})
}

// ipLimiter hands out one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped by the sweep, so the map only holds
// recently seen clients.
type ipLimiter struct {
	mu      sync.Mutex
	clients map[string]*ipClient
	rate    rate.Limit
	burst   int
	idleTTL time.Duration
}

type ipClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiter(requestsPerWindow int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		clients: make(map[string]*ipClient),
		rate:    rate.Limit(float64(requestsPerWindow) / window.Seconds()),
		burst:   requestsPerWindow / 2,
		idleTTL: 2 * window,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.clients[ip]
	if !ok {
		c = &ipClient{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// sweep drops buckets idle longer than idleTTL and reports how many
// clients remain.
func (l *ipLimiter) sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idleTTL {
			delete(l.clients, ip)
		}
	}
	return len(l.clients)
}

func (l *ipLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		l.sweep(time.Now())
	}
}

// RateLimitMiddleware returns middleware that rate-limits by client IP
// with a token bucket per address.
func RateLimitMiddleware(requestsPerWindow int, window time.Duration) func(http.Handler) http.Handler {
	limiter := newIPLimiter(requestsPerWindow, window)
	go limiter.sweepLoop(window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			if ip == "" {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				w.Header().Set("Retry-After", "60")
				respond.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
