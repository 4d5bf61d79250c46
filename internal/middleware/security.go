package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/readtrace/readtrace-backend/pkg/clientip"
)

// SecurityHeaders sets security-related response headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

type limiterEntry struct {
	limiter *rate.Limiter
	lastUse time.Time
}

// limiterMap hands out one token-bucket limiter per IP and evicts idle
// entries in the background.
type limiterMap struct {
	mu         sync.Mutex
	entries    map[string]*limiterEntry
	every      time.Duration
	burst      int
	cleanupRun bool
}

func newLimiterMap(every time.Duration, burst int) *limiterMap {
	return &limiterMap{entries: make(map[string]*limiterEntry), every: every, burst: burst}
}

const (
	limiterCleanupInterval = 5 * time.Minute
	limiterTTL             = 30 * time.Minute
)

func (m *limiterMap) get(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCleanupOnce()
	e, ok := m.entries[ip]
	if !ok {
		e = &limiterEntry{
			limiter: rate.NewLimiter(rate.Every(m.every), m.burst),
			lastUse: time.Now(),
		}
		m.entries[ip] = e
	}
	e.lastUse = time.Now()
	return e.limiter
}

func (m *limiterMap) startCleanupOnce() {
	if m.cleanupRun {
		return
	}
	m.cleanupRun = true
	go func() {
		ticker := time.NewTicker(limiterCleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			m.mu.Lock()
			now := time.Now()
			for ip, e := range m.entries {
				if now.Sub(e.lastUse) > limiterTTL {
					delete(m.entries, ip)
				}
			}
			m.mu.Unlock()
		}
	}()
}

var globalLimiters = newLimiterMap(time.Second, 10)

// GlobalRateLimit limits each IP to 1 req/s, burst 10. Returns 429 when exceeded.
func GlobalRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.RealClientIP(r)
		if !globalLimiters.get(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Too many requests. Please slow down."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

var loginLimiters = newLimiterMap(5*time.Second, 2)

var loginPaths = map[string]bool{
	"/api/admin/signin": true,
}

// LoginRateLimit applies a stricter limit to sign-in routes only. Use after GlobalRateLimit.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !loginPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		ip := clientip.RealClientIP(r)
		if !loginLimiters.get(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Too many login attempts. Please try again later."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ProductionSecurity returns the middleware chain used in production:
// SecurityHeaders -> GlobalRateLimit -> LoginRateLimit.
func ProductionSecurity() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders,
		GlobalRateLimit,
		LoginRateLimit,
	}
}
