package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iftm/clients/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket refilled with RequestsPerWindow tokens
// every Window and holding at most Burst tokens.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Limits for the clients API. Each can be overridden through
// RATELIMIT_<NAME>_REQUESTS, RATELIMIT_<NAME>_WINDOW_SEC and
// RATELIMIT_<NAME>_BURST where NAME is MODERATE or LENIENT.
var (
	// ModerateLimit guards writes.
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 20})

	// LenientLimit guards reads and health probes.
	LenientLimit = ParseRateLimitFromEnv("LENIENT", RateLimitConfig{RequestsPerWindow: 600, Window: time.Minute, Burst: 100})
)

// ParseRateLimitFromEnv overlays the RATELIMIT_<prefix>_* variables on def.
// Missing, malformed or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor maps a request to the bucket it draws from.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor keys on the caller address, preferring the first
// X-Forwarded-For hop, then X-Real-IP, then the connection peer.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// MethodKeyExtractor keys on the HTTP method, so reads and writes from one
// caller can be limited independently.
func MethodKeyExtractor(r *http.Request) string {
	return r.Method
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

const (
	limiterIdleTTL      = 15 * time.Minute
	limiterCleanupEvery = 2 * time.Minute
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// rateLimiter keeps one token bucket per key. Buckets idle for longer than
// idleTTL are dropped during an occasional sweep on the request path.
type rateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*limiterEntry
	rate        rate.Limit
	burst       int
	idleTTL     time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

func newRateLimiter(config RateLimitConfig) *rateLimiter {
	ratePerSecond := float64(config.RequestsPerWindow) / config.Window.Seconds()
	return &rateLimiter{
		entries:     make(map[string]*limiterEntry),
		rate:        rate.Limit(ratePerSecond),
		burst:       config.Burst,
		idleTTL:     limiterIdleTTL,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastCleanup) >= limiterCleanupEvery {
		rl.cleanupLocked(now)
	}

	if ent, ok := rl.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(rl.rate, rl.burst)
	rl.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

func (rl *rateLimiter) cleanupLocked(now time.Time) {
	rl.lastCleanup = now
	cutoff := now.Add(-rl.idleTTL)
	for k, ent := range rl.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(rl.entries, k)
		}
	}
}

func (rl *rateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.entries)
}

// RateLimitMiddleware answers 429 once the bucket selected by keyExtractor is
// empty. Requests without a key pass through.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	return rateLimitWith(newRateLimiter(config), config, keyExtractor)
}

func rateLimitWith(rl *rateLimiter, config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyExtractor(r)
			if key == "" {
				slogx.FromContext(r.Context()).Warn("rate limit key missing, request allowed")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.getLimiter(key)
			if !limiter.Allow() {
				// Peek at when the next token arrives without consuming it.
				reservation := limiter.Reserve()
				delay := reservation.Delay()
				reservation.Cancel()

				retryAfter := max(int(delay.Seconds()), 1)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"key", key,
					"path", r.URL.Path,
					"retry_after", retryAfter,
				)
				WriteError(w, r, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, retry later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits each caller address independently.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}
