package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"finplanner/internal/errors"
	"finplanner/internal/handlers"
)

const (
	sweepInterval = time.Minute
	visitorTTL    = 3 * time.Minute
)

// visitor pairs a per-IP token bucket with the time of its last request
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.RWMutex

	requestsPerSecond = 5
	burstSize         = 10

	sweepOnce sync.Once
)

// RateLimiter throttles requests per client IP with a token bucket.
// Buckets idle for longer than visitorTTL are swept once a minute.
func RateLimiter() echo.MiddlewareFunc {
	sweepOnce.Do(func() {
		go sweepVisitors()
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := getIP(c)

			if !limiterFor(ip).Allow() {
				log.Warn().
					Str("trace_id", GetTraceID(c)).
					Str("ip", ip).
					Str("path", c.Request().URL.Path).
					Msg("request rate limited")
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// RateLimiterWithConfig overrides the default rate and burst before
// building the middleware. Buckets created earlier keep their old limits.
func RateLimiterWithConfig(rps int, burst int) echo.MiddlewareFunc {
	requestsPerSecond = rps
	burstSize = burst

	return RateLimiter()
}

func limiterFor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		v = &visitor{
			limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
			lastSeen: time.Now(),
		}
		visitors[ip] = v
		return v.limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// getIP resolves the client address, trusting proxy headers when present.
// Only the first X-Forwarded-For hop identifies the client; later entries
// name the proxies the request passed through.
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func sweepVisitors() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		mu.Lock()
		removed := 0
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > visitorTTL {
				delete(visitors, ip)
				removed++
			}
		}
		remaining := len(visitors)
		mu.Unlock()

		if removed > 0 {
			log.Debug().
				Int("removed", removed).
				Int("remaining", remaining).
				Msg("rate limiter visitor sweep")
		}
	}
}
