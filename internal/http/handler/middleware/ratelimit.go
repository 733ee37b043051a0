package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const visitorTTL = 5 * time.Minute

// RateLimit configures a RateLimiter. Forwarding headers are only honoured
// with TrustForwardedHeaders set, i.e. behind a proxy that overwrites them.
type RateLimit struct {
	RequestsPerMinute     float64
	Burst                 int
	TrustForwardedHeaders bool
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client independently. Idle clients are evicted
// after visitorTTL.
type RateLimiter struct {
	logs     *zap.SugaredLogger
	limit    RateLimit
	mu       sync.Mutex
	visitors map[string]*visitor
	lastGC   time.Time
	clockNow func() time.Time
}

func NewRateLimiter(logger *zap.SugaredLogger, limit RateLimit) *RateLimiter {
	return &RateLimiter{
		logs:     logger,
		limit:    limit,
		visitors: make(map[string]*visitor),
		clockNow: time.Now,
	}
}

// Limit rejects requests above the configured rate with 429. A zero rate
// disables limiting.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.limit.RequestsPerMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		client := rl.clientID(r)
		if !rl.obtainLimiter(client).Allow() {
			rl.logs.Warnw("rate limit exceeded",
				"client", client,
				"path", r.URL.Path,
				"request_id", requestID(r))
			writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) obtainLimiter(id string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.clockNow()
	if now.Sub(rl.lastGC) > visitorTTL {
		for key, v := range rl.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(rl.visitors, key)
			}
		}
		rl.lastGC = now
	}

	v, ok := rl.visitors[id]
	if !ok {
		burst := rl.limit.Burst
		if burst <= 0 {
			burst = 1
		}
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(rl.limit.RequestsPerMinute/60.0), burst)}
		rl.visitors[id] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (rl *RateLimiter) clientID(r *http.Request) string {
	if rl.limit.TrustForwardedHeaders {
		if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
			return ip.String()
		}
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
