package middlewares

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SessionRateLimiter throttles writes per session. A session that exceeds its
// burst is blocked for blockTime. State of a session unused for maxIdle is
// dropped, so sessions that expire without a logout do not pile up.
type SessionRateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	lastSeen  map[string]time.Time
	lastSweep time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	maxIdle   time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewSessionRateLimiter(logger *zap.Logger, burst int, per, blockTime, maxIdle time.Duration) *SessionRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &SessionRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		lastSeen:  make(map[string]time.Time),
		requests:  burst,
		per:       per,
		blockTime: blockTime,
		maxIdle:   maxIdle,
		log:       logger,
		now:       time.Now,
	}
}

// Allow reports whether key may proceed and, if not, how long it has to wait.
func (l *SessionRateLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)
	l.lastSeen[key] = now

	if blockedUntil, found := l.blocked[key]; found {
		if now.Before(blockedUntil) {
			return false, blockedUntil.Sub(now)
		}
		delete(l.blocked, key)
	}

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.per), l.requests)
		l.limiters[key] = limiter
	}

	if !limiter.AllowN(now, 1) {
		l.blocked[key] = now.Add(l.blockTime)
		return false, l.blockTime
	}
	return true, 0
}

// Len is the number of sessions with limiter state.
func (l *SessionRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// sweep runs at most once per maxIdle and must be called with l.mu held.
// A session still inside its block is kept.
func (l *SessionRateLimiter) sweep(now time.Time) {
	if l.maxIdle <= 0 || now.Sub(l.lastSweep) < l.maxIdle {
		return
	}
	l.lastSweep = now
	for key, seen := range l.lastSeen {
		if now.Sub(seen) <= l.maxIdle || now.Before(l.blocked[key]) {
			continue
		}
		delete(l.limiters, key)
		delete(l.blocked, key)
		delete(l.lastSeen, key)
	}
}

// Forget drops the state kept for key, used when a session ends.
func (l *SessionRateLimiter) Forget(key string) {
	l.mu.Lock()
	delete(l.limiters, key)
	delete(l.blocked, key)
	delete(l.lastSeen, key)
	l.mu.Unlock()
}

func (l *SessionRateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := limiterKey(r)
		allowed, retryAfter := l.Allow(key)
		if !allowed {
			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			seconds := int(math.Ceil(retryAfter.Seconds()))
			l.log.Warn("SessionRateLimiter.Limit too many writes",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingRetryAfterKey, seconds),
			)
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
			utils.BuildErrorResponse(l.log, w, exceptions.ErrRateLimited(fmt.Errorf("retry after %ds", seconds)))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func limiterKey(r *http.Request) string {
	if session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && session != nil {
		return session.SessionID
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// MutationThrottle applies the session write limiter when one is configured.
func (m *Middlewares) MutationThrottle(next http.Handler) http.Handler {
	if m.MutationLimiter == nil {
		return next
	}
	return m.MutationLimiter.Limit(next)
}
