package ratelimiter

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const loginLimiterGroup = "LOGIN"

// loginLimiter is a fixed-window counter in redis keyed by username. The
// window counter expires on its own one second after the window closes.
type loginLimiter struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	window   time.Duration
	maxQuota int
	nowUTC   func() time.Time
}

func NewLoginLimiter(redis contracts.RedisRepository, log *zap.Logger, window time.Duration, maxQuota int) contracts.LoginLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &loginLimiter{
		redis:    redis,
		log:      log,
		window:   window,
		maxQuota: maxQuota,
		nowUTC:   func() time.Time { return time.Now().UTC() },
	}
}

// Allow returns whether another attempt fits in the current window and, when
// it does not, how many seconds remain until the next window.
func (l *loginLimiter) Allow(ctx context.Context, username string) (bool, int, error) {
	if l.maxQuota <= 0 {
		return true, 0, nil
	}

	resource := strings.ToLower(strings.TrimSpace(username))
	if resource == "" {
		return true, 0, nil
	}

	windowSec := int64(l.window / time.Second)
	if windowSec <= 0 {
		windowSec = 1
	}
	now := l.nowUTC()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", loginLimiterGroup, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, time.Duration(windowSec)*time.Second+time.Second)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		l.log.Error("loginLimiter.Allow increment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > l.maxQuota {
		nextWindowStart := (windowID + 1) * windowSec
		return false, int(nextWindowStart-now.Unix()) + 1, nil
	}
	return true, 0, nil
}
