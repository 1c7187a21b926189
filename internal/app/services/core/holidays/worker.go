package holidays

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	defaultCronSpec = "@daily"
	leaderLockTTL   = 2 * time.Minute
)

// Worker refreshes the holiday cache on a cron schedule. Only the instance
// holding the redis leader lock refreshes on a given tick.
type Worker struct {
	log      *zap.Logger
	spec     string
	tokens   contracts.TokenSource
	locker   contracts.LockerService
	holidays contracts.HolidayUsecase
	cron     *cron.Cron
	runCtx   context.Context
	cancel   context.CancelFunc
}

func NewWorker(log *zap.Logger, spec string, tokens contracts.TokenSource, lockerSvc contracts.LockerService, holidayUsecase contracts.HolidayUsecase) *Worker {
	if spec == "" {
		spec = defaultCronSpec
	}
	return &Worker{log: log, spec: spec, tokens: tokens, locker: lockerSvc, holidays: holidayUsecase}
}

// Start schedules the refresh. An invalid spec falls back to @daily.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("holidays.Worker invalid cron spec, falling back to @daily",
			zap.String(constvars.LoggingCronSpecKey, w.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultCronSpec, func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("holidays.Worker started",
		zap.String(constvars.LoggingCronSpecKey, w.spec),
	)
}

// Stop waits for a running refresh to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) RunOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisKeyHolidayLeader, leaderLockTTL)
	if err != nil {
		w.log.Warn("holidays.Worker leader lock attempt failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	if !acquired {
		w.log.Info("holidays.Worker leader lock held by another instance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyHolidayLeader, lockValue)

	token, err := w.tokens.Token(ctx)
	if err != nil {
		w.log.Warn("holidays.Worker no service token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}

	holidays, err := w.holidays.Refresh(ctx, token)
	if err != nil {
		w.log.Warn("holidays.Worker refresh failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	w.log.Info("holidays.Worker refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(holidays)),
	)
}
