package holidays

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type holidayUsecase struct {
	HolidayClient   contracts.HolidayAPIClient
	RedisRepository contracts.RedisRepository
	CacheTTL        time.Duration
	Log             *zap.Logger
}

// NewHolidayUsecase caches the holiday list in redis. redisRepository may be
// nil, every call then goes to the scheduling api.
func NewHolidayUsecase(holidayClient contracts.HolidayAPIClient, redisRepository contracts.RedisRepository, cacheTTL time.Duration, logger *zap.Logger) contracts.HolidayUsecase {
	return &holidayUsecase{
		HolidayClient:   holidayClient,
		RedisRepository: redisRepository,
		CacheTTL:        cacheTTL,
		Log:             logger,
	}
}

func (uc *holidayUsecase) List(ctx context.Context, token string) ([]models.Holiday, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("holidayUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if cached, ok := uc.cached(ctx, requestID); ok {
		uc.Log.Info("holidayUsecase.List served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingCountKey, len(cached)),
		)
		return cached, nil
	}
	return uc.Refresh(ctx, token)
}

func (uc *holidayUsecase) Refresh(ctx context.Context, token string) ([]models.Holiday, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("holidayUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	holidays, err := uc.HolidayClient.FindAll(ctx, token)
	if err != nil {
		uc.Log.Error("holidayUsecase.Refresh error calling HolidayClient.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if uc.RedisRepository != nil {
		if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyHolidays, holidays, uc.CacheTTL); err != nil {
			uc.Log.Warn("holidayUsecase.Refresh error caching holidays",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("holidayUsecase.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(holidays)),
	)
	return holidays, nil
}

// cached treats a redis failure as a cache miss.
func (uc *holidayUsecase) cached(ctx context.Context, requestID string) ([]models.Holiday, bool) {
	if uc.RedisRepository == nil {
		return nil, false
	}

	raw, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyHolidays)
	if err != nil {
		uc.Log.Warn("holidayUsecase.List error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var holidays []models.Holiday
	if err := json.Unmarshal([]byte(raw), &holidays); err != nil {
		uc.Log.Warn("holidayUsecase.List error decoding cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if holidays == nil {
		holidays = []models.Holiday{}
	}
	return holidays, true
}
