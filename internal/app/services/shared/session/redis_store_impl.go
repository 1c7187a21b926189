package session

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errSessionNotFound = errors.New("no session stored under this id")

type redisStore struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

// NewRedisStore keeps sessions under "session:<id>". Logout deletes the key
// wholesale, tokens and claims together.
func NewRedisStore(repo contracts.RedisRepository, logger *zap.Logger) contracts.SessionStore {
	return &redisStore{
		redisRepo: repo,
		Log:       logger,
	}
}

func (s *redisStore) Save(ctx context.Context, session *models.Session, exp time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("redisStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := s.redisRepo.Set(ctx, constvars.RedisKeySessionPrefix+session.SessionID, session, exp)
	if err != nil {
		s.Log.Error("redisStore.Save error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *redisStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := s.redisRepo.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		s.Log.Error("redisStore.Find error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionNotFound(errSessionNotFound)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		s.Log.Error("redisStore.Find error decoding session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSessionNotFound(err)
	}
	return &session, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("redisStore.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return s.redisRepo.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}
