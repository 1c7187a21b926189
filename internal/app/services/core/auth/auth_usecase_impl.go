package auth

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

var errAccessTokenExpired = errors.New("access token expired")

type authUsecase struct {
	AuthClient   contracts.AuthAPIClient
	SessionStore contracts.SessionStore
	LoginLimiter contracts.LoginLimiter
	Registry     contracts.ScheduleRegistry
	SessionTTL   time.Duration
	Log          *zap.Logger
	now          func() time.Time
}

// NewAuthUsecase wires login against the scheduling api. limiter and
// registry may be nil.
func NewAuthUsecase(
	authClient contracts.AuthAPIClient,
	sessionStore contracts.SessionStore,
	limiter contracts.LoginLimiter,
	registry contracts.ScheduleRegistry,
	sessionTTL time.Duration,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthClient:   authClient,
		SessionStore: sessionStore,
		LoginLimiter: limiter,
		Registry:     registry,
		SessionTTL:   sessionTTL,
		Log:          logger,
		now:          time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("authUsecase.Login validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	if uc.LoginLimiter != nil {
		allowed, retryAfter, err := uc.LoginLimiter.Allow(ctx, request.Username)
		if err != nil {
			uc.Log.Warn("authUsecase.Login limiter unavailable, letting attempt through",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !allowed {
			uc.Log.Warn("authUsecase.Login too many attempts",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingRetryAfterKey, retryAfter),
			)
			return nil, exceptions.ErrRateLimited(fmt.Errorf("retry after %ds", retryAfter))
		}
	}

	tokens, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling AuthClient.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	claims, err := utils.DecodeClaims(tokens.Access)
	if err != nil {
		uc.Log.Error("authUsecase.Login error decoding access token claims",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeClaims(err)
	}

	now := uc.now()
	if claims.IsExpired(now) {
		return nil, exceptions.ErrTokenInvalidOrExpired(errAccessTokenExpired)
	}

	session := &models.Session{
		SessionID:    utils.GenerateSessionID(),
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
		Claims:       *claims,
		CreatedAt:    now.UTC(),
	}

	if err := uc.SessionStore.Save(ctx, session, uc.sessionTTL(claims, now)); err != nil {
		uc.Log.Error("authUsecase.Login error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, claims.Role),
	)
	return &responses.Login{
		SessionID: session.SessionID,
		UserID:    claims.UserID,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// sessionTTL never outlives the access token since there is no refresh flow.
func (uc *authUsecase) sessionTTL(claims *models.Claims, now time.Time) time.Duration {
	ttl := uc.SessionTTL
	if !claims.ExpiresAt.IsZero() {
		if untilExpiry := claims.ExpiresAt.Sub(now); ttl <= 0 || untilExpiry < ttl {
			ttl = untilExpiry
		}
	}
	return ttl
}

// Logout clears the stored tokens and claims together with the cached calendar.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.SessionStore.Delete(ctx, sessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if uc.Registry != nil {
		uc.Registry.Evict(sessionID)
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) FindSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Claims.IsExpired(uc.now()) {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Info("authUsecase.FindSession access token expired, clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		_ = uc.Logout(ctx, sessionID)
		return nil, exceptions.ErrTokenInvalidOrExpired(errAccessTokenExpired)
	}
	return session, nil
}
