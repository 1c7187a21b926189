package middlewares

import (
	"clinicbook-service/internal/app/config"
	"clinicbook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	AuthUsecase     contracts.AuthUsecase
	InternalConfig  *config.InternalConfig
	MutationLimiter *SessionRateLimiter
}

func NewMiddlewares(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig, mutationLimiter *SessionRateLimiter) *Middlewares {
	return &Middlewares{
		Log:             logger,
		AuthUsecase:     authUsecase,
		InternalConfig:  internalConfig,
		MutationLimiter: mutationLimiter,
	}
}
