package contracts

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	FindSession(ctx context.Context, sessionID string) (*models.Session, error)
}

type HolidayUsecase interface {
	// List serves holidays from the cache and falls back to the scheduling api.
	List(ctx context.Context, token string) ([]models.Holiday, error)
	// Refresh always fetches from the scheduling api and rewrites the cache.
	Refresh(ctx context.Context, token string) ([]models.Holiday, error)
}

type AvailabilityValidator interface {
	// ValidatePayload checks shape rules that need no holiday data.
	ValidatePayload(request *requests.Availability) error
	// ValidateSchedulable runs ValidatePayload and also rejects weekends and
	// recognized holidays.
	ValidateSchedulable(request *requests.Availability, holidays []models.Holiday) error
}

// LoginLimiter throttles login attempts per username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, int, error)
}
