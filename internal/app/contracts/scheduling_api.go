package contracts

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"context"
)

// Scheduling api clients take the bearer token per call. Callers read it from
// a TokenSource right before the request and never hold on to it.

type AppointmentAPIClient interface {
	FindAll(ctx context.Context, token string, filter requests.AppointmentFilter) ([]models.Appointment, error)
	Create(ctx context.Context, token string, request *requests.Appointment) (*models.Appointment, error)
	Update(ctx context.Context, token, appointmentID string, request *requests.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, token, appointmentID string) error
}

type AvailabilityAPIClient interface {
	FindAll(ctx context.Context, token string) ([]models.AvailabilityEntry, error)
	Create(ctx context.Context, token string, request *requests.Availability) (*models.AvailabilityEntry, error)
	Update(ctx context.Context, token, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error)
	Delete(ctx context.Context, token, entryID string) error
}

type BlockedDateAPIClient interface {
	FindAll(ctx context.Context, token string) ([]models.BlockedDate, error)
	Create(ctx context.Context, token string, request *requests.Availability) (*models.BlockedDate, error)
	Update(ctx context.Context, token, blockedDateID string, request *requests.Availability) (*models.BlockedDate, error)
	Delete(ctx context.Context, token, blockedDateID string) error
}

type HolidayAPIClient interface {
	FindAll(ctx context.Context, token string) ([]models.Holiday, error)
}

type AuthAPIClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.LoginTokens, error)
}
