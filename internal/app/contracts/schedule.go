package contracts

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"context"
)

// ScheduleViewModel is the per-session calendar state shared by the BFF and the CLI.
type ScheduleViewModel interface {
	Refresh(ctx context.Context) error
	SelectDate(date string) error
	Snapshot() models.ScheduleState
	Markings() map[string]models.CalendarMarking
	AppointmentsForSelectedDate() []models.Appointment
	BlockedDatesForSelectedDate() []models.BlockedDate
	Calendar(options models.CalendarOptions) models.CalendarView
	IsBlockableDay(date string) (bool, string)

	CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error

	CreateAvailability(ctx context.Context, request *requests.Availability) (*models.AvailabilityEntry, error)
	UpdateAvailability(ctx context.Context, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error)
	DeleteAvailability(ctx context.Context, entryID string) error

	CreateBlockedDate(ctx context.Context, request *requests.Availability) (*models.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, blockedDateID string) error
}

type ScheduleRegistry interface {
	ForSession(sessionID string) ScheduleViewModel
	Evict(sessionID string)
}
