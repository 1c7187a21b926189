package routers

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) FindSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

type MockScheduleRegistry struct {
	mock.Mock
}

func (m *MockScheduleRegistry) ForSession(sessionID string) contracts.ScheduleViewModel {
	args := m.Called(sessionID)
	return args.Get(0).(contracts.ScheduleViewModel)
}

func (m *MockScheduleRegistry) Evict(sessionID string) {
	m.Called(sessionID)
}

type MockScheduleViewModel struct {
	mock.Mock
}

func (m *MockScheduleViewModel) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockScheduleViewModel) SelectDate(date string) error {
	args := m.Called(date)
	return args.Error(0)
}

func (m *MockScheduleViewModel) Snapshot() models.ScheduleState {
	args := m.Called()
	return args.Get(0).(models.ScheduleState)
}

func (m *MockScheduleViewModel) Markings() map[string]models.CalendarMarking {
	args := m.Called()
	return args.Get(0).(map[string]models.CalendarMarking)
}

func (m *MockScheduleViewModel) AppointmentsForSelectedDate() []models.Appointment {
	args := m.Called()
	return args.Get(0).([]models.Appointment)
}

func (m *MockScheduleViewModel) BlockedDatesForSelectedDate() []models.BlockedDate {
	args := m.Called()
	return args.Get(0).([]models.BlockedDate)
}

func (m *MockScheduleViewModel) Calendar(options models.CalendarOptions) models.CalendarView {
	args := m.Called(options)
	return args.Get(0).(models.CalendarView)
}

func (m *MockScheduleViewModel) IsBlockableDay(date string) (bool, string) {
	args := m.Called(date)
	return args.Bool(0), args.String(1)
}

func (m *MockScheduleViewModel) CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockScheduleViewModel) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockScheduleViewModel) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockScheduleViewModel) CreateAvailability(ctx context.Context, request *requests.Availability) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityEntry), args.Error(1)
}

func (m *MockScheduleViewModel) UpdateAvailability(ctx context.Context, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, entryID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AvailabilityEntry), args.Error(1)
}

func (m *MockScheduleViewModel) DeleteAvailability(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockScheduleViewModel) CreateBlockedDate(ctx context.Context, request *requests.Availability) (*models.BlockedDate, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlockedDate), args.Error(1)
}

func (m *MockScheduleViewModel) DeleteBlockedDate(ctx context.Context, blockedDateID string) error {
	args := m.Called(ctx, blockedDateID)
	return args.Error(0)
}
