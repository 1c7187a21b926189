package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/dto/requests"
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MockAppointmentClient struct {
	mock.Mock
}

func (m *MockAppointmentClient) FindAll(ctx context.Context, token string, filter requests.AppointmentFilter) ([]models.Appointment, error) {
	args := m.Called(ctx, token, filter)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentClient) Create(ctx context.Context, token string, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, token, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentClient) Update(ctx context.Context, token, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, token, appointmentID, request)
	appointment, _ := args.Get(0).(*models.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentClient) Delete(ctx context.Context, token, appointmentID string) error {
	args := m.Called(ctx, token, appointmentID)
	return args.Error(0)
}

type MockAvailabilityClient struct {
	mock.Mock
}

func (m *MockAvailabilityClient) FindAll(ctx context.Context, token string) ([]models.AvailabilityEntry, error) {
	args := m.Called(ctx, token)
	entries, _ := args.Get(0).([]models.AvailabilityEntry)
	return entries, args.Error(1)
}

func (m *MockAvailabilityClient) Create(ctx context.Context, token string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, token, request)
	entry, _ := args.Get(0).(*models.AvailabilityEntry)
	return entry, args.Error(1)
}

func (m *MockAvailabilityClient) Update(ctx context.Context, token, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	args := m.Called(ctx, token, entryID, request)
	entry, _ := args.Get(0).(*models.AvailabilityEntry)
	return entry, args.Error(1)
}

func (m *MockAvailabilityClient) Delete(ctx context.Context, token, entryID string) error {
	args := m.Called(ctx, token, entryID)
	return args.Error(0)
}

type MockBlockedDateClient struct {
	mock.Mock
}

func (m *MockBlockedDateClient) FindAll(ctx context.Context, token string) ([]models.BlockedDate, error) {
	args := m.Called(ctx, token)
	entries, _ := args.Get(0).([]models.BlockedDate)
	return entries, args.Error(1)
}

func (m *MockBlockedDateClient) Create(ctx context.Context, token string, request *requests.Availability) (*models.BlockedDate, error) {
	args := m.Called(ctx, token, request)
	entry, _ := args.Get(0).(*models.BlockedDate)
	return entry, args.Error(1)
}

func (m *MockBlockedDateClient) Update(ctx context.Context, token, blockedDateID string, request *requests.Availability) (*models.BlockedDate, error) {
	args := m.Called(ctx, token, blockedDateID, request)
	entry, _ := args.Get(0).(*models.BlockedDate)
	return entry, args.Error(1)
}

func (m *MockBlockedDateClient) Delete(ctx context.Context, token, blockedDateID string) error {
	args := m.Called(ctx, token, blockedDateID)
	return args.Error(0)
}

type MockHolidayUsecase struct {
	mock.Mock
}

func (m *MockHolidayUsecase) List(ctx context.Context, token string) ([]models.Holiday, error) {
	args := m.Called(ctx, token)
	holidays, _ := args.Get(0).([]models.Holiday)
	return holidays, args.Error(1)
}

func (m *MockHolidayUsecase) Refresh(ctx context.Context, token string) ([]models.Holiday, error) {
	args := m.Called(ctx, token)
	holidays, _ := args.Get(0).([]models.Holiday)
	return holidays, args.Error(1)
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidatePayload(request *requests.Availability) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockValidator) ValidateSchedulable(request *requests.Availability, holidays []models.Holiday) error {
	args := m.Called(request, holidays)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishScheduleChanged(ctx context.Context, event models.ScheduleChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// rotatingTokens counts reads and serves whatever token is current.
type rotatingTokens struct {
	mu    sync.Mutex
	token string
	reads int
}

func (r *rotatingTokens) Token(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return r.token, nil
}

func (r *rotatingTokens) set(token string) {
	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
}
