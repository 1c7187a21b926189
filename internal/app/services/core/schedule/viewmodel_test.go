package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type viewModelFixture struct {
	vm           *ViewModel
	tokens       *rotatingTokens
	appointments *MockAppointmentClient
	availability *MockAvailabilityClient
	blockedDates *MockBlockedDateClient
	holidays     *MockHolidayUsecase
	validator    *MockValidator
	publisher    *MockPublisher
}

func newViewModelFixture(t *testing.T) *viewModelFixture {
	t.Helper()
	f := &viewModelFixture{
		tokens:       &rotatingTokens{token: "token-1"},
		appointments: new(MockAppointmentClient),
		availability: new(MockAvailabilityClient),
		blockedDates: new(MockBlockedDateClient),
		holidays:     new(MockHolidayUsecase),
		validator:    new(MockValidator),
		publisher:    new(MockPublisher),
	}
	f.vm = NewViewModel(Config{
		Normalizer:   newYorkNormalizer(t),
		Tokens:       f.tokens,
		Appointments: f.appointments,
		Availability: f.availability,
		BlockedDates: f.blockedDates,
		Holidays:     f.holidays,
		Validator:    f.validator,
		Publisher:    f.publisher,
		Owner:        "user-1",
		Log:          zap.NewNop(),
		Now: func() time.Time {
			return time.Date(2025, time.June, 27, 16, 0, 0, 0, time.UTC)
		},
	})
	return f
}

func (f *viewModelFixture) expectRefresh(token string, appointments []models.Appointment, blocked []models.BlockedDate, availability []models.AvailabilityEntry, holidays []models.Holiday) {
	f.appointments.On("FindAll", mock.Anything, token, requests.AppointmentFilter{}).Return(appointments, nil)
	f.blockedDates.On("FindAll", mock.Anything, token).Return(blocked, nil)
	f.availability.On("FindAll", mock.Anything, token).Return(availability, nil)
	f.holidays.On("List", mock.Anything, token).Return(holidays, nil)
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
}

func TestViewModel_Initial(t *testing.T) {
	f := newViewModelFixture(t)

	state := f.vm.Snapshot()
	assert.Equal(t, "2025-06-27", state.SelectedDate)
	assert.Equal(t, models.ScheduleStatusIdle, state.Status)
	assert.NotNil(t, state.Appointments)
	assert.Empty(t, state.Appointments)
	assert.True(t, state.RefreshedAt.IsZero())
}

func TestViewModel_Refresh(t *testing.T) {
	t.Run("success stores every list", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1",
			[]models.Appointment{{ID: "1", Date: "2025-06-27"}},
			[]models.BlockedDate{{ID: "b1", StartTime: "2025-06-30T09:00:00-04:00", IsBlocked: true}},
			[]models.AvailabilityEntry{{ID: "a1", StartTime: "2025-07-01T09:00:00-04:00"}},
			[]models.Holiday{{Date: "2025-07-04", Name: "Independence Day", IsRecognized: true}},
		)

		require.NoError(t, f.vm.Refresh(testContext()))

		state := f.vm.Snapshot()
		assert.Equal(t, models.ScheduleStatusSuccess, state.Status)
		assert.Len(t, state.Appointments, 1)
		assert.Len(t, state.BlockedDates, 1)
		assert.Len(t, state.Availability, 1)
		assert.Len(t, state.Holidays, 1)
		assert.False(t, state.RefreshedAt.IsZero())

		markings := f.vm.Markings()
		assert.True(t, markings["2025-06-27"].Selected)
		assert.True(t, markings["2025-06-27"].HasAppointment)
		assert.True(t, markings["2025-06-30"].HasBlock)
		assert.Len(t, f.vm.AppointmentsForSelectedDate(), 1)
	})

	t.Run("unreachable api keeps previous lists", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.appointments.On("FindAll", mock.Anything, "token-1", requests.AppointmentFilter{}).
			Return([]models.Appointment{{ID: "1", Date: "2025-06-27"}}, nil).Once()
		f.appointments.On("FindAll", mock.Anything, "token-1", requests.AppointmentFilter{}).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("connection refused"))).Once()
		f.blockedDates.On("FindAll", mock.Anything, "token-1").Return([]models.BlockedDate{}, nil)
		f.availability.On("FindAll", mock.Anything, "token-1").Return([]models.AvailabilityEntry{}, nil)
		f.holidays.On("List", mock.Anything, "token-1").Return([]models.Holiday{}, nil)

		require.NoError(t, f.vm.Refresh(testContext()))
		err := f.vm.Refresh(testContext())
		require.Error(t, err)
		assert.True(t, exceptions.IsUnreachable(err))

		state := f.vm.Snapshot()
		assert.Equal(t, models.ScheduleStatusOffline, state.Status)
		assert.Equal(t, constvars.ErrClientServiceUnreachable, state.LastError)
		assert.Len(t, state.Appointments, 1)
	})

	t.Run("rejected request sets error status", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.appointments.On("FindAll", mock.Anything, "token-1", requests.AppointmentFilter{}).
			Return(nil, exceptions.ErrRemoteRejected(500, "GET", "appointments", []byte("boom")))

		err := f.vm.Refresh(testContext())
		require.Error(t, err)
		assert.Equal(t, models.ScheduleStatusError, f.vm.Status())
		f.blockedDates.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
	})

	t.Run("token is read on every call", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1", []models.Appointment{}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})
		f.expectRefresh("token-2", []models.Appointment{{ID: "2", Date: "2025-06-27"}}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})

		require.NoError(t, f.vm.Refresh(testContext()))
		f.tokens.set("token-2")
		require.NoError(t, f.vm.Refresh(testContext()))

		assert.Equal(t, 2, f.tokens.reads)
		assert.Len(t, f.vm.Snapshot().Appointments, 1)
	})

	t.Run("missing token never reaches the api", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.tokens.set("")

		err := f.vm.Refresh(testContext())
		require.Error(t, err)
		assert.Equal(t, models.ScheduleStatusError, f.vm.Status())
		f.appointments.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestViewModel_SelectDate(t *testing.T) {
	f := newViewModelFixture(t)

	require.NoError(t, f.vm.SelectDate("2025-06-28T02:00:00Z"))
	assert.Equal(t, "2025-06-27", f.vm.Snapshot().SelectedDate)

	err := f.vm.SelectDate("whenever")
	require.Error(t, err)
	assert.Equal(t, "2025-06-27", f.vm.Snapshot().SelectedDate)
}

func TestViewModel_Appointments(t *testing.T) {
	appointmentRequest := func() *requests.Appointment {
		clock := "09:30"
		return &requests.Appointment{PatientID: "p1", DoctorID: "d1", Date: "2025-06-27", Time: &clock}
	}

	t.Run("create appends and publishes", func(t *testing.T) {
		f := newViewModelFixture(t)
		created := &models.Appointment{ID: "3", Date: "2025-06-27", DurationMinutes: 30}
		f.appointments.On("Create", mock.Anything, "token-1", mock.AnythingOfType("*requests.Appointment")).Return(created, nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.MatchedBy(func(event models.ScheduleChanged) bool {
			return event.Kind == models.ChangeKindAppointment &&
				event.Action == models.ChangeActionCreate &&
				event.ID == "3" &&
				event.UserID == "user-1"
		})).Return(nil)

		request := appointmentRequest()
		got, err := f.vm.CreateAppointment(testContext(), request)
		require.NoError(t, err)
		assert.Equal(t, "3", got.GetID())
		assert.Equal(t, constvars.DefaultAppointmentDurationMinutes, request.DurationMinutes)
		assert.Len(t, f.vm.Snapshot().Appointments, 1)
		f.publisher.AssertExpectations(t)
	})

	t.Run("invalid request is rejected locally", func(t *testing.T) {
		f := newViewModelFixture(t)

		_, err := f.vm.CreateAppointment(testContext(), &requests.Appointment{DoctorID: "d1", Date: "2025-06-27"})
		require.Error(t, err)
		f.appointments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second write while one is in flight is refused", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.vm.mutation.Lock()
		defer f.vm.mutation.Unlock()

		_, err := f.vm.CreateAppointment(testContext(), appointmentRequest())
		assert.True(t, errors.Is(err, ErrMutationInFlight))
		err = f.vm.DeleteBlockedDate(testContext(), "b1")
		assert.True(t, errors.Is(err, ErrMutationInFlight))
	})

	t.Run("update of an unknown id refetches", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1",
			[]models.Appointment{{ID: "1", Date: "2025-06-27"}, {ID: "9", Date: "2025-06-28", Status: "confirmed"}},
			[]models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{},
		)
		f.appointments.On("Update", mock.Anything, "token-1", "9", mock.AnythingOfType("*requests.Appointment")).
			Return(&models.Appointment{ID: "9", Date: "2025-06-28", Status: "confirmed"}, nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.Anything).Return(nil)

		_, err := f.vm.UpdateAppointment(testContext(), "9", appointmentRequest())
		require.NoError(t, err)

		f.appointments.AssertNumberOfCalls(t, "FindAll", 1)
		assert.Len(t, f.vm.Snapshot().Appointments, 2)
	})

	t.Run("malformed success body refetches and reports", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1", []models.Appointment{{ID: "4", Date: "2025-06-27"}}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})
		f.appointments.On("Create", mock.Anything, "token-1", mock.Anything).
			Return(nil, exceptions.ErrDecodeResponse(errors.New("unexpected EOF"), "appointments"))

		_, err := f.vm.CreateAppointment(testContext(), appointmentRequest())
		require.Error(t, err)
		assert.True(t, errors.Is(err, exceptions.ErrMalformedPayload))
		assert.Len(t, f.vm.Snapshot().Appointments, 1)
		f.publisher.AssertNotCalled(t, "PublishScheduleChanged", mock.Anything, mock.Anything)
	})

	t.Run("create without a server id refetches and reports", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1", []models.Appointment{{ID: "5", Date: "2025-06-27"}}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})
		f.appointments.On("Create", mock.Anything, "token-1", mock.Anything).
			Return(&models.Appointment{Date: "2025-06-27"}, nil)

		got, err := f.vm.CreateAppointment(testContext(), appointmentRequest())
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, exceptions.ErrMalformedPayload))
		assert.True(t, errors.Is(err, ErrNeedsRefetch))
		f.appointments.AssertNumberOfCalls(t, "FindAll", 1)
		assert.Equal(t, "5", f.vm.Snapshot().Appointments[0].GetID())
		f.publisher.AssertNotCalled(t, "PublishScheduleChanged", mock.Anything, mock.Anything)
	})

	t.Run("failed delete leaves the list and goes offline", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1", []models.Appointment{{ID: "1", Date: "2025-06-27"}}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})
		require.NoError(t, f.vm.Refresh(testContext()))
		f.appointments.On("Delete", mock.Anything, "token-1", "1").Return(exceptions.ErrSendHTTPRequest(errors.New("timeout")))

		err := f.vm.DeleteAppointment(testContext(), "1")
		require.Error(t, err)
		assert.Equal(t, models.ScheduleStatusOffline, f.vm.Status())
		assert.Len(t, f.vm.Snapshot().Appointments, 1)
	})

	t.Run("delete removes locally", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.expectRefresh("token-1", []models.Appointment{{ID: "1", Date: "2025-06-27"}}, []models.BlockedDate{}, []models.AvailabilityEntry{}, []models.Holiday{})
		require.NoError(t, f.vm.Refresh(testContext()))
		f.appointments.On("Delete", mock.Anything, "token-1", "1").Return(nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		require.NoError(t, f.vm.DeleteAppointment(testContext(), "1"))
		assert.Empty(t, f.vm.Snapshot().Appointments)
	})
}

func TestViewModel_Availability(t *testing.T) {
	weekendRequest := func() *requests.Availability {
		return &requests.Availability{
			StartTime:  "2025-06-28T09:00:00-04:00",
			EndTime:    "2025-06-28T12:00:00-04:00",
			Recurrence: constvars.RecurrenceNone,
		}
	}

	t.Run("rejected day never reaches the api", func(t *testing.T) {
		f := newViewModelFixture(t)
		f.validator.On("ValidateSchedulable", mock.Anything, mock.Anything).
			Return(exceptions.ErrDayNotSchedulable(errors.New("weekend (Saturday)")))

		_, err := f.vm.CreateAvailability(testContext(), weekendRequest())
		require.Error(t, err)
		f.availability.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("validator sees cached holidays", func(t *testing.T) {
		f := newViewModelFixture(t)
		holidays := []models.Holiday{{Date: "2025-07-04", Name: "Independence Day", IsRecognized: true}}
		f.expectRefresh("token-1", []models.Appointment{}, []models.BlockedDate{}, []models.AvailabilityEntry{}, holidays)
		require.NoError(t, f.vm.Refresh(testContext()))

		request := weekendRequest()
		f.validator.On("ValidateSchedulable", request, holidays).Return(nil)
		f.availability.On("Create", mock.Anything, "token-1", request).
			Return(&models.AvailabilityEntry{ID: "a1", StartTime: request.StartTime}, nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.Anything).Return(nil)

		created, err := f.vm.CreateAvailability(testContext(), request)
		require.NoError(t, err)
		assert.Equal(t, "a1", created.GetID())
		assert.Len(t, f.vm.Snapshot().Availability, 1)
	})

	t.Run("editing an entry that stays on its weekend day skips the day check", func(t *testing.T) {
		f := newViewModelFixture(t)
		saturday := models.AvailabilityEntry{ID: "a7", StartTime: "2025-06-28T09:00:00-04:00", EndTime: "2025-06-28T11:00:00-04:00", Recurrence: constvars.RecurrenceNone}
		f.expectRefresh("token-1", []models.Appointment{}, []models.BlockedDate{}, []models.AvailabilityEntry{saturday}, []models.Holiday{})
		require.NoError(t, f.vm.Refresh(testContext()))

		request := weekendRequest()
		f.validator.On("ValidatePayload", request).Return(nil)
		f.availability.On("Update", mock.Anything, "token-1", "a7", request).
			Return(&models.AvailabilityEntry{ID: "a7", StartTime: request.StartTime, EndTime: request.EndTime}, nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.Anything).Return(nil)

		updated, err := f.vm.UpdateAvailability(testContext(), "a7", request)
		require.NoError(t, err)
		assert.Equal(t, request.EndTime, updated.EndTime)
		f.validator.AssertNotCalled(t, "ValidateSchedulable", mock.Anything, mock.Anything)
	})

	t.Run("moving an entry onto a weekend runs the day check", func(t *testing.T) {
		f := newViewModelFixture(t)
		friday := models.AvailabilityEntry{ID: "a8", StartTime: "2025-06-27T09:00:00-04:00", EndTime: "2025-06-27T11:00:00-04:00", Recurrence: constvars.RecurrenceNone}
		f.expectRefresh("token-1", []models.Appointment{}, []models.BlockedDate{}, []models.AvailabilityEntry{friday}, []models.Holiday{})
		require.NoError(t, f.vm.Refresh(testContext()))

		f.validator.On("ValidateSchedulable", mock.Anything, mock.Anything).
			Return(exceptions.ErrDayNotSchedulable(errors.New("weekend (Saturday)")))

		_, err := f.vm.UpdateAvailability(testContext(), "a8", weekendRequest())
		require.Error(t, err)
		f.availability.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blocked date on a weekend only checks the payload", func(t *testing.T) {
		f := newViewModelFixture(t)
		request := weekendRequest()
		f.validator.On("ValidatePayload", request).Return(nil)
		f.blockedDates.On("Create", mock.Anything, "token-1", request).
			Return(&models.BlockedDate{ID: "b1", StartTime: request.StartTime, IsBlocked: true}, nil)
		f.publisher.On("PublishScheduleChanged", mock.Anything, mock.Anything).Return(nil)

		_, err := f.vm.CreateBlockedDate(testContext(), request)
		require.NoError(t, err)
		assert.True(t, request.IsBlocked)
		f.validator.AssertNotCalled(t, "ValidateSchedulable", mock.Anything, mock.Anything)
		assert.True(t, f.vm.Markings()["2025-06-28"].HasBlock)
	})
}

func TestViewModel_Calendar(t *testing.T) {
	f := newViewModelFixture(t)
	until := "2025-06-30"
	f.expectRefresh("token-1",
		[]models.Appointment{
			{ID: "1", DoctorID: "doc-1", Date: "2025-06-23"},
			{ID: "2", DoctorID: "doc-2", Date: "2025-06-24"},
		},
		[]models.BlockedDate{},
		[]models.AvailabilityEntry{{
			ID:                "a1",
			DoctorID:          doctor("doc-1"),
			StartTime:         "2025-06-02T09:00:00-04:00",
			EndTime:           "2025-06-02T12:00:00-04:00",
			Recurrence:        constvars.RecurrenceWeekly,
			RecurrenceEndDate: &until,
		}},
		[]models.Holiday{},
	)
	require.NoError(t, f.vm.Refresh(testContext()))
	require.NoError(t, f.vm.SelectDate("2025-06-23"))

	view := f.vm.Calendar(models.CalendarOptions{DoctorID: "doc-1", Expand: true})
	assert.Equal(t, "2025-06-23", view.SelectedDate)
	require.Len(t, view.Appointments, 1)
	assert.Equal(t, "1", view.Appointments[0].GetID())
	require.Len(t, view.Availability, 1)
	assert.Equal(t, "2025-06-23T09:00:00-04:00", view.Availability[0].StartTime)
	assert.NotContains(t, view.Markings, "2025-06-24")

	collapsed := f.vm.Calendar(models.CalendarOptions{})
	assert.Len(t, collapsed.Appointments, 1)
	assert.Empty(t, collapsed.Availability)
	assert.Contains(t, collapsed.Markings, "2025-06-24")
}

func TestViewModel_IsBlockableDay(t *testing.T) {
	f := newViewModelFixture(t)
	f.expectRefresh("token-1", []models.Appointment{}, []models.BlockedDate{}, []models.AvailabilityEntry{},
		[]models.Holiday{{Date: "2025-07-04", Name: "Independence Day", IsRecognized: true}})
	require.NoError(t, f.vm.Refresh(testContext()))

	blockable, reason := f.vm.IsBlockableDay("2025-07-04")
	assert.True(t, blockable)
	assert.Equal(t, "holiday (Independence Day)", reason)

	blockable, _ = f.vm.IsBlockableDay("2025-07-03")
	assert.False(t, blockable)
}
