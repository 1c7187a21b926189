package schedule

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Normalizer   utils.DateNormalizer
	Tokens       contracts.TokenSource
	Appointments contracts.AppointmentAPIClient
	Availability contracts.AvailabilityAPIClient
	BlockedDates contracts.BlockedDateAPIClient
	Holidays     contracts.HolidayUsecase
	Validator    contracts.AvailabilityValidator
	// Publisher is optional.
	Publisher contracts.EventPublisher
	// Owner is the user id stamped on published events.
	Owner string
	Log   *zap.Logger
	Now   func() time.Time
}

// ViewModel holds one user's calendar: the fetched lists, the selected day and
// the request lifecycle status. Writes are serialized per view-model and only
// touch local lists after the scheduling api acknowledged them.
type ViewModel struct {
	normalizer   utils.DateNormalizer
	tokens       contracts.TokenSource
	appointments contracts.AppointmentAPIClient
	availability contracts.AvailabilityAPIClient
	blockedDates contracts.BlockedDateAPIClient
	holidays     contracts.HolidayUsecase
	validator    contracts.AvailabilityValidator
	publisher    contracts.EventPublisher
	owner        string
	log          *zap.Logger
	now          func() time.Time

	mutation sync.Mutex

	mu               sync.RWMutex
	selectedDate     string
	status           models.ScheduleStatus
	lastErr          error
	refreshedAt      time.Time
	appointmentList  []models.Appointment
	blockedDateList  []models.BlockedDate
	availabilityList []models.AvailabilityEntry
	holidayList      []models.Holiday
}

func NewViewModel(cfg Config) *ViewModel {
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ViewModel{
		normalizer:       cfg.Normalizer,
		tokens:           cfg.Tokens,
		appointments:     cfg.Appointments,
		availability:     cfg.Availability,
		blockedDates:     cfg.BlockedDates,
		holidays:         cfg.Holidays,
		validator:        cfg.Validator,
		publisher:        cfg.Publisher,
		owner:            cfg.Owner,
		log:              cfg.Log,
		now:              cfg.Now,
		selectedDate:     cfg.Now().In(cfg.Normalizer.Location()).Format(constvars.LayoutDateOnly),
		status:           models.ScheduleStatusIdle,
		appointmentList:  []models.Appointment{},
		blockedDateList:  []models.BlockedDate{},
		availabilityList: []models.AvailabilityEntry{},
		holidayList:      []models.Holiday{},
	}
}

// Refresh refetches every list. On failure the previous lists stay in place
// and the status tells whether the api was unreachable or answered with an error.
func (vm *ViewModel) Refresh(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	vm.log.Info("ViewModel.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := vm.token(ctx)
	if err != nil {
		vm.fail(err)
		return err
	}
	vm.setStatus(models.ScheduleStatusLoading)

	appointments, err := vm.appointments.FindAll(ctx, token, requests.AppointmentFilter{})
	if err != nil {
		return vm.refreshFailed(requestID, "appointments", err)
	}
	blockedDates, err := vm.blockedDates.FindAll(ctx, token)
	if err != nil {
		return vm.refreshFailed(requestID, "blocked dates", err)
	}
	availability, err := vm.availability.FindAll(ctx, token)
	if err != nil {
		return vm.refreshFailed(requestID, "availability", err)
	}
	holidays, err := vm.holidays.List(ctx, token)
	if err != nil {
		return vm.refreshFailed(requestID, "holidays", err)
	}

	vm.mu.Lock()
	vm.appointmentList = appointments
	vm.blockedDateList = blockedDates
	vm.availabilityList = availability
	vm.holidayList = holidays
	vm.status = models.ScheduleStatusSuccess
	vm.lastErr = nil
	vm.refreshedAt = vm.now()
	vm.mu.Unlock()

	vm.log.Info("ViewModel.Refresh succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)+len(blockedDates)+len(availability)),
	)
	return nil
}

func (vm *ViewModel) refreshFailed(requestID, what string, err error) error {
	vm.fail(err)
	vm.log.Error(fmt.Sprintf("ViewModel.Refresh error fetching %s", what),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStatusKey, string(vm.Status())),
		zap.Error(err),
	)
	return err
}

// SelectDate accepts any date or timestamp and stores its calendar day.
func (vm *ViewModel) SelectDate(date string) error {
	day, ok := vm.normalizer.Normalize(date)
	if !ok {
		return exceptions.ErrCannotParseDate(fmt.Errorf("invalid date %q", date))
	}
	vm.mu.Lock()
	vm.selectedDate = day
	vm.mu.Unlock()
	return nil
}

func (vm *ViewModel) Status() models.ScheduleStatus {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.status
}

func (vm *ViewModel) Snapshot() models.ScheduleState {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	state := models.ScheduleState{
		SelectedDate: vm.selectedDate,
		Status:       vm.status,
		Appointments: append(make([]models.Appointment, 0, len(vm.appointmentList)), vm.appointmentList...),
		BlockedDates: append(make([]models.BlockedDate, 0, len(vm.blockedDateList)), vm.blockedDateList...),
		Availability: append(make([]models.AvailabilityEntry, 0, len(vm.availabilityList)), vm.availabilityList...),
		Holidays:     append(make([]models.Holiday, 0, len(vm.holidayList)), vm.holidayList...),
		RefreshedAt:  vm.refreshedAt,
	}
	if vm.lastErr != nil {
		state.LastError = clientMessage(vm.lastErr)
	}
	return state
}

func (vm *ViewModel) Markings() map[string]models.CalendarMarking {
	state := vm.Snapshot()
	return BuildMarkings(vm.normalizer, state.SelectedDate, state.Appointments, blocksOf(state.BlockedDates, state.Availability))
}

func (vm *ViewModel) AppointmentsForSelectedDate() []models.Appointment {
	state := vm.Snapshot()
	return AppointmentsForDate(vm.normalizer, state.SelectedDate, state.Appointments)
}

func (vm *ViewModel) BlockedDatesForSelectedDate() []models.BlockedDate {
	state := vm.Snapshot()
	return BlockedDatesForDate(vm.normalizer, state.SelectedDate, state.BlockedDates)
}

// Calendar renders the selected day, optionally narrowed to one doctor and
// with recurring entries expanded over the visible window.
func (vm *ViewModel) Calendar(options models.CalendarOptions) models.CalendarView {
	state := vm.Snapshot()

	appointments := state.Appointments
	if options.DoctorID != "" {
		appointments = make([]models.Appointment, 0, len(state.Appointments))
		for _, appointment := range state.Appointments {
			if appointment.DoctorID.String() == options.DoctorID {
				appointments = append(appointments, appointment)
			}
		}
	}
	blockedDates := FilterByDoctor(state.BlockedDates, options.DoctorID)
	availability := FilterByDoctor(state.Availability, options.DoctorID)

	if options.Expand {
		from, to := vm.window(state.SelectedDate, options)
		blockedDates = ExpandRecurrences(vm.normalizer, blockedDates, from, to)
		availability = ExpandRecurrences(vm.normalizer, availability, from, to)
	}
	blockedDates = DedupeAvailability(vm.normalizer, blockedDates)
	availability = DedupeAvailability(vm.normalizer, availability)

	return models.CalendarView{
		SelectedDate: state.SelectedDate,
		Status:       state.Status,
		Markings:     BuildMarkings(vm.normalizer, state.SelectedDate, appointments, blocksOf(blockedDates, availability)),
		Appointments: AppointmentsForDate(vm.normalizer, state.SelectedDate, appointments),
		BlockedDates: BlockedDatesForDate(vm.normalizer, state.SelectedDate, blockedDates),
		Availability: ItemsForDate(vm.normalizer, state.SelectedDate, availability),
	}
}

// window defaults to the calendar month around the selected day.
func (vm *ViewModel) window(selectedDate string, options models.CalendarOptions) (string, string) {
	anchor, ok := vm.normalizer.Day(selectedDate)
	if !ok {
		anchor, _ = vm.normalizer.Day(vm.now().In(vm.normalizer.Location()).Format(constvars.LayoutDateOnly))
	}
	from, to := options.From, options.To
	if from == "" {
		from = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location()).Format(constvars.LayoutDateOnly)
	}
	if to == "" {
		to = time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, anchor.Location()).Format(constvars.LayoutDateOnly)
	}
	return from, to
}

func (vm *ViewModel) IsBlockableDay(date string) (bool, string) {
	vm.mu.RLock()
	holidays := vm.holidayList
	vm.mu.RUnlock()
	return BlockableDayReason(vm.normalizer, date, holidays)
}

func (vm *ViewModel) CreateAppointment(ctx context.Context, request *requests.Appointment) (*models.Appointment, error) {
	if !vm.mutation.TryLock() {
		return nil, exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.DurationMinutes <= 0 {
		request.DurationMinutes = constvars.DefaultAppointmentDurationMinutes
	}

	token, err := vm.token(ctx)
	if err != nil {
		return nil, err
	}
	created, err := vm.appointments.Create(ctx, token, request)
	if err != nil {
		return nil, vm.writeFailed(ctx, models.ChangeKindAppointment, models.ChangeActionCreate, err)
	}

	vm.mu.Lock()
	err = reconcile(&vm.appointmentList, models.ChangeKindAppointment, models.ChangeActionCreate, *created)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAppointment, models.ChangeActionCreate, created.GetID(), err)
	return serverRecord(created, models.ChangeKindAppointment, err)
}

func (vm *ViewModel) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.Appointment) (*models.Appointment, error) {
	if !vm.mutation.TryLock() {
		return nil, exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.DurationMinutes <= 0 {
		request.DurationMinutes = constvars.DefaultAppointmentDurationMinutes
	}

	token, err := vm.token(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := vm.appointments.Update(ctx, token, appointmentID, request)
	if err != nil {
		return nil, vm.writeFailed(ctx, models.ChangeKindAppointment, models.ChangeActionUpdate, err)
	}

	vm.mu.Lock()
	err = reconcile(&vm.appointmentList, models.ChangeKindAppointment, models.ChangeActionUpdate, *updated)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAppointment, models.ChangeActionUpdate, updated.GetID(), err)
	return serverRecord(updated, models.ChangeKindAppointment, err)
}

func (vm *ViewModel) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if !vm.mutation.TryLock() {
		return exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	token, err := vm.token(ctx)
	if err != nil {
		return err
	}
	if err := vm.appointments.Delete(ctx, token, appointmentID); err != nil {
		return vm.writeFailed(ctx, models.ChangeKindAppointment, models.ChangeActionDelete, err)
	}

	deleted := models.Appointment{ID: models.FlexibleID(appointmentID)}
	vm.mu.Lock()
	err = reconcile(&vm.appointmentList, models.ChangeKindAppointment, models.ChangeActionDelete, deleted)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAppointment, models.ChangeActionDelete, appointmentID, err)
	return nil
}

// CreateAvailability rejects weekends, recognized holidays and malformed
// recurrence payloads before anything is sent.
func (vm *ViewModel) CreateAvailability(ctx context.Context, request *requests.Availability) (*models.AvailabilityEntry, error) {
	if !vm.mutation.TryLock() {
		return nil, exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	if err := vm.validator.ValidateSchedulable(request, vm.Snapshot().Holidays); err != nil {
		return nil, err
	}

	token, err := vm.token(ctx)
	if err != nil {
		return nil, err
	}
	created, err := vm.availability.Create(ctx, token, request)
	if err != nil {
		return nil, vm.writeFailed(ctx, models.ChangeKindAvailability, models.ChangeActionCreate, err)
	}

	vm.mu.Lock()
	err = reconcile(&vm.availabilityList, models.ChangeKindAvailability, models.ChangeActionCreate, *created)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAvailability, models.ChangeActionCreate, created.GetID(), err)
	return serverRecord(created, models.ChangeKindAvailability, err)
}

// UpdateAvailability only applies the weekend and holiday check when the
// entry moves to another day. An entry already on such a day can still be edited.
func (vm *ViewModel) UpdateAvailability(ctx context.Context, entryID string, request *requests.Availability) (*models.AvailabilityEntry, error) {
	if !vm.mutation.TryLock() {
		return nil, exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	check := func() error { return vm.validator.ValidateSchedulable(request, vm.Snapshot().Holidays) }
	if vm.keepsDay(entryID, request) {
		check = func() error { return vm.validator.ValidatePayload(request) }
	}
	if err := check(); err != nil {
		return nil, err
	}

	token, err := vm.token(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := vm.availability.Update(ctx, token, entryID, request)
	if err != nil {
		return nil, vm.writeFailed(ctx, models.ChangeKindAvailability, models.ChangeActionUpdate, err)
	}

	vm.mu.Lock()
	err = reconcile(&vm.availabilityList, models.ChangeKindAvailability, models.ChangeActionUpdate, *updated)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAvailability, models.ChangeActionUpdate, updated.GetID(), err)
	return serverRecord(updated, models.ChangeKindAvailability, err)
}

func (vm *ViewModel) DeleteAvailability(ctx context.Context, entryID string) error {
	if !vm.mutation.TryLock() {
		return exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	token, err := vm.token(ctx)
	if err != nil {
		return err
	}
	if err := vm.availability.Delete(ctx, token, entryID); err != nil {
		return vm.writeFailed(ctx, models.ChangeKindAvailability, models.ChangeActionDelete, err)
	}

	deleted := models.AvailabilityEntry{ID: models.FlexibleID(entryID)}
	vm.mu.Lock()
	err = reconcile(&vm.availabilityList, models.ChangeKindAvailability, models.ChangeActionDelete, deleted)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindAvailability, models.ChangeActionDelete, entryID, err)
	return nil
}

// CreateBlockedDate checks the payload shape only. Blocking a weekend or a
// holiday is allowed.
func (vm *ViewModel) CreateBlockedDate(ctx context.Context, request *requests.Availability) (*models.BlockedDate, error) {
	if !vm.mutation.TryLock() {
		return nil, exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	request.IsBlocked = true
	if err := vm.validator.ValidatePayload(request); err != nil {
		return nil, err
	}

	token, err := vm.token(ctx)
	if err != nil {
		return nil, err
	}
	created, err := vm.blockedDates.Create(ctx, token, request)
	if err != nil {
		return nil, vm.writeFailed(ctx, models.ChangeKindBlockedDate, models.ChangeActionCreate, err)
	}

	vm.mu.Lock()
	err = reconcile(&vm.blockedDateList, models.ChangeKindBlockedDate, models.ChangeActionCreate, *created)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindBlockedDate, models.ChangeActionCreate, created.GetID(), err)
	return serverRecord(created, models.ChangeKindBlockedDate, err)
}

func (vm *ViewModel) DeleteBlockedDate(ctx context.Context, blockedDateID string) error {
	if !vm.mutation.TryLock() {
		return exceptions.ErrMutationInFlight(ErrMutationInFlight)
	}
	defer vm.mutation.Unlock()

	token, err := vm.token(ctx)
	if err != nil {
		return err
	}
	if err := vm.blockedDates.Delete(ctx, token, blockedDateID); err != nil {
		return vm.writeFailed(ctx, models.ChangeKindBlockedDate, models.ChangeActionDelete, err)
	}

	deleted := models.BlockedDate{ID: models.FlexibleID(blockedDateID)}
	vm.mu.Lock()
	err = reconcile(&vm.blockedDateList, models.ChangeKindBlockedDate, models.ChangeActionDelete, deleted)
	vm.mu.Unlock()
	vm.afterWrite(ctx, models.ChangeKindBlockedDate, models.ChangeActionDelete, blockedDateID, err)
	return nil
}

// keepsDay reports whether request leaves the loaded entry on its current day.
// An entry that is not loaded counts as moving.
func (vm *ViewModel) keepsDay(entryID string, request *requests.Availability) bool {
	day := request.Date
	if day == "" {
		day = request.StartTime
	}
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	for _, entry := range vm.availabilityList {
		if entry.GetID() == entryID {
			return vm.normalizer.SameDay(entry.CalendarDate(), day)
		}
	}
	return false
}

// serverRecord turns a confirmed write that came back without an id into a
// malformed payload error. The lists were already fetched again by afterWrite.
func serverRecord[T Identifiable](record *T, kind models.ChangeKind, reconcileErr error) (*T, error) {
	if (*record).GetID() == "" {
		return nil, exceptions.ErrDecodeResponse(reconcileErr, string(kind))
	}
	return record, nil
}

// reconcile must be called with vm.mu held.
func reconcile[T Identifiable](list *[]T, kind models.ChangeKind, action models.ChangeAction, record T) error {
	updated, err := ApplyOptimisticWrite(kind, action, record, *list)
	if err != nil {
		return err
	}
	*list = updated
	return nil
}

// afterWrite runs once the scheduling api acknowledged a write. A list that
// could not be reconciled is fetched again.
func (vm *ViewModel) afterWrite(ctx context.Context, kind models.ChangeKind, action models.ChangeAction, id string, reconcileErr error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if errors.Is(reconcileErr, ErrNeedsRefetch) {
		vm.log.Warn("ViewModel local list out of sync, refetching",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingKindKey, string(kind)),
			zap.String(constvars.LoggingActionKey, string(action)),
			zap.Error(reconcileErr),
		)
		_ = vm.Refresh(ctx)
	}
	if id == "" {
		return
	}

	vm.log.Info("ViewModel write confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKindKey, string(kind)),
		zap.String(constvars.LoggingActionKey, string(action)),
		zap.String(constvars.LoggingRecordIDKey, id),
	)
	vm.publish(ctx, models.ScheduleChanged{
		Kind:       kind,
		Action:     action,
		ID:         id,
		UserID:     vm.owner,
		OccurredAt: vm.now().UTC(),
	})
}

// writeFailed leaves the lists untouched. A 2xx with an unreadable body means
// the write most likely went through, so the lists are fetched again and the
// error is still reported to the caller.
func (vm *ViewModel) writeFailed(ctx context.Context, kind models.ChangeKind, action models.ChangeAction, err error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	vm.log.Error("ViewModel write failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingKindKey, string(kind)),
		zap.String(constvars.LoggingActionKey, string(action)),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, exceptions.ErrMalformedPayload):
		_ = vm.Refresh(ctx)
	case exceptions.IsUnreachable(err):
		vm.setStatus(models.ScheduleStatusOffline)
	}
	return err
}

func (vm *ViewModel) publish(ctx context.Context, event models.ScheduleChanged) {
	if vm.publisher == nil {
		return
	}
	if err := vm.publisher.PublishScheduleChanged(ctx, event); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		vm.log.Warn("ViewModel error publishing schedule change",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// token reads the bearer token right before each request.
func (vm *ViewModel) token(ctx context.Context) (string, error) {
	if vm.tokens == nil {
		return "", exceptions.ErrTokenMissing(nil)
	}
	token, err := vm.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}
	return token, nil
}

func (vm *ViewModel) setStatus(status models.ScheduleStatus) {
	vm.mu.Lock()
	vm.status = status
	vm.mu.Unlock()
}

func (vm *ViewModel) fail(err error) {
	status := models.ScheduleStatusError
	if exceptions.IsUnreachable(err) {
		status = models.ScheduleStatusOffline
	}
	vm.mu.Lock()
	vm.status = status
	vm.lastErr = err
	vm.mu.Unlock()
}

func blocksOf(blockedDates []models.BlockedDate, availability []models.AvailabilityEntry) []models.AvailabilityEntry {
	blocks := make([]models.AvailabilityEntry, 0, len(blockedDates)+len(availability))
	blocks = append(blocks, blockedDates...)
	for _, entry := range availability {
		if entry.IsBlocked {
			blocks = append(blocks, entry)
		}
	}
	return blocks
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
