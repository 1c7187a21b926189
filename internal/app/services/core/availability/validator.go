package availability

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/app/services/core/schedule"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"errors"
	"fmt"
)

var (
	ErrEndDateNotAllowed  = errors.New("recurrence end date set on a non recurring entry")
	ErrEndDateRequired    = errors.New("recurrence end date missing on a recurring entry")
	ErrEndDateFormat      = errors.New("recurrence end date is not YYYY-MM-DD")
	ErrEndDateBeforeStart = errors.New("recurrence end date before start date")
	ErrTimeRange          = errors.New("end time not after start time")
)

type validator struct {
	normalizer utils.DateNormalizer
}

func NewValidator(normalizer utils.DateNormalizer) contracts.AvailabilityValidator {
	return &validator{normalizer: normalizer}
}

// ValidatePayload enforces the recurrence contract:
//   - recurrence "none" carries a null end date;
//   - any other recurrence carries a strict YYYY-MM-DD end date that is not
//     before the start day. Full timestamps are rejected.
//
// An empty end date string counts as null. BlockType is cleared on entries
// that are not blocked.
func (v *validator) ValidatePayload(request *requests.Availability) error {
	if request.RecurrenceEndDate != nil && *request.RecurrenceEndDate == "" {
		request.RecurrenceEndDate = nil
	}
	if request.Recurrence == "" {
		request.Recurrence = constvars.RecurrenceNone
	}
	if !request.IsBlocked {
		request.BlockType = ""
	}

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	start, ok := v.normalizer.Instant(request.StartTime)
	if !ok {
		return exceptions.ErrCannotParseDate(fmt.Errorf("start_time %q", request.StartTime))
	}
	end, ok := v.normalizer.Instant(request.EndTime)
	if !ok {
		return exceptions.ErrCannotParseDate(fmt.Errorf("end_time %q", request.EndTime))
	}
	if !end.After(start) {
		return exceptions.ErrTimeRangeInvalid(ErrTimeRange)
	}

	if request.Recurrence == constvars.RecurrenceNone {
		if request.RecurrenceEndDate != nil {
			return exceptions.ErrRecurrenceInvalid(ErrEndDateNotAllowed, constvars.ErrClientRecurrenceEndDateNotAllowed)
		}
		return nil
	}

	if request.RecurrenceEndDate == nil {
		return exceptions.ErrRecurrenceInvalid(ErrEndDateRequired, constvars.ErrClientRecurrenceEndDateRequired)
	}
	if !utils.IsDateOnly(*request.RecurrenceEndDate) {
		return exceptions.ErrRecurrenceInvalid(ErrEndDateFormat, constvars.ErrClientRecurrenceEndDateFormat)
	}
	startDay := start.Format(constvars.LayoutDateOnly)
	if *request.RecurrenceEndDate < startDay {
		return exceptions.ErrRecurrenceInvalid(ErrEndDateBeforeStart, constvars.ErrClientRecurrenceEndBeforeStart)
	}
	return nil
}

// ValidateSchedulable also refuses weekends and recognized holidays, without
// asking the scheduling api.
func (v *validator) ValidateSchedulable(request *requests.Availability, holidays []models.Holiday) error {
	if err := v.ValidatePayload(request); err != nil {
		return err
	}

	day := request.Date
	if day == "" {
		day = request.StartTime
	}
	if blockable, reason := schedule.BlockableDayReason(v.normalizer, day, holidays); blockable {
		return exceptions.ErrDayNotSchedulable(errors.New(reason))
	}
	return nil
}
