package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"fmt"
	"time"
)

const (
	BlockReasonWeekend = "weekend"
	BlockReasonHoliday = "holiday"
)

// IsBlockableDay reports whether new availability must not be offered on date:
// Saturdays, Sundays and recognized holidays. Unrecognized holidays do not count.
// This is a local courtesy check; the scheduling api stays authoritative.
func IsBlockableDay(normalizer utils.DateNormalizer, date string, holidays []models.Holiday) bool {
	blockable, _ := BlockableDayReason(normalizer, date, holidays)
	return blockable
}

// BlockableDayReason is IsBlockableDay plus a short human reason.
func BlockableDayReason(normalizer utils.DateNormalizer, date string, holidays []models.Holiday) (bool, string) {
	day, ok := normalizer.Day(date)
	if !ok {
		return false, ""
	}

	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return true, fmt.Sprintf("%s (%s)", BlockReasonWeekend, day.Weekday())
	}

	dayString := day.Format(constvars.LayoutDateOnly)
	for _, holiday := range holidays {
		if !holiday.IsRecognized {
			continue
		}
		holidayDay, ok := normalizer.Normalize(holiday.Date)
		if ok && holidayDay == dayString {
			return true, fmt.Sprintf("%s (%s)", BlockReasonHoliday, holiday.Name)
		}
	}
	return false, ""
}
