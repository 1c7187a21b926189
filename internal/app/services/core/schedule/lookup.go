package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/utils"
)

// ItemsForDate keeps the items that fall on date, in input order. It returns
// an empty slice, never nil, so callers can render a list that has not loaded.
func ItemsForDate[T Dated](normalizer utils.DateNormalizer, date string, items []T) []T {
	matched := make([]T, 0)
	day, ok := normalizer.Normalize(date)
	if !ok {
		return matched
	}
	for _, item := range items {
		itemDay, ok := normalizer.Normalize(item.CalendarDate())
		if ok && itemDay == day {
			matched = append(matched, item)
		}
	}
	return matched
}

func AppointmentsForDate(normalizer utils.DateNormalizer, date string, appointments []models.Appointment) []models.Appointment {
	return ItemsForDate(normalizer, date, appointments)
}

func BlockedDatesForDate(normalizer utils.DateNormalizer, date string, blockedDates []models.BlockedDate) []models.BlockedDate {
	return ItemsForDate(normalizer, date, blockedDates)
}
