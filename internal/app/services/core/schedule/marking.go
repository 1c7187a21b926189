package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/utils"
)

// Dated is anything that sits on a calendar day.
type Dated interface {
	CalendarDate() string
}

// BuildMarkings derives the per-day render hints. Flags are merged, never
// overwritten, so the result does not depend on input order. Entries whose
// date is missing or unparseable are skipped.
func BuildMarkings(normalizer utils.DateNormalizer, selectedDate string, appointments []models.Appointment, blocks []models.AvailabilityEntry) map[string]models.CalendarMarking {
	markings := make(map[string]models.CalendarMarking)

	mark := func(value string, flags models.CalendarMarking) {
		day, ok := normalizer.Normalize(value)
		if !ok {
			return
		}
		markings[day] = markings[day].Merge(flags)
	}

	if selectedDate != "" {
		mark(selectedDate, models.CalendarMarking{Selected: true})
	}
	for _, appointment := range appointments {
		mark(appointment.CalendarDate(), models.CalendarMarking{HasAppointment: true})
	}
	for _, block := range blocks {
		mark(block.CalendarDate(), models.CalendarMarking{HasBlock: true})
	}
	return markings
}
