package schedule

import (
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"time"
)

// maxOccurrences caps expansion of a single entry.
const maxOccurrences = 1000

// ExpandRecurrences turns each recurring entry into one row per occurrence
// whose day lies in [from, to]. Occurrences keep the entry id and stop at the
// recurrence end date. Non-recurring entries pass through untouched. Monthly
// entries skip months that do not have the start day.
func ExpandRecurrences(normalizer utils.DateNormalizer, entries []models.AvailabilityEntry, from, to string) []models.AvailabilityEntry {
	expanded := make([]models.AvailabilityEntry, 0, len(entries))
	windowStart, okFrom := normalizer.Day(from)
	windowEnd, okTo := normalizer.Day(to)
	if !okFrom || !okTo || windowEnd.Before(windowStart) {
		return append(expanded, entries...)
	}

	for _, entry := range entries {
		if !entry.IsRecurring() {
			expanded = append(expanded, entry)
			continue
		}
		expanded = append(expanded, expandEntry(normalizer, entry, windowStart, windowEnd)...)
	}
	return expanded
}

func expandEntry(normalizer utils.DateNormalizer, entry models.AvailabilityEntry, windowStart, windowEnd time.Time) []models.AvailabilityEntry {
	start, ok := normalizer.Instant(entry.StartTime)
	if !ok {
		return []models.AvailabilityEntry{entry}
	}
	end, ok := normalizer.Instant(entry.EndTime)
	if !ok || end.Before(start) {
		end = start
	}
	duration := end.Sub(start)

	last := windowEnd
	if untilDay, ok := normalizer.NormalizePtr(entry.RecurrenceEndDate); ok {
		if until, ok := normalizer.Day(untilDay); ok && until.Before(last) {
			last = until
		}
	}

	first := firstIndex(start, entry.Recurrence, windowStart)
	occurrences := make([]models.AvailabilityEntry, 0)
	for i := first; i < first+maxOccurrences; i++ {
		occurrence, ok := shift(start, entry.Recurrence, i)
		if !ok {
			continue
		}
		day := midnight(occurrence)
		if day.After(last) {
			break
		}
		if day.Before(windowStart) {
			continue
		}

		row := entry
		row.Date = occurrence.Format(constvars.LayoutDateOnly)
		row.StartTime = occurrence.Format(time.RFC3339)
		row.EndTime = occurrence.Add(duration).Format(time.RFC3339)
		occurrences = append(occurrences, row)
	}
	return occurrences
}

// firstIndex skips occurrences that end before the window. It may land a
// little early, never late.
func firstIndex(start time.Time, recurrence string, windowStart time.Time) int {
	days := int(windowStart.Sub(midnight(start)).Hours()/24) - 1
	if days <= 0 {
		return 0
	}
	switch recurrence {
	case constvars.RecurrenceDaily:
		return days
	case constvars.RecurrenceWeekly:
		return days / 7
	case constvars.RecurrenceMonthly:
		months := (windowStart.Year()-start.Year())*12 + int(windowStart.Month()) - int(start.Month()) - 1
		if months > 0 {
			return months
		}
	}
	return 0
}

// shift returns the i-th occurrence counted from start. Shifts are computed
// from start each time, not chained, so monthly dates do not drift.
func shift(start time.Time, recurrence string, i int) (time.Time, bool) {
	switch recurrence {
	case constvars.RecurrenceDaily:
		return start.AddDate(0, 0, i), true
	case constvars.RecurrenceWeekly:
		return start.AddDate(0, 0, 7*i), true
	case constvars.RecurrenceMonthly:
		next := start.AddDate(0, i, 0)
		return next, next.Day() == start.Day()
	}
	return start, i == 0
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DedupeAvailability collapses rows that share doctor, start, end and blocked
// flag. The first row wins and order is kept. Start and end are compared as
// instants so differently formatted copies of one row still collapse.
func DedupeAvailability(normalizer utils.DateNormalizer, entries []models.AvailabilityEntry) []models.AvailabilityEntry {
	type key struct {
		doctorID  string
		startTime string
		endTime   string
		isBlocked bool
	}

	seen := make(map[key]struct{}, len(entries))
	unique := make([]models.AvailabilityEntry, 0, len(entries))
	for _, entry := range entries {
		k := key{
			doctorID:  entry.DoctorKey(),
			startTime: instantKey(normalizer, entry.StartTime),
			endTime:   instantKey(normalizer, entry.EndTime),
			isBlocked: entry.IsBlocked,
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, entry)
	}
	return unique
}

func instantKey(normalizer utils.DateNormalizer, value string) string {
	if t, ok := normalizer.Instant(value); ok {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return value
}

// FilterByDoctor keeps the entries of doctorID plus the ones that apply to
// every doctor. An empty doctorID keeps everything.
func FilterByDoctor(entries []models.AvailabilityEntry, doctorID string) []models.AvailabilityEntry {
	filtered := make([]models.AvailabilityEntry, 0, len(entries))
	for _, entry := range entries {
		if doctorID == "" || entry.AppliesToAllDoctors() || entry.DoctorKey() == doctorID {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
