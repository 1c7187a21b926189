package utils

import (
	"clinicbook-service/internal/pkg/constvars"
	"strings"
	"time"
)

// Layouts carrying an explicit offset or Z. Parsing accepts fractional seconds
// after the seconds field even though the layouts do not spell them out.
var offsetLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
}

// Layouts without an offset are wall-clock times in the normalizer's zone.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// DateNormalizer returns the calendar day of any ISO 8601 input in a single
// local timezone:
//   - "YYYY-MM-DD" is returned unchanged, a date has no instant to shift;
//   - a timestamp with an offset or Z is converted into the zone first;
//   - a timestamp without an offset is read as wall-clock time in the zone.
//
// Everything that touches calendar days goes through one normalizer so that the
// same instant is always assigned to the same day.
type DateNormalizer struct {
	loc *time.Location
}

func NewDateNormalizer(loc *time.Location) DateNormalizer {
	if loc == nil {
		loc = time.UTC
	}
	return DateNormalizer{loc: loc}
}

// NewDateNormalizerFromName loads an IANA zone name such as "America/New_York".
func NewDateNormalizerFromName(name string) (DateNormalizer, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return DateNormalizer{}, err
	}
	return NewDateNormalizer(loc), nil
}

func (n DateNormalizer) Location() *time.Location {
	if n.loc == nil {
		return time.UTC
	}
	return n.loc
}

// Normalize returns the YYYY-MM-DD day for value. ok is false for empty or
// unparseable input.
func (n DateNormalizer) Normalize(value string) (string, bool) {
	t, ok := n.parse(value)
	if !ok {
		return "", false
	}
	return t.Format(constvars.LayoutDateOnly), true
}

// NormalizePtr is Normalize for optional fields.
func (n DateNormalizer) NormalizePtr(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return n.Normalize(*value)
}

// Day returns local midnight of the calendar day value falls on.
func (n DateNormalizer) Day(value string) (time.Time, bool) {
	day, ok := n.Normalize(value)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(constvars.LayoutDateOnly, day, n.Location())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Instant parses value into a point in time. Date-only input maps to local midnight.
func (n DateNormalizer) Instant(value string) (time.Time, bool) {
	return n.parse(value)
}

// SameDay reports whether a and b normalize to the same calendar day.
func (n DateNormalizer) SameDay(a, b string) bool {
	dayA, okA := n.Normalize(a)
	dayB, okB := n.Normalize(b)
	return okA && okB && dayA == dayB
}

// Today is the current calendar day in the normalizer's zone.
func (n DateNormalizer) Today() string {
	return time.Now().In(n.Location()).Format(constvars.LayoutDateOnly)
}

func (n DateNormalizer) parse(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	loc := n.Location()

	if len(s) == len(constvars.LayoutDateOnly) {
		t, err := time.ParseInLocation(constvars.LayoutDateOnly, s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true
		}
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDateOnly reports whether value is strictly a YYYY-MM-DD date.
func IsDateOnly(value string) bool {
	if len(value) != len(constvars.LayoutDateOnly) {
		return false
	}
	_, err := time.Parse(constvars.LayoutDateOnly, value)
	return err == nil
}

// IsClock reports whether value is HH:MM or HH:MM:SS.
func IsClock(value string) bool {
	for _, layout := range []string{constvars.LayoutClock, constvars.LayoutClockSecs} {
		if len(value) != len(layout) {
			continue
		}
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

// IsISOTimestamp reports whether value is a timestamp the normalizer understands.
func IsISOTimestamp(value string) bool {
	s := strings.TrimSpace(value)
	for _, layout := range offsetLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	for _, layout := range wallClockLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
