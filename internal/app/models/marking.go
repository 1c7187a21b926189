package models

import (
	"clinicbook-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

// CalendarMarking is the render hint for one calendar day.
type CalendarMarking struct {
	Selected       bool `json:"selected"`
	HasAppointment bool `json:"has_appointment"`
	HasBlock       bool `json:"has_block"`
}

type MarkingDot struct {
	Key   string `json:"key"`
	Color string `json:"color"`
}

// Merge ORs the flags of other into m.
func (m CalendarMarking) Merge(other CalendarMarking) CalendarMarking {
	return CalendarMarking{
		Selected:       m.Selected || other.Selected,
		HasAppointment: m.HasAppointment || other.HasAppointment,
		HasBlock:       m.HasBlock || other.HasBlock,
	}
}

// Color is the dominant day color. A block wins over an appointment.
func (m CalendarMarking) Color() string {
	switch {
	case m.HasBlock:
		return constvars.MarkingColorBlock
	case m.HasAppointment:
		return constvars.MarkingColorAppointment
	case m.Selected:
		return constvars.MarkingColorSelected
	}
	return ""
}

// Dots lists one dot per fact so both stay visible when a day has both.
func (m CalendarMarking) Dots() []MarkingDot {
	dots := make([]MarkingDot, 0, 2)
	if m.HasAppointment {
		dots = append(dots, MarkingDot{Key: "appointment", Color: constvars.MarkingColorAppointment})
	}
	if m.HasBlock {
		dots = append(dots, MarkingDot{Key: "block", Color: constvars.MarkingColorBlock})
	}
	return dots
}

func (m CalendarMarking) MarshalJSON() ([]byte, error) {
	type alias CalendarMarking
	return json.Marshal(struct {
		alias
		Color string       `json:"color,omitempty"`
		Dots  []MarkingDot `json:"dots"`
	}{
		alias: alias(m),
		Color: m.Color(),
		Dots:  m.Dots(),
	})
}
