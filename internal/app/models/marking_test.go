package models

import (
	"clinicbook-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarMarking_Color(t *testing.T) {
	assert.Equal(t, "", CalendarMarking{}.Color())
	assert.Equal(t, constvars.MarkingColorSelected, CalendarMarking{Selected: true}.Color())
	assert.Equal(t, constvars.MarkingColorAppointment, CalendarMarking{Selected: true, HasAppointment: true}.Color())
	assert.Equal(t, constvars.MarkingColorBlock, CalendarMarking{HasAppointment: true, HasBlock: true}.Color())
}

func TestCalendarMarking_MergeAndDots(t *testing.T) {
	merged := CalendarMarking{HasAppointment: true}.Merge(CalendarMarking{HasBlock: true})
	assert.Equal(t, CalendarMarking{HasAppointment: true, HasBlock: true}, merged)

	dots := merged.Dots()
	require.Len(t, dots, 2)
	assert.Equal(t, "appointment", dots[0].Key)
	assert.Equal(t, "block", dots[1].Key)
}

func TestCalendarMarking_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(CalendarMarking{Selected: true, HasBlock: true})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, true, decoded["selected"])
	assert.Equal(t, false, decoded["has_appointment"])
	assert.Equal(t, true, decoded["has_block"])
	assert.Equal(t, constvars.MarkingColorBlock, decoded["color"])
	assert.Len(t, decoded["dots"], 1)
}
