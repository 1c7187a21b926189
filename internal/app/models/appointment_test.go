package models

import (
	"clinicbook-service/internal/pkg/constvars"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointment_Decode(t *testing.T) {
	payload := `{
		"id": 5,
		"patient_id": 9,
		"doctor_id": "doc-1",
		"doctor_name": "Dr. Grey",
		"date": "2025-06-27",
		"time": null,
		"status": "pending"
	}`

	var appointment Appointment
	require.NoError(t, json.Unmarshal([]byte(payload), &appointment))

	assert.Equal(t, "5", appointment.GetID())
	assert.Equal(t, FlexibleID("9"), appointment.PatientID)
	assert.Equal(t, constvars.DefaultAppointmentDurationMinutes, appointment.DurationMinutes)
	assert.False(t, appointment.IsScheduled())
	assert.Equal(t, constvars.UnknownDisplayName, appointment.PatientDisplayName())
	assert.Equal(t, "Dr. Grey", appointment.DoctorDisplayName())
}

func TestAvailabilityEntry_Helpers(t *testing.T) {
	doctor := FlexibleID("doc-1")
	entry := AvailabilityEntry{
		DoctorID:   &doctor,
		StartTime:  "2025-06-27T09:00:00Z",
		Recurrence: constvars.RecurrenceWeekly,
	}
	assert.Equal(t, "2025-06-27T09:00:00Z", entry.CalendarDate())
	assert.Equal(t, "doc-1", entry.DoctorKey())
	assert.True(t, entry.IsRecurring())
	assert.False(t, entry.AppliesToAllDoctors())

	entry.Date = "2025-06-26"
	assert.Equal(t, "2025-06-26", entry.CalendarDate())

	everyone := AvailabilityEntry{Recurrence: constvars.RecurrenceNone}
	assert.True(t, everyone.AppliesToAllDoctors())
	assert.Equal(t, "", everyone.DoctorKey())
	assert.False(t, everyone.IsRecurring())
}
