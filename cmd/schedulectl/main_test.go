package main

import (
	"bytes"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintCalendar(t *testing.T) {
	clock := "09:30"
	view := models.CalendarView{
		SelectedDate: "2025-06-27",
		Status:       models.ScheduleStatusOffline,
		Markings: map[string]models.CalendarMarking{
			"2025-06-28": {HasBlock: true},
			"2025-06-27": {Selected: true, HasAppointment: true},
		},
		Appointments: []models.Appointment{
			{ID: "12", Date: "2025-06-27", Time: &clock, PatientName: "Jane Doe", Status: "scheduled"},
			{ID: "13", Date: "2025-06-27", DoctorName: "Dr. Grey", Status: "pending"},
		},
		Availability: []models.AvailabilityEntry{
			{ID: "3", StartTime: "2025-06-27T09:00:00-04:00", EndTime: "2025-06-27T17:00:00-04:00", IsBlocked: true, Recurrence: constvars.RecurrenceWeekly},
		},
	}

	var out bytes.Buffer
	printCalendar(&out, view)
	printed := out.String()

	assert.Contains(t, printed, "Selected: 2025-06-27 (offline)")
	assert.Less(t, strings.Index(printed, "2025-06-27  #10B981"), strings.Index(printed, "2025-06-28  #EF4444"), "markings are printed in date order")
	assert.Contains(t, printed, "12  09:30  Jane Doe with Unknown  [scheduled]")
	assert.Contains(t, printed, "13  --:--  Unknown with Dr. Grey  [pending]")
	assert.Contains(t, printed, "Blocked (0):")
	assert.Contains(t, printed, "3  2025-06-27T09:00:00-04:00 - 2025-06-27T17:00:00-04:00  blocked  weekly")
}
