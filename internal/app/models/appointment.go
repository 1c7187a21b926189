package models

import (
	"clinicbook-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

type Appointment struct {
	ID              FlexibleID `json:"id,omitempty"`
	PatientID       FlexibleID `json:"patient_id"`
	DoctorID        FlexibleID `json:"doctor_id"`
	PatientName     string     `json:"patient_name,omitempty"`
	DoctorName      string     `json:"doctor_name,omitempty"`
	Date            string     `json:"date"`
	Time            *string    `json:"time"`
	DurationMinutes int        `json:"duration_minutes"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
}

func (a Appointment) GetID() string {
	return a.ID.String()
}

func (a Appointment) CalendarDate() string {
	return a.Date
}

// IsScheduled reports whether the appointment has a time of day.
func (a Appointment) IsScheduled() bool {
	return a.Time != nil && *a.Time != ""
}

func (a Appointment) PatientDisplayName() string {
	return displayName(a.PatientName)
}

func (a Appointment) DoctorDisplayName() string {
	return displayName(a.DoctorName)
}

func (a *Appointment) UnmarshalJSON(data []byte) error {
	type alias Appointment
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.DurationMinutes <= 0 {
		decoded.DurationMinutes = constvars.DefaultAppointmentDurationMinutes
	}
	*a = Appointment(decoded)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return constvars.UnknownDisplayName
	}
	return name
}
