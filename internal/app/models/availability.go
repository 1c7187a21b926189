package models

import "clinicbook-service/internal/pkg/constvars"

// AvailabilityEntry is a time range marking a doctor (or every doctor when
// DoctorID is nil) as available or blocked. Blocked dates share the shape.
type AvailabilityEntry struct {
	ID                FlexibleID  `json:"id,omitempty"`
	DoctorID          *FlexibleID `json:"doctor_id"`
	DoctorName        string      `json:"doctor_name,omitempty"`
	Date              string      `json:"date,omitempty"`
	StartTime         string      `json:"start_time"`
	EndTime           string      `json:"end_time"`
	IsBlocked         bool        `json:"is_blocked"`
	BlockType         string      `json:"block_type,omitempty"`
	Reason            string      `json:"reason,omitempty"`
	Recurrence        string      `json:"recurrence"`
	RecurrenceEndDate *string     `json:"recurrence_end_date"`
}

type BlockedDate = AvailabilityEntry

func (e AvailabilityEntry) GetID() string {
	return e.ID.String()
}

// CalendarDate prefers the explicit date column and falls back to the start timestamp.
func (e AvailabilityEntry) CalendarDate() string {
	if e.Date != "" {
		return e.Date
	}
	return e.StartTime
}

func (e AvailabilityEntry) AppliesToAllDoctors() bool {
	return e.DoctorID == nil || e.DoctorID.IsZero()
}

func (e AvailabilityEntry) IsRecurring() bool {
	return e.Recurrence != "" && e.Recurrence != constvars.RecurrenceNone
}

func (e AvailabilityEntry) DoctorKey() string {
	if e.AppliesToAllDoctors() {
		return ""
	}
	return e.DoctorID.String()
}
