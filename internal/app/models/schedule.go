package models

import "time"

type ScheduleStatus string

const (
	ScheduleStatusIdle    ScheduleStatus = "idle"
	ScheduleStatusLoading ScheduleStatus = "loading"
	ScheduleStatusSuccess ScheduleStatus = "success"
	ScheduleStatusError   ScheduleStatus = "error"
	// ScheduleStatusOffline means the scheduling api could not be reached.
	// The lists shown are the last ones fetched successfully, never placeholders.
	ScheduleStatusOffline ScheduleStatus = "offline"
)

type ChangeKind string

const (
	ChangeKindAppointment  ChangeKind = "appointment"
	ChangeKindBlockedDate  ChangeKind = "blocked_date"
	ChangeKindAvailability ChangeKind = "availability"
)

type ChangeAction string

const (
	ChangeActionCreate ChangeAction = "create"
	ChangeActionUpdate ChangeAction = "update"
	ChangeActionDelete ChangeAction = "delete"
)

// ScheduleChanged is published after the scheduling api confirmed a write.
type ScheduleChanged struct {
	Kind       ChangeKind   `json:"kind"`
	Action     ChangeAction `json:"action"`
	ID         string       `json:"id"`
	UserID     string       `json:"user_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// ScheduleState is a copy of the view-model lists at one point in time.
type ScheduleState struct {
	SelectedDate string              `json:"selected_date"`
	Status       ScheduleStatus      `json:"status"`
	LastError    string              `json:"last_error,omitempty"`
	Appointments []Appointment       `json:"appointments"`
	BlockedDates []BlockedDate       `json:"blocked_dates"`
	Availability []AvailabilityEntry `json:"availability"`
	Holidays     []Holiday           `json:"holidays"`
	RefreshedAt  time.Time           `json:"refreshed_at,omitempty"`
}

type CalendarOptions struct {
	DoctorID string
	// Expand turns recurring availability into one row per day between From and To.
	Expand bool
	From   string
	To     string
}

type CalendarView struct {
	SelectedDate string                     `json:"selected_date"`
	Status       ScheduleStatus             `json:"status"`
	Markings     map[string]CalendarMarking `json:"markings"`
	Appointments []Appointment              `json:"appointments"`
	BlockedDates []BlockedDate              `json:"blocked_dates"`
	Availability []AvailabilityEntry        `json:"availability"`
}
