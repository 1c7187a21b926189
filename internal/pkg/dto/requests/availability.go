package requests

// Availability is shared by availability entries and blocked dates.
// RecurrenceEndDate must be null when Recurrence is "none" and a strict
// YYYY-MM-DD date otherwise, so it is serialized without omitempty.
type Availability struct {
	DoctorID          *string `json:"doctor_id"`
	Date              string  `json:"date,omitempty" validate:"omitempty,date_only"`
	StartTime         string  `json:"start_time" validate:"required,iso_timestamp"`
	EndTime           string  `json:"end_time" validate:"required,iso_timestamp"`
	IsBlocked         bool    `json:"is_blocked"`
	BlockType         string  `json:"block_type,omitempty"`
	Reason            string  `json:"reason,omitempty"`
	Recurrence        string  `json:"recurrence" validate:"required,recurrence"`
	RecurrenceEndDate *string `json:"recurrence_end_date"`
}

type AvailabilityFilter struct {
	DoctorID string
}
