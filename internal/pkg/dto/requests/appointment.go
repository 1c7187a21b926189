package requests

// Appointment is the full-replace payload for create and update.
type Appointment struct {
	PatientID       string  `json:"patient_id" validate:"required"`
	DoctorID        string  `json:"doctor_id" validate:"required"`
	Date            string  `json:"date" validate:"required,date_only"`
	Time            *string `json:"time" validate:"omitempty,clock"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Status          string  `json:"status,omitempty" validate:"omitempty,appointment_status"`
	Notes           string  `json:"notes,omitempty"`
}

type AppointmentFilter struct {
	Date string
}
