package requests

type CalendarQuery struct {
	Date     string `validate:"omitempty,date_only"`
	DoctorID string
	Expand   bool
	// Window bounds recurrence expansion. Empty means the month around Date.
	From string `validate:"omitempty,date_only"`
	To   string `validate:"omitempty,date_only"`
}

type CheckDay struct {
	Date string `json:"date" validate:"required,date_only"`
}
