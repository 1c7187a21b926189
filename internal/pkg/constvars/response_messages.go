package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	GetCalendarSuccessMessage      = "get calendar successfully"
	GetStaleCalendarSuccessMessage = "scheduling service unavailable, showing the last loaded calendar"
	CheckDaySuccessMessage         = "check day successfully"

	GetAppointmentsSuccessMessage   = "get appointments successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	GetAvailabilitySuccessMessage    = "get availability successfully"
	CreateAvailabilitySuccessMessage = "availability created successfully"
	UpdateAvailabilitySuccessMessage = "availability updated successfully"
	DeleteAvailabilitySuccessMessage = "availability deleted successfully"

	GetBlockedDatesSuccessMessage   = "get blocked dates successfully"
	CreateBlockedDateSuccessMessage = "blocked date created successfully"
	DeleteBlockedDateSuccessMessage = "blocked date deleted successfully"

	GetHolidaysSuccessMessage = "get holidays successfully"
)
