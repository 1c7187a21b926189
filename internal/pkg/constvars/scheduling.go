package constvars

// Remote scheduling API resources. The backend expects trailing slashes.
const (
	ResourceAppointments = "appointments"
	ResourceAvailability = "availability"
	ResourceBlockedDates = "blocked-dates"
	ResourceHolidays     = "holidays"
	ResourceAuthLogin    = "auth/login"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

const (
	DefaultAppointmentDurationMinutes = 30
	UnknownDisplayName                = "Unknown"
)

const (
	LayoutDateOnly  = "2006-01-02"
	LayoutClock     = "15:04"
	LayoutClockSecs = "15:04:05"
)

const (
	RedisKeySessionPrefix = "session:"
	RedisKeyHolidays      = "holidays:all"
	RedisKeyHolidayLeader = "holidays:refresh:leader"
)

const (
	QueueScheduleChanged = "schedule_changed"
)

// Calendar render colors. Blocks take visual precedence over appointments.
const (
	MarkingColorSelected    = "#2563EB"
	MarkingColorAppointment = "#10B981"
	MarkingColorBlock       = "#EF4444"
)
