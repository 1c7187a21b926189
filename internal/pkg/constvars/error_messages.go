package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s characters long",
	"max":                "maximum at %s characters long",
	"oneof":              "must be one of [%s]",
	"gt":                 "must be greater than %s",
	"gte":                "must be greater than or equal to %s",
	"date_only":          "must be a date in YYYY-MM-DD format",
	"clock":              "must be a time in HH:MM format",
	"iso_timestamp":      "must be an ISO 8601 timestamp",
	"recurrence":         "must be one of [none, daily, weekly, monthly]",
	"appointment_status": "must be one of [pending, confirmed, cancelled, completed]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientServiceUnreachable            = "the scheduling service is unreachable, please try again"
	ErrClientRecurrenceEndDateRequired     = "recurrence end date is required for recurring entries"
	ErrClientRecurrenceEndDateNotAllowed   = "recurrence end date must be empty when the entry does not repeat"
	ErrClientRecurrenceEndDateFormat       = "recurrence end date must be a date in YYYY-MM-DD format"
	ErrClientRecurrenceEndBeforeStart      = "recurrence end date cannot be before the start date"
	ErrClientTimeRangeInvalid              = "end time must be after start time"
	ErrClientDayNotSchedulable             = "availability cannot be created on weekends or holidays"
	ErrClientMutationInFlight              = "another change is still being saved, please wait"
	ErrClientRecordNotFound                = "the record no longer exists, the list was refreshed"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "invalid input"
	ErrDevValidationFailed             = "validation failed"
	ErrDevCannotParseJSON              = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON            = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate              = "cannot parse the requested date"
	ErrDevURLParamIDValidationFailed   = "url param %s validation failed"
	ErrDevCreateHTTPRequest            = "failed to create HTTP request"
	ErrDevSendHTTPRequest              = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded       = "deadline exceeded"
	ErrDevServerProcess                = "failed to process the request on server"
	ErrDevMissingRequestID             = "request id missing from context"
	ErrDevMissingSession               = "session missing from context"
	ErrDevAuthTokenMissing             = "token missing"
	ErrDevAuthTokenInvalidOrExpired    = "token invalid or expired"
	ErrDevAuthDecodeClaims             = "failed to decode token claims"
	ErrDevInvalidCredentials           = "invalid credentials"
	ErrDevRemoteGetResource            = "failed to get %s from scheduling api"
	ErrDevRemoteCreateResource         = "failed to create %s on scheduling api"
	ErrDevRemoteUpdateResource         = "failed to update %s on scheduling api"
	ErrDevRemoteDeleteResource         = "failed to delete %s on scheduling api"
	ErrDevRemoteRejected               = "scheduling api rejected %s %s with status %d"
	ErrDevRemoteDecodeResponse         = "failed to decode %s response from scheduling api"
	ErrDevRecurrenceInvalid            = "availability recurrence payload invalid"
	ErrDevTimeRangeInvalid             = "availability time range invalid"
	ErrDevDayNotSchedulable            = "requested day is a weekend or a recognized holiday"
	ErrDevMutationInFlight             = "a mutation is already in flight for this session"
	ErrDevStaleCache                   = "record missing from local cache"
	ErrDevRateLimited                  = "rate limit exceeded"
	ErrDevRedisGetNoData               = "no data found in redis for key %s"
	ErrDevRedisGetData                 = "failed to get data from redis"
	ErrDevRedisSetData                 = "failed to set data into redis"
	ErrDevRedisDeleteData              = "failed to delete data from redis"
	ErrDevRedisUnlock                  = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage       = "failed to publish message to queue %s"
	ErrDevSessionNotFound              = "session not found"
	ErrDevSchedulingAPINotConfigured   = "scheduling api base url is not configured"
)
