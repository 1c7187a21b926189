package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingMutationKey       = "mutation"
	LoggingQueryParamsKey    = "query_params"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingURLKey            = "url"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingResourceKey       = "resource"
	LoggingRecordIDKey       = "record_id"
	LoggingDateKey           = "date"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingKindKey           = "kind"
	LoggingActionKey         = "action"
	LoggingStatusKey         = "status"
	LoggingRoleKey           = "role"
	LoggingCountKey          = "count"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockStoredKey     = "lock_stored_value"
	LoggingLockExpectedKey   = "lock_expected_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueNameKey      = "queue_name"
	LoggingCronSpecKey       = "cron_spec"
	LoggingRetryAfterKey     = "retry_after"
	LoggingTimezoneKey       = "timezone"
)
