package exceptions

import (
	"clinicbook-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
)

const remoteBodySummaryLimit = 512

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSession = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSession)
	}
	ErrRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevRateLimited)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrDecodeClaims = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthDecodeClaims)
	}
	ErrInvalidUsernameOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(joinUnauthenticated(err), constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionNotFound)
	}

	// Scheduling rules
	ErrRecurrenceInvalid = func(err error, clientMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, clientMessage, constvars.ErrDevRecurrenceInvalid)
	}
	ErrTimeRangeInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientTimeRangeInvalid, constvars.ErrDevTimeRangeInvalid)
	}
	ErrDayNotSchedulable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientDayNotSchedulable, constvars.ErrDevDayNotSchedulable)
	}
	ErrMutationInFlight = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientMutationInFlight, constvars.ErrDevMutationInFlight)
	}
	ErrStaleCache = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientRecordNotFound, constvars.ErrDevStaleCache)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(errors.Join(ErrUnreachable, err), constvars.StatusBadGateway, constvars.ErrClientServiceUnreachable, constvars.ErrDevSendHTTPRequest)
	}

	// Scheduling API
	ErrGetSchedulingResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRemoteGetResource, resource))
	}
	ErrCreateSchedulingResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRemoteCreateResource, resource))
	}
	ErrUpdateSchedulingResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRemoteUpdateResource, resource))
	}
	ErrDeleteSchedulingResource = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRemoteDeleteResource, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(errors.Join(ErrMalformedPayload, err), constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRemoteDecodeResponse, resource))
	}

	// ErrRemoteRejected surfaces a non-2xx answer from the scheduling api. The
	// remote body becomes the client message so the user sees the backend's reason.
	ErrRemoteRejected = func(statusCode int, method, resource string, body []byte) *CustomError {
		devMessage := fmt.Sprintf(constvars.ErrDevRemoteRejected, method, resource, statusCode)
		var cause error
		code := statusCode
		switch {
		case statusCode == constvars.StatusUnauthorized || statusCode == constvars.StatusForbidden:
			cause = ErrUnauthenticated
			code = constvars.StatusUnauthorized
		case statusCode >= constvars.StatusInternalServerError:
			code = constvars.StatusBadGateway
		}
		clientMessage := SummarizeRemoteBody(body)
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(cause, code, clientMessage, devMessage)
	}
)

// SummarizeRemoteBody trims a remote error body into something fit for an alert.
func SummarizeRemoteBody(body []byte) string {
	summary := strings.Join(strings.Fields(string(body)), " ")
	if len(summary) > remoteBodySummaryLimit {
		summary = summary[:remoteBodySummaryLimit] + "..."
	}
	return summary
}

func joinUnauthenticated(err error) error {
	if err == nil {
		return ErrUnauthenticated
	}
	return errors.Join(ErrUnauthenticated, err)
}
