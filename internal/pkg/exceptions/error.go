package exceptions

import (
	"clinicbook-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrUnreachable marks failures where the scheduling api could not be reached at all.
	ErrUnreachable = errors.New("scheduling api unreachable")
	// ErrUnauthenticated marks failures that should send the user back to login.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrMalformedPayload marks a 2xx response whose body could not be decoded.
	ErrMalformedPayload = errors.New("malformed response payload")
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"dev_message,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Err           error     `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		Err:           err,
	}
}

// IsUnreachable reports whether err comes from a transport-level failure.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

// IsUnauthenticated reports whether err should end the current session.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
