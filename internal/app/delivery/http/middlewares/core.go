package middlewares

import (
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const sessionIDLogPrefix = 8

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}

// Logging writes one line per finished request. The session id is masked,
// it is the caller's credential. Server errors log at error level and
// rejected requests at warn level.
func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r)

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			fields := []zap.Field{
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, maskSessionID(sessionIDFromRequest(r))),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
				zap.Bool(constvars.LoggingMutationKey, r.Method != http.MethodGet && r.Method != http.MethodOptions),
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.Int(constvars.LoggingResponseLengthKey, rec.written),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			}

			switch {
			case rec.statusCode >= http.StatusInternalServerError:
				logger.Error("API request failed", fields...)
			case rec.statusCode >= http.StatusBadRequest:
				logger.Warn("API request rejected", fields...)
			default:
				logger.Info("API request completed", fields...)
			}
		})
	}
}

// maskSessionID keeps enough of the id to correlate log lines.
func maskSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) <= sessionIDLogPrefix {
		return strings.Repeat("*", len(sessionID))
	}
	return sessionID[:sessionIDLogPrefix] + "..."
}

func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
