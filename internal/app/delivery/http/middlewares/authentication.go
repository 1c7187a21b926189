package middlewares

import (
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"clinicbook-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the BFF session id into the stored session. The id
// comes from X-Session-ID, or from "Authorization: Bearer <session id>".
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		sessionID := sessionIDFromRequest(r)
		if sessionID == "" {
			m.Log.Warn("Middlewares.Authenticate session id missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		session, err := m.AuthUsecase.FindSession(r.Context(), sessionID)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate error finding session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromRequest(r *http.Request) string {
	if sessionID := strings.TrimSpace(r.Header.Get(constvars.HeaderXSessionID)); sessionID != "" {
		return sessionID
	}
	authorization := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authorization, constvars.AuthorizationBearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authorization, constvars.AuthorizationBearerPrefix))
	}
	return ""
}
