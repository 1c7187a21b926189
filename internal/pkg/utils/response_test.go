package utils

import (
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	BuildSuccessResponse(rr, constvars.StatusCreated, "created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.Equal(t, "1", body["data"].(map[string]interface{})["id"])
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("custom error in development exposes dev message", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrTokenMissing(nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientNotLoggedIn, body["message"])
		assert.Contains(t, body["dev_message"], constvars.ErrDevAuthTokenMissing)
		assert.NotNil(t, body["location"])
	})

	t.Run("production hides dev message", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrTokenMissing(nil))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotContains(t, body, "dev_message")
		assert.NotContains(t, body, "location")
	})

	t.Run("plain error is a 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
	})
}
