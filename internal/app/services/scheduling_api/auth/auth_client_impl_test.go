package auth

import (
	"clinicbook-service/internal/app/services/scheduling_api/transport"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLoginServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))

		var login requests.Login
		require.NoError(t, json.NewDecoder(r.Body).Decode(&login))
		assert.Equal(t, "dr.house", login.Username)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestAuthClient_Login(t *testing.T) {
	request := &requests.Login{Username: "dr.house", Password: "vicodin"}

	t.Run("returns the token pair", func(t *testing.T) {
		server := newLoginServer(t, http.StatusOK, `{"access":"a.b.c","refresh":"d.e.f"}`)
		client := NewAuthClient(transport.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())

		tokens, err := client.Login(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "a.b.c", tokens.Access)
		assert.Equal(t, "d.e.f", tokens.Refresh)
	})

	t.Run("bad credentials", func(t *testing.T) {
		server := newLoginServer(t, http.StatusUnauthorized, `{"detail":"No active account found with the given credentials"}`)
		client := NewAuthClient(transport.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())

		_, err := client.Login(context.Background(), request)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
	})

	t.Run("missing access token", func(t *testing.T) {
		server := newLoginServer(t, http.StatusOK, `{"refresh":"d.e.f"}`)
		client := NewAuthClient(transport.NewClient(server.URL, time.Second, zap.NewNop()), zap.NewNop())

		_, err := client.Login(context.Background(), request)
		assert.True(t, errors.Is(err, exceptions.ErrMalformedPayload))
	})
}
