package session

import (
	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/pkg/exceptions"
	"context"
	"errors"
)

var errEmptyToken = errors.New("empty access token")

type storeTokenSource struct {
	store     contracts.SessionStore
	sessionID string
}

// NewStoreTokenSource reads the session on every call, so a logout is seen
// by the very next request.
func NewStoreTokenSource(store contracts.SessionStore, sessionID string) contracts.TokenSource {
	return &storeTokenSource{store: store, sessionID: sessionID}
}

func (s *storeTokenSource) Token(ctx context.Context) (string, error) {
	session, err := s.store.Find(ctx, s.sessionID)
	if err != nil {
		return "", err
	}
	if session.AccessToken == "" {
		return "", exceptions.ErrTokenMissing(errEmptyToken)
	}
	return session.AccessToken, nil
}

// StaticTokenSource serves a fixed token, for the CLI and background jobs.
type StaticTokenSource string

func (s StaticTokenSource) Token(_ context.Context) (string, error) {
	if s == "" {
		return "", exceptions.ErrTokenMissing(errEmptyToken)
	}
	return string(s), nil
}
