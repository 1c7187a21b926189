package contracts

import (
	"clinicbook-service/internal/app/models"
	"context"
	"time"
)

// TokenSource hands out the current bearer token. Implementations read the
// backing store on every call so a logout is observed by the next request.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type SessionStore interface {
	Save(ctx context.Context, session *models.Session, exp time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
