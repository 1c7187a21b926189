package responses

import "time"

// LoginTokens is the scheduling api login answer.
type LoginTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type Login struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
