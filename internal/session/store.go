package session

import (
	"context"
	"time"
)

// TTL is how long a session lives in the store and in the cookie.
const TTL = 24 * time.Hour

// Session holds an identity snapshot taken at login time, not a live
// reference to the user record. A later profile change does not rewrite
// existing sessions.
type Session struct {
	SessionID string    `json:"session_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Implementations (e.g., Redis) must remain stateless and opaque.
// Get returns (nil, nil) for an absent or expired session; an error means
// the store itself is unreachable, which callers must not treat as
// "unauthenticated".
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s Session) error
	Delete(ctx context.Context, sessionID string) error
}
