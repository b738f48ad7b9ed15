// Package session implements the server-side session cache: an opaque token
// mapped to a user identity with a fixed, non-renewing time-to-live.
package session

import (
	"context"
	"time"
)

// CookieName is the cookie carrying the session token. It is the sole
// authentication credential.
const CookieName = "session_id"

// Session binds a token to a user until ExpiresAt. The lifetime is fixed at
// issuance; resolving a session never extends it.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the issue/resolve/revoke contract shared by the in-process map
// and the Redis-backed implementation.
type Store interface {
	// Issue creates a session for the user and returns it with a fresh token.
	Issue(ctx context.Context, userID int64) (Session, error)
	// Resolve returns the session for the token, or nil if the token is
	// unknown or expired. Expired entries are deleted on the read that
	// observes them (lazy expiry); there is no background sweep.
	Resolve(ctx context.Context, token string) (*Session, error)
	// Revoke deletes the session unconditionally. Unknown tokens are a no-op.
	Revoke(ctx context.Context, token string) error
}
