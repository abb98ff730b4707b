package session

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnauthorized covers every caller-visible auth failure:
	// bad credentials on login, missing/unknown/expired token on logout.
	ErrUnauthorized = errors.New("session: unauthorized")

	// ErrNotFound is the internal miss signal for token lookups.
	// The service converts it to ErrUnauthorized at the logout boundary.
	ErrNotFound = errors.New("session: token not found")
)

// Session binds a bearer token to a user identity for a bounded time window.
// The JSON shape is the externally visible session record.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"` // references users.id
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	UsageCount int       `json:"usageCount"`
}

// Active reports whether the session is still valid at the given instant.
func (s Session) Active(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved.
// Implementations must treat expired records as absent on reads;
// expiry is enforced at read time, not by an eager sweeper.
type Store interface {
	// Put inserts or overwrites a session. Overwrite is allowed and is
	// how usage-count updates are persisted.
	Put(ctx context.Context, s Session) error

	// GetByToken returns (nil, nil) when the token is unknown or the
	// record has expired.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// DeleteByToken removes the record if present. Deleting an absent
	// token is a no-op, not an error.
	DeleteByToken(ctx context.Context, token string) error
}
