package credentials

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyRegistered  = errors.New("credentials already exist")
	ErrPasswordTooShort   = errors.New("password too short")
)

// Verifier resolves an email/password pair to a user identity.
// A missing account and a wrong password are both reported as
// ErrInvalidCredentials; callers must never be able to tell them apart.
// Any other error is an infrastructure failure.
type Verifier interface {
	FindWithCredentials(ctx context.Context, email, password string) (userID string, err error)
}
