package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rdiego26/muti-user-task-manager-api/internal/auth/credentials"
)

// Service is the authentication state machine exposed to the HTTP layer.
// It owns session creation, lookup, usage accounting and revocation.
// Dependencies are injected so tests can swap in fakes.
type Service struct {
	store      Store
	verifier   credentials.Verifier
	ttl        time.Duration
	tokenBytes int
}

func NewService(
	store Store,
	verifier credentials.Verifier,
	ttl time.Duration,
	tokenBytes int,
) *Service {
	return &Service{
		store:      store,
		verifier:   verifier,
		ttl:        ttl,
		tokenBytes: tokenBytes,
	}
}

// Login verifies the credentials and, on a match, issues a fresh session.
// A non-matching email and a wrong password both come back as
// ErrUnauthorized so callers cannot enumerate accounts. Verifier or
// store outages propagate as-is, distinguishable from auth failures.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {

	userID, err := s.verifier.FindWithCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, credentials.ErrInvalidCredentials) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("session: credential lookup: %w", err)
	}

	token, err := GenerateToken(s.tokenBytes)
	if err != nil {
		return nil, err
	}

	sess := Session{
		ID:        NewID(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("session: persist: %w", err)
	}

	return &sess, nil
}

// FindActiveToken resolves a token to its session. Absent and expired
// tokens both return ErrNotFound. Pure read, no side effects.
func (s *Service) FindActiveToken(ctx context.Context, token string) (*Session, error) {
	sess, err := s.store.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Increment records one use of the session and persists the update.
func (s *Service) Increment(ctx context.Context, sess *Session) (*Session, error) {
	updated := *sess
	updated.UsageCount++

	if err := s.store.Put(ctx, updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteByToken revokes the session unconditionally. Idempotent:
// deleting an unknown or already-deleted token succeeds.
func (s *Service) DeleteByToken(ctx context.Context, token string) error {
	return s.store.DeleteByToken(ctx, token)
}

// Logout revokes the session behind the given bearer token.
// An empty token fails before any store access. An unknown or expired
// token is rejected, not silently accepted. On success the session's
// usage count is bumped once for auditing, then the record is deleted.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	sess, err := s.FindActiveToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}

	if _, err := s.Increment(ctx, sess); err != nil {
		return err
	}

	return s.DeleteByToken(ctx, token)
}
