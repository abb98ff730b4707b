package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

// NewID generates a unique session identifier.
func NewID() string {
	return uuid.NewString()
}

// GenerateToken generates an opaque bearer token with the given entropy.
// crypto/rand makes collisions between concurrent logins negligible,
// so uniqueness is a generation-time property, not a store constraint.
func GenerateToken(bytes int) (string, error) {

	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil

}
