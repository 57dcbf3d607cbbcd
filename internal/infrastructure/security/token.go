package security

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/sparcom/backend/internal/domain"
)

const tokenBytes = 32

// NewSessionToken returns a fresh opaque session token: 32 random bytes,
// URL-safe base64 without padding (43 characters).
func NewSessionToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", domain.ErrRandomFailed(err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
