package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/sparcom/backend/internal/domain"
)

const (
	saltBytes = 16
	keyBytes  = 32

	// Stored form: hex(salt) + hex(key), fixed-width.
	saltHexLen = saltBytes * 2
	hashLen    = saltHexLen + keyBytes*2
)

// PBKDF2Hasher derives password hashes with PBKDF2-SHA256. The stored
// value is 96 hex characters: a 32-char salt prefix followed by the
// 64-char derived key.
type PBKDF2Hasher struct {
	iterations int
}

func NewPBKDF2Hasher(iterations int) *PBKDF2Hasher {
	if iterations <= 0 {
		iterations = 50000
	}
	return &PBKDF2Hasher{iterations: iterations}
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", domain.ErrRandomFailed(err)
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), h.iterations, keyBytes, sha256.New)
	return saltHex + hex.EncodeToString(key), nil
}

// Verify reports whether password matches the stored hash. Malformed
// stored values verify as false rather than erroring, so a corrupted row
// behaves like a wrong password.
func (h *PBKDF2Hasher) Verify(stored, password string) bool {
	if len(stored) != hashLen {
		return false
	}
	saltHex := stored[:saltHexLen]
	want, err := hex.DecodeString(stored[saltHexLen:])
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(saltHex), h.iterations, keyBytes, sha256.New)
	return hmac.Equal(got, want)
}
