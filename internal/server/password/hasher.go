// Package password provides one-way hashing and verification of user
// credentials using bcrypt. The salt and cost factor are embedded in the hash
// output, so verification needs nothing beyond the hash itself.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no cost is configured.
const DefaultCost = 10

// maxInputBytes is the longest input bcrypt will accept. Longer passwords
// are truncated before hashing so that any string remains hashable; bytes
// past the limit never contribute to the hash.
const maxInputBytes = 72

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxInputBytes {
		b = b[:maxInputBytes]
	}
	return b
}

// Hasher hashes and verifies passwords with a fixed cost factor.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// range bcrypt supports fall back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. Each call uses a fresh random
// salt, so hashing the same password twice yields different outputs. Inputs
// longer than 72 bytes are truncated to bcrypt's limit.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("password hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. Any mismatch, including a
// malformed hash, yields false. The underlying comparison is constant-time.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plaintext)) == nil
}
