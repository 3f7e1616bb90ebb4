package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt. The cost is
// injectable so tests can use the bcrypt minimum instead of paying ~250ms
// per hash.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the production cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: defaultBcryptCost}
}

// NewPasswordHasherWithCost returns a hasher with an explicit cost.
// Intended for tests; do not lower the cost in production.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext. The salt and cost are embedded
// in the output, so the result can be stored as a single column.
func (p *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		// bcrypt silently truncates longer inputs; reject instead
		return "", fmt.Errorf("password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. The comparison
// inside bcrypt is constant-time.
func (p *PasswordHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
