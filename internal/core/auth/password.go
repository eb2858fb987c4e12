// Package auth holds the credential primitives shared by the login service
// and the HTTP middleware: bcrypt verification and the signed session token
// issuer/verifier.
package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword reports whether plaintext matches the stored bcrypt hash.
//
// Hashes written by other bcrypt implementations may carry the $2b$ or $2y$
// prefix for the same algorithm family; those are rewritten to $2a$ before
// comparison so the prefix alone never causes a false rejection. An empty or
// malformed stored hash is a deny, never an error: a corrupt row must not
// take down the login path.
func VerifyPassword(plaintext, storedHash string) bool {
	if storedHash == "" {
		return false
	}

	hash := strings.TrimSpace(storedHash)
	if strings.HasPrefix(hash, "$2y$") || strings.HasPrefix(hash, "$2b$") {
		hash = "$2a$" + hash[4:]
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// HashPassword produces a bcrypt hash at the given cost. Cost values outside
// bcrypt's supported range fall back to the library default.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
