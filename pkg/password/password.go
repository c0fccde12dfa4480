// Package password hashes and verifies passwords and enforces the
// strength policy. It knows nothing about users or persistence.
package password

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword is returned by Validate when the plaintext does not meet
// the strength policy.
var ErrWeakPassword = errors.New("password must be at least 8 characters long and include uppercase, lowercase, number, and special character")

const minLength = 8

// Hash derives a salted bcrypt hash from the plaintext.
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	return string(bytes), err
}

// Verify reports whether plaintext matches the stored hash. The comparison
// is constant-time via bcrypt itself.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// Validate enforces the strength policy: minimum length plus at least one
// uppercase letter, lowercase letter, digit, and special character.
func Validate(plaintext string) error {
	if len(plaintext) < minLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
