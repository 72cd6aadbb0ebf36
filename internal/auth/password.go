// Package auth provides the credential primitives used by the session layer:
// one-way salted hashing of access codes and minting of the opaque bearer
// tokens stored alongside list and participant rows.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrCodeMismatch is returned when an access code does not match its stored hash.
var ErrCodeMismatch = errors.New("access code mismatch")

// HashCode derives a bcrypt hash from a plaintext access code.
// The hash embeds its own salt and cost; store it as-is.
func HashCode(code string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckCode compares a plaintext access code against a stored bcrypt hash.
// It returns ErrCodeMismatch when the code is wrong and the raw bcrypt error
// for malformed hashes.
func CheckCode(hash, code string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrCodeMismatch
	}
	return err
}
