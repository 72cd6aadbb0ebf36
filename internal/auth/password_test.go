package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestHashAndCheckCode(t *testing.T) {
	hash, err := HashCode("secret")
	if err != nil {
		t.Fatalf("HashCode: %v", err)
	}
	if hash == "secret" || hash == "" {
		t.Fatalf("hash must not be the plaintext: %q", hash)
	}

	if err := CheckCode(hash, "secret"); err != nil {
		t.Fatalf("correct code should verify: %v", err)
	}
	if err := CheckCode(hash, "wrong"); !errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("wrong code should be ErrCodeMismatch, got %v", err)
	}
}

func TestCheckCode_MalformedHash(t *testing.T) {
	err := CheckCode("not-a-bcrypt-hash", "secret")
	if err == nil || errors.Is(err, ErrCodeMismatch) {
		t.Fatalf("malformed hash should surface the raw error, got %v", err)
	}
}

func TestNewToken_IsUUID(t *testing.T) {
	a, b := NewToken(), NewToken()
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("token is not a uuid: %q", a)
	}
	if a == b {
		t.Fatalf("tokens must be unique")
	}
}
