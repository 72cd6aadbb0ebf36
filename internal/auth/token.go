package auth

import "github.com/google/uuid"

// NewToken mints a fresh opaque session token. Tokens are random UUIDv4
// strings persisted on the owning list/participant row; issuing a new one
// invalidates whatever token was stored before (single active session).
func NewToken() string { return uuid.NewString() }
