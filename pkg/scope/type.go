package scope

import "time"

// Payload is what a verified session token carries.
type Payload struct {
	UserID    string
	Username  string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Verifier turns a raw token into a Payload.
type Verifier interface {
	Verify(token string) (Payload, error)
}

type scopeCtxKey struct{}
