package service

import (
	"time"
)

// TokenInfo holds what the client can read from an identity token without
// the signing key.
type TokenInfo struct {
	Subject   string
	Role      string
	ExpiresAt *time.Time
}

// Expired reports whether the token carried an expiry that is in the past.
func (t *TokenInfo) Expired(now time.Time) bool {
	return t != nil && t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// TokenInspector reads identity tokens issued by the backend.
type TokenInspector interface {
	// Inspect decodes the token claims. It does not verify the signature;
	// the backend remains the authority on validity.
	Inspect(token string) (*TokenInfo, error)
}
