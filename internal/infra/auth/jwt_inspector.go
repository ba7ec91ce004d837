// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// storefrontClaims are the claims the backend puts in identity tokens.
type storefrontClaims struct {
	jwt.RegisteredClaims

	// ID is used by backends that do not set "sub".
	UserID string `json:"id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// jwtInspector reads backend-issued JWTs. The client has no signing key,
// so signatures are never checked here.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect decodes the claims of token.
func (s *jwtInspector) Inspect(token string) (*service.TokenInfo, error) {
	if token == "" {
		return nil, errors.New("token is empty")
	}

	var claims storefrontClaims
	if _, _, err := s.parser.ParseUnverified(token, &claims); err != nil {
		return nil, errors.Wrap(err, "token is not a JWT")
	}

	info := &service.TokenInfo{
		Subject: claims.Subject,
		Role:    claims.Role,
	}
	if info.Subject == "" {
		info.Subject = claims.UserID
	}
	if claims.ExpiresAt != nil {
		expiresAt := claims.ExpiresAt.Time
		info.ExpiresAt = &expiresAt
	}

	return info, nil
}
