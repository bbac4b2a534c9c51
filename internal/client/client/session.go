package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("no access token configured")

// Session is what the client can read from its bearer token. The claims are
// not verified here, the codes service does that on every request.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseSession decodes the claims of a JWT access token.
func ParseSession(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	s := &Session{UserID: claims.Subject}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// Expired reports whether the token carries an expiry that is before now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
