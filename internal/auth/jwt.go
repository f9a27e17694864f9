// Package auth issues and validates the signed bearer tokens handed out
// after a successful Yandex login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: bad signature, garbage
// input, expired token, missing subject. Callers never learn which.
var ErrInvalidToken = errors.New("invalid token")

type Manager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewManager builds a token manager for the given HMAC algorithm ("HS256",
// "HS384", "HS512") and default lifetime.
func NewManager(secret, algorithm string, ttl time.Duration) (*Manager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("algorithm %q is not secret-based", algorithm)
	}
	return &Manager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs a token whose sub claim is subject, using the default lifetime.
func (m *Manager) Issue(subject string) (string, error) {
	return m.IssueFor(subject, m.ttl)
}

// IssueFor signs a token with an explicit lifetime.
func (m *Manager) IssueFor(subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
}

// Subject verifies a token and returns its sub claim.
func (m *Manager) Subject(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{m.method.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
