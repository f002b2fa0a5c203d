// Package auth verifies the bearer tokens issued by the user pool and mints
// development tokens with the same shape.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ErrInvalidToken is returned for every token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager signs and verifies HS256 tokens whose subject is the owner id.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	clock     clockwork.Clock
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration, clock clockwork.Clock) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		clock:     clock,
	}
}

// GenerateAccessToken creates a signed token for ownerID valid for the
// configured TTL.
func (m *JWTManager) GenerateAccessToken(ownerID uuid.UUID) (string, error) {
	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   ownerID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token and returns the owner id
// it was issued for. Failures wrap ErrInvalidToken.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not an owner id", ErrInvalidToken)
	}
	return ownerID, nil
}
