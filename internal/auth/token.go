// ABOUTME: JWT issuing and verification for REST API bearer tokens
// ABOUTME: Uses HS256 signing with a secret of at least MinSecretLength bytes

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum signing secret size in bytes.
const MinSecretLength = 32

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
	ErrShortSecret  = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLength)
)

// TokenVerifier defines the interface for token verification
type TokenVerifier interface {
	Verify(tokenString string) (userID string, err error)
}

// JWTIssuer issues and verifies HS256 signed JWTs
type JWTIssuer struct {
	secret []byte
}

// NewJWTIssuer creates an issuer with the given secret
func NewJWTIssuer(secret []byte) (*JWTIssuer, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrShortSecret
	}
	return &JWTIssuer{secret: secret}, nil
}

// claims is the payload of a dashboard token. The subject is the user ID.
type claims struct {
	jwt.RegisteredClaims
}

// Generate signs a token for userID that expires after ttl.
func (v *JWTIssuer) Generate(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}

// Verify checks the signature and expiry of tokenString and returns its subject.
func (v *JWTIssuer) Verify(tokenString string) (userID string, err error) {
	var c claims
	_, err = jwt.ParseWithClaims(tokenString, &c,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpiredToken
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case c.Subject == "":
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	return c.Subject, nil
}
