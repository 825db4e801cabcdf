// Package token implements access token issuance and verification with
// HMAC-signed JWTs.
package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
)

const defaultTTL = 168 * time.Hour

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// JWTManager signs and parses HS256 access tokens. The subject claim
// carries the account id.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

func (m *JWTManager) Issue(principal user.Principal, issuedAt time.Time) (string, time.Time, error) {
	if strings.TrimSpace(principal.UserID) == "" {
		return "", time.Time{}, fmt.Errorf("principal user id is required")
	}

	expiresAt := issuedAt.Add(m.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   principal.UserID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (m *JWTManager) Verify(token string) (user.Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return user.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return user.Principal{}, fmt.Errorf("token has no subject")
	}

	return user.Principal{UserID: claims.Subject}, nil
}
