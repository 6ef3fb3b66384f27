// Package token issues the bearer tokens the API accepts. Sign in lives in a
// separate identity service; this is for operators and local development.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MaxTTL bounds how long an issued token stays valid.
const MaxTTL = 30 * 24 * time.Hour

// Issue signs an HS256 token for userID valid for ttl from now.
func Issue(userID, secret, issuer string, ttl time.Duration, now time.Time) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	if ttl <= 0 || ttl > MaxTTL {
		return "", errors.New("token lifetime must be positive and at most 30 days")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
