package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens bind a browser to its session ID with an HMAC-signed JWT, so the
// session store never trusts a client-supplied raw ID.

type tokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueToken signs a session token valid for ttl.
func IssueToken(secret, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a session token and returns the session ID.
func ParseToken(secret, tokenString string) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SessionID, nil
}
