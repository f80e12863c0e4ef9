package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry returns the exp claim of tokenString without verifying the
// signature. The agent never holds the origin's signing key; it only needs
// to know whether replaying with the token is pointless.
//
// ok is false when the token carries no exp claim.
func TokenExpiry(tokenString string) (expiresAt time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, false, nil
	}

	return exp.Time, true, nil
}

// TokenExpired reports whether tokenString is a JWT whose exp claim is at
// or before now. Opaque (non-JWT) tokens and tokens without exp are never
// considered expired.
func TokenExpired(tokenString string, now time.Time) bool {
	expiresAt, ok, err := TokenExpiry(tokenString)
	if err != nil || !ok {
		return false
	}
	return !now.Before(expiresAt)
}
