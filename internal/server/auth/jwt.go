// Package auth mints session tokens for completed authentications. A
// session id is an HS256-signed JWT carrying the user name and an expiry.
// To callers it is a bare capability string: the protocol defines no
// further validation or revocation surface, but signing it means the
// server can later recognize its own tokens without keeping session
// state.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reymom/zkp-chaum-pedersen/internal/common"
)

// Claims carries the registered claims plus the authenticated user name.
type Claims struct {
	jwt.RegisteredClaims
	User string
}

// GenerateSessionToken mints a signed session id for user, valid for
// validityDuration from now.
func GenerateSessionToken(user string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		User: user,
	})

	return token.SignedString(secretKey)
}

// GetUserFromToken validates a session token and returns the user name it
// was issued for.
func GetUserFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrorVerificationFailed
	}

	return claims.User, nil
}
