package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired reports a well-formed token past its expiry.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid reports a malformed, unsigned or otherwise rejected token.
var ErrTokenInvalid = errors.New("invalid token")

// Claims represents the JWT payload; the subject is the user's email.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue signs an HS256 access token for subject expiring after ttl.
func Issue(subject, issuer, key string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
}

// Parse validates a token and returns its claims. Expired tokens are
// reported distinctly from malformed or badly signed ones.
func Parse(tokenStr, key, issuer string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(key), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if issuer != "" && claims.Issuer != issuer {
		return Claims{}, ErrTokenInvalid
	}
	return *claims, nil
}
