package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/Harshan-mv/wechat/internal/core/domain"
)

// The cookie value is an HS256-signed token whose only claim is the session
// id. The user snapshot stays server-side; tampering with the cookie yields
// a signature failure, not a different session.

// SignToken wraps a session id into a signed cookie value.
func SignToken(secret, sessionID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sid": sessionID})
	return t.SignedString([]byte(secret))
}

// ParseToken extracts the session id from a cookie value. Any signature or
// shape problem is reported as ErrSessionNotFound so callers treat a bad
// cookie exactly like a missing one.
func ParseToken(secret, token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrSessionNotFound
	}
	return sid, nil
}
