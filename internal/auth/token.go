package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure; callers must not
// distinguish between them in responses.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the identity payload carried by a session token. It is whatever
// the client posted to /jwt plus the issue time.
type Claims = jwt.MapClaims

// TokenManager signs and verifies HS256 session tokens. Tokens carry no
// expiry.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue signs payload, stamping it with iat. The payload map is not mutated.
func (m *TokenManager) Issue(payload map[string]interface{}) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("token secret is not configured")
	}

	claims := make(Claims, len(payload)+1)
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = m.now().Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the decoded payload.
func (m *TokenManager) Verify(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
