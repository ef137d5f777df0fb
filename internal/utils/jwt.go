package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the session payload carried by every bearer token.
type TokenClaims struct {
	UserID           uint   `json:"id"`
	PhoneNumber      string `json:"phoneNumber"`
	ActivationStatus bool   `json:"status"`
	Role             string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs claims with HS256. Each token gets its own jti so two
// tokens issued in the same second for the same user never collide.
func GenerateToken(secret string, claims TokenClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the embedded claims.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// RemainingLifetime returns how long the token stays valid, or zero.
func (c *TokenClaims) RemainingLifetime() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	left := time.Until(c.ExpiresAt.Time)
	if left < 0 {
		return 0
	}
	return left
}
