package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by session tokens. UserID is the CUS id, Role the numeric
// role stored on the user row.
type Claims struct {
	UserID string `json:"userId"`
	Role   int    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a session token for the user.
func GenerateToken(userID string, role int, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
