package jwt

import (
	"fmt"
	"time"

	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// Tokens live for 30 days.
const TokenExpiryLogin = 30 * 24 * time.Hour

// Claims carries the authenticated identity plus the profile location
// fields, so holiday/weather lookups can run without a user fetch.
type Claims struct {
	UserID    uint     `json:"user_id"`
	Email     string   `json:"email"`
	City      *string  `json:"city"`
	Region    *string  `json:"region"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("signing secret is not set")
	}

	now := time.Now()
	claims := Claims{
		UserID:    user.ID,
		Email:     user.Email,
		City:      user.City,
		Region:    user.Region,
		Country:   user.Country,
		Latitude:  user.Latitude,
		Longitude: user.Longitude,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpiryLogin)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a bearer token. A missing secret,
// bad signature and expired token all come back as a plain error; the
// caller is expected to map every failure to the same 401.
func ValidateToken(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("signing secret is not set")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
