package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required on admin-only routes
const RoleAdmin = "admin"

// Claims are the fields this service reads out of a validated token
type Claims struct {
	UserID string
	Role   string
}

// TokenManager signs and validates the HS256 tokens used on admin routes
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager with the given signing secret
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Generate creates a signed token for a user with the given role,
// valid for 72 hours.
func (m *TokenManager) Generate(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(72 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a token string and returns its claims if the signature
// and expiry check out.
func (m *TokenManager) Validate(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	userID, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, errors.New("invalid subject claim")
	}
	role, ok := mapClaims["role"].(string)
	if !ok {
		return Claims{}, errors.New("invalid role claim")
	}

	return Claims{UserID: userID, Role: role}, nil
}
