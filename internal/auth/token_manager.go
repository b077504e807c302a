package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates first-party HS256 session tokens.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenManager(secretKey []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secretKey: secretKey, ttl: ttl}
}

// Issue signs a session token for the given account.
func (m *TokenManager) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"jti":   uuid.New().String(),
		"exp":   now.Add(m.ttl).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a session token and extracts its claims. Expiry is
// enforced by the jwt library during parsing.
func (m *TokenManager) Parse(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	sub, ok := (*claims)["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}

	email, ok := (*claims)["email"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}

	jti, _ := (*claims)["jti"].(string)

	return &JWTClaims{
		UserUUID:   sub,
		EmailValue: email,
		JTI:        jti,
	}, nil
}
