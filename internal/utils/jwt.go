package utils

import (
	"errors" // Error values
	"time"   // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenTTL is how long an issued session token stays valid
const TokenTTL = time.Hour

// ErrInvalidToken covers missing, malformed, foreign, and expired tokens
var ErrInvalidToken = errors.New("invalid token")

// JWT Claims
type Claims struct {
	Email                string `json:"email"` // Identity claim
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateJWT creates a signed token for the given email
func GenerateJWT(email, secret string) (string, error) {
	now := time.Now()
	// Set token claims
	claims := Claims{
		Email: email, // Identity claim
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)), // Token expires in one hour
			IssuedAt:  jwt.NewNumericDate(now),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string, returning its claims
func ParseJWT(tokenStr, secret string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	// Check for parsing errors
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.Email != "" {
		return claims, nil // Return claims if valid
	}
	return nil, ErrInvalidToken
}
