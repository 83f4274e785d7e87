package auth

import (
	"fmt"
	"time"

	apperrors "fourdx-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fourdx-backend"

// AuthClaims represents the JWT claims accepted by the API
type AuthClaims struct {
	jwt.RegisteredClaims `swaggerignore:"true"`

	Username string `json:"username" example:"ana"`
	Email    string `json:"email" example:"ana@example.com"`
}

// AuthService signs and validates HS256 bearer tokens with a shared secret
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates a token service. The secret must not be empty.
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT_SECRET is required when auth is enabled")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateJWT issues a token for the given user
func (s *AuthService) GenerateJWT(username, email string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses tokenString and returns its claims when the signature and
// time claims are valid
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
