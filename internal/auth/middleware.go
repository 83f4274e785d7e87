package auth

import (
	"net/http"
	"strings"

	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingToken.Error()})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set(logger.UserKey, claims.Username)
	c.Set("email", claims.Email)
	c.Set("auth_claims", claims)
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(logger.UserKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
