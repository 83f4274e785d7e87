package auth

import (
	"context"
	"net/http"
	"time"

	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/logger"
	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserFinder resolves a registered user by email
type UserFinder interface {
	GetUser(ctx context.Context, email string) (*service.UserResponse, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   UserFinder
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users UserFinder) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// TokenRequest represents the request to issue a bearer token
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"ana@example.com"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type" example:"Bearer"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse describes the caller of an authenticated request
type MeResponse struct {
	User      *service.UserResponse `json:"user"`
	ExpiresAt *time.Time            `json:"expires_at,omitempty"`
}

// Token handles POST /api/v1/auth/token
// @Summary Issue a bearer token
// @Description Issue a bearer token for a registered user
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Registered user email"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unknown user"
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.WithContext(c).WithField("email", req.Email).Warn("token requested for unknown user")
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnknownUser.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to look up user for token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	token, err := h.service.GenerateJWT(user.Name, user.Email)
	if err != nil {
		logger.WithContext(c).WithError(err).Error("failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: h.service.now().Add(h.service.ttl).UTC(),
	})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Return the registered user behind the bearer token
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := GetUserEmail(c)
	if !ok || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnknownUser.Error()})
			return
		}
		logger.WithContext(c).WithError(err).Error("failed to look up current user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	resp := MeResponse{User: user}
	if claims, ok := GetAuthClaims(c); ok && claims.ExpiresAt != nil {
		expires := claims.ExpiresAt.Time.UTC()
		resp.ExpiresAt = &expires
	}
	c.JSON(http.StatusOK, resp)
}
