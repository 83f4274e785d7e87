package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST /users
// @Summary Create a new user
// @Description Register a person in a team. Emails are unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} map[string]interface{} "User created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"user":    user,
	})
}

// ListUsers handles GET /users
// @Summary List users
// @Description Get every user, optionally restricted to one team
// @Tags users
// @Produce json
// @Param team query string false "Team name"
// @Success 200 {object} service.UserListResponse "Successfully retrieved users"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), c.Query("team"))
	if err != nil {
		respondError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
