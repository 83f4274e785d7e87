package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GoalHandler handles HTTP requests for wildly important goals
type GoalHandler struct {
	goalService service.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// UpsertGoal handles PUT /goals
// @Summary Create or replace a goal
// @Description Each responsible person holds at most one goal. Saving again replaces it.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body service.UpsertGoalRequest true "Goal data"
// @Success 200 {object} map[string]interface{} "Goal saved"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /goals [put]
func (h *GoalHandler) UpsertGoal(c *gin.Context) {
	var req service.UpsertGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	goal, err := h.goalService.UpsertGoal(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "upsert goal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "goal saved",
		"goal":    goal,
	})
}

// GetGoal handles GET /goals/:responsible
// @Summary Get a person's goal
// @Tags goals
// @Produce json
// @Param responsible path string true "Responsible person"
// @Success 200 {object} service.GoalResponse "Goal"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /goals/{responsible} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goalService.GetGoal(c.Request.Context(), c.Param("responsible"))
	if err != nil {
		respondError(c, "get goal", err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// ListGoals handles GET /goals
// @Summary List goals
// @Tags goals
// @Produce json
// @Param team query string false "Team name"
// @Success 200 {object} service.GoalListResponse "Successfully retrieved goals"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context(), c.Query("team"))
	if err != nil {
		respondError(c, "list goals", err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// DeleteGoal handles DELETE /goals/:responsible
// @Summary Delete a person's goal
// @Tags goals
// @Produce json
// @Param responsible path string true "Responsible person"
// @Success 200 {object} map[string]interface{} "Goal deleted"
// @Failure 404 {object} ErrorResponse "Goal not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /goals/{responsible} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	if err := h.goalService.DeleteGoal(c.Request.Context(), c.Param("responsible")); err != nil {
		respondError(c, "delete goal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "goal deleted"})
}
