package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoreboardHandler serves the read-only scoreboard
type ScoreboardHandler struct {
	scoreboardService service.ScoreboardServiceInterface
}

// NewScoreboardHandler creates a new scoreboard handler
func NewScoreboardHandler(scoreboardService service.ScoreboardServiceInterface) *ScoreboardHandler {
	return &ScoreboardHandler{
		scoreboardService: scoreboardService,
	}
}

// GetScoreboard handles GET /scoreboard
// @Summary Scoreboard
// @Description Goals grouped by team with their measures, last week's result and this week's commitment
// @Tags scoreboard
// @Produce json
// @Success 200 {object} service.ScoreboardResponse "Scoreboard"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /scoreboard [get]
func (h *ScoreboardHandler) GetScoreboard(c *gin.Context) {
	board, err := h.scoreboardService.GetScoreboard(c.Request.Context())
	if err != nil {
		respondError(c, "get scoreboard", err)
		return
	}

	c.JSON(http.StatusOK, board)
}
