package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Register a team name. Names are unique.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} map[string]interface{} "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Team already exists"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "create team", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "team created",
		"team":    team,
	})
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get every registered team
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, "list teams", err)
		return
	}

	c.JSON(http.StatusOK, teams)
}
