package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MeasureHandler handles HTTP requests for lead measures
type MeasureHandler struct {
	measureService service.MeasureServiceInterface
}

// NewMeasureHandler creates a new measure handler
func NewMeasureHandler(measureService service.MeasureServiceInterface) *MeasureHandler {
	return &MeasureHandler{
		measureService: measureService,
	}
}

// goalQuery selects the goal of one responsible person
type goalQuery struct {
	Responsible string `form:"responsible" binding:"required"`
	Goal        string `form:"goal" binding:"required"`
}

// CreateMeasures handles POST /measures
// @Summary Create lead measures
// @Description Every non-blank line of text becomes one measure
// @Tags measures
// @Accept json
// @Produce json
// @Param measures body service.CreateMeasuresRequest true "Measure lines"
// @Success 201 {object} map[string]interface{} "Measures created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /measures [post]
func (h *MeasureHandler) CreateMeasures(c *gin.Context) {
	var req service.CreateMeasuresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	measures, err := h.measureService.CreateMeasures(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "create measures", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "measures created",
		"measures": measures.Measures,
		"total":    measures.Total,
	})
}

// ListMeasures handles GET /measures
// @Summary List the measures of a goal
// @Tags measures
// @Produce json
// @Param responsible query string true "Responsible person"
// @Param goal query string true "Goal description"
// @Success 200 {object} service.MeasureListResponse "Successfully retrieved measures"
// @Failure 400 {object} ErrorResponse "Missing query parameters"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /measures [get]
func (h *MeasureHandler) ListMeasures(c *gin.Context) {
	var q goalQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	measures, err := h.measureService.ListMeasures(c.Request.Context(), q.Responsible, q.Goal)
	if err != nil {
		respondError(c, "list measures", err)
		return
	}

	c.JSON(http.StatusOK, measures)
}

// UpdateMeasure handles PUT /measures
// @Summary Edit a measure
// @Description Identified by id, or by responsible, goal and old_text when no id is given
// @Tags measures
// @Accept json
// @Produce json
// @Param measure body service.UpdateMeasureRequest true "Measure identity and new values"
// @Success 200 {object} map[string]interface{} "Measure updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Measure not found"
// @Failure 409 {object} ErrorResponse "Measure identity is ambiguous"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /measures [put]
func (h *MeasureHandler) UpdateMeasure(c *gin.Context) {
	var req service.UpdateMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	measure, err := h.measureService.UpdateMeasure(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "update measure", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "measure updated",
		"measure": measure,
	})
}

// DeleteMeasure handles DELETE /measures
// @Summary Delete a measure
// @Description Identified by id, or by responsible, goal and text when no id is given
// @Tags measures
// @Accept json
// @Produce json
// @Param measure body service.DeleteMeasureRequest true "Measure identity"
// @Success 200 {object} map[string]interface{} "Measure deleted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Measure not found"
// @Failure 409 {object} ErrorResponse "Measure identity is ambiguous"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /measures [delete]
func (h *MeasureHandler) DeleteMeasure(c *gin.Context) {
	var req service.DeleteMeasureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.measureService.DeleteMeasure(c.Request.Context(), &req); err != nil {
		respondError(c, "delete measure", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "measure deleted"})
}
