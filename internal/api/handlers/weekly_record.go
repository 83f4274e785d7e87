package handlers

import (
	"net/http"

	"fourdx-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WeeklyRecordHandler handles HTTP requests for the weekly cadence
type WeeklyRecordHandler struct {
	weekService service.WeeklyRecordServiceInterface
}

// NewWeeklyRecordHandler creates a new weekly record handler
func NewWeeklyRecordHandler(weekService service.WeeklyRecordServiceInterface) *WeeklyRecordHandler {
	return &WeeklyRecordHandler{
		weekService: weekService,
	}
}

type weekQuery struct {
	Responsible string `form:"responsible" binding:"required"`
	Goal        string `form:"goal" binding:"required"`
	Week        string `form:"week"`
}

// RecordWeek handles POST /weeks
// @Summary Append a weekly record
// @Description Records are never overwritten. Lookups return the oldest record of a week.
// @Tags weeks
// @Accept json
// @Produce json
// @Param record body service.RecordWeekRequest true "Weekly record"
// @Success 201 {object} map[string]interface{} "Week recorded"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /weeks [post]
func (h *WeeklyRecordHandler) RecordWeek(c *gin.Context) {
	var req service.RecordWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	record, err := h.weekService.RecordWeek(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "record week", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "week recorded",
		"record":  record,
	})
}

// GetWeeks handles GET /weeks
// @Summary List weekly records or find one week
// @Description Without week, lists every record of the goal. With week, returns the oldest record of that week.
// @Tags weeks
// @Produce json
// @Param responsible query string true "Responsible person"
// @Param goal query string true "Goal description"
// @Param week query string false "Week start date (YYYY-MM-DD)"
// @Success 200 {object} service.WeeklyRecordListResponse "Records"
// @Failure 400 {object} ErrorResponse "Missing query parameters"
// @Failure 404 {object} ErrorResponse "Weekly record not found"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /weeks [get]
func (h *WeeklyRecordHandler) GetWeeks(c *gin.Context) {
	var q weekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	if q.Week != "" {
		record, err := h.weekService.FindWeek(c.Request.Context(), q.Responsible, q.Goal, q.Week)
		if err != nil {
			respondError(c, "find week", err)
			return
		}
		c.JSON(http.StatusOK, record)
		return
	}

	records, err := h.weekService.ListWeeks(c.Request.Context(), q.Responsible, q.Goal)
	if err != nil {
		respondError(c, "list weeks", err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CurrentWeeks handles GET /weeks/current
// @Summary Current and previous week start dates
// @Tags weeks
// @Produce json
// @Success 200 {object} service.CurrentWeeksResponse "Week start dates"
// @Security BearerAuth
// @Router /weeks/current [get]
func (h *WeeklyRecordHandler) CurrentWeeks(c *gin.Context) {
	c.JSON(http.StatusOK, h.weekService.CurrentWeeks())
}

// ConfirmPreviousWeek handles POST /weeks/previous
// @Summary Confirm last week's commitment
// @Tags weeks
// @Accept json
// @Produce json
// @Param confirmation body service.ConfirmWeekRequest true "Completion flag"
// @Success 201 {object} map[string]interface{} "Week confirmed"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /weeks/previous [post]
func (h *WeeklyRecordHandler) ConfirmPreviousWeek(c *gin.Context) {
	var req service.ConfirmWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	record, err := h.weekService.ConfirmPreviousWeek(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "confirm previous week", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "previous week confirmed",
		"record":  record,
	})
}

// CommitCurrentWeek handles POST /weeks/current
// @Summary Commit to this week's plan
// @Tags weeks
// @Accept json
// @Produce json
// @Param commitment body service.CommitWeekRequest true "Plan"
// @Success 201 {object} map[string]interface{} "Commitment saved"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 503 {object} ErrorResponse "Store unavailable"
// @Security BearerAuth
// @Router /weeks/current [post]
func (h *WeeklyRecordHandler) CommitCurrentWeek(c *gin.Context) {
	var req service.CommitWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	record, err := h.weekService.CommitCurrentWeek(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "commit current week", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "commitment saved",
		"record":  record,
	})
}
