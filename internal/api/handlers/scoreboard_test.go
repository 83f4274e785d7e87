package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"fourdx-backend/internal/api/handlers"
	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/mocks"
	"fourdx-backend/internal/service"
	"fourdx-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScoreboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockScoreboardServiceInterface(ctrl)
	handler := handlers.NewScoreboardHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/scoreboard", handler.GetScoreboard)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetScoreboard(gomock.Any()).Return(&service.ScoreboardResponse{
			CurrentWeek:  "2025-03-10",
			PreviousWeek: "2025-03-03",
			Teams: []service.TeamScoreboard{{
				Team: "Sales",
				Goals: []service.GoalScoreboard{{
					Goal:         service.GoalResponse{Responsible: "Ana", Description: "Grow MRR"},
					Measures:     []service.MeasureResponse{{ID: 1, Text: "Call leads"}},
					PreviousWeek: &service.WeekStatus{WeekStart: "2025-03-03", Completed: models.CompletionYes},
				}},
			}},
		}, nil)

		recorder := httpSuite.MakeRequest("GET", "/api/v1/scoreboard", nil)

		var response service.ScoreboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		require.Len(t, response.Teams, 1)
		goal := response.Teams[0].Goals[0]
		require.NotNil(t, goal.PreviousWeek)
		assert.Equal(t, models.CompletionYes, goal.PreviousWeek.Completed)
		assert.Nil(t, goal.CurrentWeek)
	})

	t.Run("Store unavailable", func(t *testing.T) {
		mockService.EXPECT().GetScoreboard(gomock.Any()).
			Return(nil, apperrors.NewStoreError("select", "METAS_CRUCIAIS_4DX", errors.New("timeout")))

		recorder := httpSuite.MakeRequest("GET", "/api/v1/scoreboard", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusServiceUnavailable, "timeout")
	})
}
