package service_test

import (
	"context"
	"testing"

	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/mocks"
	"fourdx-backend/internal/repository"
	"fourdx-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GoalServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGoalRepo *mocks.MockGoalRepositoryInterface
	goalService  *service.GoalService
	ctx          context.Context
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGoalRepo = mocks.NewMockGoalRepositoryInterface(suite.ctrl)
	suite.goalService = service.NewGoalService(suite.mockGoalRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *GoalServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GoalServiceTestSuite) TestUpsertGoal_Success() {
	suite.mockGoalRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, goal *models.Goal) error {
			assert.Equal(suite.T(), "Ana", goal.Responsible)
			assert.Equal(suite.T(), "Grow revenue", goal.Description)
			assert.Equal(suite.T(), "MRR ", goal.Indicator)
			goal.ID = 3
			return nil
		})

	resp, err := suite.goalService.UpsertGoal(suite.ctx, &service.UpsertGoalRequest{
		Team:        "Sales",
		Responsible: " Ana ",
		Description: "Grow revenue",
		Indicator:   "MRR ",
		Target:      "150k",
		Deadline:    "2025-12-31",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), resp.ID)
	assert.Equal(suite.T(), "150k", resp.Target)
}

func (suite *GoalServiceTestSuite) TestUpsertGoal_StoresGoalFieldsAsSubmitted() {
	req := &service.UpsertGoalRequest{
		Team:        "Sales",
		Responsible: "Ana",
		Description: "",
		Indicator:   "  NPS",
		Target:      "70 ",
		Deadline:    "Q4",
	}
	suite.mockGoalRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, goal *models.Goal) error {
			assert.Equal(suite.T(), "", goal.Description)
			assert.Equal(suite.T(), "  NPS", goal.Indicator)
			assert.Equal(suite.T(), "70 ", goal.Target)
			assert.Equal(suite.T(), "Q4", goal.Deadline)
			return nil
		})

	resp, err := suite.goalService.UpsertGoal(suite.ctx, req)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "70 ", resp.Target)
}

func (suite *GoalServiceTestSuite) TestUpsertGoal_MissingResponsible() {
	_, err := suite.goalService.UpsertGoal(suite.ctx, &service.UpsertGoalRequest{
		Team:        "Sales",
		Description: "Grow revenue",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "responsible")
}

func (suite *GoalServiceTestSuite) TestGetGoal() {
	suite.mockGoalRepo.EXPECT().GetByResponsible(gomock.Any(), "Ana").
		Return(&models.Goal{Team: "Sales", Responsible: "Ana", Description: "Grow"}, nil)

	resp, err := suite.goalService.GetGoal(suite.ctx, "Ana")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Grow", resp.Description)
}

func (suite *GoalServiceTestSuite) TestGetGoal_NotFound() {
	suite.mockGoalRepo.EXPECT().GetByResponsible(gomock.Any(), "Ana").Return(nil, repository.ErrNotFound)

	_, err := suite.goalService.GetGoal(suite.ctx, "Ana")

	assert.ErrorIs(suite.T(), err, apperrors.ErrGoalNotFound)
}

func (suite *GoalServiceTestSuite) TestListGoals_ByTeam() {
	suite.mockGoalRepo.EXPECT().GetByTeam(gomock.Any(), "Sales").Return([]models.Goal{
		{Team: "Sales", Responsible: "Ana"},
		{Team: "Sales", Responsible: "Bob"},
	}, nil)

	resp, err := suite.goalService.ListGoals(suite.ctx, "Sales")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
}

func (suite *GoalServiceTestSuite) TestDeleteGoal() {
	suite.mockGoalRepo.EXPECT().DeleteByResponsible(gomock.Any(), "Ana").Return(nil)
	assert.NoError(suite.T(), suite.goalService.DeleteGoal(suite.ctx, "Ana"))

	suite.mockGoalRepo.EXPECT().DeleteByResponsible(gomock.Any(), "Bob").Return(repository.ErrNotFound)
	assert.ErrorIs(suite.T(), suite.goalService.DeleteGoal(suite.ctx, "Bob"), apperrors.ErrGoalNotFound)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
