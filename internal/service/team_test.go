package service_test

import (
	"context"
	"errors"
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

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	teamService  *service.TeamService
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, validator.New())
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeam_Success() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(nil, repository.ErrNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) error {
			assert.Equal(suite.T(), "Sales", team.Name)
			team.ID = 1
			return nil
		})

	resp, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "  Sales  "})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.ID)
	assert.Equal(suite.T(), "Sales", resp.Name)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_EmptyName() {
	resp, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "   "})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "name")
}

func (suite *TeamServiceTestSuite) TestCreateTeam_AlreadyExists() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").
		Return(&models.Team{BaseModel: models.BaseModel{ID: 4}, Name: "Sales"}, nil)

	resp, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "Sales"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_DuplicateRace() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(nil, repository.ErrNotFound)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

	_, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "Sales"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestCreateTeam_StoreFailure() {
	storeErr := apperrors.NewStoreError("select", models.TableTeams, errors.New("timeout"))
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(nil, storeErr)

	_, err := suite.teamService.CreateTeam(suite.ctx, &service.CreateTeamRequest{Name: "Sales"})

	assert.True(suite.T(), apperrors.IsStore(err))
}

func (suite *TeamServiceTestSuite) TestListTeams() {
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{
		{BaseModel: models.BaseModel{ID: 1}, Name: "Ops"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "Sales"},
	}, nil)

	resp, err := suite.teamService.ListTeams(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), "Sales", resp.Teams[1].Name)
}

func (suite *TeamServiceTestSuite) TestListTeams_Empty() {
	suite.mockTeamRepo.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	resp, err := suite.teamService.ListTeams(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.Teams)
	assert.Equal(suite.T(), 0, resp.Total)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
