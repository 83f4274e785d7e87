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

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	userService  *service.UserService
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockTeamRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) validRequest() *service.CreateUserRequest {
	return &service.CreateUserRequest{Name: "Ana Souza", Email: "ana@example.com", Team: "Sales"}
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(&models.Team{Name: "Sales"}, nil)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(nil, repository.ErrNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = 10
			return nil
		})

	resp, err := suite.userService.CreateUser(suite.ctx, suite.validRequest())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), resp.ID)
	assert.Equal(suite.T(), "ana@example.com", resp.Email)
	assert.Equal(suite.T(), "Sales", resp.Team)
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidEmail() {
	req := suite.validRequest()
	req.Email = "not-an-email"

	_, err := suite.userService.CreateUser(suite.ctx, req)

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "email")
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownTeam() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(nil, repository.ErrNotFound)

	_, err := suite.userService.CreateUser(suite.ctx, suite.validRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrTeamNotFound)
}

func (suite *UserServiceTestSuite) TestCreateUser_EmailTaken() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(&models.Team{Name: "Sales"}, nil)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(&models.User{Email: "ana@example.com"}, nil)

	_, err := suite.userService.CreateUser(suite.ctx, suite.validRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateRace() {
	suite.mockTeamRepo.EXPECT().GetByName(gomock.Any(), "Sales").Return(&models.Team{Name: "Sales"}, nil)
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(nil, repository.ErrNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

	_, err := suite.userService.CreateUser(suite.ctx, suite.validRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestListUsers_ByTeam() {
	suite.mockUserRepo.EXPECT().GetByTeam(gomock.Any(), "Sales").Return([]models.User{
		{Name: "Ana", Email: "ana@example.com", Team: "Sales"},
	}, nil)

	resp, err := suite.userService.ListUsers(suite.ctx, " Sales ")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
}

func (suite *UserServiceTestSuite) TestListUsers_All() {
	suite.mockUserRepo.EXPECT().GetAll(gomock.Any()).Return([]models.User{
		{Name: "Ana", Email: "ana@example.com", Team: "Sales"},
		{Name: "Bob", Email: "bob@example.com", Team: "Ops"},
	}, nil)

	resp, err := suite.userService.ListUsers(suite.ctx, "")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Users, 2)
}

func (suite *UserServiceTestSuite) TestGetUser_Found() {
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
		Return(&models.User{BaseModel: models.BaseModel{ID: 4}, Name: "Ana Souza", Email: "ana@example.com", Team: "Sales"}, nil)

	user, err := suite.userService.GetUser(suite.ctx, " ana@example.com ")

	suite.Require().NoError(err)
	assert.Equal(suite.T(), int64(4), user.ID)
	assert.Equal(suite.T(), "Ana Souza", user.Name)
}

func (suite *UserServiceTestSuite) TestGetUser_NotFound() {
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, repository.ErrNotFound)

	_, err := suite.userService.GetUser(suite.ctx, "ghost@example.com")

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
