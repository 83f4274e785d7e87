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

type MeasureServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMeasureRepo *mocks.MockMeasureRepositoryInterface
	measureService  *service.MeasureService
	ctx             context.Context
}

func (suite *MeasureServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeasureRepo = mocks.NewMockMeasureRepositoryInterface(suite.ctrl)
	suite.measureService = service.NewMeasureService(suite.mockMeasureRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *MeasureServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func int64Ptr(v int64) *int64 {
	return &v
}

func (suite *MeasureServiceTestSuite) TestSplitMeasureLines() {
	assert.Equal(suite.T(), []string{"a", "b"}, service.SplitMeasureLines("a\n\n  b  \n\n"))
	assert.Empty(suite.T(), service.SplitMeasureLines(" \n\t\n"))
	assert.Equal(suite.T(), []string{"x", "x"}, service.SplitMeasureLines("x\nx"))
}

func (suite *MeasureServiceTestSuite) TestCreateMeasures_OneRowPerLine() {
	var texts []string
	suite.mockMeasureRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Measure) error {
			texts = append(texts, m.Text)
			assert.Equal(suite.T(), models.FrequencyWeekly, m.Frequency)
			m.ID = int64(len(texts))
			return nil
		}).Times(2)

	resp, err := suite.measureService.CreateMeasures(suite.ctx, &service.CreateMeasuresRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		Text:        "a\n\n  b  \n\n",
		Frequency:   models.FrequencyWeekly,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"a", "b"}, texts)
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), int64(2), resp.Measures[1].ID)
}

func (suite *MeasureServiceTestSuite) TestCreateMeasures_OnlyBlankLines() {
	_, err := suite.measureService.CreateMeasures(suite.ctx, &service.CreateMeasuresRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		Text:        "  \n \n",
		Frequency:   models.FrequencyDaily,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoMeasures)
}

func (suite *MeasureServiceTestSuite) TestCreateMeasures_InvalidFrequency() {
	_, err := suite.measureService.CreateMeasures(suite.ctx, &service.CreateMeasuresRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		Text:        "call",
		Frequency:   "Hourly",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "frequency")
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_ByID() {
	suite.mockMeasureRepo.EXPECT().Update(gomock.Any(), int64(7), map[string]interface{}{
		"medida_direcao": "visit",
		"frequencia":     models.FrequencyMonthly,
	}).Return(&models.Measure{BaseModel: models.BaseModel{ID: 7}, Text: "visit", Frequency: models.FrequencyMonthly}, nil)

	resp, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		ID:        int64Ptr(7),
		Text:      " visit ",
		Frequency: models.FrequencyMonthly,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "visit", resp.Text)
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_ByIDNotFound() {
	suite.mockMeasureRepo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(nil, repository.ErrNotFound)

	_, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		ID:        int64Ptr(7),
		Text:      "visit",
		Frequency: models.FrequencyMonthly,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMeasureNotFound)
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_ByTuple() {
	suite.mockMeasureRepo.EXPECT().FindByText(gomock.Any(), "Ana", "Grow", "call").
		Return([]models.Measure{{BaseModel: models.BaseModel{ID: 5}, Text: "call"}}, nil)
	suite.mockMeasureRepo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
		Return(&models.Measure{BaseModel: models.BaseModel{ID: 5}, Text: "visit"}, nil)

	resp, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		OldText:     "call",
		Text:        "visit",
		Frequency:   models.FrequencyDaily,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), resp.ID)
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_TupleWithoutMatch() {
	suite.mockMeasureRepo.EXPECT().FindByText(gomock.Any(), "Ana", "Grow", "call").Return(nil, nil)

	_, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		OldText:     "call",
		Text:        "visit",
		Frequency:   models.FrequencyDaily,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMeasureNotFound)
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_AmbiguousTupleWritesNothing() {
	suite.mockMeasureRepo.EXPECT().FindByText(gomock.Any(), "Ana", "Grow", "call").
		Return([]models.Measure{{BaseModel: models.BaseModel{ID: 1}}, {BaseModel: models.BaseModel{ID: 2}}}, nil)
	suite.mockMeasureRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		OldText:     "call",
		Text:        "visit",
		Frequency:   models.FrequencyDaily,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAmbiguousMeasure)
	assert.Contains(suite.T(), err.Error(), "2 rows match")
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_InvalidFrequency() {
	id := int64(7)
	_, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		ID:        &id,
		Text:      "visit",
		Frequency: "Hourly",
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "must be one of: Daily Weekly Monthly Project")
}

func (suite *MeasureServiceTestSuite) TestUpdateMeasure_MissingIdentity() {
	_, err := suite.measureService.UpdateMeasure(suite.ctx, &service.UpdateMeasureRequest{
		Text:      "visit",
		Frequency: models.FrequencyDaily,
	})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MeasureServiceTestSuite) TestDeleteMeasure_ByID() {
	suite.mockMeasureRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(nil)

	err := suite.measureService.DeleteMeasure(suite.ctx, &service.DeleteMeasureRequest{ID: int64Ptr(9)})

	assert.NoError(suite.T(), err)
}

func (suite *MeasureServiceTestSuite) TestDeleteMeasure_ByTuple() {
	suite.mockMeasureRepo.EXPECT().FindByText(gomock.Any(), "Ana", "Grow", "call").
		Return([]models.Measure{{BaseModel: models.BaseModel{ID: 4}}}, nil)
	suite.mockMeasureRepo.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	err := suite.measureService.DeleteMeasure(suite.ctx, &service.DeleteMeasureRequest{
		Responsible: "Ana",
		Goal:        "Grow",
		Text:        "call",
	})

	assert.NoError(suite.T(), err)
}

func (suite *MeasureServiceTestSuite) TestDeleteMeasure_NotFound() {
	suite.mockMeasureRepo.EXPECT().Delete(gomock.Any(), int64(9)).Return(repository.ErrNotFound)

	err := suite.measureService.DeleteMeasure(suite.ctx, &service.DeleteMeasureRequest{ID: int64Ptr(9)})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMeasureNotFound)
}

func (suite *MeasureServiceTestSuite) TestListMeasures() {
	suite.mockMeasureRepo.EXPECT().GetByGoal(gomock.Any(), "Ana", "Grow").Return([]models.Measure{
		{Responsible: "Ana", Goal: "Grow", Text: "call", Frequency: models.FrequencyDaily},
	}, nil)

	resp, err := suite.measureService.ListMeasures(suite.ctx, "Ana", "Grow")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
	assert.Equal(suite.T(), "call", resp.Measures[0].Text)
}

func TestMeasureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeasureServiceTestSuite))
}
