package repository_test

import (
	"context"
	"testing"

	"fourdx-backend/internal/database/models"
	"fourdx-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryTableTestSuite struct {
	suite.Suite
	ctx      context.Context
	teams    *repository.MemoryTable[models.Team]
	goals    *repository.MemoryTable[models.Goal]
	measures *repository.MemoryTable[models.Measure]
}

func (suite *MemoryTableTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.teams = repository.NewMemoryTable[models.Team](models.TableTeams, "equipe")
	suite.goals = repository.NewMemoryTable[models.Goal](models.TableGoals, "responsavel")
	suite.measures = repository.NewMemoryTable[models.Measure](models.TableMeasures)
}

func (suite *MemoryTableTestSuite) TestInsertAssignsSequentialIDs() {
	a := &models.Team{Name: "Sales"}
	b := &models.Team{Name: "Ops"}

	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, a))
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, b))

	assert.Equal(suite.T(), int64(1), a.ID)
	assert.Equal(suite.T(), int64(2), b.ID)

	all, err := suite.teams.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 2)
	assert.Equal(suite.T(), "Sales", all[0].Name)
	assert.Equal(suite.T(), "Ops", all[1].Name)
}

func (suite *MemoryTableTestSuite) TestInsertRejectsDuplicateUniqueColumn() {
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, &models.Team{Name: "Sales"}))

	err := suite.teams.Insert(suite.ctx, &models.Team{Name: "Sales"})
	assert.ErrorIs(suite.T(), err, repository.ErrDuplicate)

	all, err := suite.teams.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 1)
}

func (suite *MemoryTableTestSuite) TestFindWhereMatchesEveryColumn() {
	rows := []*models.Measure{
		{Responsible: "Ana", Goal: "G1", Text: "call", Frequency: models.FrequencyDaily},
		{Responsible: "Ana", Goal: "G2", Text: "call", Frequency: models.FrequencyDaily},
		{Responsible: "Bob", Goal: "G1", Text: "call", Frequency: models.FrequencyWeekly},
	}
	for _, r := range rows {
		require.NoError(suite.T(), suite.measures.Insert(suite.ctx, r))
	}

	found, err := suite.measures.FindWhere(suite.ctx, repository.Filter{"responsavel": "Ana", "meta_crucial": "G1"})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found, 1)
	assert.Equal(suite.T(), rows[0].ID, found[0].ID)

	byID, err := suite.measures.FindWhere(suite.ctx, repository.Filter{"id": rows[2].ID})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), byID, 1)
	assert.Equal(suite.T(), "Bob", byID[0].Responsible)

	byEnum, err := suite.measures.FindWhere(suite.ctx, repository.Filter{"frequencia": models.FrequencyDaily})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), byEnum, 2)
}

func (suite *MemoryTableTestSuite) TestUpdateWhere() {
	m := &models.Measure{Responsible: "Ana", Goal: "G1", Text: "call", Frequency: models.FrequencyDaily}
	require.NoError(suite.T(), suite.measures.Insert(suite.ctx, m))

	updated, err := suite.measures.UpdateWhere(suite.ctx,
		repository.Patch{"medida_direcao": "visit", "frequencia": models.FrequencyWeekly},
		repository.Filter{"id": m.ID})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), updated, 1)
	assert.Equal(suite.T(), "visit", updated[0].Text)
	assert.Equal(suite.T(), models.FrequencyWeekly, updated[0].Frequency)
	assert.Equal(suite.T(), m.ID, updated[0].ID)

	none, err := suite.measures.UpdateWhere(suite.ctx, repository.Patch{"medida_direcao": "x"}, repository.Filter{"id": 99})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), none)
}

func (suite *MemoryTableTestSuite) TestUpdateWhereRejectsUniqueCollision() {
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, &models.Team{Name: "Sales"}))
	ops := &models.Team{Name: "Ops"}
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, ops))

	_, err := suite.teams.UpdateWhere(suite.ctx, repository.Patch{"equipe": "Sales"}, repository.Filter{"id": ops.ID})
	assert.ErrorIs(suite.T(), err, repository.ErrDuplicate)

	found, err := suite.teams.FindWhere(suite.ctx, repository.Filter{"id": ops.ID})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), found, 1)
	assert.Equal(suite.T(), "Ops", found[0].Name)
}

func (suite *MemoryTableTestSuite) TestEmptyFilterIsRefused() {
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, &models.Team{Name: "Sales"}))

	_, err := suite.teams.UpdateWhere(suite.ctx, repository.Patch{"equipe": "x"}, nil)
	assert.ErrorIs(suite.T(), err, repository.ErrEmptyFilter)

	_, err = suite.teams.DeleteWhere(suite.ctx, repository.Filter{})
	assert.ErrorIs(suite.T(), err, repository.ErrEmptyFilter)

	all, err := suite.teams.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 1)
}

func (suite *MemoryTableTestSuite) TestDeleteWhere() {
	for _, text := range []string{"a", "b", "a"} {
		require.NoError(suite.T(), suite.measures.Insert(suite.ctx, &models.Measure{
			Responsible: "Ana", Goal: "G1", Text: text, Frequency: models.FrequencyDaily,
		}))
	}

	deleted, err := suite.measures.DeleteWhere(suite.ctx, repository.Filter{"medida_direcao": "a"})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), deleted, 2)

	rest, err := suite.measures.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rest, 1)
	assert.Equal(suite.T(), "b", rest[0].Text)

	nothing, err := suite.measures.DeleteWhere(suite.ctx, repository.Filter{"medida_direcao": "zzz"})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), nothing)
}

func (suite *MemoryTableTestSuite) TestUpsertReplacesRowOnConflict() {
	first := &models.Goal{Team: "Sales", Responsible: "Ana", Description: "Grow", Target: "10"}
	require.NoError(suite.T(), suite.goals.Upsert(suite.ctx, first, "responsavel"))

	second := &models.Goal{Team: "Sales", Responsible: "Ana", Description: "Grow more", Target: "20"}
	require.NoError(suite.T(), suite.goals.Upsert(suite.ctx, second, "responsavel"))

	assert.Equal(suite.T(), first.ID, second.ID)

	all, err := suite.goals.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 1)
	assert.Equal(suite.T(), "Grow more", all[0].Description)
	assert.Equal(suite.T(), "20", all[0].Target)
}

func (suite *MemoryTableTestSuite) TestUpsertWithoutConflictColumns() {
	err := suite.goals.Upsert(suite.ctx, &models.Goal{Responsible: "Ana"})
	assert.Error(suite.T(), err)
}

func (suite *MemoryTableTestSuite) TestReturnedRowsAreCopies() {
	require.NoError(suite.T(), suite.teams.Insert(suite.ctx, &models.Team{Name: "Sales"}))

	all, err := suite.teams.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	all[0].Name = "changed"

	again, err := suite.teams.QueryAll(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sales", again[0].Name)
}

func TestMemoryTableTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryTableTestSuite))
}
