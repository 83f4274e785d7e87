package repository_test

import (
	"context"
	"errors"
	"testing"

	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormTableTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	db   *gorm.DB
	ctx  context.Context
}

func (suite *GormTableTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(suite.T(), err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(suite.T(), err)

	suite.mock = mock
	suite.db = db
	suite.ctx = context.Background()
}

func (suite *GormTableTestSuite) TearDownTest() {
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *GormTableTestSuite) TestFindWhere() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectQuery(`SELECT \* FROM "EQUIPES_4DX" WHERE "EQUIPES_4DX"\."equipe" = \$1 ORDER BY id`).
		WithArgs("Sales").
		WillReturnRows(sqlmock.NewRows([]string{"id", "equipe"}).AddRow(7, "Sales"))

	teams, err := table.FindWhere(suite.ctx, repository.Filter{"equipe": "Sales"})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), teams, 1)
	assert.Equal(suite.T(), int64(7), teams[0].ID)
	assert.Equal(suite.T(), "Sales", teams[0].Name)
}

func (suite *GormTableTestSuite) TestQueryAllOrdersByID() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectQuery(`SELECT \* FROM "EQUIPES_4DX" ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "equipe"}).AddRow(1, "Ops").AddRow(2, "Sales"))

	teams, err := table.QueryAll(suite.ctx)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), teams, 2)
}

func (suite *GormTableTestSuite) TestInsertReturnsID() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectQuery(`INSERT INTO "EQUIPES_4DX" \("equipe"\) VALUES \(\$1\) RETURNING "id"`).
		WithArgs("Sales").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	team := &models.Team{Name: "Sales"}
	err := table.Insert(suite.ctx, team)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), team.ID)
}

func (suite *GormTableTestSuite) TestInsertDuplicate() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectQuery(`INSERT INTO "EQUIPES_4DX"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := table.Insert(suite.ctx, &models.Team{Name: "Sales"})

	assert.ErrorIs(suite.T(), err, repository.ErrDuplicate)
}

func (suite *GormTableTestSuite) TestStoreFailureIsWrapped() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectQuery(`SELECT \* FROM "EQUIPES_4DX"`).
		WillReturnError(errors.New("connection refused"))

	_, err := table.QueryAll(suite.ctx)

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsStore(err))
	assert.Contains(suite.T(), err.Error(), "EQUIPES_4DX")
}

func (suite *GormTableTestSuite) TestDeleteWhereReturnsRemovedRows() {
	table := repository.NewGormTable[models.Measure](suite.db, models.TableMeasures)

	suite.mock.ExpectQuery(`DELETE FROM "MEDIDAS_DIRECAO_4DX" WHERE "MEDIDAS_DIRECAO_4DX"\."id" = \$1 RETURNING`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "responsavel", "meta_crucial", "medida_direcao", "frequencia"}).
			AddRow(4, "Ana", "G1", "call", "Daily"))

	deleted, err := table.DeleteWhere(suite.ctx, repository.Filter{"id": int64(4)})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), deleted, 1)
	assert.Equal(suite.T(), "call", deleted[0].Text)
}

func (suite *GormTableTestSuite) TestUpdateWhereReturnsAffectedRows() {
	table := repository.NewGormTable[models.Measure](suite.db, models.TableMeasures)

	suite.mock.ExpectQuery(`UPDATE "MEDIDAS_DIRECAO_4DX" SET .* WHERE "MEDIDAS_DIRECAO_4DX"\."id" = \$\d RETURNING`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "responsavel", "meta_crucial", "medida_direcao", "frequencia"}).
			AddRow(4, "Ana", "G1", "visit", "Weekly"))

	updated, err := table.UpdateWhere(suite.ctx,
		repository.Patch{"medida_direcao": "visit", "frequencia": models.FrequencyWeekly},
		repository.Filter{"id": int64(4)})

	require.NoError(suite.T(), err)
	require.Len(suite.T(), updated, 1)
	assert.Equal(suite.T(), models.FrequencyWeekly, updated[0].Frequency)
}

func (suite *GormTableTestSuite) TestUpsertUsesOnConflict() {
	table := repository.NewGormTable[models.Goal](suite.db, models.TableGoals)

	suite.mock.ExpectQuery(`INSERT INTO "METAS_CRUCIAIS_4DX" .* ON CONFLICT \("responsavel"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	goal := &models.Goal{Team: "Sales", Responsible: "Ana", Description: "Grow"}
	err := table.Upsert(suite.ctx, goal, "responsavel")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(9), goal.ID)
}

func (suite *GormTableTestSuite) TestEmptyFilterIsRefused() {
	table := repository.NewGormTable[models.Measure](suite.db, models.TableMeasures)

	_, err := table.DeleteWhere(suite.ctx, nil)
	assert.ErrorIs(suite.T(), err, repository.ErrEmptyFilter)

	_, err = table.UpdateWhere(suite.ctx, repository.Patch{"medida_direcao": "x"}, repository.Filter{})
	assert.ErrorIs(suite.T(), err, repository.ErrEmptyFilter)
}

func (suite *GormTableTestSuite) TestPing() {
	table := repository.NewGormTable[models.Team](suite.db, models.TableTeams)

	suite.mock.ExpectPing()
	assert.NoError(suite.T(), table.Ping(suite.ctx))

	suite.mock.ExpectPing().WillReturnError(errors.New("down"))
	err := table.Ping(suite.ctx)
	assert.True(suite.T(), apperrors.IsStore(err))
}

func TestGormTableTestSuite(t *testing.T) {
	suite.Run(t, new(GormTableTestSuite))
}
