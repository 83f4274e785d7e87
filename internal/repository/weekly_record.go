package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

// WeeklyRecordRepository handles store operations for weekly records.
// Records are append-only: there is no update or delete.
type WeeklyRecordRepository struct {
	table Table[models.WeeklyRecord]
}

// NewWeeklyRecordRepository creates a new weekly record repository
func NewWeeklyRecordRepository(table Table[models.WeeklyRecord]) *WeeklyRecordRepository {
	return &WeeklyRecordRepository{table: table}
}

// Create appends a weekly record
func (r *WeeklyRecordRepository) Create(ctx context.Context, record *models.WeeklyRecord) error {
	return r.table.Insert(ctx, record)
}

// GetAll retrieves every weekly record
func (r *WeeklyRecordRepository) GetAll(ctx context.Context) ([]models.WeeklyRecord, error) {
	return r.table.QueryAll(ctx)
}

// GetByGoal retrieves the records of a person's goal, oldest first
func (r *WeeklyRecordRepository) GetByGoal(ctx context.Context, responsible, goal string) ([]models.WeeklyRecord, error) {
	return r.table.FindWhere(ctx, Filter{"responsavel": responsible, "meta_crucial": goal})
}

// GetByWeek retrieves the records of a person's goal for one week, oldest first
func (r *WeeklyRecordRepository) GetByWeek(ctx context.Context, responsible, goal, weekStart string) ([]models.WeeklyRecord, error) {
	return r.table.FindWhere(ctx, Filter{
		"responsavel":  responsible,
		"meta_crucial": goal,
		"semana_ref":   weekStart,
	})
}
