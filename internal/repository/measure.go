package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

// MeasureRepository handles store operations for lead measures
type MeasureRepository struct {
	table Table[models.Measure]
}

// NewMeasureRepository creates a new measure repository
func NewMeasureRepository(table Table[models.Measure]) *MeasureRepository {
	return &MeasureRepository{table: table}
}

// Create inserts a new measure
func (r *MeasureRepository) Create(ctx context.Context, measure *models.Measure) error {
	return r.table.Insert(ctx, measure)
}

// GetAll retrieves every measure
func (r *MeasureRepository) GetAll(ctx context.Context) ([]models.Measure, error) {
	return r.table.QueryAll(ctx)
}

// GetByGoal retrieves the measures of a person's goal
func (r *MeasureRepository) GetByGoal(ctx context.Context, responsible, goal string) ([]models.Measure, error) {
	return r.table.FindWhere(ctx, Filter{"responsavel": responsible, "meta_crucial": goal})
}

// FindByText retrieves the measures of a person's goal carrying the given text
func (r *MeasureRepository) FindByText(ctx context.Context, responsible, goal, text string) ([]models.Measure, error) {
	return r.table.FindWhere(ctx, Filter{
		"responsavel":    responsible,
		"meta_crucial":   goal,
		"medida_direcao": text,
	})
}

// Update applies the column updates to the measure with the given id
func (r *MeasureRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Measure, error) {
	updated, err := r.table.UpdateWhere(ctx, Patch(updates), Filter{"id": id})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, ErrNotFound
	}
	return &updated[0], nil
}

// Delete removes the measure with the given id
func (r *MeasureRepository) Delete(ctx context.Context, id int64) error {
	deleted, err := r.table.DeleteWhere(ctx, Filter{"id": id})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return ErrNotFound
	}
	return nil
}
