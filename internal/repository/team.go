package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

// TeamRepository handles store operations for teams
type TeamRepository struct {
	table Table[models.Team]
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(table Table[models.Team]) *TeamRepository {
	return &TeamRepository{table: table}
}

// Create inserts a new team; a taken name yields ErrDuplicate
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.table.Insert(ctx, team)
}

// GetAll retrieves every team
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	return r.table.QueryAll(ctx)
}

// GetByName retrieves a team by its name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	teams, err := r.table.FindWhere(ctx, Filter{"equipe": name})
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, ErrNotFound
	}
	return &teams[0], nil
}
