package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

// GoalRepository handles store operations for crucial goals
type GoalRepository struct {
	table Table[models.Goal]
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(table Table[models.Goal]) *GoalRepository {
	return &GoalRepository{table: table}
}

// Upsert writes the goal of goal.Responsible, replacing any previous one in a single call
func (r *GoalRepository) Upsert(ctx context.Context, goal *models.Goal) error {
	return r.table.Upsert(ctx, goal, "responsavel")
}

// GetAll retrieves every goal
func (r *GoalRepository) GetAll(ctx context.Context) ([]models.Goal, error) {
	return r.table.QueryAll(ctx)
}

// GetByTeam retrieves the goals of a team
func (r *GoalRepository) GetByTeam(ctx context.Context, team string) ([]models.Goal, error) {
	return r.table.FindWhere(ctx, Filter{"equipe": team})
}

// GetByResponsible retrieves the goal held by a person
func (r *GoalRepository) GetByResponsible(ctx context.Context, responsible string) (*models.Goal, error) {
	goals, err := r.table.FindWhere(ctx, Filter{"responsavel": responsible})
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, ErrNotFound
	}
	return &goals[0], nil
}

// DeleteByResponsible removes the goal held by a person
func (r *GoalRepository) DeleteByResponsible(ctx context.Context, responsible string) error {
	deleted, err := r.table.DeleteWhere(ctx, Filter{"responsavel": responsible})
	if err != nil {
		return err
	}
	if len(deleted) == 0 {
		return ErrNotFound
	}
	return nil
}
