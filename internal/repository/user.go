package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

// UserRepository handles store operations for users
type UserRepository struct {
	table Table[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(table Table[models.User]) *UserRepository {
	return &UserRepository{table: table}
}

// Create inserts a new user; a taken email yields ErrDuplicate
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.table.Insert(ctx, user)
}

// GetAll retrieves every user
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	return r.table.QueryAll(ctx)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.table.FindWhere(ctx, Filter{"email": email})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return &users[0], nil
}

// GetByTeam retrieves the users registered in a team
func (r *UserRepository) GetByTeam(ctx context.Context, team string) ([]models.User, error) {
	return r.table.FindWhere(ctx, Filter{"equipe": team})
}
