package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByName(ctx context.Context, name string) (*models.Team, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByTeam(ctx context.Context, team string) ([]models.User, error)
}

// GoalRepositoryInterface defines the interface for goal repository operations
type GoalRepositoryInterface interface {
	Upsert(ctx context.Context, goal *models.Goal) error
	GetAll(ctx context.Context) ([]models.Goal, error)
	GetByTeam(ctx context.Context, team string) ([]models.Goal, error)
	GetByResponsible(ctx context.Context, responsible string) (*models.Goal, error)
	DeleteByResponsible(ctx context.Context, responsible string) error
}

// MeasureRepositoryInterface defines the interface for measure repository operations
type MeasureRepositoryInterface interface {
	Create(ctx context.Context, measure *models.Measure) error
	GetAll(ctx context.Context) ([]models.Measure, error)
	GetByGoal(ctx context.Context, responsible, goal string) ([]models.Measure, error)
	FindByText(ctx context.Context, responsible, goal, text string) ([]models.Measure, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.Measure, error)
	Delete(ctx context.Context, id int64) error
}

// WeeklyRecordRepositoryInterface defines the interface for weekly record repository operations
type WeeklyRecordRepositoryInterface interface {
	Create(ctx context.Context, record *models.WeeklyRecord) error
	GetAll(ctx context.Context) ([]models.WeeklyRecord, error)
	GetByGoal(ctx context.Context, responsible, goal string) ([]models.WeeklyRecord, error)
	GetByWeek(ctx context.Context, responsible, goal, weekStart string) ([]models.WeeklyRecord, error)
}

var (
	_ TeamRepositoryInterface         = (*TeamRepository)(nil)
	_ UserRepositoryInterface         = (*UserRepository)(nil)
	_ GoalRepositoryInterface         = (*GoalRepository)(nil)
	_ MeasureRepositoryInterface      = (*MeasureRepository)(nil)
	_ WeeklyRecordRepositoryInterface = (*WeeklyRecordRepository)(nil)
)
