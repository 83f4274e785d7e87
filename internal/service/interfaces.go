package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams(ctx context.Context) (*TeamListResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetUser(ctx context.Context, email string) (*UserResponse, error)
	ListUsers(ctx context.Context, team string) (*UserListResponse, error)
}

// GoalServiceInterface defines the interface for goal service
type GoalServiceInterface interface {
	UpsertGoal(ctx context.Context, req *UpsertGoalRequest) (*GoalResponse, error)
	GetGoal(ctx context.Context, responsible string) (*GoalResponse, error)
	ListGoals(ctx context.Context, team string) (*GoalListResponse, error)
	DeleteGoal(ctx context.Context, responsible string) error
}

// MeasureServiceInterface defines the interface for measure service
type MeasureServiceInterface interface {
	CreateMeasures(ctx context.Context, req *CreateMeasuresRequest) (*MeasureListResponse, error)
	ListMeasures(ctx context.Context, responsible, goal string) (*MeasureListResponse, error)
	UpdateMeasure(ctx context.Context, req *UpdateMeasureRequest) (*MeasureResponse, error)
	DeleteMeasure(ctx context.Context, req *DeleteMeasureRequest) error
}

// WeeklyRecordServiceInterface defines the interface for weekly record service
type WeeklyRecordServiceInterface interface {
	RecordWeek(ctx context.Context, req *RecordWeekRequest) (*WeeklyRecordResponse, error)
	FindWeek(ctx context.Context, responsible, goal, weekStart string) (*WeeklyRecordResponse, error)
	ListWeeks(ctx context.Context, responsible, goal string) (*WeeklyRecordListResponse, error)
	ConfirmPreviousWeek(ctx context.Context, req *ConfirmWeekRequest) (*WeeklyRecordResponse, error)
	CommitCurrentWeek(ctx context.Context, req *CommitWeekRequest) (*WeeklyRecordResponse, error)
	CurrentWeeks() *CurrentWeeksResponse
}

// ScoreboardServiceInterface defines the interface for scoreboard service
type ScoreboardServiceInterface interface {
	GetScoreboard(ctx context.Context) (*ScoreboardResponse, error)
}

var (
	_ TeamServiceInterface         = (*TeamService)(nil)
	_ UserServiceInterface         = (*UserService)(nil)
	_ GoalServiceInterface         = (*GoalService)(nil)
	_ MeasureServiceInterface      = (*MeasureService)(nil)
	_ WeeklyRecordServiceInterface = (*WeeklyRecordService)(nil)
	_ ScoreboardServiceInterface   = (*ScoreboardService)(nil)
)
