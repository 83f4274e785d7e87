package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// GoalService handles business logic for crucial goals
type GoalService struct {
	repo      repository.GoalRepositoryInterface
	validator *validator.Validate
}

// NewGoalService creates a new goal service
func NewGoalService(repo repository.GoalRepositoryInterface, validator *validator.Validate) *GoalService {
	return &GoalService{
		repo:      repo,
		validator: validator,
	}
}

// UpsertGoalRequest represents the request to set a person's crucial goal
type UpsertGoalRequest struct {
	Team        string `json:"team" validate:"required,max=100" example:"Sales"`
	Responsible string `json:"responsible" validate:"required,max=200" example:"Ana Souza"`
	Description string `json:"goal" example:"Increase recurring revenue"`
	Indicator   string `json:"indicator" example:"MRR"`
	Target      string `json:"target" example:"from 100k to 150k"`
	Deadline    string `json:"deadline" validate:"max=100" example:"2025-12-31"`
}

// GoalResponse represents the response for goal operations
type GoalResponse struct {
	ID          int64  `json:"id"`
	Team        string `json:"team"`
	Responsible string `json:"responsible"`
	Description string `json:"goal"`
	Indicator   string `json:"indicator"`
	Target      string `json:"target"`
	Deadline    string `json:"deadline"`
}

// GoalListResponse represents a list of goals
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
	Total int            `json:"total"`
}

// UpsertGoal stores the goal of req.Responsible. A person holds at most one
// goal: an existing one is overwritten with the new fields. Team and
// responsible are trimmed; the goal fields are stored as submitted, since
// measures and weekly records refer to the goal text verbatim.
func (s *GoalService) UpsertGoal(ctx context.Context, req *UpsertGoalRequest) (*GoalResponse, error) {
	req.Team = strings.TrimSpace(req.Team)
	req.Responsible = strings.TrimSpace(req.Responsible)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		Team:        req.Team,
		Responsible: req.Responsible,
		Description: req.Description,
		Indicator:   req.Indicator,
		Target:      req.Target,
		Deadline:    req.Deadline,
	}
	if err := s.repo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return toGoalResponse(goal), nil
}

// GetGoal returns the goal held by a person
func (s *GoalService) GetGoal(ctx context.Context, responsible string) (*GoalResponse, error) {
	goal, err := s.repo.GetByResponsible(ctx, strings.TrimSpace(responsible))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return toGoalResponse(goal), nil
}

// ListGoals returns every goal, or only the goals of team when it is not empty
func (s *GoalService) ListGoals(ctx context.Context, team string) (*GoalListResponse, error) {
	var (
		goals []models.Goal
		err   error
	)
	if team = strings.TrimSpace(team); team != "" {
		goals, err = s.repo.GetByTeam(ctx, team)
	} else {
		goals, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	responses := make([]GoalResponse, len(goals))
	for i := range goals {
		responses[i] = *toGoalResponse(&goals[i])
	}

	return &GoalListResponse{Goals: responses, Total: len(responses)}, nil
}

// DeleteGoal removes the goal held by a person
func (s *GoalService) DeleteGoal(ctx context.Context, responsible string) error {
	if err := s.repo.DeleteByResponsible(ctx, strings.TrimSpace(responsible)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrGoalNotFound
		}
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

func toGoalResponse(goal *models.Goal) *GoalResponse {
	return &GoalResponse{
		ID:          goal.ID,
		Team:        goal.Team,
		Responsible: goal.Responsible,
		Description: goal.Description,
		Indicator:   goal.Indicator,
		Target:      goal.Target,
		Deadline:    goal.Deadline,
	}
}
