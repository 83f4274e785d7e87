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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Sales"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TeamListResponse represents the list of all teams
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

// CreateTeam registers a team under a name not used by any other team
func (s *TeamService) CreateTeam(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{Name: req.Name}
	if err := s.repo.Create(ctx, team); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return toTeamResponse(team), nil
}

// ListTeams returns every team as currently stored
func (s *TeamService) ListTeams(ctx context.Context) (*TeamListResponse, error) {
	teams, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}

	return &TeamListResponse{Teams: responses, Total: len(responses)}, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{ID: team.ID, Name: team.Name}
}
