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

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to register a user
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=200" example:"Ana Souza"`
	Email string `json:"email" validate:"required,email,max=255" example:"ana@example.com"`
	Team  string `json:"team" validate:"required,max=100" example:"Sales"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Team  string `json:"team"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// CreateUser registers a user in an existing team. The email must be unused.
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Team = strings.TrimSpace(req.Team)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.teamRepo.GetByName(ctx, req.Team); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	user := &models.User{Name: req.Name, Email: req.Email, Team: req.Team}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(user), nil
}

// GetUser returns the user registered with email
func (s *UserService) GetUser(ctx context.Context, email string) (*UserResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserResponse(user), nil
}

// ListUsers returns every user, or only the members of team when it is not empty
func (s *UserService) ListUsers(ctx context.Context, team string) (*UserListResponse, error) {
	var (
		users []models.User
		err   error
	)
	if team = strings.TrimSpace(team); team != "" {
		users, err = s.repo.GetByTeam(ctx, team)
	} else {
		users, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}

	return &UserListResponse{Users: responses, Total: len(responses)}, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Team:  user.Team,
	}
}
