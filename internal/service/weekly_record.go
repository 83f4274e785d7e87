package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fourdx-backend/internal/calendar"
	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// WeeklyRecordService handles business logic for weekly check-ins
type WeeklyRecordService struct {
	repo      repository.WeeklyRecordRepositoryInterface
	validator *validator.Validate
	clock     calendar.Clock
}

// NewWeeklyRecordService creates a new weekly record service
func NewWeeklyRecordService(repo repository.WeeklyRecordRepositoryInterface, validator *validator.Validate, clock calendar.Clock) *WeeklyRecordService {
	return &WeeklyRecordService{
		repo:      repo,
		validator: validator,
		clock:     clock,
	}
}

// RecordWeekRequest represents the request to append a weekly record
type RecordWeekRequest struct {
	Responsible string            `json:"responsible" validate:"required,max=200" example:"Ana Souza"`
	Goal        string            `json:"goal" validate:"required" example:"Increase recurring revenue"`
	WeekStart   string            `json:"week_start" validate:"required" example:"2025-03-10"`
	Completed   models.Completion `json:"completed" example:"YES"`
	Plan        string            `json:"plan" example:"Close two renewals"`
}

// ConfirmWeekRequest represents the answer to "was last week's commitment completed?"
type ConfirmWeekRequest struct {
	Responsible string            `json:"responsible" validate:"required,max=200"`
	Goal        string            `json:"goal" validate:"required"`
	Completed   models.Completion `json:"completed" validate:"required" example:"NO"`
}

// CommitWeekRequest represents the commitment for the current week
type CommitWeekRequest struct {
	Responsible string `json:"responsible" validate:"required,max=200"`
	Goal        string `json:"goal" validate:"required"`
	Plan        string `json:"plan" validate:"required"`
}

// WeeklyRecordResponse represents the response for weekly record operations
type WeeklyRecordResponse struct {
	ID          int64             `json:"id"`
	Responsible string            `json:"responsible"`
	Goal        string            `json:"goal"`
	WeekStart   string            `json:"week_start"`
	Completed   models.Completion `json:"completed"`
	Plan        string            `json:"plan"`
}

// WeeklyRecordListResponse represents a list of weekly records
type WeeklyRecordListResponse struct {
	Records []WeeklyRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}

// CurrentWeeksResponse holds the Monday dates of the current and previous week
type CurrentWeeksResponse struct {
	CurrentWeek  string `json:"current_week" example:"2025-03-10"`
	PreviousWeek string `json:"previous_week" example:"2025-03-03"`
}

// RecordWeek appends a weekly record. Earlier records for the same week are kept.
func (s *WeeklyRecordService) RecordWeek(ctx context.Context, req *RecordWeekRequest) (*WeeklyRecordResponse, error) {
	req.Responsible = strings.TrimSpace(req.Responsible)
	req.Goal = strings.TrimSpace(req.Goal)
	req.WeekStart = strings.TrimSpace(req.WeekStart)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateCompletion(req.Completed); err != nil {
		return nil, err
	}
	if _, err := calendar.ParseDate(req.WeekStart, time.UTC); err != nil {
		return nil, apperrors.ErrInvalidWeekStart
	}

	record := &models.WeeklyRecord{
		Responsible: req.Responsible,
		Goal:        req.Goal,
		WeekStart:   req.WeekStart,
		Completed:   req.Completed,
		Plan:        strings.TrimSpace(req.Plan),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record week: %w", err)
	}

	return toWeeklyRecordResponse(record), nil
}

// FindWeek returns the oldest record of a person's goal for the given week
func (s *WeeklyRecordService) FindWeek(ctx context.Context, responsible, goal, weekStart string) (*WeeklyRecordResponse, error) {
	weekStart = strings.TrimSpace(weekStart)
	if _, err := calendar.ParseDate(weekStart, time.UTC); err != nil {
		return nil, apperrors.ErrInvalidWeekStart
	}

	records, err := s.repo.GetByWeek(ctx, strings.TrimSpace(responsible), strings.TrimSpace(goal), weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to find weekly record: %w", err)
	}
	if len(records) == 0 {
		return nil, apperrors.ErrWeeklyRecordNotFound
	}

	return toWeeklyRecordResponse(&records[0]), nil
}

// ListWeeks returns every record of a person's goal, oldest first
func (s *WeeklyRecordService) ListWeeks(ctx context.Context, responsible, goal string) (*WeeklyRecordListResponse, error) {
	records, err := s.repo.GetByGoal(ctx, strings.TrimSpace(responsible), strings.TrimSpace(goal))
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly records: %w", err)
	}

	responses := make([]WeeklyRecordResponse, len(records))
	for i := range records {
		responses[i] = *toWeeklyRecordResponse(&records[i])
	}

	return &WeeklyRecordListResponse{Records: responses, Total: len(responses)}, nil
}

// ConfirmPreviousWeek records whether last week's commitment was completed
func (s *WeeklyRecordService) ConfirmPreviousWeek(ctx context.Context, req *ConfirmWeekRequest) (*WeeklyRecordResponse, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateCompletion(req.Completed); err != nil {
		return nil, err
	}
	return s.RecordWeek(ctx, &RecordWeekRequest{
		Responsible: req.Responsible,
		Goal:        req.Goal,
		WeekStart:   calendar.FormatDate(calendar.PreviousWeekStart(s.clock())),
		Completed:   req.Completed,
	})
}

// CommitCurrentWeek records the commitment for the current week
func (s *WeeklyRecordService) CommitCurrentWeek(ctx context.Context, req *CommitWeekRequest) (*WeeklyRecordResponse, error) {
	req.Plan = strings.TrimSpace(req.Plan)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	return s.RecordWeek(ctx, &RecordWeekRequest{
		Responsible: req.Responsible,
		Goal:        req.Goal,
		WeekStart:   calendar.FormatDate(calendar.CurrentWeekStart(s.clock())),
		Completed:   models.CompletionNone,
		Plan:        req.Plan,
	})
}

// CurrentWeeks returns the Monday dates of the current and previous week
func (s *WeeklyRecordService) CurrentWeeks() *CurrentWeeksResponse {
	now := s.clock()
	return &CurrentWeeksResponse{
		CurrentWeek:  calendar.FormatDate(calendar.CurrentWeekStart(now)),
		PreviousWeek: calendar.FormatDate(calendar.PreviousWeekStart(now)),
	}
}

func toWeeklyRecordResponse(record *models.WeeklyRecord) *WeeklyRecordResponse {
	return &WeeklyRecordResponse{
		ID:          record.ID,
		Responsible: record.Responsible,
		Goal:        record.Goal,
		WeekStart:   record.WeekStart,
		Completed:   record.Completed,
		Plan:        record.Plan,
	}
}
