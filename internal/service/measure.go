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

// MeasureService handles business logic for lead measures
type MeasureService struct {
	repo      repository.MeasureRepositoryInterface
	validator *validator.Validate
}

// NewMeasureService creates a new measure service
func NewMeasureService(repo repository.MeasureRepositoryInterface, validator *validator.Validate) *MeasureService {
	return &MeasureService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMeasuresRequest represents the request to add measures to a goal.
// Text holds one measure per line.
type CreateMeasuresRequest struct {
	Responsible string           `json:"responsible" validate:"required,max=200" example:"Ana Souza"`
	Goal        string           `json:"goal" validate:"required" example:"Increase recurring revenue"`
	Text        string           `json:"text" validate:"required" example:"Call 10 leads\nVisit 2 clients"`
	Frequency   models.Frequency `json:"frequency" validate:"required" example:"Weekly"`
}

// UpdateMeasureRequest represents the request to edit a measure. The measure
// is addressed by ID when present, otherwise by Responsible, Goal and OldText.
type UpdateMeasureRequest struct {
	ID          *int64           `json:"id,omitempty"`
	Responsible string           `json:"responsible" validate:"required_without=ID,max=200"`
	Goal        string           `json:"goal" validate:"required_without=ID"`
	OldText     string           `json:"old_text" validate:"required_without=ID"`
	Text        string           `json:"text" validate:"required"`
	Frequency   models.Frequency `json:"frequency" validate:"required"`
}

// DeleteMeasureRequest represents the request to remove a measure, addressed
// like UpdateMeasureRequest.
type DeleteMeasureRequest struct {
	ID          *int64 `json:"id,omitempty"`
	Responsible string `json:"responsible" validate:"required_without=ID,max=200"`
	Goal        string `json:"goal" validate:"required_without=ID"`
	Text        string `json:"text" validate:"required_without=ID"`
}

// MeasureResponse represents the response for measure operations
type MeasureResponse struct {
	ID          int64            `json:"id"`
	Responsible string           `json:"responsible"`
	Goal        string           `json:"goal"`
	Text        string           `json:"text"`
	Frequency   models.Frequency `json:"frequency"`
}

// MeasureListResponse represents a list of measures
type MeasureListResponse struct {
	Measures []MeasureResponse `json:"measures"`
	Total    int               `json:"total"`
}

// SplitMeasureLines splits text on newlines, trims each line and drops blank ones
func SplitMeasureLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// CreateMeasures inserts one measure per non-blank line of req.Text.
// Identical texts are allowed.
func (s *MeasureService) CreateMeasures(ctx context.Context, req *CreateMeasuresRequest) (*MeasureListResponse, error) {
	req.Responsible = strings.TrimSpace(req.Responsible)
	req.Goal = strings.TrimSpace(req.Goal)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateFrequency(req.Frequency); err != nil {
		return nil, err
	}

	lines := SplitMeasureLines(req.Text)
	if len(lines) == 0 {
		return nil, apperrors.ErrNoMeasures
	}

	created := make([]MeasureResponse, 0, len(lines))
	for _, line := range lines {
		measure := &models.Measure{
			Responsible: req.Responsible,
			Goal:        req.Goal,
			Text:        line,
			Frequency:   req.Frequency,
		}
		if err := s.repo.Create(ctx, measure); err != nil {
			return nil, fmt.Errorf("failed to create measure %q: %w", line, err)
		}
		created = append(created, *toMeasureResponse(measure))
	}

	return &MeasureListResponse{Measures: created, Total: len(created)}, nil
}

// ListMeasures returns the measures of a person's goal
func (s *MeasureService) ListMeasures(ctx context.Context, responsible, goal string) (*MeasureListResponse, error) {
	measures, err := s.repo.GetByGoal(ctx, strings.TrimSpace(responsible), strings.TrimSpace(goal))
	if err != nil {
		return nil, fmt.Errorf("failed to list measures: %w", err)
	}

	responses := make([]MeasureResponse, len(measures))
	for i := range measures {
		responses[i] = *toMeasureResponse(&measures[i])
	}

	return &MeasureListResponse{Measures: responses, Total: len(responses)}, nil
}

// UpdateMeasure changes the text and frequency of one measure
func (s *MeasureService) UpdateMeasure(ctx context.Context, req *UpdateMeasureRequest) (*MeasureResponse, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateFrequency(req.Frequency); err != nil {
		return nil, err
	}

	id, err := s.resolve(ctx, req.ID, req.Responsible, req.Goal, req.OldText)
	if err != nil {
		return nil, err
	}

	measure, err := s.repo.Update(ctx, id, map[string]interface{}{
		"medida_direcao": req.Text,
		"frequencia":     req.Frequency,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrMeasureNotFound
		}
		return nil, fmt.Errorf("failed to update measure: %w", err)
	}

	return toMeasureResponse(measure), nil
}

// DeleteMeasure removes one measure
func (s *MeasureService) DeleteMeasure(ctx context.Context, req *DeleteMeasureRequest) error {
	if err := validate(s.validator, req); err != nil {
		return err
	}

	id, err := s.resolve(ctx, req.ID, req.Responsible, req.Goal, req.Text)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrMeasureNotFound
		}
		return fmt.Errorf("failed to delete measure: %w", err)
	}
	return nil
}

// resolve returns the row id of the addressed measure. Without an id the
// (responsible, goal, text) tuple must match exactly one row.
func (s *MeasureService) resolve(ctx context.Context, id *int64, responsible, goal, text string) (int64, error) {
	if id != nil {
		return *id, nil
	}

	matches, err := s.repo.FindByText(ctx, strings.TrimSpace(responsible), strings.TrimSpace(goal), strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("failed to find measure: %w", err)
	}
	switch len(matches) {
	case 0:
		return 0, apperrors.ErrMeasureNotFound
	case 1:
		return matches[0].ID, nil
	default:
		return 0, apperrors.NewAmbiguousMatchError("measure", len(matches))
	}
}

func toMeasureResponse(measure *models.Measure) *MeasureResponse {
	return &MeasureResponse{
		ID:          measure.ID,
		Responsible: measure.Responsible,
		Goal:        measure.Goal,
		Text:        measure.Text,
		Frequency:   measure.Frequency,
	}
}
