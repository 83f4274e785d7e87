package service

import (
	"context"
	"fmt"
	"sort"

	"fourdx-backend/internal/calendar"
	"fourdx-backend/internal/database/models"
	"fourdx-backend/internal/repository"
)

// ScoreboardService builds the per-team overview of goals, measures and weekly status
type ScoreboardService struct {
	goalRepo    repository.GoalRepositoryInterface
	measureRepo repository.MeasureRepositoryInterface
	weekRepo    repository.WeeklyRecordRepositoryInterface
	clock       calendar.Clock
}

// NewScoreboardService creates a new scoreboard service
func NewScoreboardService(goalRepo repository.GoalRepositoryInterface, measureRepo repository.MeasureRepositoryInterface, weekRepo repository.WeeklyRecordRepositoryInterface, clock calendar.Clock) *ScoreboardService {
	return &ScoreboardService{
		goalRepo:    goalRepo,
		measureRepo: measureRepo,
		weekRepo:    weekRepo,
		clock:       clock,
	}
}

// WeekStatus is the completion answer recorded for the previous week
type WeekStatus struct {
	WeekStart string            `json:"week_start"`
	Completed models.Completion `json:"completed"`
}

// WeekCommitment is the plan recorded for the current week
type WeekCommitment struct {
	WeekStart string `json:"week_start"`
	Plan      string `json:"plan"`
}

// GoalScoreboard is one goal with its measures and weekly status
type GoalScoreboard struct {
	Goal         GoalResponse      `json:"goal"`
	Measures     []MeasureResponse `json:"measures"`
	PreviousWeek *WeekStatus       `json:"previous_week,omitempty"`
	CurrentWeek  *WeekCommitment   `json:"current_week,omitempty"`
}

// TeamScoreboard groups the goals of one team
type TeamScoreboard struct {
	Team  string           `json:"team"`
	Goals []GoalScoreboard `json:"goals"`
}

// ScoreboardResponse represents the overview of every team
type ScoreboardResponse struct {
	CurrentWeek  string           `json:"current_week"`
	PreviousWeek string           `json:"previous_week"`
	Teams        []TeamScoreboard `json:"teams"`
}

// GetScoreboard groups every goal by team, sorted by team name. Each goal
// carries the measures of its responsible person and goal text, the first
// completion answer recorded for the previous week and the first plan
// recorded for the current week.
func (s *ScoreboardService) GetScoreboard(ctx context.Context) (*ScoreboardResponse, error) {
	goals, err := s.goalRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	measures, err := s.measureRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load measures: %w", err)
	}
	records, err := s.weekRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly records: %w", err)
	}

	now := s.clock()
	current := calendar.FormatDate(calendar.CurrentWeekStart(now))
	previous := calendar.FormatDate(calendar.PreviousWeekStart(now))

	byOwner := make(map[ownerKey][]MeasureResponse)
	for i := range measures {
		k := ownerKey{measures[i].Responsible, measures[i].Goal}
		byOwner[k] = append(byOwner[k], *toMeasureResponse(&measures[i]))
	}

	byTeam := make(map[string][]GoalScoreboard)
	for i := range goals {
		g := &goals[i]
		k := ownerKey{g.Responsible, g.Description}
		entry := GoalScoreboard{
			Goal:     *toGoalResponse(g),
			Measures: byOwner[k],
		}
		if entry.Measures == nil {
			entry.Measures = []MeasureResponse{}
		}
		for j := range records {
			r := &records[j]
			if r.Responsible != k.responsible || r.Goal != k.goal {
				continue
			}
			if entry.PreviousWeek == nil && r.WeekStart == previous && r.Completed != models.CompletionNone {
				entry.PreviousWeek = &WeekStatus{WeekStart: r.WeekStart, Completed: r.Completed}
			}
			if entry.CurrentWeek == nil && r.WeekStart == current && r.Plan != "" {
				entry.CurrentWeek = &WeekCommitment{WeekStart: r.WeekStart, Plan: r.Plan}
			}
		}
		byTeam[g.Team] = append(byTeam[g.Team], entry)
	}

	teams := make([]string, 0, len(byTeam))
	for team := range byTeam {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	resp := &ScoreboardResponse{
		CurrentWeek:  current,
		PreviousWeek: previous,
		Teams:        make([]TeamScoreboard, 0, len(teams)),
	}
	for _, team := range teams {
		resp.Teams = append(resp.Teams, TeamScoreboard{Team: team, Goals: byTeam[team]})
	}
	return resp, nil
}

type ownerKey struct {
	responsible string
	goal        string
}
