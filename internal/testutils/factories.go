package testutils

import (
	"fmt"
	"strings"

	"fourdx-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{Name: "Team " + shortID()}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := shortID()
	return &models.User{
		Name:  "User " + id,
		Email: fmt.Sprintf("user.%s@example.com", id),
		Team:  "Sales",
	}
}

// WithTeam sets the team of the user
func (f *UserFactory) WithTeam(team string) *models.User {
	user := f.Create()
	user.Team = team
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// GoalFactory provides methods to create test Goal data
type GoalFactory struct{}

// NewGoalFactory creates a new GoalFactory
func NewGoalFactory() *GoalFactory {
	return &GoalFactory{}
}

// Create creates a test Goal held by a unique responsible person
func (f *GoalFactory) Create() *models.Goal {
	return &models.Goal{
		Team:        "Sales",
		Responsible: "Person " + shortID(),
		Description: "Increase recurring revenue",
		Indicator:   "MRR",
		Target:      "from 100k to 150k",
		Deadline:    "2025-12-31",
	}
}

// For returns a goal held by responsible in team
func (f *GoalFactory) For(team, responsible string) *models.Goal {
	goal := f.Create()
	goal.Team = team
	goal.Responsible = responsible
	return goal
}

// MeasureFactory provides methods to create test Measure data
type MeasureFactory struct{}

// NewMeasureFactory creates a new MeasureFactory
func NewMeasureFactory() *MeasureFactory {
	return &MeasureFactory{}
}

// Create creates a weekly test Measure
func (f *MeasureFactory) Create() *models.Measure {
	return &models.Measure{
		Responsible: "Person " + shortID(),
		Goal:        "Increase recurring revenue",
		Text:        "Call 10 leads",
		Frequency:   models.FrequencyWeekly,
	}
}

// For returns a measure attached to the goal
func (f *MeasureFactory) For(goal *models.Goal, text string) *models.Measure {
	measure := f.Create()
	measure.Responsible = goal.Responsible
	measure.Goal = goal.Description
	measure.Text = text
	return measure
}

// WeeklyRecordFactory provides methods to create test WeeklyRecord data
type WeeklyRecordFactory struct{}

// NewWeeklyRecordFactory creates a new WeeklyRecordFactory
func NewWeeklyRecordFactory() *WeeklyRecordFactory {
	return &WeeklyRecordFactory{}
}

// Create creates a test WeeklyRecord with no completion answer and no plan
func (f *WeeklyRecordFactory) Create() *models.WeeklyRecord {
	return &models.WeeklyRecord{
		Responsible: "Person " + shortID(),
		Goal:        "Increase recurring revenue",
		WeekStart:   "2025-03-10",
		Completed:   models.CompletionNone,
	}
}

// For returns a record of the goal for the week starting at weekStart
func (f *WeeklyRecordFactory) For(goal *models.Goal, weekStart string) *models.WeeklyRecord {
	record := f.Create()
	record.Responsible = goal.Responsible
	record.Goal = goal.Description
	record.WeekStart = weekStart
	return record
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team         *TeamFactory
	User         *UserFactory
	Goal         *GoalFactory
	Measure      *MeasureFactory
	WeeklyRecord *WeeklyRecordFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:         NewTeamFactory(),
		User:         NewUserFactory(),
		Goal:         NewGoalFactory(),
		Measure:      NewMeasureFactory(),
		WeeklyRecord: NewWeeklyRecordFactory(),
	}
}

func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
