package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fourdx-backend/internal/api/routes"
	"fourdx-backend/internal/calendar"
	"fourdx-backend/internal/config"
	"fourdx-backend/internal/database/models"
	apperrors "fourdx-backend/internal/errors"
	"fourdx-backend/internal/repository"
	"fourdx-backend/internal/service"

	"gopkg.in/yaml.v3"
)

// Simple structures that mirror the API requests
type TeamData struct {
	Name string `yaml:"name"`
}

type UserData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Team  string `yaml:"team"`
}

type MeasureData struct {
	Text      string `yaml:"text"`
	Frequency string `yaml:"frequency"`
}

type GoalData struct {
	Team        string        `yaml:"team"`
	Responsible string        `yaml:"responsible"`
	Goal        string        `yaml:"goal"`
	Indicator   string        `yaml:"indicator"`
	Target      string        `yaml:"target"`
	Deadline    string        `yaml:"deadline"`
	Measures    []MeasureData `yaml:"measures,omitempty"`
}

// SeedFile is the layout of every YAML file under the data directory
type SeedFile struct {
	Teams []TeamData `yaml:"teams"`
	Users []UserData `yaml:"users"`
	Goals []GoalData `yaml:"goals"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Open the store with retry (for dockerized Postgres startup)
	store, closeStore, err := openWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer closeStore()

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		log.Fatalf("Failed to read YAML files: %v", err)
	}

	services := routes.NewServices(store, calendar.SystemClock(cfg.Location()))
	if err := loadData(context.Background(), services, seed); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func openWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*repository.Store, func() error, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		store, closeStore, err := repository.Open(cfg)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = store.Ping(ctx)
			cancel()
			if err == nil {
				return store, closeStore, nil
			}
			_ = closeStore()
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Store not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, nil, fmt.Errorf("store not ready after %d attempts", maxAttempts)
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Teams = append(all.Teams, file.Teams...)
		all.Users = append(all.Users, file.Users...)
		all.Goals = append(all.Goals, file.Goals...)
		return nil
	})

	return &all, err
}

func loadData(ctx context.Context, s *routes.Services, seed *SeedFile) error {
	teamsCreated := 0
	for _, t := range seed.Teams {
		_, err := s.Team.CreateTeam(ctx, &service.CreateTeamRequest{Name: t.Name})
		switch {
		case err == nil:
			teamsCreated++
		case apperrors.IsAlreadyExists(err):
		default:
			return fmt.Errorf("failed to create team %s: %w", t.Name, err)
		}
	}
	log.Printf("Teams: %d created, %d total", teamsCreated, len(seed.Teams))

	usersCreated := 0
	for _, u := range seed.Users {
		_, err := s.User.CreateUser(ctx, &service.CreateUserRequest{Name: u.Name, Email: u.Email, Team: u.Team})
		switch {
		case err == nil:
			usersCreated++
		case apperrors.IsAlreadyExists(err):
		default:
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
	}
	log.Printf("Users: %d created, %d total", usersCreated, len(seed.Users))

	measuresCreated := 0
	for _, g := range seed.Goals {
		if _, err := s.Goal.UpsertGoal(ctx, &service.UpsertGoalRequest{
			Team:        g.Team,
			Responsible: g.Responsible,
			Description: g.Goal,
			Indicator:   g.Indicator,
			Target:      g.Target,
			Deadline:    g.Deadline,
		}); err != nil {
			return fmt.Errorf("failed to save goal of %s: %w", g.Responsible, err)
		}

		n, err := seedMeasures(ctx, s.Measure, g)
		if err != nil {
			return fmt.Errorf("failed to create measures of %s: %w", g.Responsible, err)
		}
		measuresCreated += n
	}
	log.Printf("Goals: %d saved, measures: %d created", len(seed.Goals), measuresCreated)

	return nil
}

// seedMeasures creates the measures of g that do not exist yet, so reruns add nothing
func seedMeasures(ctx context.Context, measures service.MeasureServiceInterface, g GoalData) (int, error) {
	existing, err := measures.ListMeasures(ctx, g.Responsible, g.Goal)
	if err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing.Measures))
	for _, m := range existing.Measures {
		have[m.Text] = true
	}

	created := 0
	for _, m := range g.Measures {
		text := strings.TrimSpace(m.Text)
		if text == "" || have[text] {
			continue
		}
		resp, err := measures.CreateMeasures(ctx, &service.CreateMeasuresRequest{
			Responsible: g.Responsible,
			Goal:        g.Goal,
			Text:        text,
			Frequency:   models.Frequency(m.Frequency),
		})
		if err != nil {
			return created, err
		}
		have[text] = true
		created += resp.Total
	}
	return created, nil
}
