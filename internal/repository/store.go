package repository

import (
	"context"

	"fourdx-backend/internal/database/models"
	"fourdx-backend/internal/supabase"

	"gorm.io/gorm"
)

// Store groups the five 4DX tables of one backend.
type Store struct {
	Teams         Table[models.Team]
	Users         Table[models.User]
	Goals         Table[models.Goal]
	Measures      Table[models.Measure]
	WeeklyRecords Table[models.WeeklyRecord]
}

// NewGormStore builds a Store on a Postgres database
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Teams:         NewGormTable[models.Team](db, models.TableTeams),
		Users:         NewGormTable[models.User](db, models.TableUsers),
		Goals:         NewGormTable[models.Goal](db, models.TableGoals),
		Measures:      NewGormTable[models.Measure](db, models.TableMeasures),
		WeeklyRecords: NewGormTable[models.WeeklyRecord](db, models.TableWeeklyRecords),
	}
}

// NewRestStore builds a Store on the Supabase REST API
func NewRestStore(client *supabase.Client) *Store {
	return &Store{
		Teams:         NewRestTable[models.Team](client, models.TableTeams),
		Users:         NewRestTable[models.User](client, models.TableUsers),
		Goals:         NewRestTable[models.Goal](client, models.TableGoals),
		Measures:      NewRestTable[models.Measure](client, models.TableMeasures),
		WeeklyRecords: NewRestTable[models.WeeklyRecord](client, models.TableWeeklyRecords),
	}
}

// NewMemoryStore builds an in-process Store with the same unique keys as the SQL schema
func NewMemoryStore() *Store {
	return &Store{
		Teams:         NewMemoryTable[models.Team](models.TableTeams, "equipe"),
		Users:         NewMemoryTable[models.User](models.TableUsers, "email"),
		Goals:         NewMemoryTable[models.Goal](models.TableGoals, "responsavel"),
		Measures:      NewMemoryTable[models.Measure](models.TableMeasures),
		WeeklyRecords: NewMemoryTable[models.WeeklyRecord](models.TableWeeklyRecords),
	}
}

// Ping checks store reachability
func (s *Store) Ping(ctx context.Context) error {
	return s.Teams.Ping(ctx)
}
