package repository

import (
	"context"
	"testing"

	"fourdx-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	store, closeFn, err := Open(&config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	defer closeFn()

	assert.NoError(t, store.Ping(context.Background()))
	assert.Equal(t, "EQUIPES_4DX", store.Teams.Name())
}

func TestOpenSupabase(t *testing.T) {
	store, closeFn, err := Open(&config.Config{
		StoreDriver:        config.DriverSupabase,
		SupabaseURL:        "https://project.supabase.co/",
		SupabaseAPIKey:     "anon",
		SupabaseTimeoutSec: 2,
	})
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, "SEMANAS_4DX", store.WeeklyRecords.Name())
}

func TestOpenSupabaseMissingKey(t *testing.T) {
	_, _, err := Open(&config.Config{StoreDriver: config.DriverSupabase, SupabaseURL: "https://project.supabase.co"})
	assert.Error(t, err)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(&config.Config{StoreDriver: "mongo"})
	assert.Error(t, err)
}
