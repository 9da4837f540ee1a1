package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("PLANNER_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8091", cfg.ServerPort)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "data/trips.json", cfg.TripsFile)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "Tamil Nadu", cfg.Planner.Region)
	assert.Equal(t, 4, cfg.Planner.MaxImages)
	assert.Equal(t, int64(5<<20), cfg.Planner.MaxImageBytes)
	assert.False(t, cfg.Planner.ReuseItineraries)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLANNER_FAKE_AI", "true")
	t.Setenv("PLANNER_SECRET", testSecret)
	t.Setenv("TRIPS_STORE", "Memory")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("MAX_IMAGES", "2")
	t.Setenv("CACHE_ITINERARIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Gemini.Fake)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 2, cfg.Planner.MaxImages)
	assert.True(t, cfg.Planner.ReuseItineraries)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing api key", map[string]string{"PLANNER_SECRET": testSecret}},
		{"missing secret", map[string]string{"GEMINI_API_KEY": "key"}},
		{"short secret", map[string]string{"GEMINI_API_KEY": "key", "PLANNER_SECRET": "short"}},
		{"unknown store", map[string]string{"GEMINI_API_KEY": "key", "PLANNER_SECRET": testSecret, "TRIPS_STORE": "redis"}},
		{"postgres without password", map[string]string{"GEMINI_API_KEY": "key", "PLANNER_SECRET": testSecret, "TRIPS_STORE": "postgres"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", "")
			t.Setenv("PLANNER_SECRET", "")
			t.Setenv("POSTGRES_PASSWORD", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
