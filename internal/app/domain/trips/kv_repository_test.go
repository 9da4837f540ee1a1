package trips

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

const testOwner = "0b9a1f6e-8d54-4a3c-9f77-3c1a2b5d6e7f"

func sampleTrip(id, destination string) models.SavedTrip {
	return models.SavedTrip{
		ID:          id,
		Destination: destination,
		Duration:    3,
		Budget:      models.BudgetModerate,
		Travelers:   2,
		Itinerary:   "# " + destination,
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestKVRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key lists empty", func(t *testing.T) {
		repo := NewKVRepository(NewMemoryKV(), nil)
		trips, err := repo.List(ctx, testOwner)
		require.NoError(t, err)
		assert.NotNil(t, trips)
		assert.Empty(t, trips)
	})

	t.Run("append keeps insertion order", func(t *testing.T) {
		repo := NewKVRepository(NewMemoryKV(), nil)
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("a", "Madurai")))
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("b", "Ooty")))

		trips, err := repo.List(ctx, testOwner)
		require.NoError(t, err)
		require.Len(t, trips, 2)
		assert.Equal(t, "a", trips[0].ID)
		assert.Equal(t, "b", trips[1].ID)
	})

	t.Run("owners are isolated", func(t *testing.T) {
		repo := NewKVRepository(NewMemoryKV(), nil)
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("a", "Madurai")))

		trips, err := repo.List(ctx, "someone-else")
		require.NoError(t, err)
		assert.Empty(t, trips)
	})

	t.Run("stores one JSON array under the prefixed key", func(t *testing.T) {
		kv := NewMemoryKV()
		repo := NewKVRepository(kv, nil)
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("a", "Madurai")))

		raw, ok, err := kv.Get(ctx, "tamilnadu_trips:"+testOwner)
		require.NoError(t, err)
		require.True(t, ok)

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
		require.Len(t, decoded, 1)
		for _, field := range []string{"id", "destination", "duration", "budget", "travelers", "itinerary", "created_at"} {
			assert.Contains(t, decoded[0], field)
		}
		assert.Equal(t, "2025-01-02T03:04:05Z", decoded[0]["created_at"])
	})

	t.Run("get and delete by id", func(t *testing.T) {
		repo := NewKVRepository(NewMemoryKV(), nil)
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("a", "Madurai")))
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("b", "Ooty")))

		got, err := repo.Get(ctx, testOwner, "b")
		require.NoError(t, err)
		assert.Equal(t, "Ooty", got.Destination)

		require.NoError(t, repo.Delete(ctx, testOwner, "a"))
		trips, err := repo.List(ctx, testOwner)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, "b", trips[0].ID)

		assert.ErrorIs(t, repo.Delete(ctx, testOwner, "a"), models.ErrNotFound)
		_, err = repo.Get(ctx, testOwner, "a")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("corrupt value is a storage error", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set(ctx, "tamilnadu_trips:"+testOwner, "{not json"))
		repo := NewKVRepository(kv, nil)

		_, err := repo.List(ctx, testOwner)
		assert.ErrorIs(t, err, models.ErrStorage)
		assert.ErrorIs(t, repo.Append(ctx, testOwner, sampleTrip("a", "Madurai")), models.ErrStorage)
	})
}

func TestFileKV(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file starts empty and is created on write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "trips.json")
		kv, err := NewFileKV(path, nil)
		require.NoError(t, err)

		_, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, kv.Set(ctx, "k", "[]"))
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("values survive reopening", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trips.json")
		first, err := NewFileKV(path, nil)
		require.NoError(t, err)
		repo := NewKVRepository(first, nil)
		require.NoError(t, repo.Append(ctx, testOwner, sampleTrip("a", "Thanjavur")))

		second, err := NewFileKV(path, nil)
		require.NoError(t, err)
		trips, err := NewKVRepository(second, nil).List(ctx, testOwner)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, "Thanjavur", trips[0].Destination)
		assert.True(t, trips[0].CreatedAt.Equal(sampleTrip("a", "").CreatedAt))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		kv, err := NewFileKV(filepath.Join(dir, "trips.json"), nil)
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, "a", "1"))
		require.NoError(t, kv.Set(ctx, "b", "2"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("corrupt file fails to open", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "trips.json")
		require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0o600))

		_, err := NewFileKV(path, nil)
		assert.ErrorIs(t, err, models.ErrStorage)
	})
}
