package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

func TestUnifiedCache(t *testing.T) {
	c := NewUnifiedCache[string](time.Minute, "test", zap.NewNop())

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k", "v")
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
	assert.Equal(t, 1, c.GetMetrics().Items)

	c.Delete("k")
	_, ok = c.Get("k")
	assert.False(t, ok)

	assert.Equal(t, CacheMetrics{Hits: 1, Misses: 2, Sets: 1, Items: 0}, c.GetMetrics())
}

func TestUnifiedCacheExpires(t *testing.T) {
	c := NewUnifiedCache[int](20*time.Millisecond, "short", nil)
	c.Set("k", 1)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestCacheKeyBuilder(t *testing.T) {
	build := func(dest string) string {
		return NewCacheKeyBuilder(nil).Add("destination", dest).Add("duration", 3).BuildOrDefault()
	}

	assert.Equal(t, build("Ooty"), build("Ooty"))
	assert.NotEqual(t, build("Ooty"), build("Madurai"))
	assert.Len(t, build("Ooty"), 64)
}

func TestCacheManager(t *testing.T) {
	t.Run("itinerary reuse is off by default", func(t *testing.T) {
		cm := NewCacheManager(time.Minute, false, nil)
		cm.Drafts.Set("d", models.Draft{ID: "d"})

		assert.Nil(t, cm.Itineraries)
		metrics := cm.GetAllMetrics()
		assert.Equal(t, map[string]CacheMetrics{"drafts": {Sets: 1, Items: 1}}, metrics)
	})

	t.Run("reuse adds the itinerary cache", func(t *testing.T) {
		cm := NewCacheManager(time.Minute, true, nil)
		require.NotNil(t, cm.Itineraries)
		cm.Itineraries.Set("i", "text")

		assert.Equal(t, 1, cm.GetAllMetrics()["itineraries"].Items)
	})
}
