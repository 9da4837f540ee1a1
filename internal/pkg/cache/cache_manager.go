package cache

import (
	"time"

	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// CacheManager holds all application caches
type CacheManager struct {
	// Drafts are generated itineraries waiting for the Save action, keyed by draft id
	Drafts *UnifiedCache[models.Draft]

	// Itineraries are generated texts keyed by a hash of the text-only request.
	// Nil unless itinerary reuse is enabled; every submission then calls the model.
	Itineraries *UnifiedCache[string]
}

// NewCacheManager creates the caches. Drafts live for ttl; itineraries, when
// reuseItineraries is set, for half of it so a repeated request eventually gets a fresh plan.
func NewCacheManager(ttl time.Duration, reuseItineraries bool, logger *zap.Logger) *CacheManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cm := &CacheManager{
		Drafts: NewUnifiedCache[models.Draft](ttl, "drafts", logger),
	}
	if reuseItineraries {
		cm.Itineraries = NewUnifiedCache[string](ttl/2, "itineraries", logger)
	}
	return cm
}

// GetAllMetrics returns metrics for all enabled caches
func (cm *CacheManager) GetAllMetrics() map[string]CacheMetrics {
	all := map[string]CacheMetrics{"drafts": cm.Drafts.GetMetrics()}
	if cm.Itineraries != nil {
		all["itineraries"] = cm.Itineraries.GetMetrics()
	}
	return all
}
