package trips

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// StorageKey is the key prefix holding a planner's JSON array of trips.
const StorageKey = "tamilnadu_trips"

var _ Repository = (*KVRepository)(nil)

// KVRepository keeps each planner's trips as one JSON array under a single key.
// Writes are read-modify-write under a mutex.
type KVRepository struct {
	mu     sync.Mutex
	kv     KV
	logger *zap.Logger
}

func NewKVRepository(kv KV, logger *zap.Logger) *KVRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KVRepository{kv: kv, logger: logger}
}

func storageKey(owner string) string {
	return StorageKey + ":" + owner
}

func (r *KVRepository) load(ctx context.Context, owner string) ([]models.SavedTrip, error) {
	raw, ok, err := r.kv.Get(ctx, storageKey(owner))
	if err != nil {
		return nil, errors.Wrapf(models.ErrStorage, "read trips: %v", err)
	}
	if !ok || raw == "" {
		return []models.SavedTrip{}, nil
	}
	var trips []models.SavedTrip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		r.logger.Error("Saved trips are not a valid JSON array", zap.String("owner", owner), zap.Error(err))
		return nil, errors.Wrapf(models.ErrStorage, "decode trips: %v", err)
	}
	if trips == nil {
		trips = []models.SavedTrip{}
	}
	return trips, nil
}

func (r *KVRepository) store(ctx context.Context, owner string, trips []models.SavedTrip) error {
	raw, err := json.Marshal(trips)
	if err != nil {
		return errors.Wrapf(models.ErrStorage, "encode trips: %v", err)
	}
	if err := r.kv.Set(ctx, storageKey(owner), string(raw)); err != nil {
		return errors.Wrapf(models.ErrStorage, "write trips: %v", err)
	}
	return nil
}

func (r *KVRepository) List(ctx context.Context, owner string) ([]models.SavedTrip, error) {
	return r.load(ctx, owner)
}

func (r *KVRepository) Append(ctx context.Context, owner string, trip models.SavedTrip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx, owner)
	if err != nil {
		return err
	}
	return r.store(ctx, owner, append(trips, trip))
}

func (r *KVRepository) Get(ctx context.Context, owner, id string) (models.SavedTrip, error) {
	trips, err := r.load(ctx, owner)
	if err != nil {
		return models.SavedTrip{}, err
	}
	for _, t := range trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.SavedTrip{}, errors.Wrapf(models.ErrNotFound, "trip %s", id)
}

func (r *KVRepository) Delete(ctx context.Context, owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trips, err := r.load(ctx, owner)
	if err != nil {
		return err
	}
	kept := make([]models.SavedTrip, 0, len(trips))
	for _, t := range trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(trips) {
		return errors.Wrapf(models.ErrNotFound, "trip %s", id)
	}
	return r.store(ctx, owner, kept)
}
