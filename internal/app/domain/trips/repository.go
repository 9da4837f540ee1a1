package trips

import (
	"context"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// Repository stores each planner's saved trips in append order.
type Repository interface {
	List(ctx context.Context, owner string) ([]models.SavedTrip, error)
	Append(ctx context.Context, owner string, trip models.SavedTrip) error
	Get(ctx context.Context, owner, id string) (models.SavedTrip, error)
	Delete(ctx context.Context, owner, id string) error
}
