package trips

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/landmarks"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/observability/metrics"
)

// landmarksPerTrip caps the places shown on a saved-trip card.
const landmarksPerTrip = 5

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Save persists a generated draft as a new trip.
	Save(ctx context.Context, owner string, draft models.Draft) (models.SavedTrip, error)
	// List returns the owner's trips newest first, annotated with landmarks.
	List(ctx context.Context, owner string) ([]models.TripSummary, error)
	Get(ctx context.Context, owner, id string) (models.SavedTrip, error)
	Delete(ctx context.Context, owner, id string) error
}

type ServiceImpl struct {
	logger  *zap.Logger
	repo    Repository
	matcher *landmarks.Matcher
	now     func() time.Time
	newID   func() string
}

func NewService(repo Repository, matcher *landmarks.Matcher, logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		logger:  logger,
		repo:    repo,
		matcher: matcher,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   func() string { return uuid.NewString() },
	}
}

func (s *ServiceImpl) Save(ctx context.Context, owner string, draft models.Draft) (models.SavedTrip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "Save", trace.WithAttributes(
		attribute.String("trip.destination", draft.Request.Destination),
		attribute.String("draft.id", draft.ID),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "Save"), zap.String("owner", owner))

	if strings.TrimSpace(draft.Itinerary) == "" {
		return models.SavedTrip{}, fmt.Errorf("%w: nothing to save", models.ErrValidation)
	}

	trip := models.SavedTrip{
		ID:          s.newID(),
		Destination: draft.Request.Destination,
		Duration:    draft.Request.Duration,
		Budget:      draft.Request.Budget,
		Travelers:   draft.Request.Travelers,
		Itinerary:   draft.Itinerary,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Append(ctx, owner, trip); err != nil {
		s.storageFailed(ctx, span, "save", err)
		l.Error("Failed to save trip", zap.Error(err))
		return models.SavedTrip{}, err
	}

	metrics.Get().TripsSavedTotal.Add(ctx, 1)
	span.SetStatus(codes.Ok, "trip saved")
	l.Info("Trip saved", zap.String("trip_id", trip.ID), zap.String("destination", trip.Destination))
	return trip, nil
}

func (s *ServiceImpl) List(ctx context.Context, owner string) ([]models.TripSummary, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "List")
	defer span.End()

	trips, err := s.repo.List(ctx, owner)
	if err != nil {
		s.storageFailed(ctx, span, "list", err)
		s.logger.Error("Failed to list trips", zap.String("owner", owner), zap.Error(err))
		return nil, err
	}

	summaries := make([]models.TripSummary, 0, len(trips))
	for i := len(trips) - 1; i >= 0; i-- {
		summary := models.TripSummary{SavedTrip: trips[i]}
		if s.matcher != nil {
			summary.Landmarks = s.matcher.Top(trips[i].Itinerary, landmarksPerTrip)
		}
		summaries = append(summaries, summary)
	}
	// storage order is append order; equal timestamps keep that order reversed
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})

	span.SetAttributes(attribute.Int("trips.count", len(summaries)))
	return summaries, nil
}

func (s *ServiceImpl) Get(ctx context.Context, owner, id string) (models.SavedTrip, error) {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("trip.id", id),
	))
	defer span.End()

	trip, err := s.repo.Get(ctx, owner, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		s.storageFailed(ctx, span, "get", err)
	}
	return trip, err
}

func (s *ServiceImpl) Delete(ctx context.Context, owner, id string) error {
	ctx, span := otel.Tracer("TripsService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("trip.id", id),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Debug("Delete of unknown trip", zap.String("trip_id", id))
			return err
		}
		s.storageFailed(ctx, span, "delete", err)
		s.logger.Error("Failed to delete trip", zap.String("trip_id", id), zap.Error(err))
		return err
	}

	metrics.Get().TripsDeletedTotal.Add(ctx, 1)
	s.logger.Info("Trip deleted", zap.String("owner", owner), zap.String("trip_id", id))
	return nil
}

func (s *ServiceImpl) storageFailed(ctx context.Context, span trace.Span, op string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" failed")
	metrics.Get().StorageErrorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("kind", models.ErrorKind(err)),
	))
}
