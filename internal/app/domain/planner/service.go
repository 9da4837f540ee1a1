package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/observability/metrics"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/cache"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// GenerateTrip validates req, asks the model for an itinerary and keeps the
	// result as a draft that only owner may save.
	GenerateTrip(ctx context.Context, owner string, req models.TripRequest) (models.Draft, error)
	// Chat answers one free-form question, optionally about attached images.
	Chat(ctx context.Context, message string, images []models.Image) (string, error)
	// Draft returns an unexpired draft or models.ErrNotFound.
	Draft(ctx context.Context, id string) (models.Draft, error)
	// DiscardDraft forgets a draft once it has been saved.
	DiscardDraft(ctx context.Context, id string)
}

type ServiceImpl struct {
	logger    *zap.Logger
	generator Generator
	caches    *cache.CacheManager
	region    string
	now       func() time.Time
	newID     func() string
}

func NewService(generator Generator, caches *cache.CacheManager, region string, logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	if caches == nil {
		caches = cache.NewCacheManager(0, false, logger)
	}
	if region == "" {
		region = DefaultRegion
	}
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		caches:    caches,
		region:    region,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *ServiceImpl) GenerateTrip(ctx context.Context, owner string, req models.TripRequest) (models.Draft, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "GenerateTrip", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.duration", req.Duration),
		attribute.Int("trip.images", len(req.Images)),
	))
	defer span.End()

	l := s.logger.With(zap.String("method", "GenerateTrip"))

	if err := req.Validate(); err != nil {
		s.failed(ctx, span, "trip", err)
		l.Info("Rejected trip request", zap.Error(err))
		return models.Draft{}, err
	}
	l = l.With(zap.String("destination", req.Destination), zap.String("language", string(req.Language)))

	prompt := BuildTripPrompt(req, s.region)

	// image parts make the answer depend on bytes we do not hash
	var cacheKey string
	if s.caches.Itineraries != nil && len(req.Images) == 0 {
		cacheKey = s.cacheKey(req)
		if text, ok := s.caches.Itineraries.Get(cacheKey); ok && cacheKey != "" {
			metrics.Get().GenerationCacheHitsTotal.Add(ctx, 1)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			l.Info("Itinerary served from cache")
			return s.storeDraft(owner, req, text), nil
		}
	}

	text, err := s.generate(ctx, "trip", BuildParts(prompt, req.Images))
	if err != nil {
		s.failed(ctx, span, "trip", err)
		l.Error("Itinerary generation failed", zap.String("kind", models.ErrorKind(err)), zap.Error(err))
		return models.Draft{}, err
	}

	if cacheKey != "" {
		s.caches.Itineraries.Set(cacheKey, text)
	}
	draft := s.storeDraft(owner, req, text)

	span.SetStatus(codes.Ok, "itinerary generated")
	l.Info("Itinerary generated", zap.String("draft_id", draft.ID), zap.Int("length", len(text)))
	return draft, nil
}

func (s *ServiceImpl) Chat(ctx context.Context, message string, images []models.Image) (string, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "Chat", trace.WithAttributes(
		attribute.Int("chat.images", len(images)),
	))
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" && len(images) == 0 {
		err := fmt.Errorf("%w: message or image is required", models.ErrValidation)
		s.failed(ctx, span, "chat", err)
		return "", err
	}
	for i, img := range images {
		if !strings.HasPrefix(img.MIMEType, "image/") {
			err := fmt.Errorf("%w: attachment %d is not an image (%s)", models.ErrValidation, i+1, img.MIMEType)
			s.failed(ctx, span, "chat", err)
			return "", err
		}
	}

	text, err := s.generate(ctx, "chat", BuildParts(BuildChatPrompt(message, s.region), images))
	if err != nil {
		s.failed(ctx, span, "chat", err)
		s.logger.Error("Chat generation failed", zap.String("kind", models.ErrorKind(err)), zap.Error(err))
		return "", err
	}

	metrics.Get().ChatMessagesTotal.Add(ctx, 1)
	span.SetStatus(codes.Ok, "chat answered")
	return text, nil
}

func (s *ServiceImpl) Draft(_ context.Context, id string) (models.Draft, error) {
	if id == "" {
		return models.Draft{}, fmt.Errorf("%w: draft id is required", models.ErrValidation)
	}
	draft, ok := s.caches.Drafts.Get(id)
	if !ok {
		return models.Draft{}, fmt.Errorf("%w: draft %s expired or unknown", models.ErrNotFound, id)
	}
	return draft, nil
}

func (s *ServiceImpl) DiscardDraft(_ context.Context, id string) {
	s.caches.Drafts.Delete(id)
}

func (s *ServiceImpl) generate(ctx context.Context, operation string, parts []*genai.Part) (string, error) {
	opAttr := metric.WithAttributes(attribute.String("operation", operation))
	metrics.Get().GenerationRequestsTotal.Add(ctx, 1, opAttr)

	start := time.Now()
	text, err := s.generator.GenerateContent(ctx, parts)
	metrics.Get().GenerationDuration.Record(ctx, time.Since(start).Seconds(), opAttr)
	if err != nil {
		if !errors.Is(err, models.ErrUpstream) && !errors.Is(err, models.ErrEmptyResponse) {
			err = fmt.Errorf("%w: %v", models.ErrUpstream, err)
		}
		return "", err
	}
	return text, nil
}

func (s *ServiceImpl) storeDraft(owner string, req models.TripRequest, text string) models.Draft {
	req.Images = nil
	draft := models.Draft{
		ID:        s.newID(),
		Owner:     owner,
		Request:   req,
		Itinerary: text,
		CreatedAt: s.now(),
	}
	s.caches.Drafts.Set(draft.ID, draft)
	return draft
}

func (s *ServiceImpl) cacheKey(req models.TripRequest) string {
	return cache.NewCacheKeyBuilder(s.logger).
		Add("region", s.region).
		Add("destination", strings.ToLower(req.Destination)).
		Add("duration", req.Duration).
		Add("budget", req.Budget).
		Add("travelers", req.Travelers).
		Add("interests", strings.ToLower(req.Interests)).
		Add("language", req.Language).
		BuildOrDefault()
}

func (s *ServiceImpl) failed(ctx context.Context, span trace.Span, operation string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.Get().GenerationErrorsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("kind", models.ErrorKind(err)),
	))
}
