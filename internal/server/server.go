package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/identity"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/landmarks"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/planner"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/trips"
	database "github.com/FACorreiaa/tamilnadu-explorer/internal/db"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/cache"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/config"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/upload"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/routes"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	dbPool *pgxpool.Pool
	deps   routes.Dependencies
	router http.Handler
}

// New creates a new Server instance with all dependencies
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	repo, err := s.setupStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup trip store: %w", err)
	}

	generator, err := s.setupGenerator(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}

	caches := cache.NewCacheManager(cfg.Planner.CacheTTL, cfg.Planner.ReuseItineraries, logger)
	plannerService := planner.NewService(generator, caches, cfg.Planner.Region, logger)

	s.deps = routes.Dependencies{
		Planner: plannerService,
		Drafts:  plannerService,
		Trips:   trips.NewService(repo, landmarks.Default(), logger),
		Tokens:  identity.NewTokenService(cfg.Planner.Secret, identity.DefaultTTL),
		Limits:  upload.Limits{MaxImages: cfg.Planner.MaxImages, MaxBytes: cfg.Planner.MaxImageBytes},
		Store:   string(cfg.Store),
		Caches:  caches,
	}
	if s.dbPool != nil {
		s.deps.Ping = s.dbPool.Ping
	}

	return s, nil
}

// setupStore opens the backend selected by TRIPS_STORE.
func (s *Server) setupStore(ctx context.Context) (trips.Repository, error) {
	switch s.cfg.Store {
	case config.StoreMemory:
		s.logger.Warn("Saved trips are kept in memory and lost on restart")
		return trips.NewKVRepository(trips.NewMemoryKV(), s.logger), nil
	case config.StorePostgres:
		pool, err := s.setupDatabase(ctx)
		if err != nil {
			return nil, err
		}
		s.dbPool = pool
		return trips.NewPostgresRepository(pool, s.logger), nil
	default:
		kv, err := trips.NewFileKV(s.cfg.TripsFile, s.logger)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Saved trips stored on disk", zap.String("path", s.cfg.TripsFile))
		return trips.NewKVRepository(kv, s.logger), nil
	}
}

// setupDatabase initializes the database connection and runs migrations
func (s *Server) setupDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	s.logger.Info("Setting up database connection and migrations")
	pg := s.cfg.Repositories.Postgres

	pool, err := database.Init(ctx, pg, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if !database.WaitForDB(ctx, pool, s.logger) {
		pool.Close()
		return nil, fmt.Errorf("database %s:%s did not become ready", pg.Host, pg.Port)
	}
	s.logger.Info("Connected to Postgres",
		zap.String("host", pg.Host),
		zap.String("port", pg.Port),
		zap.String("database", pg.DB))

	if err = database.RunMigrations(database.ConnectionURL(pg), s.logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s.logger.Info("Database setup completed successfully")
	return pool, nil
}

func (s *Server) setupGenerator(ctx context.Context) (planner.Generator, error) {
	if s.cfg.Gemini.Fake {
		s.logger.Warn("PLANNER_FAKE_AI is set, itineraries are canned")
		return planner.FakeGenerator{}, nil
	}
	client, err := planner.NewGeminiClient(ctx, planner.GeminiClientConfig{
		APIKey:  s.cfg.Gemini.APIKey,
		Model:   s.cfg.Gemini.Model,
		BaseURL: s.cfg.Gemini.BaseURL,
		Timeout: s.cfg.Gemini.Timeout,
	}, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.logger.Info("Gemini client ready", zap.String("model", client.Model()))
	return client, nil
}

// HTTPServer creates and configures the HTTP server. WriteTimeout leaves room
// for the generation timeout.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: s.cfg.Gemini.Timeout + 30*time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Dependencies returns the services routes are built from
func (s *Server) Dependencies() routes.Dependencies {
	return s.deps
}

// Close closes all server resources
func (s *Server) Close() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}
