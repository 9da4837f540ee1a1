// Package database opens the Postgres pool used by the postgres trip store
// and applies its embedded migrations.
package database

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers the postgres driver
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxuuid "github.com/vgarvardt/pgx-google-uuid/v5"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/config"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const defaultRetries = 5

// WaitForDB pings the pool with a linear backoff and reports whether it came up.
func WaitForDB(ctx context.Context, pgpool *pgxpool.Pool, logger *zap.Logger) bool {
	for attempt := 1; attempt <= defaultRetries; attempt++ {
		err := pgpool.Ping(ctx)
		if err == nil {
			logger.Info("Database connection successful")
			return true
		}

		wait := time.Duration(attempt) * 200 * time.Millisecond
		logger.Warn("Database ping failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", defaultRetries),
			zap.Duration("wait_duration", wait),
			zap.Error(err),
		)
		if attempt < defaultRetries {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(wait):
			}
		}
	}
	logger.Error("Database connection failed after multiple retries")
	return false
}

// RunMigrations applies every pending embedded migration.
func RunMigrations(databaseURL string, logger *zap.Logger) error {
	if !strings.HasPrefix(databaseURL, "postgres://") && !strings.HasPrefix(databaseURL, "postgresql://") {
		return fmt.Errorf("invalid database URL scheme for migrate, expected postgresql://")
	}

	sourceDriver, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("Error closing migration source", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("Error closing migration database connection", zap.Error(dbErr))
		}
	}()

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	version, dirty, err := m.Version()
	switch {
	case err != nil:
		logger.Warn("Could not determine migration version", zap.Error(err))
	case dirty:
		logger.Error("Database migration state is dirty", zap.Uint("version", version))
	case upErr == migrate.ErrNoChange:
		logger.Info("No new migrations to apply", zap.Uint("current_version", version))
	default:
		logger.Info("Database migrations applied", zap.Uint("new_version", version))
	}
	return nil
}

// ConnectionURL builds the postgresql:// URL accepted by both pgx and migrate.
func ConnectionURL(cfg config.PostgresConfig) string {
	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)
	query.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Path:     cfg.DB,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// Init opens the pool and registers google/uuid as the UUID codec on every connection.
func Init(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed parsing db config: %w", err)
	}
	poolCfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxuuid.Register(conn.TypeMap())
		return nil
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed creating db pool: %w", err)
	}

	logger.Info("Database connection pool initialized",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.DB))
	return pool, nil
}
