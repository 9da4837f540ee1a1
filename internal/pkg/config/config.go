package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type PostgresConfig struct {
	Host     string
	Port     string
	DB       string
	Username string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RepositoriesConfig struct {
	Postgres PostgresConfig
}

// StoreDriver selects where saved trips live.
type StoreDriver string

const (
	StoreFile     StoreDriver = "file"
	StoreMemory   StoreDriver = "memory"
	StorePostgres StoreDriver = "postgres"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	// Fake swaps the Gemini client for the canned offline generator.
	Fake bool
}

type PlannerConfig struct {
	Region   string
	Secret   string
	CacheTTL time.Duration
	// ReuseItineraries answers repeated text-only requests from cache
	// instead of calling the model again.
	ReuseItineraries bool
	MaxImages        int
	MaxImageBytes    int64
}

type ObservabilityConfig struct {
	ServiceName  string
	MetricsAddr  string
	PprofAddr    string
	OTLPEndpoint string
	LogLevel     string
}

type Config struct {
	Repositories  RepositoriesConfig
	ServerPort    string
	Store         StoreDriver
	TripsFile     string
	Gemini        GeminiConfig
	Planner       PlannerConfig
	Observability ObservabilityConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Repositories: RepositoriesConfig{
			Postgres: PostgresConfig{
				Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:     getEnvOrDefault("POSTGRES_PORT", "5454"),
				DB:       getEnvOrDefault("POSTGRES_DB", "tamilnadu_explorer"),
				Username: getEnvOrDefault("POSTGRES_USER", "postgres"),
				Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
				SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
				MaxConns: int32(getIntOrDefault("POSTGRES_MAX_CONNS", 10)),
				MinConns: int32(getIntOrDefault("POSTGRES_MIN_CONNS", 1)),
			},
		},
		ServerPort: getEnvOrDefault("SERVER_PORT", "8091"),
		Store:      StoreDriver(strings.ToLower(getEnvOrDefault("TRIPS_STORE", string(StoreFile)))),
		TripsFile:  getEnvOrDefault("TRIPS_FILE", "data/trips.json"),
		Gemini: GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
			Timeout: getDurationOrDefault("GEMINI_TIMEOUT", 60*time.Second),
			Fake:    getBoolOrDefault("PLANNER_FAKE_AI", false),
		},
		Planner: PlannerConfig{
			Region:           getEnvOrDefault("PLANNER_REGION", "Tamil Nadu"),
			Secret:           getEnvOrDefault("PLANNER_SECRET", ""),
			CacheTTL:         getDurationOrDefault("CACHE_TTL", 30*time.Minute),
			ReuseItineraries: getBoolOrDefault("CACHE_ITINERARIES", false),
			MaxImages:        getIntOrDefault("MAX_IMAGES", 4),
			MaxImageBytes:    int64(getIntOrDefault("MAX_IMAGE_BYTES", 5<<20)),
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "tamilnadu-explorer"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    getEnvOrDefault("PPROF_ADDR", ":6060"),
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Gemini.APIKey == "" && !c.Gemini.Fake {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required (or set PLANNER_FAKE_AI=true)")
	}
	switch c.Store {
	case StoreFile, StoreMemory:
	case StorePostgres:
		if c.Repositories.Postgres.Password == "" {
			return fmt.Errorf("POSTGRES_PASSWORD environment variable is required when TRIPS_STORE=postgres")
		}
	default:
		return fmt.Errorf("unsupported TRIPS_STORE %q (want file, memory or postgres)", c.Store)
	}
	if c.Planner.Secret == "" {
		return fmt.Errorf("PLANNER_SECRET environment variable is required")
	}
	if len(c.Planner.Secret) < 32 {
		return fmt.Errorf("PLANNER_SECRET must be at least 32 characters")
	}
	if c.Planner.MaxImages < 0 || c.Planner.MaxImageBytes <= 0 {
		return fmt.Errorf("MAX_IMAGES must be >= 0 and MAX_IMAGE_BYTES > 0")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
