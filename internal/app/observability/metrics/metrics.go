package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal        metric.Int64Counter
	HTTPRequestDuration      metric.Float64Histogram
	GenerationRequestsTotal  metric.Int64Counter
	GenerationDuration       metric.Float64Histogram
	GenerationErrorsTotal    metric.Int64Counter
	GenerationCacheHitsTotal metric.Int64Counter
	ChatMessagesTotal        metric.Int64Counter
	TripsSavedTotal          metric.Int64Counter
	TripsDeletedTotal        metric.Int64Counter
	StorageErrorsTotal       metric.Int64Counter
	TemplateRenderDuration   metric.Float64Histogram
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once from the global MeterProvider.
// Call it after the provider is installed so the instruments export.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("tamilnadu-explorer")
		m := &AppMetrics{}

		m.HTTPRequestsTotal = mustCounter(meter, "http_requests_total",
			"Total number of HTTP requests completed", "{request}")
		m.HTTPRequestDuration = mustHistogram(meter, "http_request_duration_seconds",
			"Duration of HTTP requests in seconds")
		m.GenerationRequestsTotal = mustCounter(meter, "generation_requests_total",
			"Total number of itinerary and chat generation calls", "{request}")
		m.GenerationDuration = mustHistogram(meter, "generation_duration_seconds",
			"Duration of generative AI calls in seconds")
		m.GenerationErrorsTotal = mustCounter(meter, "generation_errors_total",
			"Total number of failed generation calls by kind", "{error}")
		m.GenerationCacheHitsTotal = mustCounter(meter, "generation_cache_hits_total",
			"Itinerary requests answered from cache", "{request}")
		m.ChatMessagesTotal = mustCounter(meter, "chat_messages_total",
			"Total number of chat questions answered", "{message}")
		m.TripsSavedTotal = mustCounter(meter, "trips_saved_total",
			"Total number of trips saved", "{trip}")
		m.TripsDeletedTotal = mustCounter(meter, "trips_deleted_total",
			"Total number of trips deleted", "{trip}")
		m.StorageErrorsTotal = mustCounter(meter, "storage_errors_total",
			"Total number of trip storage failures", "{error}")
		m.TemplateRenderDuration = mustHistogram(meter, "template_render_duration_seconds",
			"Duration of template rendering in seconds")

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the instruments, creating them against the current global
// provider when InitAppMetrics was not called (tests use the no-op provider).
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}

func mustCounter(meter metric.Meter, name, desc, unit string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
	return c
}

func mustHistogram(meter metric.Meter, name, desc string) metric.Float64Histogram {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	if err != nil {
		log.Fatalf("Metrics: Failed to create %s: %v", name, err)
	}
	return h
}
