package server

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/middleware"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/routes"
)

// maxMultipartMemory bounds the in-memory part of an upload before it spills to disk.
const maxMultipartMemory = 8 << 20

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(deps routes.Dependencies, serviceName string, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.MaxMultipartMemory = maxMultipartMemory

	r.Use(otelgin.Middleware(serviceName))
	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
		SkipPaths:  []string{"/healthz"},
		Context:    zapContextFunc(),
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.ObservabilityMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityMiddleware())

	routes.Setup(r, deps, logger)

	return r
}

// zapContextFunc adds request and trace ids. Bodies are not logged since they
// carry uploaded images.
func zapContextFunc() ginzap.Fn {
	return func(c *gin.Context) []zapcore.Field {
		fields := []zapcore.Field{}

		if requestID := c.Writer.Header().Get("X-Request-Id"); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}

		if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().IsValid() {
			fields = append(fields,
				zap.String("trace_id", span.SpanContext().TraceID().String()),
				zap.String("span_id", span.SpanContext().SpanID().String()),
			)
		}

		if plannerID := middleware.GetPlannerID(c); plannerID != "" {
			fields = append(fields, zap.String("planner_id", plannerID))
		}

		return fields
	}
}
