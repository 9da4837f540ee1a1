package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/identity"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/observability/metrics"
)

// PlannerIDKey holds the browser's planner id in the gin context.
const PlannerIDKey = "planner_id"

// CORSMiddleware handles CORS headers for the JSON API
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With, HX-Request, HX-Target, HX-Current-URL")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// data: and blob: cover chat image previews; htmx hx-on needs unsafe-eval
		csp := "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline' 'unsafe-eval' https://unpkg.com https://cdn.tailwindcss.com; " +
			"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
			"font-src 'self' https://fonts.gstatic.com; " +
			"img-src 'self' data: blob: https:; " +
			"connect-src 'self'"
		c.Writer.Header().Set("Content-Security-Policy", csp)

		c.Next()
	}
}

// PlannerIdentity resolves the planner_token cookie to a planner id, issuing a
// fresh identity when the cookie is missing or does not verify.
func PlannerIdentity(tokens *identity.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(identity.CookieName); err == nil && raw != "" {
			plannerID, err := tokens.Validate(raw)
			if err == nil {
				c.Set(PlannerIDKey, plannerID)
				c.Next()
				return
			}
			logger.Debug("Discarding planner token", zap.Error(err))
		}

		plannerID, token, err := tokens.Issue()
		if err != nil {
			logger.Error("Failed to issue planner token", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(identity.CookieName, token, int(tokens.TTL().Seconds()), "/", "", c.Request.TLS != nil, true)
		c.Set(PlannerIDKey, plannerID)
		c.Next()
	}
}

// GetPlannerID returns the id set by PlannerIdentity, or "" outside it.
func GetPlannerID(c *gin.Context) string {
	if v, ok := c.Get(PlannerIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// ObservabilityMiddleware records request counts and durations. Tracing comes
// from otelgin, registered ahead of it.
func ObservabilityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(start).Seconds()
		ctx := c.Request.Context()

		m := metrics.Get()
		m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(c.Writer.Status())),
		))
		m.HTTPRequestDuration.Record(ctx, duration, metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("route", route),
		))
	}
}
