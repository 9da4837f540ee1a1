package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/home"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/identity"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/planner"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/trips"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/handlers"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/middleware"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/renderer"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/cache"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/upload"
)

// Dependencies are the services the routes are built from.
type Dependencies struct {
	Planner planner.Service
	Drafts  trips.DraftSource
	Trips   trips.Service
	Tokens  *identity.TokenService
	Limits  upload.Limits
	// Store names the trip backend reported by /healthz.
	Store string
	// Ping checks the trip backend; nil means always healthy.
	Ping func(ctx context.Context) error
	// Caches are reported by /healthz when set.
	Caches *cache.CacheManager
}

type AppHandlers struct {
	Home    *home.HomeHandlers
	Planner *planner.Handler
	Trips   *trips.Handler
}

func NewAppHandlers(deps Dependencies, log *zap.Logger) *AppHandlers {
	base := handlers.NewBaseHandler(log)
	return &AppHandlers{
		Home:    home.NewHomeHandlers(base),
		Planner: planner.NewHandler(base, deps.Planner, deps.Limits),
		Trips:   trips.NewHandler(base, deps.Trips, deps.Drafts),
	}
}

func Setup(r *gin.Engine, deps Dependencies, log *zap.Logger) {
	ginHTMLRenderer := r.HTMLRender
	r.HTMLRender = &renderer.HTMLTemplRenderer{FallbackHTMLRenderer: ginHTMLRenderer}

	setupRouter(r, NewAppHandlers(deps, log), deps, log)
}

func setupRouter(r *gin.Engine, h *AppHandlers, deps Dependencies, log *zap.Logger) {
	r.GET("/healthz", healthz(deps))

	public := r.Group("/")
	public.Use(middleware.PlannerIdentity(deps.Tokens, log))
	{
		public.GET("/", h.Home.ShowHomePage)

		public.GET("/trips/new", h.Planner.ShowForm)
		public.POST("/trips/generate", h.Planner.Generate)

		public.GET("/trips", h.Trips.ShowList)
		public.POST("/trips/save", h.Trips.Save)
		public.GET("/trips/:id", h.Trips.ShowTrip)
		public.DELETE("/trips/:id", h.Trips.Delete)
		public.POST("/trips/:id/delete", h.Trips.Delete)

		public.GET("/chat", h.Planner.ShowChat)
		public.POST("/chat/messages", h.Planner.SendMessage)
	}

	api := r.Group("/api")
	api.Use(middleware.PlannerIdentity(deps.Tokens, log))
	{
		api.POST("/itineraries", h.Planner.GenerateAPI)
		api.GET("/trips", h.Trips.ListAPI)
		api.POST("/trips", h.Trips.SaveAPI)
		api.DELETE("/trips/:id", h.Trips.DeleteAPI)
	}

	r.NoRoute(func(c *gin.Context) {
		log.Info("404 - Page not found",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("ip", c.ClientIP()),
		)
		h.Home.NotFound(c)
	})
}

func healthz(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"status": "ok", "store": deps.Store}
		if deps.Caches != nil {
			status["caches"] = deps.Caches.GetAllMetrics()
		}
		if deps.Ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Ping(ctx); err != nil {
				status["status"] = "degraded"
				status["error"] = err.Error()
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
		}
		c.JSON(http.StatusOK, status)
	}
}
