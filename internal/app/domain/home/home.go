package home

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/handlers"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/pages"
)

type HomeHandlers struct {
	*handlers.BaseHandler
}

func NewHomeHandlers(base *handlers.BaseHandler) *HomeHandlers {
	return &HomeHandlers{BaseHandler: base}
}

func (h *HomeHandlers) ShowHomePage(c *gin.Context) {
	h.RenderPage(c, http.StatusOK, "Discover Tamil Nadu", "Home", pages.HomePage())
}

// NotFound handles unmatched routes.
func (h *HomeHandlers) NotFound(c *gin.Context) {
	h.RenderPage(c, http.StatusNotFound, "Page not found", "", pages.NotFoundPage("Page"))
}
