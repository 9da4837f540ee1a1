package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/pages"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/renderer"
)

const titleSuffix = " - Tamil Nadu Explorer"

type BaseHandler struct {
	Logger *zap.Logger
}

func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{Logger: logger}
}

func (h *BaseHandler) NewLayoutData(title, activeNav string, content templ.Component) models.LayoutTempl {
	return models.LayoutTempl{
		Title:     title + titleSuffix,
		Content:   content,
		Nav:       models.MainNav,
		ActiveNav: activeNav,
	}
}

func (h *BaseHandler) Render(c *gin.Context, status int, component templ.Component) {
	r := renderer.New(c.Request.Context(), status, component)
	r.Name = c.FullPath()
	c.Render(status, r)
}

// IsFragmentRequest reports an HTMX call that targets part of the page.
// Boosted navigation swaps the whole body and still needs the layout.
func IsFragmentRequest(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true" && c.GetHeader("HX-Boosted") != "true"
}

func (h *BaseHandler) RenderPage(c *gin.Context, status int, title, activeNav string, content templ.Component) {
	if IsFragmentRequest(c) {
		h.Render(c, status, content)
		return
	}
	h.Render(c, status, pages.LayoutPage(h.NewLayoutData(title, activeNav, content)))
}

// StatusFor maps a domain error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUpstream), errors.Is(err, models.ErrEmptyResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage is the text shown for err. Only validation failures are
// specific; everything else collapses to the generic notice.
func UserMessage(err error) string {
	if !errors.Is(err, models.ErrValidation) {
		return pages.Notice
	}
	msg := err.Error()
	prefix := models.ErrValidation.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	}
	return msg
}

func (h *BaseHandler) logFailure(c *gin.Context, err error) int {
	status := StatusFor(err)
	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("kind", models.ErrorKind(err)),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.Logger.Error("Request failed", fields...)
	} else {
		h.Logger.Info("Request rejected", fields...)
	}
	return status
}

// RenderError shows err as a notice, or as the not-found page for a full
// page request.
func (h *BaseHandler) RenderError(c *gin.Context, err error, what string) {
	status := h.logFailure(c, err)
	if status == http.StatusNotFound {
		h.RenderPage(c, status, what+" not found", "", pages.NotFoundPage(what))
		return
	}
	h.RenderPage(c, status, "Error", "", pages.ErrorNotice(UserMessage(err)))
}

func (h *BaseHandler) JSONError(c *gin.Context, err error) {
	status := h.logFailure(c, err)
	msg := UserMessage(err)
	if status == http.StatusNotFound {
		msg = "not found"
	}
	c.JSON(status, gin.H{"error": msg, "kind": models.ErrorKind(err)})
}
