// Package renderer lets gin's c.HTML render templ components.
package renderer

import (
	"context"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin/render"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/observability/metrics"
)

// HTMLTemplRenderer renders templ components and hands anything else to the
// fallback renderer.
type HTMLTemplRenderer struct {
	FallbackHTMLRenderer render.HTMLRender
}

func (r *HTMLTemplRenderer) Instance(name string, data any) render.Render {
	component, ok := data.(templ.Component)
	if !ok {
		if r.FallbackHTMLRenderer != nil {
			return r.FallbackHTMLRenderer.Instance(name, data)
		}
	}
	return &Renderer{
		Ctx:       context.Background(),
		Status:    -1,
		Name:      name,
		Component: component,
	}
}

// New binds component to the request context so cancellation reaches it.
func New(ctx context.Context, status int, component templ.Component) *Renderer {
	return &Renderer{
		Ctx:       ctx,
		Status:    status,
		Component: component,
	}
}

type Renderer struct {
	Ctx       context.Context
	Status    int
	Name      string
	Component templ.Component
}

func (t Renderer) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	if t.Status != -1 {
		w.WriteHeader(t.Status)
	}
	if t.Component == nil {
		return nil
	}

	start := time.Now()
	err := t.Component.Render(t.Ctx, w)
	metrics.Get().TemplateRenderDuration.Record(t.Ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("template", t.Name)))
	return err
}

func (t Renderer) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}
