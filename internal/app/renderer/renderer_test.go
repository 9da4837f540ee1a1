package renderer

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hello() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>vanakkam</p>")
		return err
	})
}

func TestHTMLTemplRenderer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HTMLRender = &HTMLTemplRenderer{FallbackHTMLRenderer: r.HTMLRender}
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusAccepted, "hello", hello())
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>vanakkam</p>", rec.Body.String())
}

func TestNewRendersWithStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, New(context.Background(), http.StatusTeapot, hello()).Render(rec))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, rec.Body.String(), "vanakkam")
}
