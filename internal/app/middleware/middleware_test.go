package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter(tokens *identity.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(PlannerIdentity(tokens, zap.NewNop()))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetPlannerID(c))
	})
	return r
}

func plannerCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == identity.CookieName {
			return c
		}
	}
	return nil
}

func TestPlannerIdentity(t *testing.T) {
	tokens := identity.NewTokenService("a-test-secret-that-is-at-least-32-chars", time.Hour)
	router := identityRouter(tokens)

	t.Run("issues a cookie on first visit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		cookie := plannerCookie(t, rec)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

		id, err := tokens.Validate(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps the id of a valid cookie", func(t *testing.T) {
		id, token, err := tokens.Issue()
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, id, rec.Body.String())
		assert.Nil(t, plannerCookie(t, rec))
	})

	t.Run("replaces a forged cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: identity.CookieName, Value: "forged"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Body.String())
		assert.NotNil(t, plannerCookie(t, rec))
	})
}

func TestGetPlannerIDOutsideMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "", GetPlannerID(c))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/api/trips", func(c *gin.Context) { c.Status(http.StatusCreated) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/trips", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityMiddleware(), ObservabilityMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}
