package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/javajoker/launchpad-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResolveLanguage(t *testing.T) {
	tests := map[string]string{
		"":                     "en",
		"zh-TW,zh;q=0.9":       "zh_TW",
		"zh-Hant":              "zh_TW",
		"en-US,en;q=0.8":       "en",
		"fr-FR":                "en",
		"  zh-tw ; q=1.0, en ": "zh_TW",
	}
	for header, want := range tests {
		assert.Equal(t, want, resolveLanguage(header, "en"), header)
	}
}

func TestOptionalAuth(t *testing.T) {
	utils.SetJWTSecret("middleware-secret")

	r := gin.New()
	r.Use(OptionalAuth())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, utils.GetActorFromContext(c))
	})

	token, err := utils.GenerateJWT("u-1", "mod@x.io", "moderator", time.Hour)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, "mod@x.io", serve(r, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 2)
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	// Another client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusOK, serve(r, req).Code)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)
	defer rl.Stop()

	rl.getVisitor("10.0.0.1")
	rl.evict(-time.Second)

	rl.mtx.Lock()
	defer rl.mtx.Unlock()
	assert.Empty(t, rl.visitors)
}

func TestRateLimiterStop(t *testing.T) {
	rl := NewRateLimiter(rate.Every(time.Hour), 1)

	rl.Stop()
	rl.Stop()

	select {
	case <-rl.done:
	default:
		t.Fatal("cleanup loop still running after Stop")
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
