package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oraculo/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestIdentityAndAuthRequired(t *testing.T) {
	r := gin.New()
	r.Use(Identity("X-User-ID"))
	r.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, "%v", auth.CurrentOwnerPtr(c) == nil)
	})
	r.GET("/private", AuthRequired(), func(c *gin.Context) {
		owner, _ := auth.CurrentOwner(c)
		c.String(http.StatusOK, owner)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))
	assert.Equal(t, "true", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("X-User-ID", "  user-7 ")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", w.Body.String())

	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("X-User-ID", strings.Repeat("x", auth.MaxOwnerLength+1))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLimitPerRoute_RejectsOverLimit(t *testing.T) {
	r := gin.New()
	r.GET("/limited", LimitPerRoute("1-H"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// 突发容量内全部放行
	for i := 0; i < DefaultBurst; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLimitIP_InvalidLimitFailsOpen(t *testing.T) {
	r := gin.New()
	r.GET("/open", LimitIP("bogus"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/open", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestSecurityHeadersAndCors(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders(), Cors())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
