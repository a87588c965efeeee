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

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/internal/service"
	"github.com/tbcare/screening-api/pkg/config"
)

func newSessionRouter(sessions *service.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(sessions, zap.NewNop()))
	r.GET("/users/:user_id", SameUser("user_id", zap.NewNop()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func get(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionDisabledPassesThrough(t *testing.T) {
	r := newSessionRouter(service.NewSessionService(config.SessionConfig{}))
	w := get(r, "/users/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionEnforcedWhenEnabled(t *testing.T) {
	sessions := service.NewSessionService(config.SessionConfig{Enabled: true, Secret: "secret", TTL: time.Hour})
	r := newSessionRouter(sessions)

	w := get(r, "/users/1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing session token", w.Body.String())

	w = get(r, "/users/1", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "/users/1", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := sessions.Issue(&models.User{ID: 1})
	require.NoError(t, err)

	w = get(r, "/users/1", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/users/2", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/users/:user_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	get(r, "/users/7", "")
	get(r, "/users/8", "")
	get(r, "/missing", "")

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/users/:user_id",status="200"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="unmatched",status="404"} 1`)
}
