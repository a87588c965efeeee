package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func do(allowed []string, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(allowed))
	r.Any("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestPreflightShortCircuits(t *testing.T) {
	w := do(nil, http.MethodOptions, "https://clinic.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownOriginNotEchoed(t *testing.T) {
	w := do([]string{"https://clinic.example/"}, http.MethodGet, "https://other.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do([]string{"https://clinic.example/"}, http.MethodGet, "https://clinic.example")
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
}
