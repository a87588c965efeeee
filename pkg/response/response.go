package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/tbcare/screening-api/pkg/errors"
	"github.com/tbcare/screening-api/pkg/middleware/requestid"
)

// JSON writes the value verbatim with status 200.
func JSON(c *gin.Context, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, data)
}

// Text writes a plain-text 200 response.
func Text(c *gin.Context, body string) {
	c.Header("Cache-Control", "no-store")
	c.String(http.StatusOK, body)
}

// Empty writes an empty 200 response.
func Empty(c *gin.Context) {
	c.String(http.StatusOK, "")
}

// Error converts err through the error taxonomy and writes a text/plain body.
// Internal failures are logged in full and reported with an opaque message.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Kind == appErrors.KindInternal && logger != nil {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestid.Value(c)),
			zap.Error(appErr),
		)
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.String(appErr.Status(), appErr.PublicMessage())
	c.Abort()
}
