package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders the last error a handler pushed with c.Error as
// {"error": message}. Unclassified errors become a generic 500 and are logged.
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				"request_id", RequestIDFromContext(c),
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		}
		c.JSON(status, ErrorResponse{Error: apperrors.PublicMessage(err)})
	}
}

// Recovery turns panics into the same generic 500 response.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			"request_id", RequestIDFromContext(c),
			"path", c.FullPath(),
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: apperrors.PublicMessage(nil)})
	})
}
