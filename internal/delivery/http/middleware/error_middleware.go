package middleware

import (
	"errors"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the gin context into the JSON
// envelope. AppErrors keep their status and message; anything else is
// logged server-side and reported generically so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
