package middleware

import (
	"errors"

	"candidate-intake/internal/delivery/http/response"
	"candidate-intake/pkg/apperror"
	"candidate-intake/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Internal details stay in the log, never in the response.
			logger.Log.Errorw("Internal Server Error",
				"error", err,
				"path", c.FullPath(),
				"request_id", response.RequestID(c),
			)
			appErr = apperror.Internal(err)
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}
