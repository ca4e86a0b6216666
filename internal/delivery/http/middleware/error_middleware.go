package middleware

import (
	"errors"
	"net/http"

	"go-hr-website/internal/delivery/http/response"
	"go-hr-website/pkg/apperror"
	"go-hr-website/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error:
// JSON for XHR clients, the error page otherwise.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."
		var fields map[string]string

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code, message, fields = appErr.Code, appErr.Message, appErr.Fields
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", code, "error", appErr.Err,
					"request_id", c.GetString(response.RequestIDKey))
			}
		} else {
			// Never expose internal error details to clients
			logger.Log.Error("Internal Server Error", "error", err,
				"request_id", c.GetString(response.RequestIDKey))
		}

		if response.WantsJSON(c) {
			var detail interface{}
			if len(fields) > 0 {
				detail = fields
			}
			response.Error(c, code, message, detail)
			return
		}
		c.HTML(code, "error.html", gin.H{
			"Title":   http.StatusText(code),
			"Status":  code,
			"Message": message,
		})
	}
}
