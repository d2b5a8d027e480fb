package middleware

import (
	"log/slog"
	"net/http"

	"guri24/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// fallbackMessages covers statuses set by gin itself, such as unknown routes,
// so every error body has the same shape.
var fallbackMessages = map[int]string{
	http.StatusNotFound:         "Route not found",
	http.StatusMethodNotAllowed: "Method not allowed",
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		status := c.Writer.Status()
		if msg, ok := fallbackMessages[status]; ok {
			resp := httperr.Response{Status: status}
			resp.Error.Message = msg
			c.JSON(status, resp)
			return
		}
		if status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				attrs := []any{"error", err, "path", c.Request.URL.Path, "route", c.FullPath()}
				if requestID := GetRequestID(c); requestID != "" {
					attrs = append(attrs, "request_id", requestID)
				}
				if userID, ok := GetUserID(c); ok {
					attrs = append(attrs, "user_id", userID.String())
				}
				slog.Error("recovered from panic", attrs...)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
