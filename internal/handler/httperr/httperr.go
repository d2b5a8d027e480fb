package httperr

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RetryAfter is advertised with every 503, in seconds.
const RetryAfter = 2

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError keeps err on the gin context so ErrorHandler can log the
// cause; the client only sees msg and detail.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(RetryAfter))
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Unavailable is the answer for storage and broker failures.
func Unavailable(c *gin.Context, err error) {
	AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
}

// Internal is the answer for failures in response rendering.
func Internal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
