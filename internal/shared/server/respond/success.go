package respond

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// OK sends payload as a 200 JSON body.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Attachment sends data as a download named fileName.
func Attachment(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, contentType, data)
}

// RateLimitedResponse is the 429 body; RetryAfterMs is never below 1.
type RateLimitedResponse struct {
	Detail       string `json:"detail"`
	RetryAfterMs int64  `json:"retryAfterMs"`
}

// RateLimited aborts with 429 and tells the client when to retry, both in
// the Retry-After header (whole seconds) and in the body (milliseconds).
func RateLimited(c *gin.Context, retryAfter time.Duration) {
	ms := retryAfter.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	secs := int64(math.Ceil(float64(ms) / 1000))
	c.Header("Retry-After", strconv.FormatInt(secs, 10))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, RateLimitedResponse{
		Detail:       "Too many requests",
		RetryAfterMs: ms,
	})
}
