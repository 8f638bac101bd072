package v1

import (
	"github.com/gin-gonic/gin"
)

// requestHost returns the protocol and host the request was made against.
//
// The scheme defaults to http and is upgraded when the x-forwarded-proto
// header says the original request was https.
func requestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + c.Request.Host + c.Request.Header.Get("x-forwarded-prefix")
}
