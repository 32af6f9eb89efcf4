package httpserver

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// HeaderUserID carries the acting user's numeric id on mutating calls.
// It is advisory only: the authoritative role checks happen in the usecases
// against the users table.
const HeaderUserID = "X-User-Id"

const ctxUserIDKey = "actingUserID"

// identityMiddleware parses the acting user header into the request context
func identityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(HeaderUserID); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				c.Set(ctxUserIDKey, uint(id))
			}
		}
		c.Next()
	}
}

// ActingUser returns the acting user id for the request, 0 when anonymous
func ActingUser(c *gin.Context) uint {
	if id, ok := c.Get(ctxUserIDKey); ok {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
