package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/ricemill-backend/utils"
)

const millIDKey = "mill_id"

// RequireMill resolves the mill tenant from the X-Mill-ID header and rejects requests without one
func RequireMill() gin.HandlerFunc {
	return func(c *gin.Context) {
		millID := strings.TrimSpace(c.GetHeader(utils.MillHeader))
		if millID == "" {
			utils.HandleError(c, utils.NewBadRequestError(utils.ErrMillRequired))
			c.Abort()
			return
		}
		c.Set(millIDKey, millID)
		c.Next()
	}
}

// MillID returns the mill resolved by RequireMill
func MillID(c *gin.Context) string {
	return c.GetString(millIDKey)
}
