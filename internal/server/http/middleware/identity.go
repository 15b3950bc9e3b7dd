package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDContextKey is a gin context key for the caller's identifier.
	UserIDContextKey = "userID"

	userIDHeader = "X-User-ID"
	roleHeader   = "X-User-Role"
)

// IdentityRequired extracts the caller's identity from request headers.
// There is no real authentication in this system: the headers are trusted
// as-is, standing in for whatever identity layer fronts the service.
func IdentityRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// RoleRequired gates a route group to callers declaring the given role.
func RoleRequired(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(roleHeader) != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
