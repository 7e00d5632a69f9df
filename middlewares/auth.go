// file: middlewares/auth.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/models"
	"github.com/Th3Mauryy/RefZone-sub000/utils"
)

// JWTAuthMiddleware rejects requests without a valid bearer token and
// places the caller's id and role into the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Fail(c, http.StatusUnauthorized, "unauthorized", "Authorization header is missing")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Fail(c, http.StatusUnauthorized, "unauthorized", "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Fail(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware restricts a route to the given roles.
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Fail(c, http.StatusForbidden, "forbidden", "Caller role is unknown")
			c.Abort()
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			utils.Fail(c, http.StatusForbidden, "forbidden", "Insufficient role for this operation")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated user id placed by JWTAuthMiddleware.
func CallerID(c *gin.Context) uint32 {
	idAny, _ := c.Get("user_id")
	id, _ := idAny.(uint32)
	return id
}
