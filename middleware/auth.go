package middleware

import (
	"net/http"
	"strings"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserIDKey   = "userID"
	ContextUserRoleKey = "userRole"
)

// AuthMiddleware validates the bearer token and loads the account it names.
// Requests from deactivated accounts are rejected even with a valid token.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "Account no longer exists")
			c.Abort()
			return
		}
		if !user.IsActive {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "Account is deactivated")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserRoleKey, role)
		c.Next()
	}
}

// RequireRoles allows only requests whose authenticated role is listed.
// Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRoleKey)
		if !allowed[role] {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "Insufficient permissions for this resource")
			c.Abort()
			return
		}
		c.Next()
	}
}
