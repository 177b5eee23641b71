package middleware

import (
	"net/http"
	"strings"

	"chemoward-backend/internal/rbac"
	"chemoward-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and stores the caller's ID and
// role in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Missing authorization token", nil)
			c.Abort()
			return
		}

		// Must be "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Malformed authorization header", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid token claims", nil)
			c.Abort()
			return
		}

		// JWT numbers decode as float64
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		role, _ := claims["role"].(string)

		c.Set("userID", userID)
		c.Set("role", rbac.Role(role))

		c.Next()
	}
}

// RequirePermission gates a route on the RBAC table. The role comes from
// the token; an unknown role fails closed inside rbac.HasPermission, so a
// stale or tampered role claim gets 403, never admin access.
func RequirePermission(perm rbac.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied", nil)
			c.Abort()
			return
		}

		role := roleVal.(rbac.Role)
		if !rbac.HasPermission(role, perm) {
			utils.APIResponse(c, http.StatusForbidden, false, "Access denied: insufficient role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
