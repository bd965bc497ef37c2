package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gefen_backend/internal/repository"
	"gefen_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthAdminKey is the gin context key under which the authenticated admin
// is stored for downstream handlers.
const AuthAdminKey = "authAdmin"

// AdminAuthMiddleware guards admin-only routes. It extracts the Bearer token,
// validates it, and resolves the embedded admin ID against the credential
// store. Requests proceed only with a live token referencing a live account.
func AdminAuthMiddleware(jwtUtil *utils.JWTUtil, adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		tokenString := parts[1]
		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		admin, err := adminRepo.FindByID(c.Request.Context(), claims.AdminID)
		if err != nil {
			slog.Error("failed to resolve admin for token", "admin_id", claims.AdminID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve admin"})
			return
		}
		if admin == nil {
			// Token is valid but the account is gone
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}

		admin.PasswordHash = "" // never carry the hash past the gate
		c.Set(AuthAdminKey, admin)

		c.Next()
	}
}
