package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	msgNoUserInContext = "User not found in context"
	msgAdminRequired   = "Admin access required"
)

// RequireAdmin lets the request through only when the claims attached
// by RequireAuth carry the admin role. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNoUserInContext})
			return
		}

		claims, ok := userClaims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgAdminRequired})
			return
		}

		if role, ok := claims["role"].(string); !ok || role != "admin" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgAdminRequired})
			return
		}

		ctx.Next()
	}
}
