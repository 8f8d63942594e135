package middlewares

import (
	"log"
	"net/http"
	"strings"
	"studio/src/types"
	"studio/src/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware admits requests carrying a valid admin bearer token.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bearerToken := ctx.Request.Header.Get("Authorization")
		reqToken, ok := strings.CutPrefix(bearerToken, "Bearer ")
		if !ok || reqToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := utils.ParseJWT(secret, reqToken)
		if err != nil {
			log.Printf("token error: %s\n", err.Error())
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if claims.Role != types.ROLE_ADMIN {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		ctx.Set("email", claims.Subject)
		ctx.Set("role", claims.Role)
		ctx.Next()
	}
}
