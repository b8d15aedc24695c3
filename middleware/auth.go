package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "turfbook/database/repository/user"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against
// the auth cache (falling back to the user record on a miss), and sets
// userID and role in the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
					return
				}
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				c.Set("userID", userID)
				c.Set("role", role)
				c.Next()
				return
			} else if err != redis.Nil {
				utils.GetLogger().Sugar().Warnf("auth cache lookup failed, falling back to DB: %v", err)
			}
		}

		// Cache miss: check the token hash stored on the user record.
		usr, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("userID", userID)
		c.Set("role", usr.Role)
		c.Next()
	}
}
