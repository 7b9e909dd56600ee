package middleware

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"finance_tracker/internal/utils" // JWT and cache utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// revokedKeyPrefix namespaces revoked session tokens in Redis
const revokedKeyPrefix = "session:revoked:"

// JWTAuthMiddleware validates session tokens and extracts user information.
// Tokens revoked via logout are rejected when a Redis client is configured.
func JWTAuthMiddleware(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the session token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		// Reject tokens that were revoked by logout
		if rdb != nil {
			if n, err := rdb.Exists(context.Background(), revokedKeyPrefix+tokenStr).Result(); err == nil && n > 0 {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out"})
				return
			}
		}
		c.Set("userID", claims.UserID)    // Store userID in context
		c.Set("sessionToken", tokenStr)   // Store raw token for logout revocation
		c.Next()                          // Proceed to the next handler
	}
}

// RevokeToken marks a session token as logged out until it would expire anyway
func RevokeToken(ctx context.Context, rdb *redis.Client, tokenStr string) error {
	if rdb == nil {
		return nil // No revocation store configured
	}
	return rdb.Set(ctx, revokedKeyPrefix+tokenStr, "1", utils.SessionTTL).Err()
}
