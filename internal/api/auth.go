package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error comparison
	"net/http" // HTTP status codes

	"finance_tracker/internal/auth"       // Authentication adapter
	"finance_tracker/internal/middleware" // Token revocation
	"finance_tracker/internal/utils"      // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"golang.org/x/crypto/bcrypt"   // Password hashing
	"gorm.io/gorm"                 // GORM ORM library
)

// LoginRequest carries the submitted credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse carries the issued session token
type AuthResponse struct {
	Token string `json:"token"` // Session token
}

// LoginHandler authenticates a user and establishes a token session.
// Every credential failure gets the same response so callers cannot
// tell an unknown username from a wrong password.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		principal, err := auth.LoadByUsername(db, req.Username) // Load the principal
		if err != nil {
			if !errors.Is(err, auth.ErrUserNotFound) {
				// Storage failures are logged but still answered uniformly
				logrus.WithField("error", err.Error()).Error("Failed to load principal")
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(principal.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Disabled accounts cannot establish a session
		if !principal.Enabled {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Issue the session token
		token, err := utils.GenerateJWT(principal.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log successful login
		logrus.WithFields(logrus.Fields{
			"user_id":   principal.ID,        // Account identifier
			"username":  principal.Username,  // Login name
			"authority": principal.Authority, // Granted authority
		}).Info("User logged in")
		c.JSON(http.StatusOK, AuthResponse{Token: token}) // Return the token
	}
}

// LoginViewHandler is the minimal login view the logout flow lands on
func LoginViewHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The logout indicator is present after a redirect from /logout
		if _, loggedOut := c.GetQuery("logout"); loggedOut {
			c.JSON(http.StatusOK, gin.H{"message": "You have been logged out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Please log in"})
	}
}

// LogoutHandler revokes the current session token and redirects to the
// login view with a logout indicator
func LogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The session middleware stored the raw token earlier
		if token, exists := c.Get("sessionToken"); exists {
			if err := middleware.RevokeToken(context.Background(), rdb, token.(string)); err != nil {
				logrus.WithField("error", err.Error()).Error("Failed to revoke session token")
			}
		}
		c.Redirect(http.StatusSeeOther, "/login?logout") // Back to the login view
	}
}
