package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error comparison
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"finance_tracker/internal/domain"  // Importing domain models
	"finance_tracker/internal/service" // Business services
	"finance_tracker/internal/utils"   // Cache utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// allUsersKey caches the full user list
const allUsersKey = "users:all"

// CreateUserHandler creates a new user account
func CreateUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := svc.Create(&user) // Hash the password and persist
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // Requested username
				"error":    err.Error(),   // Error message
			}).Error("Failed to create user") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"id":       created.ID,       // Database identifier
			"username": created.Username, // Username
			"role":     created.Role,     // Assigned role
		}).Info("User created")
		_ = utils.DeleteCache(context.Background(), rdb, allUsersKey) // Invalidate list cache
		c.JSON(http.StatusCreated, created)                           // Return the stored record
	}
}

// GetAllUsersHandler returns every user account
func GetAllUsersHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.User
		// Try to serve the list from cache
		if found, err := utils.GetCache(ctx, rdb, allUsersKey, &cached); err == nil && found {
			if len(cached) == 0 {
				c.Status(http.StatusNoContent) // Empty list
				return
			}
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		users, err := svc.GetAll() // Fetch from the database
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		_ = utils.SetCache(ctx, rdb, allUsersKey, users, cacheTTL) // Cache the list
		if len(users) == 0 {
			c.Status(http.StatusNoContent) // Empty list
			return
		}
		c.JSON(http.StatusOK, users) // Return the list
	}
}

// GetUserByIDHandler returns one user by database identifier
func GetUserByIDHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		user, err := svc.GetByID(uint(id)) // Fetch the record
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the record
	}
}

// GetUserByUsernameHandler returns one user by username
func GetUserByUsernameHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetByUsername(c.Param("username")) // Fetch the record
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the record
	}
}

// UserExistsHandler reports whether a username is taken
func UserExistsHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := svc.ExistsByUsername(c.Param("username")) // Presence check
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check username"})
			return
		}
		c.JSON(http.StatusOK, exists) // Boolean body
	}
}

// UpdateUserHandler overwrites the mutable fields of a user account
func UpdateUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		var details domain.User // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := svc.Update(uint(id), &details) // Apply the update
		if err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"id":    id,          // Target identifier
				"error": err.Error(), // Error message
			}).Error("Failed to update user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, allUsersKey) // Invalidate list cache
		c.JSON(http.StatusOK, updated)                                // Return the updated record
	}
}

// ToggleUserStatusHandler flips the enabled flag of a user account
func ToggleUserStatusHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		updated, err := svc.ToggleStatus(uint(id)) // Flip the flag
		if err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle user status"})
			return
		}
		// Log the status change
		logrus.WithFields(logrus.Fields{
			"id":      updated.ID,      // Target identifier
			"enabled": updated.Enabled, // New enabled value
		}).Info("User status toggled")
		_ = utils.DeleteCache(context.Background(), rdb, allUsersKey) // Invalidate list cache
		c.JSON(http.StatusOK, updated)                                // Return the updated record
	}
}

// DeleteUserHandler removes a user account
func DeleteUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"id":    id,          // Target identifier
				"error": err.Error(), // Error message
			}).Error("Failed to delete user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, allUsersKey) // Invalidate list cache
		c.Status(http.StatusNoContent)                                // Deleted
	}
}
