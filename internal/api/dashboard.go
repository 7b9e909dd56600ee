package api

import (
	"net/http" // HTTP status codes

	"finance_tracker/internal/service" // Business services

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardHandler renders the session user's dashboard: their username
// together with the full transaction list, newest first
func DashboardHandler(userSvc *service.UserService, txnSvc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := userSvc.GetByID(userID.(uint)) // Resolve the session principal
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		txns, err := txnSvc.GetAll() // Full transaction list
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// Render the dashboard payload
		c.JSON(http.StatusOK, gin.H{
			"username":     user.Username, // Session user's name
			"transactions": txns,          // All transactions, newest first
		})
	}
}
