package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error comparison
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"finance_tracker/internal/domain"  // Importing domain models
	"finance_tracker/internal/service" // Business services
	"finance_tracker/internal/utils"   // Cache utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// allTransactionsKey caches the full transaction list
const allTransactionsKey = "transactions:all"

// cacheTTL is how long list responses stay cached
const cacheTTL = 60 * time.Second

// CreateTransactionHandler creates a new transaction
func CreateTransactionHandler(svc *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var txn domain.Transaction // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&txn); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		created, err := svc.Create(&txn) // Persist with defaults applied
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"transaction_id": txn.TransactionID, // Business code (may be empty)
				"error":          err.Error(),       // Error message
			}).Error("Failed to create transaction") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"id":             created.ID,            // Database identifier
			"transaction_id": created.TransactionID, // Business code
			"type":           created.Type,          // Transaction type
			"status":         created.Status,        // Transaction status
		}).Info("Transaction created")
		_ = utils.DeleteCache(context.Background(), rdb, allTransactionsKey) // Invalidate list cache
		c.JSON(http.StatusCreated, created)                                  // Return the stored record
	}
}

// GetAllTransactionsHandler returns every transaction, newest first
func GetAllTransactionsHandler(svc *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Transaction
		// Try to serve the list from cache
		if found, err := utils.GetCache(ctx, rdb, allTransactionsKey, &cached); err == nil && found {
			if len(cached) == 0 {
				c.Status(http.StatusNoContent) // Empty list
				return
			}
			c.JSON(http.StatusOK, cached) // Return cached list
			return
		}
		txns, err := svc.GetAll() // Fetch from the database
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		_ = utils.SetCache(ctx, rdb, allTransactionsKey, txns, cacheTTL) // Cache the list
		if len(txns) == 0 {
			c.Status(http.StatusNoContent) // Empty list
			return
		}
		c.JSON(http.StatusOK, txns) // Return the list
	}
}

// GetTransactionByIDHandler returns one transaction by database identifier
func GetTransactionByIDHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		txn, err := svc.GetByID(uint(id)) // Fetch the record
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusOK, txn) // Return the record
	}
}

// GetTransactionsByStatusHandler returns all transactions with the given status
func GetTransactionsByStatusHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := svc.GetByStatus(domain.TxStatus(c.Param("status"))) // Filter by status
		writeTransactionList(c, txns, err)
	}
}

// GetTransactionsByTypeHandler returns all transactions with the given type
func GetTransactionsByTypeHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := svc.GetByType(domain.TxType(c.Param("type"))) // Filter by type
		writeTransactionList(c, txns, err)
	}
}

// GetTransactionsByCategoryHandler returns all transactions with the given category
func GetTransactionsByCategoryHandler(svc *service.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := svc.GetByCategory(c.Param("category")) // Filter by category
		writeTransactionList(c, txns, err)
	}
}

// writeTransactionList applies the shared list response contract:
// 500 on failure, 204 when empty, 200 with the body otherwise
func writeTransactionList(c *gin.Context, txns []domain.Transaction, err error) {
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	if len(txns) == 0 {
		c.Status(http.StatusNoContent) // Empty list
		return
	}
	c.JSON(http.StatusOK, txns) // Return the list
}

// UpdateTransactionHandler overwrites the mutable fields of a transaction
func UpdateTransactionHandler(svc *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		var details domain.Transaction // Bind JSON request to the entity
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		updated, err := svc.Update(uint(id), &details) // Apply the update
		if err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"id":    id,          // Target identifier
				"error": err.Error(), // Error message
			}).Error("Failed to update transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, allTransactionsKey) // Invalidate list cache
		c.JSON(http.StatusOK, updated)                                       // Return the updated record
	}
}

// UpdateTransactionStatusHandler overwrites only the status of a transaction
func UpdateTransactionStatusHandler(svc *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		status := c.Query("status") // Status comes as a query parameter
		if status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status parameter"})
			return
		}
		updated, err := svc.UpdateStatus(uint(id), domain.TxStatus(status)) // Apply the update
		if err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"id":     id,          // Target identifier
				"status": status,      // Requested status
				"error":  err.Error(), // Error message
			}).Error("Failed to update transaction status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction status"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, allTransactionsKey) // Invalidate list cache
		c.JSON(http.StatusOK, updated)                                       // Return the updated record
	}
}

// DeleteTransactionHandler removes a transaction
func DeleteTransactionHandler(svc *service.TransactionService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64) // Parse path identifier
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		if err := svc.Delete(uint(id)); err != nil {
			// Missing target maps to not found
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"id":    id,          // Target identifier
				"error": err.Error(), // Error message
			}).Error("Failed to delete transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
			return
		}
		_ = utils.DeleteCache(context.Background(), rdb, allTransactionsKey) // Invalidate list cache
		c.Status(http.StatusNoContent)                                       // Deleted
	}
}
