package api

import (
	"finance_tracker/internal/middleware" // Session and admin middleware
	"finance_tracker/internal/service"    // Business services

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every endpoint onto a gin engine. A nil Redis client
// disables caching and token revocation but leaves all routes working.
func NewRouter(db *gorm.DB, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.Default() // Gin router instance

	userSvc := service.NewUserService(db)        // User account service
	txnSvc := service.NewTransactionService(db)  // Transaction service

	// Login view and credential submission
	r.GET("/login", LoginViewHandler())
	r.POST("/login", LoginHandler(db, jwtSecret))

	// Everything below requires an authenticated session
	session := middleware.JWTAuthMiddleware(jwtSecret, rdb)

	// Session pages
	r.GET("/dashboard", session, DashboardHandler(userSvc, txnSvc)) // Dashboard page
	r.GET("/logout", session, LogoutHandler(rdb))                   // Logout and redirect

	// Transaction routes (any authenticated user)
	txnGroup := r.Group("/api/transactions")
	txnGroup.Use(session)
	txnGroup.POST("", CreateTransactionHandler(txnSvc, rdb))                      // Create endpoint
	txnGroup.GET("", GetAllTransactionsHandler(txnSvc, rdb))                      // List-all endpoint
	txnGroup.GET("/:id", GetTransactionByIDHandler(txnSvc))                       // Get-by-id endpoint
	txnGroup.GET("/status/:status", GetTransactionsByStatusHandler(txnSvc))       // Filter-by-status endpoint
	txnGroup.GET("/type/:type", GetTransactionsByTypeHandler(txnSvc))             // Filter-by-type endpoint
	txnGroup.GET("/category/:category", GetTransactionsByCategoryHandler(txnSvc)) // Filter-by-category endpoint
	txnGroup.PUT("/:id", UpdateTransactionHandler(txnSvc, rdb))                   // Full update endpoint
	txnGroup.PATCH("/:id/status", UpdateTransactionStatusHandler(txnSvc, rdb))    // Status-only update endpoint
	txnGroup.DELETE("/:id", DeleteTransactionHandler(txnSvc, rdb))                // Delete endpoint

	// User routes (admin only)
	userGroup := r.Group("/api/users")
	userGroup.Use(session, middleware.AdminOnlyMiddleware(db))
	userGroup.POST("", CreateUserHandler(userSvc, rdb))                        // Create endpoint
	userGroup.GET("", GetAllUsersHandler(userSvc, rdb))                        // List-all endpoint
	userGroup.GET("/:id", GetUserByIDHandler(userSvc))                         // Get-by-id endpoint
	userGroup.GET("/username/:username", GetUserByUsernameHandler(userSvc))    // Get-by-username endpoint
	userGroup.GET("/exists/:username", UserExistsHandler(userSvc))             // Username existence check
	userGroup.PUT("/:id", UpdateUserHandler(userSvc, rdb))                     // Full update endpoint
	userGroup.PATCH("/:id/toggle-status", ToggleUserStatusHandler(userSvc, rdb)) // Status toggle endpoint
	userGroup.DELETE("/:id", DeleteUserHandler(userSvc, rdb))                  // Delete endpoint

	return r
}
