package main

import (
	"context"                              // context package is needed for Redis operations
	"log"                                  // log package is needed for logging
	"waitlist_backend/internal/api"        // Custom package for API handlers
	"waitlist_backend/internal/config"     // Custom package for configuration
	"waitlist_backend/internal/db"         // Custom package for database access
	"waitlist_backend/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Create tables if absent (blunt create-all; real schema evolution
	// belongs in migration tooling)
	if err := db.AutoMigrate(gormDB); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	// Setup Redis client when an address is configured; without one the
	// listing cache is disabled and every request hits the database
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Allow cross-origin requests from the configured origins
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Liveness routes
	r.GET("/", api.RootHandler())         // Root greeting endpoint
	r.GET("/health", api.HealthHandler()) // Health check endpoint

	// User routes
	userGroup := r.Group("/api/users")
	userGroup.POST("", api.CreateUserHandler(gormDB, redisClient))       // Create user endpoint
	userGroup.GET("", api.ListUsersHandler(gormDB, redisClient))         // List users endpoint
	userGroup.GET("/:id", api.GetUserHandler(gormDB))                    // Get user endpoint
	userGroup.DELETE("/:id", api.DeleteUserHandler(gormDB, redisClient)) // Delete user endpoint

	// Waitlist routes
	waitlistGroup := r.Group("/api/waitlist")
	waitlistGroup.POST("", api.CreateSignupHandler(gormDB, redisClient)) // Signup endpoint
	waitlistGroup.GET("/stats", api.StatsHandler(gormDB))                // Stats endpoint
	waitlistGroup.GET("", api.ListSignupsHandler(gormDB, redisClient))   // List signups endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
