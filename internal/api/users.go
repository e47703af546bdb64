package api

import (
	"context"                          // Context for Redis operations
	"errors"                           // Sentinel error matching
	"net/http"                         // HTTP status codes
	"strconv"                          // String conversion
	"time"                             // Time durations
	"waitlist_backend/internal/domain" // Importing domain models
	"waitlist_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Cache key for the full user listing
const usersListCacheKey = "users:all"

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required"` // Email must be provided
	FullName *string `json:"full_name"`                // Optional display name
}

// CreateUserHandler creates a new user
func CreateUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the user; the unique index on email is the only uniqueness check
		user := domain.User{Email: req.Email, FullName: req.FullName}
		if err := db.Create(&user).Error; err != nil {
			// A duplicate email violates the unique constraint
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Failed to create user") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // User ID
			"email":     user.Email,                      // Email address
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User created") // Log user creation
		// Invalidate the user listing cache
		_ = utils.DeleteCache(context.Background(), rdb, usersListCacheKey)
		c.JSON(http.StatusOK, user) // Return the created user
	}
}

// ListUsersHandler returns all users
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var users []domain.User     // Slice to hold users
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, usersListCacheKey, &users)
		if err == nil && found {
			c.JSON(http.StatusOK, users) // Return cached users
			return
		}
		// If not in cache, fetch from DB
		if err := db.Find(&users).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		_ = utils.SetCache(ctx, rdb, usersListCacheKey, users, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, users)                                           // Return all users
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the id path parameter
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			// If the id is not a positive integer, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, id).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user) // Return the user
	}
}

// DeleteUserHandler deletes a user by id
func DeleteUserHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the id path parameter
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id < 1 {
			// If the id is not a positive integer, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, id).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// Remove the row
		if err := db.Delete(&user).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to delete user") // Log deletion failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,                         // User ID
			"email":     user.Email,                      // Email address
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("User deleted") // Log user deletion
		// Invalidate the user listing cache
		_ = utils.DeleteCache(context.Background(), rdb, usersListCacheKey)
		c.JSON(http.StatusOK, gin.H{"deleted": true}) // Return confirmation
	}
}
