package api

import (
	"context"                          // Context for Redis operations
	"errors"                           // Sentinel error matching
	"net/http"                         // HTTP status codes
	"strconv"                          // String conversion
	"time"                             // Time durations and window cutoffs
	"waitlist_backend/internal/domain" // Importing domain models
	"waitlist_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// Default page size for the signup listing
const defaultSignupLimit = 100

// CreateSignupRequest represents a waitlist signup request
type CreateSignupRequest struct {
	Email         string   `json:"email" binding:"required,max=255"`           // Email must be provided, at most 255 chars
	Source        *string  `json:"source" binding:"omitempty,max=50"`          // Optional source, at most 50 chars
	GamePlayed    *bool    `json:"game_played"`                                // Whether the visitor played the demo game
	FinalBankroll *float64 `json:"final_bankroll"`                             // Bankroll at the end of the game session
	TotalBets     *int     `json:"total_bets" binding:"omitempty,gte=0"`       // Number of bets placed
	WinRate       *float64 `json:"win_rate" binding:"omitempty,gte=0,lte=100"` // Win percentage, 0-100
}

// WaitlistStatsResponse represents aggregate signup counts
type WaitlistStatsResponse struct {
	TotalSignups     int64 `json:"total_signups"`      // Count of all signups
	RecentSignups24h int64 `json:"recent_signups_24h"` // Signups in the last 24 hours
	RecentSignups7d  int64 `json:"recent_signups_7d"`  // Signups in the last 7 days
}

// signupListCacheKey builds the cache key for one page of the signup listing
func signupListCacheKey(skip, limit int) string {
	return "waitlist:list:skip:" + strconv.Itoa(skip) + ":limit:" + strconv.Itoa(limit)
}

// invalidateSignupListCache drops cached listing pages after a write
// (simple version: delete the first 5 default-size pages)
func invalidateSignupListCache(ctx context.Context, rdb *redis.Client) {
	for i := 0; i < 5; i++ {
		_ = utils.DeleteCache(ctx, rdb, signupListCacheKey(i*defaultSignupLimit, defaultSignupLimit))
	}
}

// CreateSignupHandler registers a new waitlist signup, rejecting duplicate emails
func CreateSignupHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateSignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Check if email is already registered, for a friendly rejection
		var existing domain.WaitlistSignup
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			// If a row already exists, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered on waitlist"})
			return
		}
		// Build the new signup with defaults for omitted fields
		signup := domain.WaitlistSignup{
			Email:         req.Email,         // Email address
			Source:        "landing_page",    // Default source
			FinalBankroll: req.FinalBankroll, // Game telemetry
			TotalBets:     req.TotalBets,     // Game telemetry
			WinRate:       req.WinRate,       // Game telemetry
		}
		if req.Source != nil {
			signup.Source = *req.Source // Caller-supplied source
		}
		if req.GamePlayed != nil {
			signup.GamePlayed = *req.GamePlayed // Caller-supplied flag
		}
		// Insert the row
		if err := db.Create(&signup).Error; err != nil {
			// A concurrent request with the same email can slip past the
			// pre-check; the unique constraint still makes it a duplicate
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered on waitlist"})
				return
			}
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"email": req.Email,   // Requested email
				"error": err.Error(), // Error message
			}).Error("Failed to create waitlist signup") // Log creation failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create signup"})
			return
		}
		// Log successful signup
		logrus.WithFields(logrus.Fields{
			"signup_id": signup.ID,                       // Signup ID
			"email":     signup.Email,                    // Email address
			"source":    signup.Source,                   // Signup source
			"timestamp": time.Now().Format(time.RFC3339), // Current timestamp
		}).Info("Waitlist signup created") // Log signup creation
		// Invalidate cached listing pages
		invalidateSignupListCache(context.Background(), rdb)
		c.JSON(http.StatusCreated, signup) // Return the created signup
	}
}

// ListSignupsHandler returns waitlist signups, newest first, paginated via skip/limit
func ListSignupsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip := 0                   // Default offset
		limit := defaultSignupLimit // Default page size
		// If skip exists in query
		if s := c.Query("skip"); s != "" {
			// Convert skip to integer
			if v, err := strconv.Atoi(s); err == nil && v >= 0 {
				skip = v // Set skip if valid
			}
		}
		// If limit exists in query
		if l := c.Query("limit"); l != "" {
			// Convert limit to integer
			if v, err := strconv.Atoi(l); err == nil && v >= 0 {
				limit = v // Set limit if valid
			}
		}
		ctx := context.Background()                 // Context for Redis operations
		cacheKey := signupListCacheKey(skip, limit) // Cache key for this page
		var signups []domain.WaitlistSignup         // Slice to hold signups
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, cacheKey, &signups)
		if err == nil && found {
			c.JSON(http.StatusOK, signups) // Return cached signups
			return
		}
		// Fetch the page from the DB, newest first
		if err := db.Order("created_at desc").
			Offset(skip).
			Limit(limit).
			Find(&signups).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signups"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, signups, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, signups)                                  // Return the page
	}
}

// StatsHandler returns aggregate signup counts over fixed time windows.
// The three counts are computed fresh on every request, never cached.
func StatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats WaitlistStatsResponse // Response struct
		// Count all signups
		if err := db.Model(&domain.WaitlistSignup{}).
			Count(&stats.TotalSignups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		// Count signups in the last 24 hours
		dayAgo := time.Now().Add(-24 * time.Hour)
		if err := db.Model(&domain.WaitlistSignup{}).
			Where("created_at >= ?", dayAgo).
			Count(&stats.RecentSignups24h).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		// Count signups in the last 7 days
		weekAgo := time.Now().AddDate(0, 0, -7)
		if err := db.Model(&domain.WaitlistSignup{}).
			Where("created_at >= ?", weekAgo).
			Count(&stats.RecentSignups7d).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats) // Return the aggregates
	}
}
