package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"waitlist_backend/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(gormDB), "migrate schema")
	return gormDB
}

// newTestRouter wires the full route table the way cmd/server does.
// A nil redis client disables the listing cache.
func newTestRouter(gormDB *gorm.DB, rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", RootHandler())
	r.GET("/health", HealthHandler())

	userGroup := r.Group("/api/users")
	userGroup.POST("", CreateUserHandler(gormDB, rdb))
	userGroup.GET("", ListUsersHandler(gormDB, rdb))
	userGroup.GET("/:id", GetUserHandler(gormDB))
	userGroup.DELETE("/:id", DeleteUserHandler(gormDB, rdb))

	waitlistGroup := r.Group("/api/waitlist")
	waitlistGroup.POST("", CreateSignupHandler(gormDB, rdb))
	waitlistGroup.GET("/stats", StatsHandler(gormDB))
	waitlistGroup.GET("", ListSignupsHandler(gormDB, rdb))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "encode request body")
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), "decode response body: %s", rec.Body.String())
}
