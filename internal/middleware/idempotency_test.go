package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/middleware"
)

const idempTestUserID = "7c2f1a9b-4d3e-4f5a-8b6c-9d0e1f2a3b4c"

func setupIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, rdbMock := redismock.NewClientMock()
	t.Cleanup(func() { rdb.Close() })

	calls := 0
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", idempTestUserID)
	})
	router.POST("/shifts/scan", middleware.Idempotency(rdb), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router, rdbMock, &calls
}

func TestIdempotency(t *testing.T) {
	cacheKey := "idemp:/shifts/scan:" + idempTestUserID + ":key-1"
	lockKey := cacheKey + ":lock"

	t.Run("First Request Runs Handler And Caches Response", func(t *testing.T) {
		router, rdbMock, calls := setupIdempotencyRouter(t)

		rdbMock.ExpectGet(cacheKey).RedisNil()
		rdbMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		rdbMock.ExpectSet(cacheKey, []byte(`{"status":201,"body":{"ok":true}}`), 24*time.Hour).SetVal("OK")
		rdbMock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/shifts/scan", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, rdbMock.ExpectationsWereMet())
	})

	t.Run("Retry Replays Cached Response Without Handler", func(t *testing.T) {
		router, rdbMock, calls := setupIdempotencyRouter(t)

		rdbMock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		req := httptest.NewRequest(http.MethodPost, "/shifts/scan", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, *calls)
		assert.NoError(t, rdbMock.ExpectationsWereMet())
	})

	t.Run("In-Flight Duplicate Rejected", func(t *testing.T) {
		router, rdbMock, calls := setupIdempotencyRouter(t)

		rdbMock.ExpectGet(cacheKey).RedisNil()
		rdbMock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/shifts/scan", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.Equal(t, 0, *calls)
		assert.NoError(t, rdbMock.ExpectationsWereMet())
	})

	t.Run("No Key Passes Through", func(t *testing.T) {
		router, rdbMock, calls := setupIdempotencyRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/shifts/scan", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, rdbMock.ExpectationsWereMet())
	})
}
