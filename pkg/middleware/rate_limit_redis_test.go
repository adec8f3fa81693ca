package middleware

import (
	"net/http"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimitMiddleware_Basic(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 1, 0, 1*time.Second)) // 1 req/window, no burst
	r.GET("/r", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// the window is keyed on wall-clock seconds; start right after a boundary
	time.Sleep(time.Until(time.Now().Truncate(time.Second).Add(time.Second)))

	require.Equal(t, http.StatusOK, hit(r, "/r", ""))
	require.Equal(t, http.StatusTooManyRequests, hit(r, "/r", ""))

	// a different client has its own counter
	require.Equal(t, http.StatusOK, hit(r, "/r", "10.1.1.1:5555"))

	// next window
	time.Sleep(1100 * time.Millisecond)
	require.Equal(t, http.StatusOK, hit(r, "/r", ""))
}

func TestRedisRateLimitMiddleware_SetsExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 5, 0, 2*time.Second))
	r.GET("/r", func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusOK, hit(r, "/r", ""))

	keys := m.Keys()
	require.Len(t, keys, 1)
	require.Equal(t, 3*time.Second, m.TTL(keys[0]))
}

func TestRedisRateLimitMiddleware_RedisDown(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr(), MaxRetries: -1})
	m.Close()

	r := gin.New()
	r.Use(RedisRateLimitMiddleware(client, 1, 0, time.Second))
	r.GET("/r", func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusInternalServerError, hit(r, "/r", ""))
}

func TestRedisRateLimitMiddleware_NilClientFallsBack(t *testing.T) {
	r := gin.New()
	r.Use(RedisRateLimitMiddleware(nil, 0.1, 1, time.Second))
	r.GET("/r", func(c *gin.Context) { c.Status(http.StatusOK) })

	require.Equal(t, http.StatusOK, hit(r, "/r", ""))
	require.Equal(t, http.StatusTooManyRequests, hit(r, "/r", ""))
}
