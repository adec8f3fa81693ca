package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/todo/handlers"
	"github.com/gogotex/todo/internal/config"
	"github.com/gogotex/todo/internal/database"
	"github.com/gogotex/todo/internal/todo/handler"
	"github.com/gogotex/todo/internal/todo/repository"
	"github.com/gogotex/todo/internal/todo/service"
	"github.com/gogotex/todo/pkg/logger"
	"github.com/gogotex/todo/pkg/metrics"
	"github.com/gogotex/todo/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoConnectAttempts = 5
	shutdownTimeout      = 10 * time.Second
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL is re-applied from config below; this covers config errors
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, client := newTodoService(ctx, cfg)
	if client != nil {
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				logger.Warnf("mongo disconnect: %v", err)
			}
		}()
	}

	r := gin.New()
	r.Use(middleware.CORS(), gin.Logger(), gin.Recovery())
	if cfg.RateLimit.Enabled {
		r.Use(rateLimiter(ctx, cfg))
	}

	if err := handler.RegisterTodoRoutes(r, svc); err != nil {
		logger.Fatalf("register todo routes: %v", err)
	}
	handlers.RegisterHealth(r, svc, startTime)
	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server running on port %s", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server failed: %v", err)
		}
	case <-ctx.Done():
		logger.Infof("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Errorf("graceful shutdown: %v", err)
		}
	}
}

// newTodoService connects to the configured store, or falls back to the
// in-memory repository when DB_STRING is empty. An unreachable store is fatal.
func newTodoService(ctx context.Context, cfg *config.Config) (*service.Service, *mongo.Client) {
	if cfg.MongoDB.URI == "" {
		logger.Warnf("DB_STRING not set; todos are kept in memory and lost on restart")
		return service.NewMemoryService(), nil
	}

	client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts, time.Second)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Infof("Connected to %s Database", cfg.MongoDB.Database)

	repo := repository.NewMongoRepo(client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection))
	ictx, cancel := context.WithTimeout(ctx, cfg.MongoDB.Timeout)
	defer cancel()
	if err := repo.EnsureIndexes(ictx); err != nil {
		logger.Warnf("%v", err)
	}
	return service.NewService(repo), client
}

// rateLimiter prefers the Redis-backed limiter when requested and Redis
// answers a ping; otherwise it uses the in-memory limiter.
func rateLimiter(ctx context.Context, cfg *config.Config) gin.HandlerFunc {
	rl := cfg.RateLimit
	if rl.UseRedis && cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := rc.Ping(pctx).Err()
		if err == nil {
			logger.Infof("rate limiter: redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
			return middleware.RedisRateLimitMiddleware(rc, rl.RPS, rl.Burst, time.Duration(rl.WindowSeconds)*time.Second)
		}
		logger.Warnf("failed to connect to Redis (%s:%s), using in-memory rate limiter: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		_ = rc.Close()
	}
	logger.Infof("rate limiter: in-memory %.2f rps, burst %d", rl.RPS, rl.Burst)
	return middleware.RateLimitMiddleware(rl.RPS, rl.Burst)
}
