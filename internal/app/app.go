package app

import (
	"context"
	"net/http"

	"go-hrms/internal/config"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/audit"
	"go-hrms/internal/shared/connection"
	"go-hrms/internal/shared/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App owns the optional infrastructure clients. Close releases them.
type App struct {
	Router *gin.Engine
	Audit  audit.Logger

	rdb     *redis.Client
	modules *modules
	closers []func() error
}

// BuildApp connects the optional infrastructure and registers every route.
func BuildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}
	a := &App{Audit: audit.NewZapLogger(logger)}

	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.Redis.Addr, 5)
		if err != nil {
			return nil, err
		}
		a.rdb = rdb
		a.closers = append(a.closers, rdb.Close)
		logger.Info("redis connection established")
	} else {
		logger.Info("REDIS_ADDR not set, using in-memory sessions and no caching")
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	if cfg.Metrics {
		router.Use(middleware.Metrics())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	m, err := registerModules(router, cfg, a.rdb, a.Audit, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.modules = m
	a.Router = router
	return a, nil
}

// Close releases clients in reverse order of acquisition.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
