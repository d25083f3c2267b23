package app

import (
	"net/http"

	"ssms/internal/audit"
	"ssms/internal/config"
	"ssms/internal/database"
	"ssms/internal/messaging/kafka"
	"ssms/internal/middleware"
	"ssms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// App holds what the server needs after routes are registered.
type App struct {
	Audit   audit.Logger
	closers []func() error
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Named("app").Warn("close failed", zap.Error(err))
		}
	}
}

func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")
	a := &App{}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, sqlDB.Close)
	log.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(sqlDB); err != nil {
			a.Close()
			return nil, err
		}
		log.Info("migrations applied")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, rdb.Close)
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, code cache and idempotency disabled")
	}

	a.Audit = audit.Multi(
		audit.NewStdoutLogger(logger),
		audit.NewOutboxLogger(kafka.NewOutboxRepository(sqlDB), cfg.Kafka.AuditTopic, logger),
	)

	router.Use(
		middleware.ContextLogger(logger),
		middleware.Metrics(),
		middleware.RateLimitByIP(rate.Limit(cfg.Auth.RateLimitPerSec), cfg.Auth.RateLimitBurst),
	)

	router.GET("/healthz", func(c *gin.Context) {
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.Auth.JWTSecret),
		middleware.RateLimitByUser(rate.Limit(cfg.Auth.RateLimitPerSec), cfg.Auth.RateLimitBurst),
		middleware.Idempotency(rdb, cfg.Redis.IdempotencyTTL),
	)

	if err := registerModules(api, sqlDB, gormDB, rdb, a.Audit, cfg, logger); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}
