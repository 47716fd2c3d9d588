package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/alumni-advisor/config"
	"github.com/yoockh/alumni-advisor/internal/api/handlers"
	"github.com/yoockh/alumni-advisor/internal/api/middleware"
	"github.com/yoockh/alumni-advisor/internal/api/routes"
	"github.com/yoockh/alumni-advisor/internal/logger"
	"github.com/yoockh/alumni-advisor/internal/ratelimit"
	mongorepo "github.com/yoockh/alumni-advisor/internal/repositories/mongo"
	pgrepo "github.com/yoockh/alumni-advisor/internal/repositories/postgres"
	"github.com/yoockh/alumni-advisor/internal/services"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	l := logger.New(cfg.LogLevel)

	// PostgreSQL
	db, err := config.InitPostgres(cfg)
	if err != nil {
		l.WithError(err).Fatal("PostgreSQL init error")
	}
	l.Info("PostgreSQL connected")

	// LLM
	ctx := context.Background()
	provider, err := config.InitLLM(ctx, cfg)
	if err != nil {
		l.WithError(err).Fatal("LLM init error")
	}
	defer provider.Close()
	l.WithFields(logrus.Fields{"provider": cfg.LLMProvider, "model": cfg.LLMModel}).Info("LLM ready")

	// MongoDB (optional advisory log)
	var logs services.AdvisoryLogger
	if cfg.MongoURI != "" {
		client, mdb, err := config.InitMongo(cfg)
		if err != nil {
			l.WithError(err).Fatal("MongoDB init error")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		if err := config.EnsureMongoIndexes(mdb); err != nil {
			l.WithError(err).Warn("MongoDB index bootstrap failed")
		}
		logs = mongorepo.NewAdvisoryLogRepo(mdb, cfg.AdvisoryLogTTL)
		l.Info("MongoDB connected, advisory log enabled")
	} else {
		l.Info("MONGO_URI not set, advisory log disabled")
	}

	// Redis (rate limit), in-process fallback; 0 disables limiting
	var limiter ratelimit.Limiter
	switch {
	case cfg.RateLimitPerMinute <= 0:
		l.Info("RATE_LIMIT_PER_MINUTE is 0, rate limit disabled")
	case cfg.RedisAddr != "":
		rdb, err := config.InitRedis(cfg)
		if err != nil {
			l.WithError(err).Fatal("Redis init error")
		}
		defer rdb.Close()
		limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		l.WithField("per_minute", cfg.RateLimitPerMinute).Info("Redis connected, rate limit enabled")
	default:
		limiter = ratelimit.NewLocalLimiter(cfg.RateLimitPerMinute, time.Minute)
		l.WithField("per_minute", cfg.RateLimitPerMinute).Info("Redis not set, using in-process rate limit")
	}

	store := pgrepo.NewAlumniRepo(db)
	advisory := services.NewAdvisoryService(store, provider, logs, services.GenerationOptions{
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	}, l)
	profiles := services.NewProfileService(store)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	deps := routes.Deps{
		Advisory: handlers.NewAdvisoryHandler(advisory),
		Profile:  handlers.NewProfileHandler(profiles),
	}
	if limiter != nil {
		deps.RateLimit = middleware.RateLimit(limiter, l)
	}
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		l.WithField("port", cfg.Port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.WithError(err).Error("shutdown error")
	}
	l.Info("server stopped")
}
