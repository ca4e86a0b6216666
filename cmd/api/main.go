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

	"go-hr-website/config"
	"go-hr-website/internal/delivery/http/middleware"
	"go-hr-website/internal/delivery/http/web"
	"go-hr-website/internal/repository/careerapi"
	"go-hr-website/internal/usecase"
	"go-hr-website/pkg/email"
	"go-hr-website/pkg/logger"
	"go-hr-website/pkg/redis"
	"go-hr-website/pkg/security"
	"go-hr-website/pkg/security/antivirus"
	"go-hr-website/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting HR website", "port", cfg.Port, "career_api", cfg.CareerAPIURL)

	secLog := security.NewSecurityLogger("go-hr-website", cfg.GinMode)
	defer secLog.Sync()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.Connect(rootCtx, redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, rate limiting is per instance")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting is per instance", "error", err)
	default:
		defer redisClient.Close()
	}

	// 4. Setup Career Flow
	validate := validation.New()
	careerAPI := careerapi.NewClient(cfg.CareerAPIURL, nil)
	scanner := antivirus.FromAddress(cfg.ClamAVAddress, 30*time.Second)
	inspector := security.NewResumeInspector(cfg.ResumeMaxBytes, scanner, secLog)

	sessions := usecase.NewSessionStore(cfg.SessionTTL,
		usecase.FormFactory(validate, careerAPI, usecase.RealClock{}, cfg.NotificationTimeout))
	go sessions.Run(rootCtx, time.Minute)

	careerUC := usecase.NewCareerUsecase(sessions, inspector, secLog)

	// 5. Setup Contact Flow
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}
	contactUC := usecase.NewContactUsecase(emailService)

	// 6. Setup Rate Limiters
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	careerLimiter := middleware.NewRateLimiter(
		middleware.UploadRateLimitConfig(cfg.RateLimitUploadsPerWindow, window), redisClient, secLog)
	contactLimiter := middleware.NewRateLimiter(
		middleware.ContactRateLimitConfig(cfg.RateLimitContactsPerWindow, window), redisClient, secLog)
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for {
			select {
			case <-rootCtx.Done():
				return
			case <-ticker.C:
				careerLimiter.Cleanup()
				contactLimiter.Cleanup()
			}
		}
	}()

	healthUC := usecase.NewHealthUsecase(sessions, redisClient, scanner.Name(), contactUC.Available)

	// 7. Setup Router
	router := web.NewRouter(web.RouterDeps{
		CareerUC:       careerUC,
		ContactUC:      contactUC,
		HealthUC:       healthUC,
		CareerLimiter:  careerLimiter,
		ContactLimiter: contactLimiter,
		SecurityLogger: secLog,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	stop()

	logger.Log.Info("Server exiting")
}
