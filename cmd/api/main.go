package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/ai/gemini"
	v1 "go-jobportal-backend/internal/delivery/http/v1"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/repository/postgres"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/audit"
	"go-jobportal-backend/pkg/database"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Portal Backend API
// @version         1.0
// @description     Job portal backend with AI-assisted resume analysis, using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port)
	auditLogger := audit.Init("jobportal-backend", cfg.Environment)
	defer auditLogger.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting degrades to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}

	// 5. Setup Generative Provider (optional, AI features degrade to local fallbacks)
	var generator domain.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Warn("Generative provider init failed, AI features use local fallbacks", "error", err)
		} else {
			generator = client
		}
	} else {
		logger.Log.Warn("GEMINI_API_KEY not set, AI features use local fallbacks")
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	jobUC := usecase.NewJobUsecase(jobRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, resumeRepo)
	aiUC := usecase.NewAIUsecase(generator, resumeRepo, jobRepo, applicationRepo, logger.Log)
	dashboardUC := usecase.NewDashboardUsecase(applicationRepo, resumeRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ResumeUC:      resumeUC,
		ApplicationUC: applicationUC,
		AIUC:          aiUC,
		DashboardUC:   dashboardUC,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
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

	logger.Log.Info("Server exiting")
}
