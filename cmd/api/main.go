package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitpro-backend/config"
	_ "recruitpro-backend/docs" // Important for Swagger
	"recruitpro-backend/internal/ai"
	v1 "recruitpro-backend/internal/delivery/http/v1"
	"recruitpro-backend/internal/repository/postgres"
	"recruitpro-backend/internal/usecase"
	"recruitpro-backend/pkg/auth"
	"recruitpro-backend/pkg/database"
	"recruitpro-backend/pkg/email"
	"recruitpro-backend/pkg/logger"
	"recruitpro-backend/pkg/redis"
)

// @title           RecruitPro Backend API
// @version         1.0
// @description     AI-assisted recruiting dashboard backend using Clean Architecture.
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

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting recruitpro backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (best-effort; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	activityRepo := postgres.NewActivityRepository(dbPool)
	campaignRepo := postgres.NewCampaignLogRepository(dbPool)

	// 6. Setup AI adapter. A missing API key yields a nil generator and
	// the adapter degrades every operation deterministically.
	var gen ai.Generator
	if cfg.GeminiAPIKey != "" {
		gen = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	}
	analyzer := ai.NewAdapter(gen, time.Duration(cfg.AITimeoutSeconds)*time.Second)

	// 7. Setup Email Service
	emailService := email.NewSMTPService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - campaigns will fail to send")
	}

	// 8. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, 24*time.Hour)
	authUC := usecase.NewAuthUsecase(tokens, cfg.AdminEmail, cfg.AdminName, cfg.AdminPasswordHash)
	jobUC := usecase.NewJobUsecase(jobRepo, activityRepo, analyzer)
	pipelineUC := usecase.NewPipelineUsecase(candidateRepo, jobRepo, activityRepo, analyzer, cfg.AnalysisWorkers)
	ingestUC := usecase.NewIngestUsecase(candidateRepo, activityRepo, cfg.MaxRetainedFileKB)
	campaignUC := usecase.NewCampaignUsecase(candidateRepo, jobRepo, campaignRepo, activityRepo, analyzer, emailService, cfg.FrontendURL)
	interviewUC := usecase.NewInterviewUsecase(candidateRepo, jobRepo, activityRepo)
	sourcingUC := usecase.NewSourcingUsecase(candidateRepo, activityRepo)
	activityUC := usecase.NewActivityUsecase(activityRepo)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		PipelineUC:  pipelineUC,
		IngestUC:    ingestUC,
		CampaignUC:  campaignUC,
		InterviewUC: interviewUC,
		SourcingUC:  sourcingUC,
		ActivityUC:  activityUC,
		HealthUC:    healthUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 10. Start Server
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
