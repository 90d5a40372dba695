package v1

import (
	"net/http"
	"time"

	"recruitpro-backend/config"
	"recruitpro-backend/internal/delivery/http/middleware"
	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/internal/usecase"
	"recruitpro-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	PipelineUC  domain.PipelineUsecase
	IngestUC    domain.IngestUsecase
	CampaignUC  domain.CampaignUsecase
	InterviewUC domain.InterviewUsecase
	SourcingUC  domain.SourcingUsecase
	ActivityUC  usecase.ActivityUsecase
	HealthUC    usecase.HealthUsecase
	Tokens      *auth.TokenManager
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	publicLimit := middleware.RateLimitMiddleware(
		middleware.PublicRateLimitConfig(deps.Config.RateLimitPublicThreshold, window))
	loginLimit := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, loginLimit)
		NewJobHandler(v1, protected, deps.JobUC)
		NewCandidateHandler(protected, deps.PipelineUC)
		NewUploadHandler(protected, deps.IngestUC)
		NewCampaignHandler(protected, deps.CampaignUC)
		NewInterviewHandler(v1, protected, deps.InterviewUC, publicLimit)
		NewSourcingHandler(protected, deps.SourcingUC)
		NewActivityHandler(protected, deps.ActivityUC)
		NewExportHandler(protected, deps.PipelineUC, deps.JobUC)
	}

	return r
}
