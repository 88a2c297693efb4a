package v1

import (
	"net/http"
	"time"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/delivery/http/middleware"
	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ResumeUC      domain.ResumeUsecase
	ApplicationUC domain.ApplicationUsecase
	AIUC          domain.AIUsecase
	DashboardUC   domain.DashboardUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	globalLimit := middleware.DefaultRateLimitConfig()
	globalLimit.Limit = deps.Config.RateLimitGlobalThreshold
	globalLimit.Window = window

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(globalLimit))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginCfg := middleware.LoginRateLimitConfig()
	loginCfg.Limit = deps.Config.RateLimitLoginThreshold
	loginCfg.Window = window
	loginLimiter := middleware.RateLimitMiddleware(loginCfg)

	aiCfg := middleware.AIRateLimitConfig()
	aiCfg.Limit = deps.Config.RateLimitAIThreshold
	aiCfg.Window = window
	aiLimiter := middleware.RateLimitMiddleware(aiCfg)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	// Admin routes require the admin role on top of authentication
	admin := v1.Group("")
	admin.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	NewAuthHandler(v1, protected, loginLimiter, deps.AuthUC)
	NewJobHandler(v1, admin, deps.JobUC)
	NewResumeHandler(protected, deps.ResumeUC)
	NewApplicationHandler(protected, admin, deps.ApplicationUC)
	NewAIHandler(protected, aiLimiter, deps.AIUC)
	NewDashboardHandler(protected, deps.DashboardUC)

	return r
}
