package v1

import (
	"net/http"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC       domain.ProfileUsecase
	DirectoryUC     domain.DirectoryUsecase
	TalentMapUC     domain.TalentMapUsecase
	CollaborationUC domain.CollaborationUsecase
	VerificationUC  domain.VerificationUsecase
	HealthUC        domain.HealthUsecase
	JWKSProvider    *auth.Provider
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares. CORS must run first so error replies carry
	// the headers too.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.SecurityHeadersMiddleware())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		if status["status"] != "ok" {
			response.Error(c, http.StatusServiceUnavailable, "Service degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login and signup get a stricter, fail-closed limit
	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(
		deps.Config.RateLimitAuthThreshold, window)))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.ProfileUC))
	{
		NewAuthHandler(public, protected, deps.ProfileUC, deps.Config)
		NewProfileHandler(protected, deps.ProfileUC)
		NewDirectoryHandler(protected, deps.DirectoryUC)
		NewTalentMapHandler(protected, deps.TalentMapUC)
		NewCollaborationHandler(protected, deps.CollaborationUC)
		NewAdminHandler(protected, deps.VerificationUC)
	}

	return r
}
