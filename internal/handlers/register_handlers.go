package handlers

import (
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker_api/cmd/docs"
	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/middleware"
	"github.com/SscSPs/expense_tracker_api/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// NewRouter builds the engine with the global middleware chain and all routes.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	loginLimiter *limiter.Limiter,
) (*gin.Engine, error) {
	r := gin.New()

	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.JSONRecovery())
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
	}
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.BodyLimit(cfg.RequestBodyLimit))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	RegisterRoutes(r, cfg, services, health, loginLimiter)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)
	r.GET("/health/ready", readinessHandler(health))
	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services, loginLimiter)

	authenticated := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName))
	registerExpenseRoutes(authenticated, services.Expense)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
