package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/rahmadf/hcm-reg3-api/api/swagger"
	"github.com/rahmadf/hcm-reg3-api/internal/handler"
	"github.com/rahmadf/hcm-reg3-api/internal/middleware"
	"github.com/rahmadf/hcm-reg3-api/internal/models"
	"github.com/rahmadf/hcm-reg3-api/internal/repository"
	"github.com/rahmadf/hcm-reg3-api/internal/service"
	"github.com/rahmadf/hcm-reg3-api/internal/taxonomy"
	"github.com/rahmadf/hcm-reg3-api/pkg/cache"
	"github.com/rahmadf/hcm-reg3-api/pkg/config"
	"github.com/rahmadf/hcm-reg3-api/pkg/database"
	"github.com/rahmadf/hcm-reg3-api/pkg/logger"
	corsmiddleware "github.com/rahmadf/hcm-reg3-api/pkg/middleware/cors"
	reqidmiddleware "github.com/rahmadf/hcm-reg3-api/pkg/middleware/requestid"
)

// @title HCM Regional III API
// @version 1.0.0
// @description Employee mutation workflow and performance rating service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	catalog, err := taxonomy.Load(cfg.Taxonomy.Path)
	if err != nil {
		logr.Sugar().Fatalw("failed to load unit catalog", "path", cfg.Taxonomy.Path, "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Dashboard.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close() //nolint:errcheck
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, true)
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	mutationRepo := repository.NewMutationRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeSvc := service.NewEmployeeService(employeeRepo, logr)
	dashboardSvc := service.NewDashboardService(employeeRepo, mutationRepo, ratingRepo, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	mutationSvc := service.NewMutationService(mutationRepo, employeeRepo, catalog, validate, logr, dashboardSvc)
	ratingSvc := service.NewRatingService(ratingRepo, employeeRepo, validate, logr, service.RatingServiceConfig{
		EligibleUnit: cfg.Ratings.EligibleUnit,
		MinYear:      cfg.Ratings.MinYear,
	}, dashboardSvc)

	authHandler := handler.NewAuthHandler(authSvc)
	employeeHandler := handler.NewEmployeeHandler(employeeSvc)
	mutationHandler := handler.NewMutationHandler(mutationSvc)
	ratingHandler := handler.NewRatingHandler(ratingSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	authed.POST("/auth/change-password", authHandler.ChangePassword)

	authed.GET("/employees", employeeHandler.List)
	authed.GET("/employees/:perner", employeeHandler.Get)

	mutations := authed.Group("/mutations")
	mutations.GET("", mutationHandler.List)
	mutations.GET("/:perner", mutationHandler.Get)
	mutations.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleHC), mutationHandler.Create)
	mutations.PUT("/:perner", middleware.RequireRoles(models.RoleAdmin, models.RoleHC), mutationHandler.Update)
	mutations.POST("/:perner/approve", middleware.RequireRoles(models.RoleAdmin, models.RoleHC), mutationHandler.Approve)
	mutations.POST("/:perner/reject", middleware.RequireRoles(models.RoleAdmin, models.RoleHC), mutationHandler.Reject)
	mutations.DELETE("/:perner", middleware.RequireRoles(models.RoleAdmin), mutationHandler.Delete)

	ratings := authed.Group("/ratings")
	ratings.GET("", ratingHandler.Recap)
	if cfg.Exports.Enabled {
		ratings.GET("/export", ratingHandler.Export)
	}
	ratings.POST("/:perner", middleware.RequireRoles(models.RoleAdmin, models.RoleHC, models.RoleManager), ratingHandler.Create)

	if cfg.Dashboard.Enabled {
		authed.GET("/dashboard/summary", dashboardHandler.Summary)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
