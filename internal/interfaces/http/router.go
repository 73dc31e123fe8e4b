// Package http assembles the gin engine: repositories, use cases, handlers
// and routes.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "siloops/internal/application/auth/usecases"
	companyUsecases "siloops/internal/application/company/usecases"
	opUsecases "siloops/internal/application/operation/usecases"
	subUsecases "siloops/internal/application/subscription/usecases"
	"siloops/internal/infrastructure/auth"
	"siloops/internal/infrastructure/cache"
	"siloops/internal/infrastructure/config"
	"siloops/internal/infrastructure/plans"
	"siloops/internal/infrastructure/repository"
	"siloops/internal/interfaces/http/handlers"
	"siloops/internal/interfaces/http/middleware"
	"siloops/internal/interfaces/http/routes"
	"siloops/internal/shared/db"
	"siloops/internal/shared/logger"
)

// Router owns the assembled gin engine.
type Router struct {
	engine *gin.Engine
}

// NewRouter wires the full HTTP surface. Redis is optional; without it the
// subscription reporter runs uncached.
func NewRouter(cfg *config.Config, gdb *gorm.DB, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry, err := plans.LoadRegistry(&cfg.Subscription)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	if err != nil {
		return nil, err
	}

	// Repositories.
	subscriptionRepo := repository.NewCompanySubscriptionRepository(gdb, log)
	operationRepo := repository.NewOperationRepository(gdb, log)
	companyRepo := repository.NewCompanyRepository(gdb, log)
	userRepo := repository.NewUserRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)

	var infoCache subUsecases.SubscriptionInfoCache = subUsecases.NoopSubscriptionInfoCache{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		infoCache = cache.NewRedisSubscriptionInfoCache(redisClient, log)
		log.Infow("redis connection established")
	}

	// Use cases.
	checkLimitUC := subUsecases.NewCheckOperationLimitUseCase(subscriptionRepo, registry, log)
	incrementUC := subUsecases.NewIncrementOperationCountUseCase(subscriptionRepo, infoCache, cfg.Subscription.CycleDays, log)
	getInfoUC := subUsecases.NewGetSubscriptionInfoUseCase(subscriptionRepo, registry, infoCache, log)
	updatePlanUC := subUsecases.NewUpdateSubscriptionPlanUseCase(subscriptionRepo, registry, infoCache, log)
	listPlansUC := subUsecases.NewListPlansUseCase(registry)

	createOperationUC := opUsecases.NewCreateOperationUseCase(
		operationRepo,
		checkLimitUC,
		incrementUC,
		opUsecases.EnforcementMode(cfg.Subscription.Enforcement),
		log,
	)
	listOperationsUC := opUsecases.NewListOperationsUseCase(operationRepo, log)
	getOperationUC := opUsecases.NewGetOperationUseCase(operationRepo, log)
	deleteOperationUC := opUsecases.NewDeleteOperationUseCase(operationRepo, log)

	createCompanyUC := companyUsecases.NewCreateCompanyUseCase(companyRepo, subscriptionRepo, txManager, cfg.Subscription.CycleDays, log)
	listCompaniesUC := companyUsecases.NewListCompaniesUseCase(companyRepo, log)
	getCompanyUC := companyUsecases.NewGetCompanyUseCase(companyRepo, log)

	loginUC := authUsecases.NewLoginUseCase(userRepo, jwtService, log)
	registerUC := authUsecases.NewRegisterUserUseCase(userRepo, cfg.Auth.BcryptCost, log)

	// Handlers.
	operationHandler := handlers.NewOperationHandler(createOperationUC, listOperationsUC, getOperationUC, deleteOperationUC, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(getInfoUC, checkLimitUC, updatePlanUC, log)
	planHandler := handlers.NewPlanHandler(listPlansUC)
	companyHandler := handlers.NewCompanyHandler(createCompanyUC, listCompaniesUC, getCompanyUC, log)
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupCompanyRoutes(engine, &routes.CompanyRouteConfig{
		CompanyHandler: companyHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupOperationRoutes(engine, &routes.OperationRouteConfig{
		OperationHandler: operationHandler,
		AuthMiddleware:   authMiddleware,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		PlanHandler:         planHandler,
		AuthMiddleware:      authMiddleware,
	})

	return &Router{engine: engine}, nil
}

// Engine exposes the assembled gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
