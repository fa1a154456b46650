package router

import (
	"time"

	"shopops/internal/config"
	"shopops/internal/handler"
	"shopops/internal/middleware"
	"shopops/internal/model"
	"shopops/internal/repository"
	"shopops/internal/service"
	"shopops/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	cashierRepo := repository.NewCashierRepository(db)
	walletRepo := repository.NewWalletRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	shopSvc := service.NewShopService(shopRepo, userRepo, rdb)
	cashierSvc := service.NewCashierService(cashierRepo, shopRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	walletSvc := service.NewWalletService(walletRepo, shopRepo, dispatcher, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	shopsH := handler.NewShopsHandler(shopSvc)
	cashiersH := handler.NewCashiersHandler(cashierSvc)
	walletH := handler.NewWalletHandler(walletSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Dashboard reads — no auth required
	r.GET("/v1/shops", shopsH.List)
	r.GET("/v1/shops/:id", shopsH.GetByID)
	r.GET("/v1/cashiers", cashiersH.List)
	r.GET("/v1/cashiers/:id", cashiersH.GetByID)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Shop registration is admin-only; other mutations need any session
		v1.POST("/shops", middleware.RequireRole(model.RoleAdmin), shopsH.Create)
		v1.PATCH("/shops/:id", shopsH.Update)
		v1.DELETE("/shops/:id", shopsH.Delete)

		v1.POST("/shops/:id/topup", walletH.TopUp)
		v1.GET("/wallet/transactions", walletH.ListTransactions)

		v1.POST("/cashiers", cashiersH.Create)
		v1.PATCH("/cashiers/:id", cashiersH.Update)
		v1.DELETE("/cashiers/:id", cashiersH.Delete)

		v1.GET("/users/managers", usersH.ListManagers)

		users := v1.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivate", usersH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
