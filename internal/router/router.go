// internal/router/router.go
package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/launchpad-backend/internal/config"
	"github.com/javajoker/launchpad-backend/internal/handlers"
	"github.com/javajoker/launchpad-backend/internal/metrics"
	"github.com/javajoker/launchpad-backend/internal/middleware"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/services"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

// Stores are the persistence adapters the router wires into services.
// AuditDB is nil when the audit trail is disabled.
type Stores struct {
	Products repository.ProductStore
	Users    repository.DocumentStore
	Reviews  repository.DocumentStore
	Coupons  repository.DocumentStore
	AuditDB  *gorm.DB
}

// NewRateLimiter builds the per-IP limiter from the rate limit settings.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.RateLimiter {
	return middleware.NewRateLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
}

// Initialize builds the engine. The caller owns limiter and stops it on
// shutdown.
func Initialize(stores Stores, limiter *middleware.RateLimiter, cfg *config.Config) *gin.Engine {
	// Initialize services
	var (
		auditService  *services.AuditService
		auditRecorder services.AuditRecorder = services.NoopAuditRecorder{}
	)
	if stores.AuditDB != nil {
		auditService = services.NewAuditService(stores.AuditDB)
		auditRecorder = auditService
	}

	productService := services.NewProductService(stores.Products, auditRecorder)
	userService := services.NewUserService(stores.Users)
	reviewService := services.NewReviewService(stores.Reviews)
	couponService := services.NewCouponService(stores.Coupons)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(reviewService, couponService)
	adminHandler := handlers.NewAdminHandler(auditService)
	healthHandler := handlers.NewHealthHandler(productService, cfg.Mongo.OperationTimeout)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(middleware.OptionalAuth())

	r.GET("/", healthHandler.Index)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("")
	api.Use(limiter.Middleware())

	// Product routes
	products := api.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/all", productHandler.GetAllProducts)
		products.GET("/reported", productHandler.GetReportedProducts)
		products.GET("/stats", productHandler.GetStats)
		products.GET("/:id", productHandler.GetProduct)
		products.PATCH("/:id", productHandler.DecideProduct)
		products.PATCH("/:id/featured", productHandler.FeatureProduct)
		products.PUT("/:id/upvote", productHandler.UpvoteProduct)
		products.PUT("/:id/report", productHandler.ReportProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
	api.GET("/reported-products", productHandler.GetReportedProducts)

	// User routes
	users := api.Group("/users")
	{
		users.GET("", userHandler.GetUsers)
		users.POST("", userHandler.CreateUser)
		users.PATCH("/:id/role", userHandler.UpdateRole)
		users.PUT("/:email", userHandler.UpdateSubscription)
	}

	// Review routes
	reviews := api.Group("/reviews")
	{
		reviews.GET("", catalogHandler.GetReviews)
		reviews.POST("", catalogHandler.CreateReview)
	}

	// Coupon routes
	coupons := api.Group("/coupons")
	{
		coupons.GET("", catalogHandler.GetCoupons)
		coupons.POST("", catalogHandler.CreateCoupon)
		coupons.PUT("/:id", catalogHandler.UpdateCoupon)
		coupons.DELETE("/:id", catalogHandler.DeleteCoupon)
	}

	// Admin routes
	admin := api.Group("/admin")
	{
		admin.GET("/audit", adminHandler.GetAuditLogs)
	}

	return r
}
