package routes

import (
	"net/http"

	"github.com/ArowuTest/brandhub-admin-backend/internal/config"
	"github.com/ArowuTest/brandhub-admin-backend/internal/handlers"
	"github.com/ArowuTest/brandhub-admin-backend/internal/metrics"
	"github.com/ArowuTest/brandhub-admin-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// HandlerDependencies holds the handlers and shared pieces the router wires
type HandlerDependencies struct {
	AuthHandler      *handlers.AuthHandler
	BrandHandler     *handlers.BrandHandler
	CampaignHandler  *handlers.CampaignHandler
	DashboardHandler *handlers.DashboardHandler
	UploadHandler    *handlers.UploadHandler
	Authenticator    middleware.Authenticator
	Metrics          *metrics.Metrics
	Gatherer         prometheus.Gatherer
	Logger           *zap.Logger
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedHosts))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	router.MaxMultipartMemory = 32 << 20

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		public.POST("/auth/login", deps.AuthHandler.Login)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.SessionAuthMiddleware(deps.Authenticator, deps.Logger))
	{
		auth := protected.Group("/auth")
		{
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/session", deps.AuthHandler.Session)
		}

		brands := protected.Group("/brands")
		{
			brands.GET("", deps.BrandHandler.GetBrands)
			brands.GET("/options", deps.BrandHandler.GetBrandOptions)
			brands.GET("/:id", deps.BrandHandler.GetBrandByID)
			brands.POST("", deps.BrandHandler.CreateBrand)
			brands.PATCH("/:id/status", deps.BrandHandler.ToggleStatus)
			brands.DELETE("/:id", deps.BrandHandler.DeleteBrand)
		}

		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetCampaigns)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.PATCH("/:id/status", deps.CampaignHandler.ToggleStatus)
			campaigns.DELETE("/:id", deps.CampaignHandler.DeleteCampaign)
		}

		protected.POST("/uploads", deps.UploadHandler.NewUpload)
		protected.GET("/dashboard/stats", deps.DashboardHandler.GetStats)
	}

	// Event streams, readable by EventSource clients
	streams := router.Group("/api/v1")
	streams.Use(middleware.StreamAuthMiddleware(deps.Authenticator, deps.Logger))
	{
		streams.GET("/uploads/:id/progress", deps.UploadHandler.StreamProgress)
	}

	return router
}
