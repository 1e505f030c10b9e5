package routes

import (
	"path/filepath"
	"time"

	"github.com/akshaymhatre/receiptly-api/internal/config"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/handler"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Customer *handler.CustomerHandler
	Form     *handler.FormHandler
	Receipt  *handler.ReceiptHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// The single-page receipt form
	if cfg.Web.Dir != "" {
		router.StaticFile("/", filepath.Join(cfg.Web.Dir, "index.html"))
		router.Static("/assets", filepath.Join(cfg.Web.Dir, "assets"))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerCustomerRoutes(v1, h)
		registerFormRoutes(v1, h)
		registerReceiptRoutes(v1, h)
	}

	return router
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/suggest", h.Customer.Suggest)
		customers.GET("/:id", h.Customer.Get)
	}
}

func registerFormRoutes(v1 *gin.RouterGroup, h *Handlers) {
	forms := v1.Group("/forms")
	{
		forms.POST("", h.Form.Create)
		forms.GET("/:id", h.Form.Get)
		forms.PATCH("/:id/fields", h.Form.SetField)
		forms.POST("/:id/focus", h.Form.Focus)
		forms.POST("/:id/dismiss", h.Form.Dismiss)
		forms.POST("/:id/choose", h.Form.Choose)
		forms.POST("/:id/submit", h.Form.Submit)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.POST("/link", h.Receipt.GenerateLink)
	}
}
