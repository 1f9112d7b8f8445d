package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rajtraders/cashmemo-api/internal/config"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/handler"
	"github.com/rajtraders/cashmemo-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Draft   *handler.DraftHandler
	Memo    *handler.MemoHandler
	Catalog *handler.CatalogHandler
	Report  *handler.ReportHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerDraftRoutes(v1, h)
		registerMemoRoutes(v1, h)
		registerCatalogRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerDraftRoutes(v1 *gin.RouterGroup, h *Handlers) {
	draft := v1.Group("/draft")
	{
		draft.GET("", h.Draft.Get)
		draft.PUT("", h.Draft.SetFields)
		draft.DELETE("", h.Draft.Clear)
		draft.POST("/items", h.Draft.AddItem)
		draft.PUT("/items/:index", h.Draft.UpdateItem)
		draft.POST("/save", h.Draft.Save)
		draft.GET("/pdf", h.Draft.PDF)
	}
}

func registerMemoRoutes(v1 *gin.RouterGroup, h *Handlers) {
	memos := v1.Group("/memos")
	{
		memos.GET("", h.Memo.List)
		memos.GET("/export/xlsx", h.Memo.ExportXLSX)
		memos.GET("/export/csv", h.Memo.ExportCSV)
		memos.GET("/:id", h.Memo.Get)
		memos.GET("/:id/pdf", h.Memo.PDF)
	}
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/customers/:mobile", h.Catalog.LookupCustomer)
	v1.GET("/products/suggestions", h.Catalog.ProductSuggestions)
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/reports/daily", h.Report.Daily)
}
