package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/handlers"
	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/catalog"
	"github.com/iStefan20/YumTum/internal/config"
	"github.com/iStefan20/YumTum/internal/discount"
	"github.com/iStefan20/YumTum/internal/metric"
	"github.com/iStefan20/YumTum/internal/order"
	"github.com/iStefan20/YumTum/internal/session"
)

// Deps aggregates everything the routes need
type Deps struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Manager
	Discounts *discount.Service
	Assembler *order.Assembler
	Orders    *order.Registry
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("yumtum-api"))
	}

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "YumTum Order API",
			"endpoints": []string{
				"GET /health",
				"GET /metrics",
				"GET /v1/catalog/countries",
				"GET /v1/catalog/dishes",
				"GET /v1/catalog/dishes/:id",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"PATCH /v1/cart/items/:id",
				"DELETE /v1/cart/items/:id",
				"DELETE /v1/cart",
				"GET /v1/discounts",
				"GET /v1/discounts/deals",
				"POST /v1/cart/discount",
				"POST /v1/cart/deals",
				"POST /v1/checkout",
				"POST /v1/checkout/birth-date",
				"POST /v1/checkout/cancel",
				"POST /v1/orders",
				"GET /v1/orders/:id",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog is read-only and session-free
		v1.GET("/catalog/countries", handlers.HandleListCountries(deps.Catalog))
		v1.GET("/catalog/dishes", handlers.HandleListDishes(deps.Catalog))
		v1.GET("/catalog/dishes/:id", handlers.HandleGetDish(deps.Catalog, logger))

		v1.GET("/discounts", handlers.HandleListDiscounts(deps.Discounts))
		v1.GET("/discounts/deals", handlers.HandleListDeals(deps.Discounts))

		// Session routes (cart, checkout, orders)
		sessionRoutes := v1.Group("")
		sessionRoutes.Use(middleware.SessionMiddleware(deps.Sessions))
		{
			sessionRoutes.GET("/cart", handlers.HandleGetCart(logger))
			sessionRoutes.POST("/cart/items", handlers.HandleAddItem(deps.Catalog, logger))
			sessionRoutes.PATCH("/cart/items/:id", handlers.HandleUpdateQuantity(logger))
			sessionRoutes.DELETE("/cart/items/:id", handlers.HandleRemoveItem(logger))
			sessionRoutes.DELETE("/cart", handlers.HandleClearCart(logger))
			sessionRoutes.POST("/cart/discount", handlers.HandleApplyDiscount(deps.Discounts, logger))
			sessionRoutes.POST("/cart/deals", handlers.HandleApplyDeal(deps.Discounts, logger))

			sessionRoutes.POST("/checkout", handlers.HandleRequestCheckout(logger))
			sessionRoutes.POST("/checkout/birth-date", handlers.HandleSubmitBirthDate(logger))
			sessionRoutes.POST("/checkout/cancel", handlers.HandleCancelCheckout(logger))

			sessionRoutes.POST("/orders", handlers.HandleSubmitOrder(deps.Assembler, deps.Orders, logger))
			sessionRoutes.GET("/orders/:id", handlers.HandleGetOrder(deps.Orders, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests and records the latency summary
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		metric.ObserveRequest(time.Since(start), status)
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
