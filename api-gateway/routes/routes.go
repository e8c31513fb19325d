package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/tair/shop-admin/api-gateway/config"
	"github.com/tair/shop-admin/api-gateway/health"
	"github.com/tair/shop-admin/api-gateway/middleware"
	"github.com/tair/shop-admin/api-gateway/proxy"
	"github.com/tair/shop-admin/pkg/logger"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication for every method
	OptionalAuth bool // Forwards identity when present, backend decides
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:       "/api/products",
		ServiceName:  "catalog",
		Description:  "Product catalog, stock, reviews and inquiries (reads are public)",
		OptionalAuth: true,
	},
	{
		Prefix:      "/api/orders",
		ServiceName: "order",
		Description: "Order placement and management",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// Load balancer and circuit breaker stats (admin only)
	app.Get("/gateway/stats", middleware.AuthMiddleware(), middleware.AdminMiddleware(), func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			lbStats[name] = lb.GetStats()
		}

		return c.JSON(fiber.Map{
			"load_balancers":   lbStats,
			"circuit_breakers": cbManager.GetAllStats(),
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, redisClient)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, redisClient *redis.Client) {
	handler := func(c *fiber.Ctx) error {
		err := proxyHandler.ProxyRequest(c, route.ServiceName)

		// Mutations go around the response cache, so a successful write has
		// to drop cached reads. Keys are hashed, which leaves a full flush
		// as the only option.
		if err == nil && redisClient != nil && isMutation(c.Method()) && c.Response().StatusCode() < 400 {
			if cacheErr := middleware.InvalidateCache(redisClient, "cache:*"); cacheErr != nil {
				logger.Logger.Warn().
					Err(cacheErr).
					Str("path", c.Path()).
					Msg("Failed to invalidate response cache")
			}
		}

		return err
	}

	// Apply middleware based on route requirements
	var middlewares []fiber.Handler

	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	} else if route.OptionalAuth {
		middlewares = append(middlewares, middleware.OptionalAuthMiddleware())
	}

	// Product writes are gated at the edge as well as in the service.
	if route.ServiceName == "catalog" {
		middlewares = append(middlewares, middleware.CatalogWriteGuard())
	}

	// Order traffic gets a tighter per-user budget on top of the global
	// limiter.
	if route.ServiceName == "order" && redisClient != nil {
		middlewares = append(middlewares, middleware.OrderRateLimiter(redisClient))
	}

	// Create a route group for this service
	group := app.Group(route.Prefix, middlewares...)

	// Handle all HTTP methods with wildcard path
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}

func isMutation(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}
