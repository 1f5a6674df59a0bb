package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aarikaaura/storefront/api-gateway/config"
	"github.com/aarikaaura/storefront/api-gateway/health"
	"github.com/aarikaaura/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/products",
		ServiceName: "storefront",
		Description: "Product catalog (read-only)",
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "storefront",
		Description: "Shopping cart",
	},
	{
		Prefix:      "/api/wishlist",
		ServiceName: "storefront",
		Description: "Wishlist",
	},
	{
		Prefix:      "/api/checkout",
		ServiceName: "storefront",
		Description: "Checkout flow",
	},
	{
		Prefix:      "/api/contact",
		ServiceName: "storefront",
		Description: "Contact form",
	},
	{
		Prefix:      "/api/notifications",
		ServiceName: "storefront",
		Description: "Active notifications",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
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

	// Readiness probe (checks downstream instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
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
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	group := app.Group(route.Prefix)
	group.All("/*", handler)
	app.All(route.Prefix, handler)
}
