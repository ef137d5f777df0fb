package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/quickbite/internal/handlers"
	"github.com/example/quickbite/internal/middleware"
	"github.com/example/quickbite/internal/services"
)

const appName = "QuickBite API"

// Dependencies are the services the HTTP surface is built on.
type Dependencies struct {
	Auth     *services.AuthService
	Orders   *services.OrderService
	Menus    *services.MenuService
	Payments *services.PaymentService
	Health   *handlers.HealthHandler
}

// NewApp builds the fiber app with the shared middleware and every route.
func NewApp(logger *zap.Logger, deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ErrorHandler: handlers.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(logger))

	Register(app, deps)
	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.Auth)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	menuHandler := handlers.NewMenuHandler(deps.Menus)
	paymentHandler := handlers.NewPaymentHandler(deps.Payments)

	if deps.Health != nil {
		app.Get("/", deps.Health.Root)
		app.Get("/health", deps.Health.Health)
	}

	checkToken := middleware.AuthMiddleware(deps.Auth)
	adminOnly := middleware.RequireAdmin(deps.Auth)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", checkToken, authHandler.Verify)
	auth.Get("/verify/retry", checkToken, authHandler.ResendOTP)
	auth.Get("/logout", checkToken, authHandler.Logout)

	api.Get("/menu", checkToken, menuHandler.ListMenus)

	// Customer orders
	orders := api.Group("/orders", checkToken)
	orders.Post("/", orderHandler.PlaceOrder)
	orders.Get("/", orderHandler.ListMyOrders)
	orders.Get("/:id", orderHandler.GetMyOrder)

	// Admin
	admin := api.Group("/admin", checkToken, adminOnly)
	admin.Get("/orders", orderHandler.ListOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Patch("/orders/:id", orderHandler.UpdateOrderStatus)

	api.Post("/payments", checkToken, paymentHandler.CreatePaymentIntent)
}
