// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookkeeper/internal/delivery/api/middleware"
	"bookkeeper/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	TransactionHandler *handler.TransactionHandler
	CustomerHandler    *handler.CustomerHandler
	CategoryHandler    *handler.CategoryHandler
	ReportHandler      *handler.ReportHandler
	HppHandler         *handler.HppHandler
	SettingsHandler    *handler.SettingsHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	profileHandler     *handler.ProfileHandler
	transactionHandler *handler.TransactionHandler
	customerHandler    *handler.CustomerHandler
	categoryHandler    *handler.CategoryHandler
	reportHandler      *handler.ReportHandler
	hppHandler         *handler.HppHandler
	settingsHandler    *handler.SettingsHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		profileHandler:     params.ProfileHandler,
		transactionHandler: params.TransactionHandler,
		customerHandler:    params.CustomerHandler,
		categoryHandler:    params.CategoryHandler,
		reportHandler:      params.ReportHandler,
		hppHandler:         params.HppHandler,
		settingsHandler:    params.SettingsHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.profileHandler.GetProfile)
	apiV1.PUT("/me", r.profileHandler.UpdateProfile)

	transactionsGroup := apiV1.Group("/transactions")
	{
		transactionsGroup.GET("", r.transactionHandler.ListTransactions)
		transactionsGroup.POST("", r.transactionHandler.CreateTransaction)
		transactionsGroup.GET("/:id", r.transactionHandler.GetTransaction)
		transactionsGroup.PUT("/:id", r.transactionHandler.UpdateTransaction)
		transactionsGroup.PATCH("/:id", r.transactionHandler.UpdateTransaction)
		transactionsGroup.DELETE("/:id", r.transactionHandler.DeleteTransaction)
		transactionsGroup.GET("/:id/receipt.png", r.transactionHandler.ReceiptQR)
	}

	customersGroup := apiV1.Group("/customers")
	{
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.POST("", r.customerHandler.CreateCustomer)
		customersGroup.GET("/:id", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.PATCH("/:id", r.customerHandler.UpdateCustomer)
		customersGroup.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory)
	}

	reportsGroup := apiV1.Group("/reports")
	{
		reportsGroup.GET("/summary", r.reportHandler.Summary)
		reportsGroup.GET("/categories", r.reportHandler.CategoryDistribution)
		reportsGroup.GET("/trend", r.reportHandler.Trend)
		reportsGroup.GET("/break-even", r.reportHandler.BreakEven)
		reportsGroup.GET("/export.xlsx", r.reportHandler.Export)
	}

	hppGroup := apiV1.Group("/hpp-calculations")
	{
		hppGroup.GET("", r.hppHandler.ListHpp)
		hppGroup.POST("", r.hppHandler.CreateHpp)
		hppGroup.POST("/preview", r.hppHandler.PreviewHpp)
		hppGroup.PUT("/:id", r.hppHandler.UpdateHpp)
		hppGroup.DELETE("/:id", r.hppHandler.DeleteHpp)
	}

	apiV1.GET("/business-settings", r.settingsHandler.GetSettings)
	apiV1.PUT("/business-settings", r.settingsHandler.UpsertSettings)
}
