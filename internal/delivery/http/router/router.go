// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	AuthHandler     *handler.AuthHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	GuardMiddleware *middleware.GuardMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	authHandler     *handler.AuthHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	adminHandler    *handler.AdminHandler
	guard           *middleware.GuardMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		authHandler:     params.AuthHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		adminHandler:    params.AdminHandler,
		guard:           params.GuardMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the storefront routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Public pages
	e.GET("/", r.catalogHandler.Search)
	e.GET("/products", r.catalogHandler.Search)
	e.GET("/products/:id", r.catalogHandler.Product)
	e.GET("/me", r.authHandler.Navbar)
	e.POST("/login", r.authHandler.Login)
	e.POST("/register", r.authHandler.Register)
	e.POST("/logout", r.authHandler.Logout)

	// The badge stream feeds the navbar, which every page shows.
	e.GET("/cart/events", r.cartHandler.Events)

	requireUser := r.guard.RequireRole(entity.RoleUser)

	cartGroup := e.Group("/cart", requireUser)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout", requireUser)
	{
		checkoutGroup.POST("", r.checkoutHandler.Begin)
		checkoutGroup.GET("/:id", r.checkoutHandler.Get)
		checkoutGroup.POST("/:id/pay", r.checkoutHandler.Pay)
	}

	successGroup := e.Group("/payment-success", requireUser)
	{
		successGroup.GET("", r.orderHandler.PaymentSuccess)
		successGroup.GET("/receipt", r.orderHandler.Receipt)
	}

	ordersGroup := e.Group("/orders", requireUser)
	{
		ordersGroup.GET("", r.orderHandler.MyOrders)
		ordersGroup.GET("/:id/receipt", r.orderHandler.Receipt)
	}

	adminGroup := e.Group("/admin", r.guard.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", r.adminHandler.ListProducts)
		adminGroup.POST("/upload", r.adminHandler.UploadImage)
		adminGroup.POST("/products", r.adminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.adminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminHandler.DeleteProduct)
	}
}
