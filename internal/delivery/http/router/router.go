// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"easyshop/internal/delivery/http/middleware"
	"easyshop/internal/delivery/http/router/handler"
	"easyshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	ProfileHandler  *handler.ProfileHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	profileHandler  *handler.ProfileHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		profileHandler:  params.ProfileHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin.String())

	// Category browsing is public; writes require the admin role.
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.GET("/:id/products", r.categoryHandler.ListProducts)
		categoryGroup.POST("", r.categoryHandler.Create, r.authMiddleware.Authenticate, adminOnly)
		categoryGroup.PUT("/:id", r.categoryHandler.Update, r.authMiddleware.Authenticate, adminOnly)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.Authenticate, adminOnly)
	}

	// Product browsing is public; writes require the admin role.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.Search)
		productGroup.GET("/genres", r.productHandler.ListGenres)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate, adminOnly)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate, adminOnly)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate, adminOnly)
	}

	// Profile routes require authentication
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
	}

	// Cart routes require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/products/:productId", r.cartHandler.AddProduct)
		cartGroup.PUT("/products/:productId", r.cartHandler.UpdateLine)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Checkout requires authentication
	e.POST("/orders", r.orderHandler.Checkout, r.authMiddleware.Authenticate)
}
