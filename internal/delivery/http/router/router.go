// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"libris/internal/delivery/http/middleware"
	"libris/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	BookHandler       *handler.BookHandler
	RentalHandler     *handler.RentalHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	bookHandler       *handler.BookHandler
	rentalHandler     *handler.RentalHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		bookHandler:       params.BookHandler,
		rentalHandler:     params.RentalHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential routes. Register and login are public; the session probe
	// and logout only make sense with a session attached.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/check", r.authHandler.Check, r.sessionMiddleware.Authenticate)
	}

	// Catalog browsing requires a session.
	bookGroup := e.Group("/book")
	bookGroup.Use(r.sessionMiddleware.Authenticate)
	{
		bookGroup.GET("/list", r.bookHandler.List)
		bookGroup.GET("/detail/:id", r.bookHandler.Detail)
	}

	// Rental routes act on behalf of the authenticated user.
	rentalGroup := e.Group("/rental")
	rentalGroup.Use(r.sessionMiddleware.Authenticate)
	{
		rentalGroup.POST("/start", r.rentalHandler.Start)
		rentalGroup.POST("/return", r.rentalHandler.Return)
		rentalGroup.GET("/current", r.rentalHandler.Current)
		rentalGroup.GET("/history", r.rentalHandler.History)
	}

	// Admin routes require authentication and the admin flag.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.sessionMiddleware.Authenticate)
	adminGroup.Use(r.sessionMiddleware.RequireAdmin)
	{
		adminGroup.POST("/book/create", r.adminHandler.CreateBook)
		adminGroup.PUT("/book/update", r.adminHandler.UpdateBook)
		adminGroup.GET("/rental/current", r.adminHandler.CurrentRentals)
		adminGroup.GET("/rental/current/:uid", r.adminHandler.CurrentRentalsForUser)
	}
}
