// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ContentHandler *handler.ContentHandler
	Session        *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	contentHandler *handler.ContentHandler
	session        *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		contentHandler: params.ContentHandler,
		session:        params.Session,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, r.session.RequireSession)
	}

	// Public display content
	api.GET("/artworks", r.contentHandler.ListArtworks)
	api.GET("/testimonials", r.contentHandler.ListTestimonials)
	api.GET("/skills", r.contentHandler.ListSkills)
	api.GET("/banners", r.contentHandler.ListBanners)
	api.GET("/footer", r.contentHandler.GetFooter)

	// Mutations require an established session before touching storage
	api.PUT("/footer", r.contentHandler.UpdateFooter, r.session.RequireSession)
}
