// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lookchat/internal/delivery/http/middleware"
	"lookchat/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ChatHandler         *handler.ChatHandler
	CartHandler         *handler.CartHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	chatHandler         *handler.ChatHandler
	cartHandler         *handler.CartHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		chatHandler:         params.ChatHandler,
		cartHandler:         params.CartHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.sessionHandler.HealthCheck)

	// Session lifecycle
	e.POST("/sessions", r.sessionHandler.CreateSession)

	// Per-session conversation routes
	sessionGroup := e.Group("/sessions/:id")
	sessionGroup.Use(r.requestIDMiddleware.Process)
	{
		sessionGroup.POST("/messages", r.chatHandler.SendMessage)
		sessionGroup.POST("/quick-replies", r.chatHandler.TapQuickReply)
		sessionGroup.POST("/compare", r.chatHandler.OfferCompare)
		sessionGroup.POST("/stores/actions", r.chatHandler.StoreAction)

		sessionGroup.POST("/cart/items", r.cartHandler.AddItem)
		sessionGroup.DELETE("/cart/items/:productID", r.cartHandler.RemoveItem)
		sessionGroup.POST("/checkout", r.cartHandler.Checkout)
	}
}
