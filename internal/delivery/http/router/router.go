// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	ContentHandler  *handler.ContentHandler
	AccountHandler  *handler.AccountHandler
	SettingsHandler *handler.SettingsHandler
	MediaHandler    *handler.MediaHandler
	EventsHandler   *handler.EventsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	reviewHandler   *handler.ReviewHandler
	contentHandler  *handler.ContentHandler
	accountHandler  *handler.AccountHandler
	settingsHandler *handler.SettingsHandler
	mediaHandler    *handler.MediaHandler
	eventsHandler   *handler.EventsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		reviewHandler:   params.ReviewHandler,
		contentHandler:  params.ContentHandler,
		accountHandler:  params.AccountHandler,
		settingsHandler: params.SettingsHandler,
		mediaHandler:    params.MediaHandler,
		eventsHandler:   params.EventsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Change event stream for open consoles
	e.GET("/events", r.eventsHandler.StreamEvents)

	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.catalogHandler.ListCategories)
		categoryGroup.POST("", r.catalogHandler.CreateCategory)
		categoryGroup.PATCH("/:id", r.catalogHandler.UpdateCategory)
		categoryGroup.DELETE("/:id", r.catalogHandler.DeleteCategory)
	}

	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.POST("", r.catalogHandler.CreateProduct)
		productGroup.GET("/:id", r.catalogHandler.GetProduct)
		productGroup.PATCH("/:id", r.catalogHandler.UpdateProduct)
		productGroup.DELETE("/:id", r.catalogHandler.DeleteProduct)
		productGroup.GET("/:id/qr", r.catalogHandler.GetProductShareQR)
	}

	orderGroup := e.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id", r.orderHandler.UpdateOrder)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
	}

	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.reviewHandler.ListReviews)
		reviewGroup.POST("", r.reviewHandler.SubmitReview)
		reviewGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
		reviewGroup.PUT("/:id/approval", r.reviewHandler.SetReviewApproval)
		reviewGroup.PUT("/:id/featured", r.reviewHandler.SetReviewFeatured)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
	}

	postGroup := e.Group("/posts")
	{
		postGroup.GET("", r.contentHandler.ListPosts)
		postGroup.POST("", r.contentHandler.CreatePost)
		postGroup.GET("/:id", r.contentHandler.GetPost)
		postGroup.PATCH("/:id", r.contentHandler.UpdatePost)
		postGroup.DELETE("/:id", r.contentHandler.DeletePost)
		postGroup.POST("/:id/views", r.contentHandler.RecordPostView)
		postGroup.POST("/:id/likes", r.contentHandler.LikePost)
	}

	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.accountHandler.ListUsers)
		userGroup.POST("", r.accountHandler.CreateUser)
		userGroup.PATCH("/:id", r.accountHandler.UpdateUser)
		userGroup.DELETE("/:id", r.accountHandler.DeleteUser)
	}

	settingsGroup := e.Group("/settings")
	{
		settingsGroup.GET("/site", r.settingsHandler.GetSiteSettings)
		settingsGroup.PUT("/site", r.settingsHandler.SaveSiteSettings)
		settingsGroup.GET("/pages/:page", r.settingsHandler.GetPageSettings)
		settingsGroup.PUT("/pages/:page", r.settingsHandler.SavePageSettings)
	}

	e.POST("/media", r.mediaHandler.UploadImage)
}
