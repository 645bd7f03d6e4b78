package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/handlers"
	"github.com/eletrofluxo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reconcileHandler := handlers.NewReconcileHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/cart", cartHandler.View)
	authed.POST("/cart/items", cartHandler.AddItem)
	authed.DELETE("/cart/items/:productID", cartHandler.RemoveItem)
	authed.DELETE("/cart", cartHandler.Clear)
	authed.POST("/checkout", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:number", orderHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/orders", orderHandler.ListAll)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.DELETE("/products/:id", catalogHandler.Deactivate)
	admin.PUT("/payments/:orderNumber", reconcileHandler.UpdatePayment)
	admin.PUT("/deliveries", reconcileHandler.UpdateDelivery)
	admin.GET("/notifications", notificationHandler.List)
	admin.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	admin.PATCH("/notifications", notificationHandler.MarkAllRead)

	return engine
}
