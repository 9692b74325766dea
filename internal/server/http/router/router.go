package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/server/http/handlers"
	"github.com/elcriollo/restaurant/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RestaurantFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	tableHandler := handlers.NewTableHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	tables := authed.Group("/tables")
	tables.POST("", tableHandler.Create)
	tables.GET("", tableHandler.List)
	tables.GET("/stats", tableHandler.Stats)
	tables.GET("/:id", tableHandler.Get)
	tables.PUT("/:id", tableHandler.Update)
	tables.DELETE("/:id", tableHandler.Delete)

	orders := authed.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/stats", orderHandler.Stats)
	orders.GET("/table/:tableID", orderHandler.ListByTable)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/state", orderHandler.UpdateState)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.DELETE("/:id", orderHandler.Delete)

	products := authed.Group("/products")
	products.POST("", productHandler.Create)
	products.GET("", productHandler.List)
	products.GET("/available", productHandler.ListAvailable)
	products.GET("/category/:category", productHandler.ListByCategory)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	users := authed.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)

	return engine
}
