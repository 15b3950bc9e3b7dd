package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/darzi-app/darzi/internal/metrics"
	"github.com/darzi-app/darzi/internal/server/http/handlers"
	"github.com/darzi-app/darzi/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.TailoringFacade, logger *slog.Logger, registry *prometheus.Registry, m *metrics.Metrics) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestMetrics(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	tailorHandler := handlers.NewTailorHandler(facade)
	streamHandler := handlers.NewStreamHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")

	catalog := api.Group("/catalog")
	catalog.GET("/categories", catalogHandler.Categories)
	catalog.GET("/categories/:id/designs", catalogHandler.Designs)
	catalog.GET("/categories/:id/measurements", catalogHandler.MeasurementFields)
	catalog.GET("/addons", catalogHandler.AddOns)
	catalog.GET("/timeslots", catalogHandler.TimeSlots)

	order := api.Group("/order")
	order.Use(middleware.IdentityRequired())
	order.GET("", orderHandler.Get)
	order.POST("/category", orderHandler.SelectCategory)
	order.POST("/design", orderHandler.SelectDesign)
	order.POST("/addons/toggle", orderHandler.ToggleAddOn)
	order.POST("/delivery-date", orderHandler.ChooseDeliveryDate)
	order.POST("/measurements/method", orderHandler.SetMeasurementMethod)
	order.POST("/measurements/image", orderHandler.SetMeasurementImage)
	order.POST("/measurements", orderHandler.SetMeasurements)
	order.POST("/pickup-time", orderHandler.SetPickupTime)
	order.POST("/submit", orderHandler.Submit)
	order.POST("/reset", orderHandler.Reset)

	jobs := api.Group("/jobs")
	jobs.Use(middleware.IdentityRequired())
	jobs.GET("", orderHandler.MyJobs)
	jobs.GET("/stream", streamHandler.Jobs)

	admin := api.Group("/admin")
	admin.Use(middleware.IdentityRequired(), middleware.RoleRequired("admin"))
	admin.GET("/jobs", adminHandler.Jobs)
	admin.POST("/jobs/:id/assign", adminHandler.Assign)
	admin.GET("/tailors", adminHandler.Tailors)
	admin.POST("/tailors", adminHandler.CreateTailor)
	admin.POST("/tailors/:id/availability", adminHandler.SetAvailability)

	tailor := api.Group("/tailor")
	tailor.Use(middleware.IdentityRequired(), middleware.RoleRequired("tailor"))
	tailor.GET("/jobs", tailorHandler.Jobs)
	tailor.POST("/jobs/:id/status", tailorHandler.UpdateStatus)

	return engine
}
