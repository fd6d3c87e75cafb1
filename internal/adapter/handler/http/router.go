package http

import (
	"net/http"

	"github.com/carlog/carlog_vehicle_service/internal/config"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
	vehicleHandler *VehicleHandler,
	policyHandler *PolicyHandler,
	maintenanceHandler *MaintenanceHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Profile routes
	me := router.Group("/me")
	me.Use(AuthMiddleware(tokenService))
	{
		me.PUT("", authHandler.UpdateProfile)
	}

	// Vehicle routes
	vehicles := router.Group("/vehicles")
	vehicles.Use(AuthMiddleware(tokenService))
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("/my", vehicleHandler.GetMyVehicles)
		vehicles.GET("/:plate", vehicleHandler.GetVehicle)
		vehicles.PUT("/:plate", vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:plate", vehicleHandler.DeleteVehicle)

		vehicles.POST("/:plate/coowners", vehicleHandler.AddCoOwner)
		vehicles.DELETE("/:plate/coowners/:taxid", vehicleHandler.RemoveCoOwner)

		vehicles.POST("/:plate/policies", policyHandler.AddPolicy)
		vehicles.PUT("/:plate/policies/:id", policyHandler.UpdatePolicy)
		vehicles.DELETE("/:plate/policies/:id", policyHandler.DeletePolicy)

		vehicles.POST("/:plate/services", maintenanceHandler.AddServiceEntry)
		vehicles.PUT("/:plate/services/:id", maintenanceHandler.UpdateServiceEntry)
		vehicles.DELETE("/:plate/services/:id", maintenanceHandler.DeleteServiceEntry)

		vehicles.POST("/:plate/inspections", maintenanceHandler.AddInspection)
		vehicles.PUT("/:plate/inspections/:id", maintenanceHandler.UpdateInspection)
		vehicles.DELETE("/:plate/inspections/:id", maintenanceHandler.DeleteInspection)
	}
	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
