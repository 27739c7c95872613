package routes

import (
	"strings"

	"sitework-scheduler/internal/config"
	"sitework-scheduler/internal/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *handlers.Handler, cfg *config.Config) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	corsCfg := cors.DefaultConfig()
	if cfg.Server.CORSOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.Server.CORSOrigins, ",")
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"}
	ginRouter.Use(cors.New(corsCfg))

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sitework scheduler is running",
		})
	})

	api := ginRouter.Group("/api")
	{
		// Task endpoints
		api.GET("/tasks", h.GetTasks)
		api.GET("/tasks/:id", h.GetTaskByID)
		api.POST("/tasks", h.CreateTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.PATCH("/tasks/:id/place", h.PlaceTask)
		api.DELETE("/tasks/:id", h.DeleteTask)

		// Schedule endpoints
		api.GET("/schedule/conflicts", h.GetConflicts)
		api.GET("/stats/:userid", h.GetStatsByUser)

		// Directory endpoints
		api.GET("/users", h.GetUsers)
		api.GET("/sites", h.GetSites)

		// Realtime endpoint
		api.GET("/ws", h.WebSocketHandler)
	}

	return ginRouter
}
