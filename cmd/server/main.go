package main

import (
	"log"

	"sitework-scheduler/internal/config"
	"sitework-scheduler/internal/handlers"
	"sitework-scheduler/internal/routes"
	"sitework-scheduler/internal/schedule"
	"sitework-scheduler/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars win either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// Open the schedule document store
	st, err := store.NewFileStore(cfg.Store.DataFile)
	if err != nil {
		log.Fatal("Failed to open schedule store: ", err)
	}
	defer st.Close()

	svc := schedule.NewService(st, schedule.Options{
		StrictWeekFilter:  cfg.Schedule.StrictWeekFilter,
		PlacementDuration: cfg.Schedule.PlacementDuration,
		WeekCacheTTL:      cfg.Schedule.WeekCacheTTL,
	})

	// Setup the routes
	ginRoutes := routes.SetupRoutes(handlers.New(svc), cfg)

	port := ":" + cfg.Server.Port
	log.Printf("Server starting on port %s (data file: %s)", port, st.Path())
	log.Println("API endpoints:")
	log.Println("  GET    /api/tasks")
	log.Println("  GET    /api/tasks/:id")
	log.Println("  POST   /api/tasks")
	log.Println("  PUT    /api/tasks/:id")
	log.Println("  PATCH  /api/tasks/:id/place")
	log.Println("  DELETE /api/tasks/:id")
	log.Println("  GET    /api/schedule/conflicts")
	log.Println("  GET    /api/stats/:userid")
	log.Println("  GET    /api/users")
	log.Println("  GET    /api/sites")
	log.Println("  GET    /api/ws")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
