package main

import (
	"log"
	"net/http"

	"fleet_console/internal/api"
	"fleet_console/internal/config"
	"fleet_console/internal/console"
	"fleet_console/internal/logger"
	"fleet_console/internal/middleware"
	"fleet_console/internal/routes"
	"fleet_console/internal/session"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Session storage survives restarts so admins stay logged in
	db := config.InitSessionDB()
	store := session.NewGormStore(db)

	r := routes.SetupRouter(routes.Deps{
		Store:    store,
		API:      api.NewClient(cfg.APIBaseURL, nil),
		Registry: console.NewRegistry(cfg.APIBaseURL),
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Console running at " + cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
