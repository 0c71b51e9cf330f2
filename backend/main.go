package main

import (
	"log"

	"glowup/backend/config"
	"glowup/backend/middleware"
	"glowup/backend/routes"
	"glowup/backend/store"
	"glowup/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Persistence gateway: local file cache in front of the remote store
	local, err := store.NewLocalCache(cfg.CacheDir)
	if err != nil {
		log.Fatalf("Error initializing local cache: %v", err)
	}
	gw := store.NewGateway(local, store.NewRemoteStore(db), logger, cfg.RemoteTimeout)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, gw, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
