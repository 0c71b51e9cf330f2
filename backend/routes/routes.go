package routes

import (
	"log"

	"glowup/backend/config"
	"glowup/backend/controllers"
	"glowup/backend/middleware"
	"glowup/backend/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, gw *store.Gateway, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Habit tracking routes
	habitsController := controllers.NewHabitsController(gw, cfg, logger)
	app.Get("/api/state", authMiddleware, habitsController.GetState)
	app.Delete("/api/state", authMiddleware, habitsController.ClearState)
	app.Post("/api/habits/:id/progress", authMiddleware, habitsController.UpdateProgress)
	app.Post("/api/habits/:id/target", authMiddleware, habitsController.UpdateTarget)
}
