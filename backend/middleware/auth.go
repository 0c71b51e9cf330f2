package middleware

import (
	"glowup/backend/config"
	"glowup/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key the auth middleware stores the authenticated
// user id under.
const UserIDKey = "userID"

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
