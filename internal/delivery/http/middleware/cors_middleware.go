package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// SetupCORS allows the local composer frontend during development.
func SetupCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "http://localhost:3000, http://localhost:8080",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	})
}
