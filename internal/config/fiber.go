package config

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

func NewFiber() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "grayjournal",
		// Upload payloads arrive base64-encoded, so the body limit sits
		// above the decoded 10MB cap.
		BodyLimit:             16 * 1024 * 1024,
		ReadBufferSize:        4096,
		WriteBufferSize:       4096,
		IdleTimeout:           30 * time.Second,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: true,
		ReduceMemoryUsage:     true,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
	})

	return app
}
