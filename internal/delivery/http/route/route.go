package route

import (
	"github.com/szarydziennik/grayjournal/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App              *fiber.App
	NewsController   *http.NewsController
	UploadController *http.UploadController
}

func (c *RouteConfig) SetupRoute() {
	api := c.App.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	newsGroup := api.Group("/news")
	newsGroup.Get("/", c.NewsController.GetNews)
	newsGroup.Post("/", c.NewsController.CreateNews)
	newsGroup.Get("/feed", c.NewsController.GetFeed)

	api.Post("/upload", c.UploadController.UploadImage)
}
