package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cp-topic-list/site/config"
	h "github.com/cp-topic-list/site/handlers"
	"github.com/cp-topic-list/site/site"
)

// New builds the fiber app with middleware and every route registered.
// The returned handlers own the page cache and must be closed after the app
// shuts down.
func New(cfg *config.Config) (*fiber.App, *h.Handlers, error) {
	handlers, err := h.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing handlers: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      config.SiteName,
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(handlers.RateLimiter())
	app.Use(compress.New())
	app.Use(etag.New())

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Get("/", handlers.HandleHome)

	// Static pages
	for _, page := range site.Pages() {
		app.Get(page.Path, handlers.HandlePage(page))
	}

	// Sitemap
	app.Get("/sitemap.xml", handlers.HandleSitemap)

	// Health check
	app.Get("/health", handlers.HandleHealth)

	return app, handlers, nil
}
