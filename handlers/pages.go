package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cp-topic-list/site/site"
)

// HandleHome sends visitors to the About page; the topic list itself is
// served elsewhere.
func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	return c.Redirect("/about", fiber.StatusFound)
}

// HandlePage returns a handler that serves a static page.
func (h *Handlers) HandlePage(page site.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.renderPage(c, page)
	}
}
