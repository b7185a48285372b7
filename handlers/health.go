package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cp-topic-list/site/cache"
)

type healthResponse struct {
	Status    string       `json:"status"`
	PageCache *cache.Stats `json:"page_cache,omitempty"`
}

// HandleHealth returns the health status of the application
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	health := healthResponse{Status: "ok"}
	if h.pages != nil {
		stats := h.pages.Stats()
		health.PageCache = &stats
	}
	return c.JSON(health)
}
