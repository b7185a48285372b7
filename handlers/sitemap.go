package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cp-topic-list/site/site"
)

func (h *Handlers) HandleSitemap(c *fiber.Ctx) error {
	body, err := site.NewSitemap(h.cfg.BaseURL, time.Now(), site.Pages()).Marshal()
	if err != nil {
		return fmt.Errorf("error encoding sitemap: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}
