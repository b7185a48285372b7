package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/cp-topic-list/site/site"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderPage serves a static page, from the page cache when possible.
// Pages render identically every time, so a cached body is always current.
func (h *Handlers) renderPage(c *fiber.Ctx, page site.Page) error {
	if h.pages == nil {
		return render(c, page.Node())
	}

	if body, ok := h.pages.Get(page.Path); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(body)
	}

	var buf bytes.Buffer
	if err := page.Node().Render(&buf); err != nil {
		return fmt.Errorf("error rendering %s: %w", page.Path, err)
	}
	body := buf.Bytes()
	h.pages.Set(page.Path, body, 0)

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(body)
}
