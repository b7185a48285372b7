package handlers

import (
	"fmt"

	"github.com/cp-topic-list/site/cache"
	"github.com/cp-topic-list/site/config"
)

// Handlers serves the site's pages. Rendered pages are kept in a cache keyed
// by path when page caching is enabled.
type Handlers struct {
	cfg   *config.Config
	pages *cache.Cache[[]byte]
}

func New(cfg *config.Config) (*Handlers, error) {
	h := &Handlers{cfg: cfg}
	if !cfg.PageCacheEnabled {
		return h, nil
	}

	pages, err := cache.New[[]byte]("Page Cache", func(body []byte) int64 {
		return int64(len(body))
	}, cfg.PageCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("error creating page cache: %w", err)
	}
	h.pages = pages
	return h, nil
}

// Close releases the page cache.
func (h *Handlers) Close() {
	if h.pages != nil {
		h.pages.Close()
	}
}
