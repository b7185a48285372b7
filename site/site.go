package site

import (
	"errors"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/cp-topic-list/site/ui"
)

// ErrPageNotFound is returned by Lookup for paths that have no page.
var ErrPageNotFound = errors.New("page not found")

// Page is a static page served by the site and written by the exporter.
type Page struct {
	Path       string
	File       string // export location relative to the output directory
	Title      string
	ChangeFreq string
	Priority   string
	Render     func(path string) g.Node
}

// Node builds the page tree for its own path.
func (p Page) Node() g.Node {
	return p.Render(p.Path)
}

// Pages returns every static page in sitemap order.
func Pages() []Page {
	return []Page{
		{
			Path:       "/about",
			File:       "about/index.html",
			Title:      "About",
			ChangeFreq: "monthly",
			Priority:   "0.8",
			Render:     ui.AboutPage,
		},
	}
}

// Lookup finds the page registered for path. A trailing slash is ignored.
func Lookup(path string) (Page, error) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	for _, p := range Pages() {
		if p.Path == path {
			return p, nil
		}
	}
	return Page{}, ErrPageNotFound
}
