package export

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/cp-topic-list/site/site"
)

const sitemapFile = "sitemap.xml"

// Exporter writes the static pages of the site to a filesystem.
type Exporter struct {
	fs      afero.Fs
	dir     string
	baseURL string
	now     func() time.Time
}

func New(fs afero.Fs, dir string, baseURL string) *Exporter {
	return &Exporter{fs: fs, dir: dir, baseURL: baseURL, now: time.Now}
}

// Export renders pages and a sitemap listing them into the output directory
// and returns the paths it wrote.
func (e *Exporter) Export(ctx context.Context, pages []site.Page) ([]string, error) {
	var written []string
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		var buf bytes.Buffer
		if err := page.Node().Render(&buf); err != nil {
			return written, fmt.Errorf("error rendering %s: %w", page.Path, err)
		}
		path, err := e.write(page.File, buf.Bytes())
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}

	body, err := site.NewSitemap(e.baseURL, e.now(), pages).Marshal()
	if err != nil {
		return written, fmt.Errorf("error encoding sitemap: %w", err)
	}
	path, err := e.write(sitemapFile, body)
	if err != nil {
		return written, err
	}
	return append(written, path), nil
}

func (e *Exporter) write(name string, body []byte) (string, error) {
	path := filepath.Join(e.dir, filepath.FromSlash(name))
	if err := e.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("error creating directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(e.fs, path, body, 0o644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}
