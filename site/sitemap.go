package site

import (
	"encoding/xml"
	"strings"
	"time"
)

const sitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// NewSitemap lists pages under baseURL. lastMod is written as a date.
func NewSitemap(baseURL string, lastMod time.Time, pages []Page) Sitemap {
	baseURL = strings.TrimSuffix(baseURL, "/")
	sitemap := Sitemap{Xmlns: sitemapXmlns}
	for _, p := range pages {
		sitemap.URLs = append(sitemap.URLs, SitemapURL{
			Loc:        baseURL + p.Path,
			LastMod:    lastMod.UTC().Format(time.DateOnly),
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}
	return sitemap
}

// Marshal encodes the sitemap with the XML header.
func (s Sitemap) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
