package presskit

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/eringen/presskit/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap emits sitemap.xml covering the index and every routed post.
// Drafts never reach this point, so the sitemap is exactly the routed set.
func writeSitemap(path string, site views.SiteConfig, posts []views.Post) error {
	urls := []sitemapURL{
		{Loc: BuildURL(site.URL)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(site.URL, "blog", p.Slug),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("presskit: write sitemap: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(f).Encode(sitemap); err != nil {
		return fmt.Errorf("presskit: encode sitemap: %w", err)
	}
	return nil
}
