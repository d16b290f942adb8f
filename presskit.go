// Package presskit is a static blog generator built with Go, goldmark, and
// templ. It loads markdown files with YAML front matter, validates them, and
// renders a complete site in one pass: a page per published post, an index,
// a 404 page, a sitemap, an RSS feed, robots.txt, and optimized static assets.
//
// Sites override any of the default templates via the ViewFuncs struct;
// presskit owns the pipeline from content root to output directory.
package presskit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"github.com/eringen/presskit/content"
	"github.com/eringen/presskit/markdown"
	"github.com/eringen/presskit/views"
)

// ViewFuncs holds the templ components the generator calls when rendering
// pages. This is the inversion-of-control mechanism that lets sites own and
// customize all templates.
type ViewFuncs struct {
	Home     func(cfg views.SiteConfig, posts []views.Post) templ.Component
	Post     func(cfg views.SiteConfig, post views.Post) templ.Component
	NotFound func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the built-in templates from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:     views.Home,
		Post:     views.PostPage,
		NotFound: views.NotFound,
	}
}

// ConvertFunc turns a raw markdown body into HTML. It may fail only on
// malformed input, which aborts the build.
type ConvertFunc func([]byte) ([]byte, error)

// Site is the build orchestrator. It holds config, templates, and the
// markdown converter; it keeps no state across builds.
type Site struct {
	Config Config
	Views  ViewFuncs

	convert ConvertFunc
}

// New creates a Site with the given configuration and default templates.
func New(cfg Config, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config: cfg,
		Views:  DefaultViews(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.convert == nil {
		s.convert = markdown.New(cfg.MarkdownExtensions...).Convert
	}
	return s
}

// Build runs the whole generation pass. Any error aborts the build; there is
// no partial-success mode, since a partially-built site is worse than a
// failed build. Given unchanged inputs, two builds produce identical output.
func (s *Site) Build() error {
	cfg := s.Config
	site := cfg.Site

	entries, err := content.Load(cfg.ContentDir)
	if err != nil {
		return err
	}

	posts, err := s.buildPages(entries)
	if err != nil {
		return err
	}

	out := cfg.OutputDir
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("presskit: create output dir: %w", err)
	}

	for _, p := range posts {
		path := filepath.Join(out, "blog", p.Slug, "index.html")
		if err := renderToFile(path, s.Views.Post(site, p)); err != nil {
			return err
		}
	}
	if err := renderToFile(filepath.Join(out, "index.html"), s.Views.Home(site, posts)); err != nil {
		return err
	}
	if err := renderToFile(filepath.Join(out, "404.html"), s.Views.NotFound(site)); err != nil {
		return err
	}

	if err := writeRobots(filepath.Join(out, "robots.txt"), site); err != nil {
		return err
	}
	if err := writeSitemap(filepath.Join(out, "sitemap.xml"), site, posts); err != nil {
		return err
	}
	if err := writeFeed(filepath.Join(out, "feed.xml"), site, posts); err != nil {
		return err
	}

	return copyStatic(cfg.StaticDir, filepath.Join(out, "public"))
}

// writeRobots generates robots.txt pointing crawlers at the sitemap.
func writeRobots(path string, site views.SiteConfig) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", site.URL)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("presskit: write robots.txt: %w", err)
	}
	return nil
}
