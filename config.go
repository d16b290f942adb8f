package presskit

import (
	"strings"

	"github.com/eringen/presskit/views"
)

// Config holds all configuration for a presskit site build.
type Config struct {
	Site views.SiteConfig // branding and URLs, passed through to templates

	ContentDir string // markdown content root (default "content")
	OutputDir  string // build output directory (default "dist")
	StaticDir  string // static assets copied to <out>/public (default "public")
	Addr       string // preview server listen address (default ":3000")

	// MarkdownExtensions names the goldmark extensions enabled for body
	// conversion (default "gfm"). Unknown names are ignored.
	MarkdownExtensions []string
}

func (c *Config) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	c.Site.URL = strings.TrimSuffix(c.Site.URL, "/")
	if c.Site.DefaultOGImage == "" {
		c.Site.DefaultOGImage = "/public/og-default.png"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if len(c.MarkdownExtensions) == 0 {
		c.MarkdownExtensions = []string{"gfm"}
	}
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithViews replaces the default templates.
func WithViews(v ViewFuncs) Option {
	return func(s *Site) {
		if v.Home != nil {
			s.Views.Home = v.Home
		}
		if v.Post != nil {
			s.Views.Post = v.Post
		}
		if v.NotFound != nil {
			s.Views.NotFound = v.NotFound
		}
	}
}

// WithConverter replaces the markdown converter, overriding the extension
// list from Config.
func WithConverter(fn ConvertFunc) Option {
	return func(s *Site) {
		s.convert = fn
	}
}
