package views

// SiteConfig holds site-wide branding passed to every component so nothing is
// hardcoded in templates.
type SiteConfig struct {
	Name           string
	URL            string // canonical base URL, no trailing slash
	Description    string
	Author         string
	DefaultOGImage string // social-preview fallback when a post has none
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	Author      string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	OGImage     string // relative image path, already resolved to post or fallback
}

// Post is one fully-resolved page unit: validated front matter plus the body
// rendered to HTML. Date is YYYY-MM-DD.
type Post struct {
	Slug        string
	Title       string
	Description string
	Author      string
	Date        string
	Tags        []string
	OGImage     string
	Link        string
	HTML        string
}
