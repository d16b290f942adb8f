// Package views holds the default page components, written as plain Go templ
// components so a site can swap any of them out without a template compiler.
package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// layout wraps a main component with the shared document shell: head with
// meta/OpenGraph tags, site header, divider, and footer.
func layout(cfg SiteConfig, meta PageMeta, jsonLD string, main templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHead(w, cfg, meta, jsonLD); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<body>\n<header><a href=\"/\">"+html.EscapeString(cfg.Name)+"</a></header>\n<hr/>\n<main>\n"); err != nil {
			return err
		}
		if err := main.Render(ctx, w); err != nil {
			return err
		}
		footer := "</main>\n<hr/>\n<footer><p>" + html.EscapeString(footerLine(cfg)) + "</p></footer>\n</body>\n</html>\n"
		_, err := io.WriteString(w, footer)
		return err
	})
}

func footerLine(cfg SiteConfig) string {
	if cfg.Author != "" {
		return cfg.Author
	}
	return cfg.Name
}

func writeHead(w io.Writer, cfg SiteConfig, meta PageMeta, jsonLD string) error {
	esc := html.EscapeString
	title := meta.Title
	if title == "" {
		title = cfg.Name
	} else if cfg.Name != "" && title != cfg.Name {
		title += " | " + cfg.Name
	}
	ogImage := absURL(cfg.URL, OGImagePath(cfg, meta.OGImage))

	out := "<!doctype html>\n<html lang=\"en\">\n<head>\n" +
		"<meta charset=\"utf-8\"/>\n" +
		"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n" +
		"<title>" + esc(title) + "</title>\n" +
		"<meta name=\"description\" content=\"" + esc(meta.Description) + "\"/>\n"
	if meta.Author != "" {
		out += "<meta name=\"author\" content=\"" + esc(meta.Author) + "\"/>\n"
	}
	out += "<link rel=\"canonical\" href=\"" + esc(meta.URL) + "\"/>\n" +
		"<meta property=\"og:title\" content=\"" + esc(meta.Title) + "\"/>\n" +
		"<meta property=\"og:description\" content=\"" + esc(meta.Description) + "\"/>\n" +
		"<meta property=\"og:type\" content=\"" + esc(meta.OGType) + "\"/>\n" +
		"<meta property=\"og:url\" content=\"" + esc(meta.URL) + "\"/>\n" +
		"<meta property=\"og:image\" content=\"" + esc(ogImage) + "\"/>\n" +
		"<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(cfg.Name) + "\" href=\"/feed.xml\"/>\n" +
		"<script type=\"application/ld+json\">" + jsonLD + "</script>\n" +
		"</head>\n"
	_, err := io.WriteString(w, out)
	return err
}

// Home renders the index: one link per post, in the order given (the build
// pass hands posts over already sorted newest first).
func Home(cfg SiteConfig, posts []Post) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		Author:      cfg.Author,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	main := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := html.EscapeString
		out := "<h1>" + esc(cfg.Name) + "</h1>\n"
		if cfg.Description != "" {
			out += "<p>" + esc(cfg.Description) + "</p>\n"
		}
		out += "<ul class=\"post-list\">\n"
		for _, p := range posts {
			out += "<li><a href=\"" + esc(p.Link) + "\">" + esc(p.Title) + "</a> " +
				"<time datetime=\"" + esc(p.Date) + "\">" + esc(FormatDate(p.Date)) + "</time></li>\n"
		}
		out += "</ul>\n"
		_, err := io.WriteString(w, out)
		return err
	})
	return layout(cfg, meta, WebsiteJsonLD(cfg), main)
}

// PostPage renders a single post document: metadata in the head, byline and
// tags, then the pre-rendered body HTML.
func PostPage(cfg SiteConfig, post Post) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Description,
		Author:      post.Author,
		URL:         buildURL(cfg.URL, "blog", post.Slug),
		OGType:      "article",
		OGImage:     post.OGImage,
	}
	main := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := html.EscapeString
		out := "<article>\n<h1>" + esc(post.Title) + "</h1>\n" +
			"<p class=\"byline\">" + esc(post.Author) + " · <time datetime=\"" + esc(post.Date) + "\">" + esc(FormatDate(post.Date)) + "</time></p>\n"
		if len(post.Tags) > 0 {
			out += "<p class=\"tags\">" + esc(JoinTags(post.Tags)) + "</p>\n"
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
		if _, err := io.WriteString(w, post.HTML); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</article>\n")
		return err
	})
	return layout(cfg, meta, BlogPostingJsonLD(cfg, post), main)
}

// NotFound renders the 404 document served for unmatched routes.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       "Page not found",
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	main := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Page not found</h1>\n<p>The page you requested does not exist. <a href=\"/\">Back to the index.</a></p>\n")
		return err
	})
	return layout(cfg, meta, WebsiteJsonLD(cfg), main)
}
