// Package markdown converts post bodies from Markdown to HTML using goldmark,
// exposed both as raw bytes and as a templ component.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// registry maps configuration names to goldmark extenders. Unknown names are
// ignored so a site config can carry extensions this version does not know.
var registry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// Converter renders Markdown bodies to HTML. It is stateless and safe for
// concurrent use across goroutines.
type Converter struct {
	engine goldmark.Markdown
}

// New builds a Converter with the named extensions enabled, in order, with
// duplicates and unknown names dropped.
func New(extensions ...string) *Converter {
	var exts []goldmark.Extender
	seen := make(map[string]bool, len(extensions))
	for _, name := range extensions {
		ext, ok := registry[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		exts = append(exts, ext)
	}
	engine := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Converter{engine: engine}
}

// Default returns a Converter with the GFM extension set.
func Default() *Converter {
	return New("gfm")
}

// Convert renders src to HTML. A conversion failure is a hard error for the
// caller; there is no best-effort output.
func (c *Converter) Convert(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.engine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.Bytes(), nil
}

// Markdown returns a templ.Component that renders content as HTML.
func (c *Converter) Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := c.Convert([]byte(content))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
