package presskit

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
)

// renderToFile renders a templ component into a buffer and writes it to path,
// creating parent directories. Buffering keeps a render failure from leaving
// a half-written document behind.
func renderToFile(path string, cmp templ.Component) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("presskit: create dir for %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		return fmt.Errorf("presskit: render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("presskit: write %s: %w", path, err)
	}
	return nil
}
