// Package content loads markdown files with YAML front matter from a content
// root and validates them against the post schema. Loading is fail-fast: one
// malformed file aborts the whole load.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Entry is one content file: a slug derived from the file name, validated
// front matter, and the raw markdown body. Entries are immutable after load.
type Entry struct {
	Slug string
	Meta Metadata
	Body []byte
}

// Load discovers all markdown files under root, parses and validates each,
// and returns entries keyed by slug. Two files producing the same slug (same
// base name in different subdirectories) are rejected rather than silently
// overwriting each other.
func Load(root string) (map[string]Entry, error) {
	files, err := Discover(root)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]Entry, len(files))
	paths := make(map[string]string, len(files))
	for _, path := range files {
		entry, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := paths[entry.Slug]; ok {
			return nil, fmt.Errorf("content: duplicate slug %q (%s and %s)", entry.Slug, prev, path)
		}
		paths[entry.Slug] = path
		entries[entry.Slug] = entry
	}
	return entries, nil
}

// Discover walks root and returns the paths of all markdown files in walk
// order. Discovery is separate from parsing so each is testable on its own.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk %s: %w", root, err)
	}
	return files, nil
}

func loadFile(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, fmt.Errorf("content: open %s: %w", path, err)
	}
	defer f.Close()

	var meta Metadata
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return Entry{}, fmt.Errorf("content: parse front matter in %s: %w", path, err)
	}
	if errs := ValidateMeta(meta); errs != nil {
		return Entry{}, &SchemaError{Path: path, Fields: errs}
	}
	return Entry{Slug: slugFromPath(path), Meta: meta, Body: body}, nil
}

// slugFromPath derives the routed identifier from the file's base name,
// without its extension, as written.
func slugFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
