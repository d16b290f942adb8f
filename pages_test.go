package presskit

import (
	"errors"
	"strings"
	"testing"

	"github.com/eringen/presskit/content"
)

func testEntry(slug, published string) content.Entry {
	return content.Entry{
		Slug: slug,
		Meta: content.Metadata{
			Title:       "Title " + slug,
			Description: "Description " + slug,
			Author:      "Erin",
			Tags:        []string{"go"},
			Published:   published,
		},
		Body: []byte("hello **" + slug + "**"),
	}
}

func TestBuildPagesOnePerPublishedEntry(t *testing.T) {
	s := New(Config{})
	entries := map[string]content.Entry{
		"a": testEntry("a", "2025-01-01"),
		"b": testEntry("b", "2025-01-02"),
		"c": testEntry("c", ""), // draft
	}

	posts, err := s.buildPages(entries)
	if err != nil {
		t.Fatalf("buildPages failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(posts))
	}
	for _, p := range posts {
		if p.Slug == "c" {
			t.Error("draft entry must not produce a page unit")
		}
		if p.Link != "/blog/"+p.Slug+"/" {
			t.Errorf("Link = %q, want routed path for %s", p.Link, p.Slug)
		}
		if !strings.Contains(p.HTML, "<strong>"+p.Slug+"</strong>") {
			t.Errorf("page %s body not converted: %q", p.Slug, p.HTML)
		}
		if p.Title == "" || p.Description == "" || p.Author == "" || p.Date == "" {
			t.Errorf("page %s is partially populated: %+v", p.Slug, p)
		}
	}
}

func TestBuildPagesEmptySet(t *testing.T) {
	s := New(Config{})
	posts, err := s.buildPages(map[string]content.Entry{
		"draft": testEntry("draft", ""),
	})
	if err != nil {
		t.Fatalf("buildPages failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no pages, got %d", len(posts))
	}
}

func TestBuildPagesSortedNewestFirst(t *testing.T) {
	s := New(Config{})
	entries := map[string]content.Entry{
		"old":    testEntry("old", "2024-01-01"),
		"newest": testEntry("newest", "2025-06-26"),
		"mid":    testEntry("mid", "2025-02-04"),
	}

	posts, err := s.buildPages(entries)
	if err != nil {
		t.Fatalf("buildPages failed: %v", err)
	}
	got := []string{posts[0].Slug, posts[1].Slug, posts[2].Slug}
	want := []string{"newest", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order = %v, want %v", got, want)
		}
	}
}

func TestBuildPagesConversionFailureIsFatal(t *testing.T) {
	s := New(Config{}, WithConverter(func([]byte) ([]byte, error) {
		return nil, errors.New("boom")
	}))
	posts, err := s.buildPages(map[string]content.Entry{
		"a": testEntry("a", "2025-01-01"),
		"b": testEntry("b", "2025-01-02"),
	})
	if err == nil {
		t.Fatal("expected conversion error, got nil")
	}
	if posts != nil {
		t.Errorf("no pages may be exposed after a failed conversion, got %d", len(posts))
	}
}

func TestSortPostsByDateStable(t *testing.T) {
	s := New(Config{})
	entries := map[string]content.Entry{
		"same-a": testEntry("same-a", "2025-01-01"),
		"same-b": testEntry("same-b", "2025-01-01"),
	}
	posts, err := s.buildPages(entries)
	if err != nil {
		t.Fatalf("buildPages failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(posts))
	}
}
