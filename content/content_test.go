package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePost = `---
title: Hello World
description: First post
author: Erin
tags:
  - go
  - web
published: 2025-01-23
---
# Hello

Body text here.
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadValidPost(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello-world.md", samplePost)

	entries, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e, ok := entries["hello-world"]
	if !ok {
		t.Fatalf("entry not keyed by slug, got keys %v", keys(entries))
	}
	if e.Meta.Title != "Hello World" {
		t.Errorf("Title = %q, want %q", e.Meta.Title, "Hello World")
	}
	if e.Meta.Description != "First post" {
		t.Errorf("Description = %q, want %q", e.Meta.Description, "First post")
	}
	if e.Meta.Author != "Erin" {
		t.Errorf("Author = %q, want %q", e.Meta.Author, "Erin")
	}
	if len(e.Meta.Tags) != 2 || e.Meta.Tags[0] != "go" || e.Meta.Tags[1] != "web" {
		t.Errorf("Tags = %v, want [go web]", e.Meta.Tags)
	}
	if e.Meta.Published != "2025-01-23" {
		t.Errorf("Published = %q, want 2025-01-23", e.Meta.Published)
	}
	if !strings.Contains(string(e.Body), "Body text here.") {
		t.Errorf("body missing content: %q", e.Body)
	}
	if strings.Contains(string(e.Body), "title:") {
		t.Errorf("body still contains front matter: %q", e.Body)
	}
}

func TestLoadNestedSlugIsBaseName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("2025", "nested-post.md"), samplePost)

	entries, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := entries["nested-post"]; !ok {
		t.Errorf("expected slug from base name, got keys %v", keys(entries))
	}
}

func TestLoadDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("a", "post.md"), samplePost)
	writeFile(t, dir, filepath.Join("b", "post.md"), samplePost)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected duplicate slug error, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate slug") {
		t.Errorf("error should name the collision: %v", err)
	}
}

func TestLoadInvalidFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.md", "---\ndescription: no title\nauthor: Erin\ntags: []\n---\nbody\n")

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if _, ok := schemaErr.Fields["title"]; !ok {
		t.Errorf("expected title violation, got %v", schemaErr.Fields)
	}
}

func TestLoadMissingFrontMatterBlock(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.md", "just markdown, no metadata\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("file without front matter should fail validation")
	}
}

func TestLoadIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "not content")
	writeFile(t, dir, "post.md", samplePost)

	entries, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestLoadEmptyRoot(t *testing.T) {
	entries, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("empty content root should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestDiscoverExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "x")
	writeFile(t, dir, "b.markdown", "x")
	writeFile(t, dir, "c.MD", "x")
	writeFile(t, dir, "d.html", "x")

	files, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 markdown files, got %d: %v", len(files), files)
	}
}

func keys(entries map[string]Entry) []string {
	out := make([]string, 0, len(entries))
	for k := range entries {
		out = append(out, k)
	}
	return out
}
