package content

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar date format used by the published field.
const DateLayout = "2006-01-02"

// Metadata is the typed front-matter record of a post.
type Metadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Published   string   `yaml:"published"` // YYYY-MM-DD, empty means draft
	OGImage     string   `yaml:"ogImage"`
}

// Draft reports whether the entry has no published date. Drafts are loaded but
// never routed.
func (m Metadata) Draft() bool {
	return m.Published == ""
}

// ValidateMeta checks a front-matter record against the post schema and
// returns one violation per offending field, or nil when the record is valid.
// Title, description, and author must be non-empty; tags must be present but
// may be an empty list; published, when present, must be a YYYY-MM-DD date.
func ValidateMeta(m Metadata) validation.Errors {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Title) == "" {
		errs["title"] = validation.NewError("content.title_required", "title is required")
	}
	if strings.TrimSpace(m.Description) == "" {
		errs["description"] = validation.NewError("content.description_required", "description is required")
	}
	if strings.TrimSpace(m.Author) == "" {
		errs["author"] = validation.NewError("content.author_required", "author is required")
	}
	if m.Tags == nil {
		errs["tags"] = validation.NewError("content.tags_required", "tags is required (an empty list is allowed)")
	}
	if m.Published != "" {
		if _, err := time.Parse(DateLayout, m.Published); err != nil {
			errs["published"] = validation.NewError("content.published_invalid", "published must be a YYYY-MM-DD date")
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
