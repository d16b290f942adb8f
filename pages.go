package presskit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/eringen/presskit/content"
	"github.com/eringen/presskit/views"
)

// buildPages turns loaded entries into fully-resolved page units. Drafts
// (entries with no published date) produce no unit. Body conversion runs in
// one goroutine per entry; the join below guarantees no partially-built page
// is ever exposed. The result is sorted newest first for the index.
func (s *Site) buildPages(entries map[string]content.Entry) ([]views.Post, error) {
	published := make([]content.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Meta.Draft() {
			continue
		}
		published = append(published, e)
	}
	// Map iteration order is random; fix it by slug so builds on unchanged
	// input are byte-identical even when dates tie.
	sort.Slice(published, func(i, j int) bool {
		return published[i].Slug < published[j].Slug
	})

	posts := make([]views.Post, len(published))
	errs := make([]error, len(published))
	var wg sync.WaitGroup
	for i, e := range published {
		wg.Add(1)
		go func(i int, e content.Entry) {
			defer wg.Done()
			html, err := s.convert(e.Body)
			if err != nil {
				errs[i] = fmt.Errorf("presskit: convert %s: %w", e.Slug, err)
				return
			}
			posts[i] = views.Post{
				Slug:        e.Slug,
				Title:       e.Meta.Title,
				Description: e.Meta.Description,
				Author:      e.Meta.Author,
				Date:        e.Meta.Published,
				Tags:        e.Meta.Tags,
				OGImage:     e.Meta.OGImage,
				Link:        "/blog/" + e.Slug + "/",
				HTML:        string(html),
			}
		}(i, e)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sortPostsByDate(posts)
	return posts, nil
}

// sortPostsByDate orders posts by published date descending. ISO dates
// compare correctly as strings; ties keep their incoming order.
func sortPostsByDate(posts []views.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}
