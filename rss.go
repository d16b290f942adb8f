package presskit

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/eringen/presskit/content"
	"github.com/eringen/presskit/views"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeFeed emits feed.xml as RSS 2.0, posts already sorted newest first.
func writeFeed(path string, site views.SiteConfig, posts []views.Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse(content.DateLayout, p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(site.URL, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       site.Name,
			Link:        site.URL,
			Description: site.Description,
			Items:       items,
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("presskit: write feed: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	if err := xml.NewEncoder(f).Encode(feed); err != nil {
		return fmt.Errorf("presskit: encode feed: %w", err)
	}
	return nil
}
