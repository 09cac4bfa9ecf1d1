package article

import (
	"strings"
	"time"
)

// Article is a normalized news article. Optional text fields are empty
// strings, never absent, so downstream text operations are always defined.
// Articles are immutable once produced by a source.
type Article struct {
	Title         string
	Description   string
	Body          string
	URL           string // uniqueness key across all sources
	Source        string
	PublishedAt   time.Time
	PublishedDate string // YYYY-MM-DD, what the dataset carries
}

// Composite builds the text used for state matching and leaning scoring:
// title, then description and body when present, separated by single spaces.
func (a Article) Composite() string {
	var sb strings.Builder
	sb.WriteString(a.Title)
	if a.Description != "" {
		sb.WriteString(" ")
		sb.WriteString(a.Description)
	}
	if a.Body != "" {
		sb.WriteString(" ")
		sb.WriteString(a.Body)
	}
	return sb.String()
}
