package pipeline

import (
	"context"

	"github.com/statelens/statelens/app/article"
	"github.com/statelens/statelens/app/leaning"
)

// Fetcher retrieves articles for a topic query over a lookback window.
type Fetcher interface {
	Fetch(ctx context.Context, query string, daysBack int) ([]article.Article, error)
}

// Scorer rates the political leaning of a text, degrading to neutral with a
// reason code on any failure.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, leaning.Reason)
}

// Source is a supplementary article source (an RSS feed) whose results join
// the search results before enrichment.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]article.Article, error)
}

var _ Fetcher = (*article.Fetcher)(nil)
var _ Scorer = (*leaning.Scorer)(nil)
var _ Source = (*article.RSSSource)(nil)
