package article

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/statelens/statelens/app/newsapi"
)

const (
	DefaultPageSize = 100
	// DefaultMaxPages caps pagination per query to guard against runaway API
	// consumption even when the service keeps returning full pages.
	DefaultMaxPages = 10
	DefaultLanguage = "eng"

	// pageRetries is the number of additional attempts per page before
	// pagination for the query is abandoned.
	pageRetries = 1
)

// Fetcher retrieves articles for a topic query from the search service,
// advancing page by page until the data runs out, the page ceiling is hit, or
// a page fails for good.
type Fetcher struct {
	client   *newsapi.Client
	limiter  *rate.Limiter
	pageSize int
	maxPages int
	language string
}

// NewFetcher creates a fetcher. Zero pageSize/maxPages and an empty language
// select the defaults. Page requests are paced at one per second to respect
// the service's rate limits.
func NewFetcher(client *newsapi.Client, pageSize, maxPages int, language string) *Fetcher {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &Fetcher{
		client:   client,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		pageSize: pageSize,
		maxPages: maxPages,
		language: language,
	}
}

// Fetch returns the articles matching the query over the window
// [now - daysBack, now]. Page failures never abort the whole call: pagination
// for the query stops and whatever accumulated so far is returned. The only
// error surfaced is context cancellation.
func (f *Fetcher) Fetch(ctx context.Context, query string, daysBack int) ([]Article, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)

	var collected []Article

	for page := 1; page <= f.maxPages; page++ {
		// Pacing between pages; the first wait is satisfied by the initial
		// token so a single-page query is not delayed.
		if err := f.limiter.Wait(ctx); err != nil {
			return collected, err
		}

		req := &newsapi.ArticlesRequest{
			Keyword:                query,
			ArticlesSortBy:         "date",
			ArticlesSortByAsc:      false,
			ArticlesPage:           page,
			ArticlesCount:          f.pageSize,
			ArticleBodyLen:         -1,
			DataType:               []string{"news", "blog"},
			ForceMaxDataTimeWindow: 31,
			Lang:                   f.language,
			DateStart:              start.Format(time.DateOnly),
			DateEnd:                end.Format(time.DateOnly),
		}

		resp, err := f.fetchPage(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return collected, ctx.Err()
			}
			slog.Warn("Page fetch failed, keeping partial results",
				"query", query,
				"page", page,
				"collected", len(collected),
				"error", err)
			break
		}

		results := resp.Articles.Results
		if len(results) == 0 {
			slog.Debug("No more articles", "query", query, "page", page)
			break
		}

		for _, raw := range results {
			collected = append(collected, normalize(raw))
		}

		slog.Debug("Fetched page",
			"query", query,
			"page", page,
			"results", len(results),
			"total_available", resp.Articles.TotalResults)

		if len(results) < f.pageSize {
			// Short page: the service has no more data for this window.
			break
		}
	}

	return collected, nil
}

// fetchPage requests a single page, retrying once on failure before giving up.
func (f *Fetcher) fetchPage(ctx context.Context, req *newsapi.ArticlesRequest) (*newsapi.ArticlesResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= pageRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := f.client.GetArticles(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// normalize converts a raw search result into the internal article shape.
// Missing optional fields default to empty strings or the current time.
func normalize(raw newsapi.RawArticle) Article {
	description := raw.Description
	if description == "" {
		description = raw.Extract
	}

	source := raw.Source.Title
	if source == "" {
		source = "Unknown"
	}

	publishedAt := time.Now()
	if raw.DateTime != "" {
		if parsed, err := time.Parse(time.RFC3339, raw.DateTime); err == nil {
			publishedAt = parsed
		}
	}

	date := raw.Date
	if date == "" {
		date = publishedAt.Format(time.DateOnly)
	}

	return Article{
		Title:         raw.Title,
		Description:   description,
		Body:          raw.Body,
		URL:           raw.URL,
		Source:        source,
		PublishedAt:   publishedAt,
		PublishedDate: date,
	}
}
