package article

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"github.com/statelens/statelens/app/config"
)

// RSSSource supplements the search service with a configured RSS/Atom feed.
// Feed items are mapped into the same Article shape and flow through the
// identical enrichment path. When the feed carries no usable body and the
// feed is configured for content extraction, the item's page is fetched and
// reduced to readable text.
type RSSSource struct {
	feedConfig *config.FeedConfig
	parser     *gofeed.Parser
	httpClient *http.Client
	userAgent  string
}

func NewRSSSource(feedConfig *config.FeedConfig, httpClient *http.Client, userAgent string) *RSSSource {
	return &RSSSource{
		feedConfig: feedConfig,
		parser:     gofeed.NewParser(),
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

func (s *RSSSource) Name() string {
	return s.feedConfig.Name
}

// Fetch downloads and parses the feed, returning its items as articles.
func (s *RSSSource) Fetch(ctx context.Context) ([]Article, error) {
	data, err := s.fetch(ctx, s.feedConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		articles = append(articles, s.normalizeItem(ctx, feed, item))
	}

	return articles, nil
}

func (s *RSSSource) normalizeItem(ctx context.Context, feed *gofeed.Feed, item *gofeed.Item) Article {
	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	}

	body := item.Content
	if body == "" && s.feedConfig.ExtractContent && item.Link != "" {
		extracted, err := s.extractContent(ctx, item.Link)
		if err != nil {
			slog.Debug("Content extraction failed, keeping bare item",
				"feed", s.feedConfig.Name,
				"link", item.Link,
				"error", err)
		} else {
			body = extracted
		}
	}

	url := item.Link
	if url == "" {
		url = item.GUID
	}
	source := s.feedConfig.Name
	if source == "" {
		source = feed.Title
	}
	if source == "" {
		source = "Unknown"
	}

	return Article{
		Title:         item.Title,
		Description:   item.Description,
		Body:          body,
		URL:           url,
		Source:        source,
		PublishedAt:   publishedAt,
		PublishedDate: publishedAt.Format(time.DateOnly),
	}
}

// extractContent fetches the item's page and reduces it to readable plain
// text for state matching and scoring.
func (s *RSSSource) extractContent(ctx context.Context, link string) (string, error) {
	data, err := s.fetch(ctx, link)
	if err != nil {
		return "", err
	}

	pageURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("failed to parse item URL: %w", err)
	}

	page, err := readability.FromReader(bytes.NewReader(data), pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	if page.TextContent == "" {
		return "", fmt.Errorf("no content extracted from %s", link)
	}

	return page.TextContent, nil
}

func (s *RSSSource) fetch(ctx context.Context, target string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.feedConfig.GetTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
