package newsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	DefaultBaseURL   = "https://newsapi.ai"
	articlesEndpoint = "/api/v4/article/getArticles"
)

// Client talks to the article search service.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search service client. An empty baseURL selects the
// production endpoint; tests point it at a local server. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(apiKey string, baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetArticles executes one page of an article search. The client fills in the
// action, the result type and the API key; everything else comes from the
// request.
func (c *Client) GetArticles(ctx context.Context, req *ArticlesRequest) (*ArticlesResponse, error) {
	req.Action = "getArticles"
	req.APIKey = c.apiKey
	if req.ResultType == "" {
		req.ResultType = "articles"
	}
	if req.ArticlesPage == 0 {
		req.ArticlesPage = 1
	}
	if req.ArticlesCount == 0 {
		req.ArticlesCount = 100
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+articlesEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service error (status %d): %s", resp.StatusCode, truncate(body, 500))
	}

	var articlesResp ArticlesResponse
	if err := json.Unmarshal(body, &articlesResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &articlesResp, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
