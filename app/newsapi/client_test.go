package newsapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetArticles_RequestShape(t *testing.T) {
	var received ArticlesRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/api/v4/article/getArticles" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(ArticlesResponse{})
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, server.Client())
	_, err := client.GetArticles(context.Background(), &ArticlesRequest{
		Keyword:        "election",
		ArticlesSortBy: "date",
		ArticlesPage:   2,
		ArticlesCount:  100,
		ArticleBodyLen: -1,
		DataType:       []string{"news", "blog"},
		Lang:           "eng",
		DateStart:      "2025-01-01",
		DateEnd:        "2025-01-31",
	})
	if err != nil {
		t.Fatal(err)
	}

	if received.Action != "getArticles" {
		t.Errorf("Expected action 'getArticles', got '%s'", received.Action)
	}
	if received.APIKey != "test-key" {
		t.Errorf("Expected API key to be filled in, got '%s'", received.APIKey)
	}
	if received.ResultType != "articles" {
		t.Errorf("Expected default result type 'articles', got '%s'", received.ResultType)
	}
	if received.Keyword != "election" {
		t.Errorf("Expected keyword 'election', got '%s'", received.Keyword)
	}
	if received.ArticlesPage != 2 {
		t.Errorf("Expected page 2, got %d", received.ArticlesPage)
	}
	if received.ArticleBodyLen != -1 {
		t.Errorf("Expected full body request (-1), got %d", received.ArticleBodyLen)
	}
}

func TestGetArticles_ParsesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"articles": {
				"totalResults": 253,
				"results": [
					{
						"title": "Senate vote",
						"body": "Full body text",
						"url": "https://example.com/a",
						"source": {"title": "Example News"},
						"dateTime": "2025-01-15T10:30:00Z",
						"date": "2025-01-15"
					}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, server.Client())
	resp, err := client.GetArticles(context.Background(), &ArticlesRequest{Keyword: "politics"})
	if err != nil {
		t.Fatal(err)
	}

	if resp.Articles.TotalResults != 253 {
		t.Errorf("Expected 253 total results, got %d", resp.Articles.TotalResults)
	}
	if len(resp.Articles.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(resp.Articles.Results))
	}
	article := resp.Articles.Results[0]
	if article.Title != "Senate vote" {
		t.Errorf("Expected title 'Senate vote', got '%s'", article.Title)
	}
	if article.Source.Title != "Example News" {
		t.Errorf("Expected source 'Example News', got '%s'", article.Source.Title)
	}
}

func TestGetArticles_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("key", server.URL, server.Client())
	_, err := client.GetArticles(context.Background(), &ArticlesRequest{Keyword: "politics"})
	if err == nil {
		t.Fatal("Expected error on non-200 status")
	}
}

func TestGetArticles_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient("key", server.URL, server.Client())
	_, err := client.GetArticles(context.Background(), &ArticlesRequest{Keyword: "politics"})
	if err == nil {
		t.Fatal("Expected error on malformed response")
	}
}
