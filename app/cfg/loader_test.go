package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestConfigFields(t *testing.T) {
	config := &Cfg{
		NewsAPIKey:      "news-key",
		NewsAPIURL:      "https://newsapi.ai",
		DaysBack:        30,
		PageSize:        100,
		MaxPages:        10,
		Language:        "eng",
		LLMAPIKey:       "llm-key",
		LLMModel:        "gpt-4",
		LLMRPM:          60,
		TopicsFile:      "./topics.yml",
		OutputFile:      "./statistics/news_political_data.csv",
		Port:            "8080",
		RefreshInterval: 24,
		UserAgent:       "Test Agent",
		Timezone:        "UTC",
		Debug:           true,
	}

	if config.NewsAPIKey != "news-key" {
		t.Errorf("Expected news API key 'news-key', got '%s'", config.NewsAPIKey)
	}
	if config.DaysBack != 30 {
		t.Errorf("Expected days back 30, got %d", config.DaysBack)
	}
	if config.PageSize != 100 {
		t.Errorf("Expected page size 100, got %d", config.PageSize)
	}
	if config.MaxPages != 10 {
		t.Errorf("Expected max pages 10, got %d", config.MaxPages)
	}
	if config.LLMModel != "gpt-4" {
		t.Errorf("Expected model 'gpt-4', got '%s'", config.LLMModel)
	}
	if config.RefreshInterval != 24 {
		t.Errorf("Expected refresh interval 24, got %d", config.RefreshInterval)
	}
	if config.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", config.Port)
	}
	if !config.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestApplyTimezone(t *testing.T) {
	if err := applyTimezone("UTC"); err != nil {
		t.Errorf("Expected UTC to be valid, got %v", err)
	}
	if err := applyTimezone("Not/AZone"); err == nil {
		t.Error("Expected error for invalid timezone")
	}
}
