package cfg

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	if Version == "" {
		return "unknown"
	}
	return Version
}

type rawCfg struct {
	// Article search service
	NewsAPIKey string `long:"news-api-key" env:"NEWS_API_KEY" description:"Article search service API key (required)" required:"true"`
	NewsAPIURL string `long:"news-api-url" env:"NEWS_API_URL" default:"https://newsapi.ai" description:"Article search service base URL"`
	DaysBack   int    `long:"days-back" env:"DAYS_BACK" default:"30" description:"Lookback window in days for article retrieval"`
	PageSize   int    `long:"page-size" env:"PAGE_SIZE" default:"100" description:"Articles per search page"`
	MaxPages   int    `long:"max-pages" env:"MAX_PAGES" default:"10" description:"Page ceiling per topic query"`
	Language   string `long:"language" env:"LANGUAGE" default:"eng" description:"Article language filter"`

	// Leaning classification service
	LLMAPIKey  string `long:"llm-api-key" env:"OPENAI_API_KEY" description:"Classification service API key (required)" required:"true"`
	LLMBaseURL string `long:"llm-base-url" env:"LLM_BASE_URL" description:"Classification service base URL (empty selects the provider default)"`
	LLMModel   string `long:"llm-model" env:"LLM_MODEL" default:"gpt-4" description:"Classification model identifier"`
	LLMRPM     int    `long:"llm-rpm" env:"LLM_RPM" default:"60" description:"Classification requests per minute (0 disables throttling)"`

	// Application configuration
	TopicsFile      string `long:"topics-file" env:"TOPICS_FILE" default:"./topics.yml" description:"Topics configuration file"`
	OutputFile      string `long:"output-file" env:"OUTPUT_FILE" default:"./statistics/news_political_data.csv" description:"Output dataset path"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"24" description:"Dataset refresh interval in hours"`
	APIAccessKey    string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for mutating endpoints (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"StateLens/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses configuration from command-line flags and environment
// variables. It returns (nil, nil) when help was requested. The result is
// passed explicitly into component constructors; there is no package-global
// accessor.
func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	config := &Cfg{
		NewsAPIKey:      raw.NewsAPIKey,
		NewsAPIURL:      raw.NewsAPIURL,
		DaysBack:        raw.DaysBack,
		PageSize:        raw.PageSize,
		MaxPages:        raw.MaxPages,
		Language:        raw.Language,
		LLMAPIKey:       raw.LLMAPIKey,
		LLMBaseURL:      raw.LLMBaseURL,
		LLMModel:        raw.LLMModel,
		LLMRPM:          raw.LLMRPM,
		TopicsFile:      raw.TopicsFile,
		OutputFile:      raw.OutputFile,
		Port:            raw.Port,
		RefreshInterval: raw.RefreshInterval,
		APIAccessKey:    raw.APIAccessKey,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(config.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", config.Timezone, err)
	}

	return config, nil
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
