package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"github.com/statelens/statelens/app/api"
	"github.com/statelens/statelens/app/article"
	"github.com/statelens/statelens/app/cfg"
	"github.com/statelens/statelens/app/config"
	"github.com/statelens/statelens/app/leaning"
	"github.com/statelens/statelens/app/newsapi"
	"github.com/statelens/statelens/app/pipeline"
	"github.com/statelens/statelens/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("Starting StateLens server", "version", appCfg.Version)

	// Load topics and supplementary feed configuration
	topicsCfg, err := config.NewLoader(appCfg.TopicsFile).Load()
	if err != nil {
		slog.Error("Failed to load topics configuration", "file", appCfg.TopicsFile, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded topics configuration",
		"file", appCfg.TopicsFile,
		"topics", len(topicsCfg.Topics),
		"feeds", len(topicsCfg.Feeds))

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	// Article search client and paginated fetcher
	newsClient := newsapi.NewClient(appCfg.NewsAPIKey, appCfg.NewsAPIURL, httpClient)
	fetcher := article.NewFetcher(newsClient, appCfg.PageSize, appCfg.MaxPages, appCfg.Language)

	// Leaning classification model
	ctx := context.Background()
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: appCfg.LLMBaseURL,
		APIKey:  appCfg.LLMAPIKey,
		Model:   appCfg.LLMModel,
	})
	if err != nil {
		slog.Error("Failed to initialize classification model", "model", appCfg.LLMModel, "error", err)
		os.Exit(1)
	}
	scorer := leaning.NewScorer(chatModel, appCfg.LLMRPM)

	// Supplementary RSS sources join the same dedup and enrichment flow
	sources := make([]pipeline.Source, 0, len(topicsCfg.Feeds))
	for i := range topicsCfg.Feeds {
		sources = append(sources, article.NewRSSSource(&topicsCfg.Feeds[i], httpClient, appCfg.UserAgent))
	}

	runner := pipeline.New(fetcher, scorer, sources, appCfg.DaysBack)

	// Background scheduler: refresh on startup, then on the configured interval
	refreshInterval := time.Duration(appCfg.RefreshInterval) * time.Hour
	slog.Info("Starting background scheduler", "interval", refreshInterval.String())
	scheduler := tasks.NewScheduler(runner, topicsCfg.Topics, appCfg.OutputFile, refreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	// HTTP server
	apiHandler := api.NewHandler(appCfg.OutputFile, topicsCfg.Topics, runner, scheduler)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("StateLens server started successfully")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	slog.Info("StateLens server shutdown complete")
}
