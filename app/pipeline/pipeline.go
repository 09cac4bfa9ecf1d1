package pipeline

import (
	"context"
	"log/slog"

	"github.com/statelens/statelens/app/article"
	"github.com/statelens/statelens/app/dataset"
	"github.com/statelens/statelens/app/leaning"
	"github.com/statelens/statelens/app/states"
)

// Pipeline turns topic queries into the enriched dataset: fetch, dedup by
// URL, extract state mentions, score the leaning once per article, and expand
// into one row per (article, state) pair.
type Pipeline struct {
	fetcher  Fetcher
	scorer   Scorer
	sources  []Source
	daysBack int
}

func New(fetcher Fetcher, scorer Scorer, sources []Source, daysBack int) *Pipeline {
	if daysBack <= 0 {
		daysBack = 30
	}
	return &Pipeline{
		fetcher:  fetcher,
		scorer:   scorer,
		sources:  sources,
		daysBack: daysBack,
	}
}

// Run executes one full collection over the given topics. An empty table is
// a valid outcome (no articles, or none mentioning a state) and is the
// caller's signal to skip persisting. Only context cancellation is returned
// as an error; per-topic and per-source failures degrade to fewer articles.
func (p *Pipeline) Run(ctx context.Context, topics []string) (*dataset.Table, error) {
	collection := article.NewCollection()
	fetched := 0
	duplicates := 0

	for _, topic := range topics {
		articles, err := p.fetcher.Fetch(ctx, topic, p.daysBack)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("Topic fetch failed, skipping", "topic", topic, "error", err)
			continue
		}

		slog.Info("Fetched topic", "topic", topic, "articles", len(articles))
		fetched += len(articles)
		for _, a := range articles {
			if !collection.Add(a) {
				duplicates++
			}
		}
	}

	for _, source := range p.sources {
		articles, err := source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			slog.Warn("Source fetch failed, skipping", "source", source.Name(), "error", err)
			continue
		}

		slog.Info("Fetched source", "source", source.Name(), "articles", len(articles))
		fetched += len(articles)
		for _, a := range articles {
			if !collection.Add(a) {
				duplicates++
			}
		}
	}

	table := dataset.NewTable()
	noState := 0
	scored := 0

	for _, a := range collection.Articles() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		text := a.Composite()

		names := states.Extract(text)
		if len(names) == 0 {
			// Not an error: articles without a state mention contribute
			// nothing to the dataset.
			noState++
			continue
		}

		// One scoring call per article; every state the article mentions
		// shares the score.
		score, reason := p.scorer.Score(ctx, text)
		if reason != leaning.ReasonScored {
			slog.Debug("Leaning degraded", "url", a.URL, "reason", reason)
		}
		scored++

		for _, state := range names {
			table.Append(dataset.Row{
				State:            state,
				Title:            a.Title,
				URL:              a.URL,
				Source:           a.Source,
				PoliticalLeaning: score,
				Date:             a.PublishedDate,
			})
		}
	}

	slog.Info("Enrichment completed",
		"topics", len(topics),
		"fetched", fetched,
		"duplicates", duplicates,
		"unique", collection.Len(),
		"without_state", noState,
		"scored", scored,
		"rows", table.Len())

	return table, nil
}
