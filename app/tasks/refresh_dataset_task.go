package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/statelens/statelens/app/dataset"
)

// RefreshDatasetTask regenerates the enriched dataset from scratch and swaps
// the persisted artifact. An empty result is a distinct "no data" outcome:
// the task succeeds without touching the previous artifact.
type RefreshDatasetTask struct {
	Task
	runner     PipelineRunner
	topics     []string
	outputPath string
}

func NewRefreshDatasetTask(runner PipelineRunner, topics []string, outputPath string) *RefreshDatasetTask {
	return &RefreshDatasetTask{
		Task:       NewTask(TaskTypeRefreshDataset),
		runner:     runner,
		topics:     topics,
		outputPath: outputPath,
	}
}

func (t *RefreshDatasetTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	table, err := t.runner.Run(ctx, t.topics)
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}

	if table.Empty() {
		slog.Info("Task completed without data, artifact left untouched",
			"type", string(t.Type),
			"topics", len(t.topics),
			"duration", t.GetDuration())
		return nil
	}

	if err := dataset.WriteCSV(t.outputPath, table); err != nil {
		return fmt.Errorf("failed to persist dataset: %w", err)
	}

	slog.Info("Task completed",
		"type", string(t.Type),
		"topics", len(t.topics),
		"rows", table.Len(),
		"output", t.outputPath,
		"duration", t.GetDuration())

	return nil
}
