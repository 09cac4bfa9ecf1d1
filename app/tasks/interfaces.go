package tasks

import (
	"context"

	"github.com/statelens/statelens/app/dataset"
	"github.com/statelens/statelens/app/pipeline"
)

// PipelineRunner executes one full collection run over the given topics.
type PipelineRunner interface {
	Run(ctx context.Context, topics []string) (*dataset.Table, error)
}

var _ PipelineRunner = (*pipeline.Pipeline)(nil)

// TaskSchedulerInterface is what the API layer needs from the scheduler:
// lifecycle control and the ability to enqueue ad-hoc refreshes.
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
