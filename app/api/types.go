package api

import (
	"github.com/statelens/statelens/app/tasks"
)

type Handler struct {
	datasetPath string
	topics      []string
	runner      tasks.PipelineRunner
	scheduler   tasks.TaskSchedulerInterface
}
