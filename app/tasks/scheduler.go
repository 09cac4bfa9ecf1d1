package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

// Scheduler runs dataset refreshes on a fixed interval plus any ad-hoc tasks
// enqueued through the API. It deliberately runs a single worker: pipeline
// runs must never overlap, and the refresh task rewrites the one shared
// artifact.
type Scheduler struct {
	runner     PipelineRunner
	topics     []string
	outputPath string
	interval   time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	taskQueue  chan TaskInterface
}

func NewScheduler(runner PipelineRunner, topics []string, outputPath string, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		runner:     runner,
		topics:     topics,
		outputPath: outputPath,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
		taskQueue:  make(chan TaskInterface, 16),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.worker()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueRefresh()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueRefresh()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueRefresh() {
	task := NewRefreshDatasetTask(s.runner, s.topics, s.outputPath)
	if err := s.EnqueueTask(task); err != nil {
		slog.Warn("Failed to enqueue RefreshDatasetTask", "error", err)
	}
}

func (s *Scheduler) worker() {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(task TaskInterface) {
	task.Start()

	err := task.Execute(s.ctx)
	if err == nil {
		return
	}

	slog.Error("Task execution failed",
		"type", string(task.GetType()),
		"id", task.GetID(),
		"retry_count", task.GetRetryCount(),
		"error", err)

	if !task.CanRetry() {
		slog.Error("Task failed after maximum retries",
			"type", string(task.GetType()),
			"id", task.GetID(),
			"retry_count", task.GetRetryCount(),
			"max_retries", task.GetMaxRetries(),
			"last_error", err)
		return
	}

	task.IncrementRetryCount()
	retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
	if retryDelay > 30*time.Second {
		retryDelay = 30 * time.Second
	}

	slog.Warn("Task retry scheduled",
		"type", string(task.GetType()),
		"id", task.GetID(),
		"retry_count", task.GetRetryCount(),
		"max_retries", task.GetMaxRetries(),
		"delay", retryDelay.String())

	go func() {
		select {
		case <-s.ctx.Done():
			slog.Debug("Scheduler stopped, skipping task retry",
				"type", string(task.GetType()), "id", task.GetID())
		case <-time.After(retryDelay):
			if retryErr := s.EnqueueTask(task); retryErr != nil {
				slog.Error("Failed to re-enqueue task for retry",
					"type", string(task.GetType()),
					"id", task.GetID(),
					"error", retryErr)
			}
		}
	}()
}
