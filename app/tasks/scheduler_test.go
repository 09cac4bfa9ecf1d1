package tasks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/statelens/statelens/app/dataset"
)

type recordingTask struct {
	Task
	mu       sync.Mutex
	calls    int
	failures int
	done     chan struct{}
}

func newRecordingTask(failures int) *recordingTask {
	return &recordingTask{
		Task:     NewTask(TaskTypeRefreshDataset),
		failures: failures,
		done:     make(chan struct{}),
	}
}

func (r *recordingTask) Execute(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.calls <= r.failures {
		return errors.New("transient failure")
	}

	select {
	case <-r.done:
	default:
		close(r.done)
	}
	return nil
}

func (r *recordingTask) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestScheduler(runner PipelineRunner) *Scheduler {
	return NewScheduler(runner, []string{"politics"}, "/tmp/unused.csv", time.Hour)
}

func TestScheduler_ExecutesEnqueuedTask(t *testing.T) {
	scheduler := newTestScheduler(&fakeRunner{table: dataset.NewTable()})
	scheduler.Start()
	defer scheduler.Stop()

	task := newRecordingTask(0)
	if err := scheduler.EnqueueTask(task); err != nil {
		t.Fatalf("Expected enqueue to succeed, got: %v", err)
	}

	select {
	case <-task.done:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for task execution")
	}

	if task.callCount() != 1 {
		t.Errorf("Expected 1 execution, got %d", task.callCount())
	}
}

func TestScheduler_RetriesFailedTask(t *testing.T) {
	scheduler := newTestScheduler(&fakeRunner{table: dataset.NewTable()})
	scheduler.Start()
	defer scheduler.Stop()

	task := newRecordingTask(1)
	if err := scheduler.EnqueueTask(task); err != nil {
		t.Fatalf("Expected enqueue to succeed, got: %v", err)
	}

	select {
	case <-task.done:
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for task retry")
	}

	if task.callCount() != 2 {
		t.Errorf("Expected 2 executions (initial + retry), got %d", task.callCount())
	}

	if task.GetRetryCount() != 1 {
		t.Errorf("Expected retry count 1, got %d", task.GetRetryCount())
	}
}

func TestScheduler_StartEnqueuesRefresh(t *testing.T) {
	runner := &fakeRunner{table: dataset.NewTable()}
	scheduler := newTestScheduler(runner)
	scheduler.Start()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if runner.callCount() > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	scheduler.Stop()

	if runner.callCount() == 0 {
		t.Error("Expected a refresh run to be triggered on startup")
	}
}
