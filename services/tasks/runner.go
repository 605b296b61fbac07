package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"

	"fileanissue/core/log"
	"fileanissue/utils"
)

// TaskWrapper decorates a task before it runs, e.g. to alert operators on failure
type TaskWrapper func(name string, task func() error) func() error

// TaskRunner runs fire-and-forget tasks on a bounded worker pool.
// Failures are logged and never reach the submitter.
type TaskRunner struct {
	pool    *workerpool.WorkerPool
	wrapper TaskWrapper

	mu      sync.RWMutex
	stopped bool
}

func NewTaskRunner(workers int, wrapper TaskWrapper) *TaskRunner {
	utils.AssertInvariant(workers > 0, "task runner needs at least one worker")
	return &TaskRunner{
		pool:    workerpool.New(workers),
		wrapper: wrapper,
	}
}

// Submit queues task and returns immediately. The task context keeps ctx's values
// but is not cancelled when ctx is, so work outlives the originating HTTP request.
func (r *TaskRunner) Submit(ctx context.Context, name string, task func(ctx context.Context) error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		log.WarnContext(ctx, "⚠️ Task runner stopped, dropping task", "task", name)
		return
	}

	taskCtx := context.WithoutCancel(ctx)
	run := func() error {
		return task(taskCtx)
	}
	if r.wrapper != nil {
		run = r.wrapper(name, run)
	}

	r.pool.Submit(func() {
		r.execute(taskCtx, name, run)
	})
}

func (r *TaskRunner) execute(ctx context.Context, name string, run func() error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			log.ErrorContext(ctx, "❌ Task panicked", "task", name, "panic", fmt.Sprint(rec))
		}
	}()

	if err := run(); err != nil {
		log.ErrorContext(ctx, "❌ Task failed", "task", name, "error", err, "duration", time.Since(start))
		return
	}
	log.InfoContext(ctx, "✅ Task completed", "task", name, "duration", time.Since(start))
}

// WaitingQueueSize returns the number of tasks not yet picked up by a worker
func (r *TaskRunner) WaitingQueueSize() int {
	return r.pool.WaitingQueueSize()
}

// StopWait stops accepting tasks and blocks until every queued task has run
func (r *TaskRunner) StopWait() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()

	r.pool.StopWait()
}
