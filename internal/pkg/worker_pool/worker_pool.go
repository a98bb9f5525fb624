package worker_pool

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

type TaskFunc func(ctx context.Context) (any, error)

// TaskResult holds the outcome of a finished task.
type TaskResult struct {
	ID     string
	Result any
	Err    error
}

type workItem struct {
	id string
	fn TaskFunc
}

// WorkerPool bounds the number of concurrent tasks. Audits fan out one fetch
// per URL through it so a large site request cannot open unbounded
// connections.
type WorkerPool struct {
	tasksCh     chan workItem
	ResultsCh   chan TaskResult
	ctx         context.Context
	cancelFunc  context.CancelFunc
	wg          sync.WaitGroup
	stopOnError bool
	log         *log.Logger
}

// NewWorkerPool starts numWorkers workers. If stopOnError is true the pool
// cancels itself on the first task error.
func NewWorkerPool(parentCtx context.Context, numWorkers int, stopOnError bool, logger *log.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(parentCtx)
	wp := &WorkerPool{
		tasksCh:     make(chan workItem),
		ResultsCh:   make(chan TaskResult),
		ctx:         ctx,
		cancelFunc:  cancel,
		stopOnError: stopOnError,
		log:         logger,
	}
	for i := 1; i <= numWorkers; i++ {
		go wp.worker(i)
	}
	go func() {
		<-wp.ctx.Done()
		// Close on the producer side so workers drain and exit.
		close(wp.tasksCh)
		wp.wg.Wait()
		close(wp.ResultsCh)
	}()
	return wp
}

// Submit queues a task. It fails once the pool has been canceled.
func (wp *WorkerPool) Submit(id string, taskFn TaskFunc) error {
	select {
	case <-wp.ctx.Done():
		wp.log.Warnf("submit rejected for task %s: pool is shutting down", id)
		return errors.New("worker pool is canceled; cannot accept new tasks")
	default:
	}

	select {
	case wp.tasksCh <- workItem{id: id, fn: taskFn}:
		return nil
	case <-wp.ctx.Done():
		wp.log.Warnf("submit failed for task %s: pool was canceled", id)
		return errors.New("worker pool is canceled; task not accepted")
	}
}

func (wp *WorkerPool) worker(workerID int) {
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasksCh:
			if !ok {
				return
			}
			wp.wg.Add(1)
			wp.log.Debugf("worker %d starting task %s", workerID, task.id)
			result, err := task.fn(wp.ctx)
			if err != nil {
				wp.log.WithError(err).Errorf("task %s failed", task.id)
				if wp.stopOnError {
					wp.cancelFunc()
				}
			}
			wp.ResultsCh <- TaskResult{ID: task.id, Result: result, Err: err}
			wp.wg.Done()
		}
	}
}

// Stop cancels the pool. ResultsCh closes after in-flight tasks finish.
func (wp *WorkerPool) Stop() {
	wp.cancelFunc()
}
