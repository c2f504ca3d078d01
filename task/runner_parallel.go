package task

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ParallelRunner drives numWorkers goroutines against one shared
// ConcurrentPool and one shared outstanding-task counter.
//
// Termination is quiescence-driven: outstanding reaches zero exactly when
// no task is in the pool and no worker holds one. A worker that finds the
// pool empty sleeps on a condition variable and re-checks both
// termination predicates under the lock before actually sleeping, which
// is what avoids the lost-wakeup race between a concurrent push and the
// sleep.
type ParallelRunner struct {
	numWorkers int
	pool       *ConcurrentPool

	outstanding    atomic.Int64
	terminated     atomic.Bool
	activeWorkers  atomic.Int64
	tasksProcessed atomic.Int64
	tasksCreated   atomic.Int64

	mu   sync.Mutex
	cond *sync.Cond

	errOnce  sync.Once
	firstErr error

	start, stop time.Time
	runID       uuid.UUID

	// Log receives run lifecycle events (start, finish, worker failures)
	// at Info/Error level. Defaults to logrus.StandardLogger().
	Log *logrus.Logger
}

// NewParallelRunner returns a ParallelRunner with numWorkers goroutines.
// numWorkers <= 0 falls back to runtime.NumCPU(), floored at 4.
func NewParallelRunner(numWorkers int) *ParallelRunner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
		if numWorkers < 4 {
			numWorkers = 4
		}
	}
	r := &ParallelRunner{
		numWorkers: numWorkers,
		pool:       NewConcurrentPool(),
		Log:        logrus.StandardLogger(),
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Run pushes root into the pool as the sole outstanding task, launches
// numWorkers workers, and blocks until the pool quiesces and every worker
// has exited. It returns the first error reported by any worker, if any.
func (r *ParallelRunner) Run(root Task) error {
	r.terminated.Store(false)
	r.firstErr = nil
	r.errOnce = sync.Once{}
	r.tasksProcessed.Store(0)
	r.tasksCreated.Store(1) // root counts
	r.outstanding.Store(1)
	r.pool.Clear()
	r.pool.Push(root)
	r.runID = uuid.New()

	r.Log.WithFields(logrus.Fields{
		"run_id":  r.runID,
		"workers": r.numWorkers,
	}).Info("parallel run started")

	r.start = time.Now()

	var wg sync.WaitGroup
	wg.Add(r.numWorkers)
	for i := 0; i < r.numWorkers; i++ {
		go func(id int) {
			defer wg.Done()
			r.worker(id)
		}(i)
	}
	wg.Wait()

	r.stop = time.Now()

	logEntry := r.Log.WithFields(logrus.Fields{
		"run_id":    r.runID,
		"processed": r.tasksProcessed.Load(),
		"created":   r.tasksCreated.Load(),
		"duration":  r.stop.Sub(r.start),
	})
	if r.firstErr != nil {
		logEntry.WithError(r.firstErr).Error("parallel run aborted")
	} else {
		logEntry.Info("parallel run finished")
	}

	return r.firstErr
}

func (r *ParallelRunner) worker(id int) {
	r.activeWorkers.Add(1)
	defer r.activeWorkers.Add(-1)

	for {
		if r.terminated.Load() {
			return
		}

		t, ok := r.pool.Pop()
		if !ok {
			r.mu.Lock()
			for !r.terminated.Load() && r.pool.Empty() && r.outstanding.Load() != 0 {
				r.cond.Wait()
			}
			term := r.terminated.Load()
			r.mu.Unlock()

			if term {
				return
			}
			if r.outstanding.Load() == 0 && r.pool.Empty() {
				return
			}
			continue
		}

		n, err := t.Split(r.pool)
		if err != nil {
			r.fail(err)
			continue
		}
		if n > 0 {
			r.tasksCreated.Add(int64(n))
			r.outstanding.Add(int64(n))
		} else {
			if err := t.Solve(); err != nil {
				r.fail(err)
				continue
			}
			r.tasksProcessed.Add(1)
		}

		remaining := r.outstanding.Add(-1)
		r.mu.Lock()
		if remaining == 0 {
			r.cond.Broadcast()
		} else {
			r.cond.Signal()
		}
		r.mu.Unlock()
	}
}

// fail records the first error reported by any worker and requests
// termination of the whole run. Workers finish their in-flight task
// before observing terminated; run is non-cancellable mid-task by design.
func (r *ParallelRunner) fail(err error) {
	r.errOnce.Do(func() {
		r.firstErr = err
	})
	r.terminated.Store(true)
	r.mu.Lock()
	r.cond.Broadcast()
	r.mu.Unlock()
}

// Stop requests termination of an in-flight run. Workers finish their
// current task (no mid-task interruption) and then exit; Run returns once
// they have all been joined.
func (r *ParallelRunner) Stop() {
	r.terminated.Store(true)
	r.mu.Lock()
	r.cond.Broadcast()
	r.mu.Unlock()
}

// TasksProcessed reports the number of leaves solved in the most recent run.
func (r *ParallelRunner) TasksProcessed() int64 { return r.tasksProcessed.Load() }

// TasksCreated reports the number of tasks that ever entered the system
// (root counts as 1) in the most recent run.
func (r *ParallelRunner) TasksCreated() int64 { return r.tasksCreated.Load() }

// ActiveWorkers reports how many workers are currently alive.
func (r *ParallelRunner) ActiveWorkers() int64 { return r.activeWorkers.Load() }

// Duration reports the wall-clock time of the most recent Run.
func (r *ParallelRunner) Duration() time.Duration { return r.stop.Sub(r.start) }

// RunID returns the correlation ID of the most recent Run, for matching
// log lines to a specific invocation.
func (r *ParallelRunner) RunID() uuid.UUID { return r.runID }

// NumWorkers reports the resolved worker count (after the <=0 fallback).
func (r *ParallelRunner) NumWorkers() int { return r.numWorkers }
