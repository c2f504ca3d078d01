package task

import "time"

// DirectRunner invokes Solve on the root task once, with no splitting,
// and records wall-clock duration.
type DirectRunner struct {
	start, stop time.Time
}

// Run solves t directly.
func (r *DirectRunner) Run(t Task) error {
	r.start = time.Now()
	err := t.Solve()
	r.stop = time.Now()
	return err
}

// Duration reports the wall-clock time of the most recent Run.
func (r *DirectRunner) Duration() time.Duration {
	return r.stop.Sub(r.start)
}

// PartitionedRunner recursively drives the task tree on a single
// goroutine, using a fresh SliceStack per recursion level to hold one
// task's children while they are solved.
type PartitionedRunner struct {
	capacity    int
	splits      int
	solves      int
	start, stop time.Time
}

// NewPartitionedRunner returns a PartitionedRunner whose per-level
// SliceStack is preallocated to capacity.
func NewPartitionedRunner(capacity int) *PartitionedRunner {
	return &PartitionedRunner{capacity: capacity}
}

// Run drives t to completion, splitting depth-first and merging on the
// way back up. Children are solved in push order (index 0 first).
func (r *PartitionedRunner) Run(t Task) error {
	r.splits, r.solves = 0, 0
	r.start = time.Now()
	err := r.recurse(t)
	r.stop = time.Now()
	return err
}

func (r *PartitionedRunner) recurse(t Task) error {
	local := NewSliceStack(r.capacity)
	n, err := t.Split(local)
	if err != nil {
		return err
	}
	if n > 0 {
		r.splits++
		for i := 0; i < n; i++ {
			child, err := local.At(i)
			if err != nil {
				return err
			}
			if err := r.recurse(child); err != nil {
				return err
			}
		}
		return t.Merge(local)
	}

	r.solves++
	return t.Solve()
}

// Duration reports the wall-clock time of the most recent Run.
func (r *PartitionedRunner) Duration() time.Duration {
	return r.stop.Sub(r.start)
}

// SolveRatio reports solves / (solves + splits) as a diagnostic; it is
// undefined (NaN-free, just 0) before the first Run.
func (r *PartitionedRunner) SolveRatio() float64 {
	total := r.solves + r.splits
	if total == 0 {
		return 0
	}
	return float64(r.solves) / float64(total)
}

// Splits reports the number of internal split nodes visited.
func (r *PartitionedRunner) Splits() int { return r.splits }

// Solves reports the number of leaves solved.
func (r *PartitionedRunner) Solves() int { return r.solves }

// assertDrained is a debug-time helper for in-package tests to verify that
// a task's Merge implementation drained the pool it was handed, rather
// than leaving stray children behind. Nothing calls it at present, and
// production code never does — the engine does not enforce task-shape
// contracts.
func assertDrained(p Pool) bool {
	return p.Size() == 0
}
