// Package task provides the polymorphic Task contract, a lock-free LIFO
// task pool, two sequential task stacks, and the sequential/parallel
// runners that drive them.
//
// A Task is an owned unit of work. It is held by exactly one of: the
// caller, a Pool, or a worker goroutine, at any instant; it is never
// observed by two goroutines at the same time. Split hands ownership of
// any children to the Pool it was given; Solve and Merge consume the
// receiver without touching the Pool (Merge is the exception — it drains
// the Pool it is handed).
package task

import (
	"errors"
	"io"
)

// ErrNotIndexable is the error for a caller to report when its type
// assertion of a Pool to Indexable fails — which it always does for
// ConcurrentPool, by design (see pool.go). No function in this package
// returns it.
var ErrNotIndexable = errors.New("task: pool does not support indexed access")

// Task is the unit of work the engine schedules.
//
// Split may push zero or more child tasks into p and returns the number
// pushed. If it returns 0, the caller must invoke Solve instead — Split
// must not push anything in that case.
//
// Merge is called only by the sequential PartitionedRunner, with a Pool
// holding this task's already-solved children; it must consume (drain)
// that Pool before returning.
//
// Solve computes a leaf result. It may read process-wide shared state
// (e.g. a TSP incumbent) but must not touch any Pool.
//
// WriteTo renders a textual representation of the task.
type Task interface {
	Split(p Pool) (int, error)
	Merge(p Pool) error
	Solve() error
	WriteTo(w io.Writer) error
}

// Pool is the capability every task collection exposes: push, pop, clear,
// size. It is satisfied by both the concurrent LIFO (ConcurrentPool) and
// the sequential stacks (SliceStack, FixedStack).
type Pool interface {
	// Push donates ownership of t to the pool.
	Push(t Task) error
	// Pop removes and returns the most recently pushed task, or (nil,
	// false) if the pool is empty. Pop on an empty pool never blocks.
	Pop() (Task, bool)
	// Clear drops every task currently reachable through the pool. It is
	// only valid to call Clear when no other goroutine is using the pool.
	Clear()
	// Size reports the number of tasks currently held. For ConcurrentPool
	// this is advisory: it may transiently disagree with the true list
	// length but converges once the pool quiesces.
	Size() int
}

// Indexable is implemented by the sequential stacks only. Indexed access
// on the concurrent pool is a programmer error and must fail loudly —
// type-assert a Pool to Indexable and treat a failed assertion as fatal.
type Indexable interface {
	Pool
	// At returns the task at index i without removing it. i must be in
	// [0, Size()).
	At(i int) (Task, error)
}
