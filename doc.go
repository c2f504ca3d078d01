// Package tskengine is a parallel recursive task engine for
// divide-and-conquer and branch-and-bound workloads.
//
// What's here?
//
//	task/    — the Task contract, the lock-free LIFO pool, sequential task
//	           stacks, and the sequential/parallel runners that drive them
//	tsp/     — a branch-and-bound TSP solver built on task.Task, with a
//	           TSPLIB-subset graph loader and a cross-goroutine incumbent
//	sortjob/ — a toy merge-sort task exercising the Split/Merge path
//	cmd/     — four small CLIs: tspsort, tspprint, tspseq, tsppar
//
// The interesting engineering lives in task: a Treiber stack shared by all
// workers, an outstanding-task counter that drives quiescence detection,
// and a condition-variable wakeup protocol that is careful about the
// lost-wakeup race between a pool push and a worker going to sleep. The
// TSP package layers a CAS-then-lock shared incumbent on top of that to
// prune concurrently with a consistent (distance, path) pair.
package tskengine
