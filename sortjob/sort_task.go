// Package sortjob provides a toy merge-sort Task: a divide-and-conquer
// problem with a real Merge step, used to exercise task.PartitionedRunner
// and task.ParallelRunner alongside the TSP branch-and-bound task, which
// has no Merge step of its own. ParallelRunner never calls Merge, so under
// it the leaves are solved but the root's values are not reassembled.
package sortjob

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/branchbound/tskengine/task"
)

// ErrWrongChildCount is returned by Merge when the pool it was handed
// does not contain exactly two children.
var ErrWrongChildCount = errors.New("sortjob: merge expects exactly two children")

// ErrWrongChildType is returned by Merge when a child popped from the
// pool is not a *SortTask.
var ErrWrongChildType = errors.New("sortjob: merge expects *SortTask children")

// splitThreshold is the largest slice length SortTask will not subdivide;
// at or below it, Split returns 0 and the caller falls through to Solve.
const splitThreshold = 1

// SortTask sorts values via Split/Merge divide-and-conquer or a direct
// Solve. Solve sorts the slice in place; Merge replaces it with a newly
// allocated merged slice.
type SortTask struct {
	values []int
}

var _ task.Task = (*SortTask)(nil)

// NewSortTask wraps v (not copied) as a SortTask.
func NewSortTask(v []int) *SortTask {
	return &SortTask{values: v}
}

// NewRandomSortTask returns a SortTask of n values drawn uniformly from
// [0, 1000), using the caller-supplied rng. rng is an explicit
// collaborator — never a package-level singleton — matching the
// teacher's own tsp/rng.go discipline that a *rand.Rand must not be
// shared across goroutines.
func NewRandomSortTask(n int, rng *rand.Rand) *SortTask {
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Intn(1000)
	}
	return &SortTask{values: values}
}

// Clone returns a SortTask holding an independent copy of the receiver's
// values, for running the same input through two different runners.
func (s *SortTask) Clone() *SortTask {
	v := make([]int, len(s.values))
	copy(v, s.values)
	return &SortTask{values: v}
}

// Values returns the current (possibly unsorted) contents.
func (s *SortTask) Values() []int { return s.values }

// Split halves the slice into two child SortTasks, pushed left-then-right.
func (s *SortTask) Split(p task.Pool) (int, error) {
	if len(s.values) <= splitThreshold {
		return 0, nil
	}
	mid := len(s.values) / 2
	left := append([]int(nil), s.values[:mid]...)
	right := append([]int(nil), s.values[mid:]...)

	if err := p.Push(&SortTask{values: left}); err != nil {
		return 0, err
	}
	if err := p.Push(&SortTask{values: right}); err != nil {
		return 0, err
	}
	return 2, nil
}

// Merge expects exactly two *SortTask children in p (left then right, in
// push order) and merges their sorted slices into the receiver.
func (s *SortTask) Merge(p task.Pool) error {
	if p.Size() != 2 {
		return fmt.Errorf("%w: got %d", ErrWrongChildCount, p.Size())
	}

	// Pop is LIFO: the right child (pushed second) comes off first.
	poppedRight, ok := p.Pop()
	if !ok {
		return ErrWrongChildCount
	}
	poppedLeft, ok := p.Pop()
	if !ok {
		return ErrWrongChildCount
	}
	leftTask, ok := poppedLeft.(*SortTask)
	if !ok {
		return ErrWrongChildType
	}
	rightTask, ok := poppedRight.(*SortTask)
	if !ok {
		return ErrWrongChildType
	}

	s.values = mergeSorted(leftTask.values, rightTask.values)
	p.Clear()
	return nil
}

// Solve sorts the receiver's values directly.
func (s *SortTask) Solve() error {
	sort.Ints(s.values)
	return nil
}

// WriteTo renders the values as "[v0, v1, ...]".
func (s *SortTask) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i, v := range s.values {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// mergeSorted merges two already-sorted slices into one sorted slice.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
