package tsp

import (
	"math"
	"sync"
	"sync/atomic"
)

// Incumbent is the best tour found so far, shared by every BranchTask in a
// run. bestDistance is read on every pruning check (the hot path) and must
// never block; bestPath is written only on improvement (the rare path)
// and is guarded by mu.
type Incumbent struct {
	bestDistance    atomic.Int64
	mu              sync.Mutex
	bestPath        Path
	initialBoundSet atomic.Bool
}

// NewIncumbent returns an Incumbent with no bound yet established.
func NewIncumbent() *Incumbent {
	inc := &Incumbent{}
	inc.bestDistance.Store(math.MaxInt64)
	return inc
}

// Load returns the current best distance. It is lock-free and is the read
// every pruning decision should use.
func (inc *Incumbent) Load() int {
	return int(inc.bestDistance.Load())
}

// Snapshot returns a Path consistent with the distance it reports: unlike
// Load, it takes the mutex and so is paired with bestPath atomically. Use
// this, not Load, whenever the caller needs the (distance, path)
// invariant to hold — e.g. reporting the final result.
func (inc *Incumbent) Snapshot() Path {
	inc.mu.Lock()
	defer inc.mu.Unlock()
	return inc.bestPath.Clone()
}

// TryUpdate installs candidate as the new incumbent if its distance
// improves on the current best. It implements the CAS-then-lock protocol:
// the comparison and swap on the hot int64 never block, and the mutex is
// only taken by the thread that actually wins the race.
func (inc *Incumbent) TryUpdate(candidate Path) bool {
	d := int64(candidate.Distance())
	cur := inc.bestDistance.Load()
	for d < cur {
		if inc.bestDistance.CompareAndSwap(cur, d) {
			inc.mu.Lock()
			inc.bestPath = candidate
			inc.mu.Unlock()
			return true
		}
		cur = inc.bestDistance.Load()
	}
	return false
}

// SetInitialBound seeds the incumbent from candidate the first time it is
// called across the whole run, and is a no-op on every subsequent call.
// Because initialBoundSet's CAS(false, true) has exactly one winner, the
// winner may write bestDistance/bestPath unconditionally without racing
// TryUpdate's own CAS loop.
func (inc *Incumbent) SetInitialBound(candidate Path) bool {
	if !inc.initialBoundSet.CompareAndSwap(false, true) {
		return false
	}
	inc.mu.Lock()
	inc.bestPath = candidate
	inc.mu.Unlock()
	inc.bestDistance.Store(int64(candidate.Distance()))
	return true
}
