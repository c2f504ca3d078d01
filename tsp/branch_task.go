package tsp

import (
	"io"

	"github.com/branchbound/tskengine/task"
)

// checkInterval is how often shouldPrune actually re-reads the incumbent:
// every 16th call, so the hot atomic read isn't taken on every single
// recursive step.
const checkInterval = 16

// Context bundles the collaborators every BranchTask needs: the graph, the
// shared incumbent, and the cutoff depth below which a task stops
// splitting and falls through to sequential Solve. Passing this
// explicitly avoids any process-global mutable state.
type Context struct {
	Graph      *Graph
	Incumbent  *Incumbent
	CutoffSize int
}

// NewContext builds a Context for g with a fresh Incumbent. cutoff is
// expressed as a distance-from-full count, matching tsppar's optional
// cutoff argument: a task stops splitting once its path size reaches
// g.Size()-cutoff.
func NewContext(g *Graph, cutoff int) *Context {
	cutoffSize := g.Size() - cutoff
	if cutoffSize < 1 {
		cutoffSize = 1
	}
	return &Context{
		Graph:      g,
		Incumbent:  NewIncumbent(),
		CutoffSize: cutoffSize,
	}
}

// BranchTask is the branch-and-bound Task: one partial tour plus the
// shared Context it prunes and reports against.
type BranchTask struct {
	ctx          *Context
	path         Path
	checkCounter int
}

var _ task.Task = (*BranchTask)(nil)

// NewRootTask returns the task representing the empty tour (just
// FirstNode) for ctx.
func NewRootTask(ctx *Context) *BranchTask {
	return &BranchTask{ctx: ctx, path: NewPath(ctx.Graph)}
}

func newChild(ctx *Context, parent Path, node int) (*BranchTask, error) {
	child := parent.Clone()
	if err := child.Push(ctx.Graph, node); err != nil {
		return nil, err
	}
	return &BranchTask{ctx: ctx, path: child}, nil
}

// shouldPrune reports whether this task's partial path can no longer beat
// the incumbent, but only actually checks every checkInterval calls — the
// distance comparison is cheap, the point of throttling is to avoid
// touching the shared atomic on every single recursive step.
func (b *BranchTask) shouldPrune() bool {
	b.checkCounter++
	if b.checkCounter%checkInterval != 0 {
		return false
	}
	return b.path.Distance() >= b.ctx.Incumbent.Load()
}

// naiveTour builds the fixed 0,1,...,N-1,0 tour used to seed the initial
// bound before any real search has happened.
func naiveTour(g *Graph) Path {
	p := NewPath(g)
	for i := 1; i < g.Size(); i++ {
		_ = p.Push(g, i)
	}
	_ = p.Push(g, FirstNode)
	return p
}

// Split expands this task's path by one city in every still-feasible
// direction, pushing a child BranchTask per direction whose partial
// distance still beats the incumbent. It returns 0 once the path has
// reached the cutoff depth or once shouldPrune fires, in which case the
// caller must fall through to Solve.
func (b *BranchTask) Split(p task.Pool) (int, error) {
	b.ctx.Incumbent.SetInitialBound(naiveTour(b.ctx.Graph))

	if b.path.Size() >= b.ctx.CutoffSize {
		return 0, nil
	}
	if b.shouldPrune() {
		return 0, nil
	}

	count := 0
	best := b.ctx.Incumbent.Load()
	for i := 0; i < b.ctx.Graph.Size(); i++ {
		if b.path.Contains(i) {
			continue
		}
		newDist := b.path.Distance() + b.ctx.Graph.Distance(b.path.Tail(), i)
		if newDist >= best {
			continue
		}
		child, err := newChild(b.ctx, b.path, i)
		if err != nil {
			return 0, err
		}
		if err := p.Push(child); err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// Merge drains p; a BranchTask's contribution to the final answer flows
// through the shared Incumbent, never through the Pool.
func (b *BranchTask) Merge(p task.Pool) error {
	p.Clear()
	return nil
}

// Solve depth-first enumerates every completion of this task's partial
// path, updating the shared incumbent whenever a full tour improves on
// it. It deliberately never re-checks CutoffSize: once a task falls
// through to Solve, the rest of its subtree runs single-threaded to
// amortize split overhead.
func (b *BranchTask) Solve() error {
	return b.solve(&b.path)
}

func (b *BranchTask) solve(path *Path) error {
	if b.shouldPrune() {
		return nil
	}

	g := b.ctx.Graph
	if path.Size() == g.Size() {
		if err := path.Push(g, FirstNode); err != nil {
			return err
		}
		if path.Distance() < b.ctx.Incumbent.Load() {
			b.ctx.Incumbent.TryUpdate(path.Clone())
		}
		return path.Pop(g)
	}

	best := b.ctx.Incumbent.Load()
	for i := 0; i < g.Size(); i++ {
		if path.Contains(i) {
			continue
		}
		newDist := path.Distance() + g.Distance(path.Tail(), i)
		if newDist >= best {
			continue
		}
		if err := path.Push(g, i); err != nil {
			return err
		}
		if err := b.solve(path); err != nil {
			return err
		}
		if err := path.Pop(g); err != nil {
			return err
		}
		best = b.ctx.Incumbent.Load()
	}
	return nil
}

// Result returns the best complete tour found, consistent with its
// reported distance.
func (b *BranchTask) Result() Path {
	return b.ctx.Incumbent.Snapshot()
}

// WriteTo renders "Task{distance: n0, n1, ...}".
func (b *BranchTask) WriteTo(w io.Writer) error {
	if _, err := io.WriteString(w, "Task"); err != nil {
		return err
	}
	return b.path.WriteTo(w)
}
