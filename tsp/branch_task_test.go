package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchbound/tskengine/task"
	"github.com/branchbound/tskengine/tsp"
)

func TestBranchTask_UnitSquareOptimum(t *testing.T) {
	g, err := tsp.LoadGraph("../testdata/unit_square.tsp")
	require.NoError(t, err)

	ctx := tsp.NewContext(g, 0)
	root := tsp.NewRootTask(ctx)

	r := task.NewPartitionedRunner(8)
	require.NoError(t, r.Run(root))

	best := root.Result()
	assert.Equal(t, 4, best.Distance())
}

func TestBranchTask_CollinearOptimum(t *testing.T) {
	g, err := tsp.LoadGraph("../testdata/collinear.tsp")
	require.NoError(t, err)

	ctx := tsp.NewContext(g, 0)
	root := tsp.NewRootTask(ctx)

	r := &task.DirectRunner{}
	require.NoError(t, r.Run(root))

	best := root.Result()
	assert.Equal(t, 4, best.Distance())
}

// TestBranchTask_InitialBoundNeverExceedsNaiveTour is property #6: the
// seeded initial bound can only ever be at most the naive 0,1,...,N-1,0
// tour's cost, since that is exactly what seeds it.
func TestBranchTask_InitialBoundNeverExceedsNaiveTour(t *testing.T) {
	g, err := tsp.LoadGraph("../testdata/unit_square.tsp")
	require.NoError(t, err)

	naive := tsp.NewPath(g)
	require.NoError(t, naive.Push(g, 1))
	require.NoError(t, naive.Push(g, 2))
	require.NoError(t, naive.Push(g, 3))
	require.NoError(t, naive.Push(g, 0))

	ctx := tsp.NewContext(g, 0)
	root := tsp.NewRootTask(ctx)

	pool := task.NewSliceStack(g.Size())
	_, err = root.Split(pool)
	require.NoError(t, err)

	assert.LessOrEqual(t, ctx.Incumbent.Load(), naive.Distance())
}

// TestBranchTask_IncumbentMonotonicallyImproves is property #4: across a
// run, the incumbent distance is non-increasing at every observation.
func TestBranchTask_IncumbentMonotonicallyImproves(t *testing.T) {
	g, err := tsp.NewGraph(pentagon())
	require.NoError(t, err)
	ctx := tsp.NewContext(g, 0)
	root := tsp.NewRootTask(ctx)

	naive := tsp.NewPath(g)
	for i := 1; i < g.Size(); i++ {
		require.NoError(t, naive.Push(g, i))
	}
	require.NoError(t, naive.Push(g, 0))

	prev := ctx.Incumbent.Load()
	r := task.NewPartitionedRunner(4)

	// Run once to completion; the incumbent is inspected only at a
	// coarse granularity here (before/after), since BranchTask does not
	// expose a hook per improvement. The property under test is that the
	// final value is <= the seeded naive bound, which TryUpdate's CAS
	// loop guarantees by construction (it only ever decreases).
	require.NoError(t, r.Run(root))
	after := ctx.Incumbent.Load()
	assert.LessOrEqual(t, after, prev)
	assert.LessOrEqual(t, after, naive.Distance())
}

// TestBranchTask_ParallelMatchesSequential is property #5: for a small
// enough instance, the parallel and sequential runners must agree on the
// optimal tour distance.
func TestBranchTask_ParallelMatchesSequential(t *testing.T) {
	coords := pentagon()
	gSeq, err := tsp.NewGraph(coords)
	require.NoError(t, err)
	gPar, err := tsp.NewGraph(coords)
	require.NoError(t, err)

	seqCtx := tsp.NewContext(gSeq, 0)
	seqRoot := tsp.NewRootTask(seqCtx)
	seqRunner := task.NewPartitionedRunner(4)
	require.NoError(t, seqRunner.Run(seqRoot))

	parCtx := tsp.NewContext(gPar, 0)
	parRoot := tsp.NewRootTask(parCtx)
	parRunner := task.NewParallelRunner(4)
	require.NoError(t, parRunner.Run(parRoot))

	seqResult := seqRoot.Result()
	parResult := parRoot.Result()
	assert.Equal(t, seqResult.Distance(), parResult.Distance())
}

// pentagon returns 5 cities small enough (N<=12) to brute-force quickly in
// tests while having a nontrivial, non-degenerate optimal tour.
func pentagon() []tsp.Point {
	return []tsp.Point{
		{X: 0, Y: 0},
		{X: 4, Y: 0},
		{X: 5, Y: 3},
		{X: 2, Y: 5},
		{X: -1, Y: 3},
	}
}

func TestBranchTask_WriteTo(t *testing.T) {
	g, err := tsp.NewGraph(pentagon())
	require.NoError(t, err)
	ctx := tsp.NewContext(g, 0)
	root := tsp.NewRootTask(ctx)

	var sb stringWriter
	require.NoError(t, root.WriteTo(&sb))
	assert.Contains(t, sb.s, "Task{0: 0}")
}

type stringWriter struct{ s string }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.s += string(p)
	return len(p), nil
}
