package tsp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branchbound/tskengine/tsp"
)

func square() *tsp.Graph {
	g, err := tsp.NewGraph([]tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	if err != nil {
		panic(err)
	}
	return g
}

func TestPath_PushPopRoundTrip(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	assert.Equal(t, 1, p.Size())
	assert.Equal(t, 0, p.Distance())
	assert.True(t, p.Contains(0))
	assert.False(t, p.Contains(1))

	require.NoError(t, p.Push(g, 1))
	require.NoError(t, p.Push(g, 2))
	require.NoError(t, p.Push(g, 3))
	assert.Equal(t, 4, p.Size())
	assert.Equal(t, 3, p.Distance())
	assert.Equal(t, 3, p.Tail())

	require.NoError(t, p.Pop(g))
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, 2, p.Distance())
	assert.False(t, p.Contains(3))
}

func TestPath_FullTourDistance(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	require.NoError(t, p.Push(g, 1))
	require.NoError(t, p.Push(g, 2))
	require.NoError(t, p.Push(g, 3))
	require.NoError(t, p.Push(g, 0))
	assert.Equal(t, 4, p.Distance(), "unit square perimeter")
}

func TestPath_PushOutOfRange(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	err := p.Push(g, 99)
	assert.ErrorIs(t, err, tsp.ErrNodeOutOfRange)
}

func TestPath_PopUnderflow(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	err := p.Pop(g)
	assert.ErrorIs(t, err, tsp.ErrPathUnderflow)
}

func TestPath_CloneIsIndependent(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	require.NoError(t, p.Push(g, 1))

	clone := p.Clone()
	require.NoError(t, clone.Push(g, 2))

	assert.NotEqual(t, p.Size(), clone.Size())
	assert.Equal(t, 2, p.Size())
	assert.Equal(t, 3, clone.Size())
}

func TestPath_WriteTo(t *testing.T) {
	g := square()
	p := tsp.NewPath(g)
	require.NoError(t, p.Push(g, 1))
	var sb strings.Builder
	require.NoError(t, p.WriteTo(&sb))
	assert.Equal(t, "{1: 0, 1}", sb.String())
}
