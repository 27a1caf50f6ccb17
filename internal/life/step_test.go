package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmpty(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h, 0, nil)
	require.NoError(t, err)
	return g
}

func mustSet(t *testing.T, g *Grid, pts ...[2]int) {
	t.Helper()
	for _, pt := range pts {
		require.NoError(t, g.Set(pt[0], pt[1], true))
	}
}

// assertPattern checks every cell against the expectation map.
func assertPattern(t *testing.T, g *Grid, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive, err := g.Get(x, y)
			require.NoError(t, err)
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	g := mustEmpty(t, 6, 6)
	next := Next(Next(g))
	assert.Equal(t, 0, next.LiveCount())
}

func TestLonelyCellDies(t *testing.T) {
	g := mustEmpty(t, 5, 5)
	mustSet(t, g, [2]int{2, 2})

	next := Next(g)
	assert.Equal(t, 0, next.LiveCount())
}

func TestBlockStillLife(t *testing.T) {
	g := mustEmpty(t, 4, 4)
	mustSet(t, g, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})

	next := Next(g)
	assertPattern(t, next, map[[2]int]bool{
		{1, 1}: true,
		{1, 2}: true,
		{2, 1}: true,
		{2, 2}: true,
	})
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustEmpty(t, 5, 5)
	mustSet(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})

	next := Next(g)
	assertPattern(t, next, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	next = Next(next)
	assertPattern(t, next, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

// A solid 3x3 square sheds its overcrowded interior and edges: the corners
// survive on 3 neighbors and a new cell is born beyond each edge center.
func TestSolidSquareEvolution(t *testing.T) {
	g := mustEmpty(t, 9, 9)
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			mustSet(t, g, [2]int{x, y})
		}
	}

	next := Next(g)
	assertPattern(t, next, map[[2]int]bool{
		{3, 3}: true, {5, 3}: true,
		{3, 5}: true, {5, 5}: true,
		{4, 2}: true, {2, 4}: true,
		{6, 4}: true, {4, 6}: true,
	})
}

func TestNextReadsOnlyTheSnapshot(t *testing.T) {
	g := mustEmpty(t, 5, 5)
	mustSet(t, g, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := append([]bool(nil), g.Cells()...)

	next := Next(g)

	assert.Equal(t, before, g.Cells(), "input grid must not be mutated")
	assert.NotSame(t, g, next)
	assert.Equal(t, g.Width(), next.Width())
	assert.Equal(t, g.Height(), next.Height())
}

// The blinker leans on wraparound when placed across the seam.
func TestBlinkerAcrossSeam(t *testing.T) {
	g := mustEmpty(t, 5, 5)
	mustSet(t, g, [2]int{4, 2}, [2]int{0, 2}, [2]int{1, 2})

	next := Next(Next(g))
	assertPattern(t, next, map[[2]int]bool{
		{4, 2}: true,
		{0, 2}: true,
		{1, 2}: true,
	})
}
