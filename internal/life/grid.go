package life

import (
	"fmt"
	"math"
	"math/rand/v2"

	"life-lab/internal/core"
)

// Grid stores the cell state of a toroidal board in row-major order. Edges
// wrap: the left neighbor of column 0 is column width-1, and likewise for
// rows.
type Grid struct {
	w, h  int
	cells []bool
}

// New allocates a grid of the given dimensions and seeds each cell alive
// independently with probability density. A nil rng falls back to an
// unseeded source.
func New(w, h int, density float64, rng *rand.Rand) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	if math.IsNaN(density) || density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Grid{w: w, h: h, cells: make([]bool, w*h)}
	if density > 0 {
		core.FillDensity(rng, g.cells, density)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Area returns the total cell count.
func (g *Grid) Area() int { return g.w * g.h }

// Cells exposes the backing slice so renderers can read values directly in
// row-major order. Callers must not hold the slice across an advance.
func (g *Grid) Cells() []bool { return g.cells }

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get reports whether the cell at (x, y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return g.cells[g.index(x, y)], nil
}

// Set assigns the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	g.cells[g.index(x, y)] = alive
	return nil
}

// Toggle flips the cell at (x, y).
func (g *Grid) Toggle(x, y int) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	idx := g.index(x, y)
	g.cells[idx] = !g.cells[idx]
	return nil
}

// Clear sets every cell to dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}

// LiveCount returns the number of alive cells.
func (g *Grid) LiveCount() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// NeighborCount returns the number of alive cells among the 8 toroidal
// neighbors of (x, y).
func (g *Grid) NeighborCount(x, y int) (int, error) {
	if !g.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	w, h := g.w, g.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if g.cells[ny*w+nx] {
				n++
			}
		}
	}
	return n, nil
}
