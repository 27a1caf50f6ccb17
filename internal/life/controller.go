package life

import (
	"math/rand/v2"

	"life-lab/internal/core"
)

// Controller composes a grid, the generation step, and a metrics tracker
// into the operations an external driver invokes. It is not safe for
// concurrent use; the driver serializes calls.
type Controller struct {
	grid    *Grid
	tracker *Tracker
	rng     *rand.Rand
}

// NewController seeds a w×h grid at the given density and starts with an
// empty metrics history. The same seed always produces the same board.
func NewController(w, h int, density float64, seed int64) (*Controller, error) {
	rng := core.NewRNG(seed).Source()
	g, err := New(w, h, density, rng)
	if err != nil {
		return nil, err
	}
	return &Controller{grid: g, tracker: NewTracker(), rng: rng}, nil
}

// Grid exposes the current board for rendering.
func (c *Controller) Grid() *Grid { return c.grid }

// Metrics exposes the recorded series for charting.
func (c *Controller) Metrics() *Tracker { return c.tracker }

// Generation returns the number of generations advanced since the last
// clear or randomize.
func (c *Controller) Generation() int { return c.tracker.Generations() }

// Advance replaces the board with its next generation and records the new
// live-cell count.
func (c *Controller) Advance() {
	c.grid = Next(c.grid)
	// The area is positive by construction, so Record cannot fail here.
	_ = c.tracker.Record(c.grid.LiveCount(), c.grid.Area())
}

// Clear kills every cell and drops the metrics history.
func (c *Controller) Clear() {
	c.grid.Clear()
	c.tracker.Reset()
}

// Randomize replaces the board with a freshly sampled one at the given
// density and drops the metrics history.
func (c *Controller) Randomize(density float64) error {
	g, err := New(c.grid.w, c.grid.h, density, c.rng)
	if err != nil {
		return err
	}
	c.grid = g
	c.tracker.Reset()
	return nil
}

// ToggleCell flips a single cell. It has no metrics side effect.
func (c *Controller) ToggleCell(x, y int) error {
	return c.grid.Toggle(x, y)
}
