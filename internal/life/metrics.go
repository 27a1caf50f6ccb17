package life

import "fmt"

// Tracker maintains the per-generation live-cell history and derives the
// occupancy and growth series from it on demand. Derived series are never
// stored; they are pure functions of the recorded history.
//
// Dimensions cannot change within a tracker's lifetime (clear and randomize
// start a fresh tracker), so a single area denominator is exact.
type Tracker struct {
	live []int
	area int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker { return &Tracker{} }

// Record appends one generation's live-cell count.
func (t *Tracker) Record(liveCount, gridArea int) error {
	if gridArea <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidArea, gridArea)
	}
	t.area = gridArea
	t.live = append(t.live, liveCount)
	return nil
}

// Reset drops the recorded history. Calling it on an empty tracker is a
// no-op.
func (t *Tracker) Reset() {
	t.live = nil
}

// Generations returns the number of recorded generations.
func (t *Tracker) Generations() int { return len(t.live) }

// LiveHistory returns a copy of the live-cell counts, one per generation in
// chronological order.
func (t *Tracker) LiveHistory() []int {
	return append([]int(nil), t.live...)
}

// OccupancySeries returns the percentage of the grid alive at each
// generation, index-aligned with LiveHistory.
func (t *Tracker) OccupancySeries() []float64 {
	out := make([]float64, len(t.live))
	for i, v := range t.live {
		out[i] = float64(v) / float64(t.area) * 100
	}
	return out
}

// GrowthSeries returns the change in live-cell count between consecutive
// generations. The first element is always 0 when the history is non-empty.
func (t *Tracker) GrowthSeries() []int {
	out := make([]int, len(t.live))
	for i := 1; i < len(t.live); i++ {
		out[i] = t.live[i] - t.live[i-1]
	}
	return out
}
