//go:build !ebiten

package ui

// Chart is a no-op placeholder for headless builds.
type Chart struct{}

// NewChart returns nil in the headless build.
func NewChart() *Chart { return nil }

// Draw is a no-op in the headless build.
func (c *Chart) Draw(any, int, int, int, int, []int, []float64, []int) {}
