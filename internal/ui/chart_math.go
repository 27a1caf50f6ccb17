package ui

import "math"

// chartPoint is a point in screen space.
type chartPoint struct {
	X, Y float64
}

func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// chartBounds returns the shared value range across the provided series. A
// flat range is padded by one unit on each side so scaling never divides by
// zero; with no data at all the range defaults to [0, 1].
func chartBounds(series ...[]float64) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if min > max {
		return 0, 1
	}
	if min == max {
		return min - 1, max + 1
	}
	return min, max
}

// chartPolyline maps values onto the plot rectangle: the first value sits at
// the left edge, the last at the right, and larger values higher on screen.
func chartPolyline(values []float64, x, y, w, h, min, max float64) []chartPoint {
	n := len(values)
	if n == 0 || max <= min {
		return nil
	}
	pts := make([]chartPoint, n)
	for i, v := range values {
		fx := x
		if n > 1 {
			fx = x + w*float64(i)/float64(n-1)
		}
		fy := y + h*(1-(v-min)/(max-min))
		pts[i] = chartPoint{X: fx, Y: fy}
	}
	return pts
}
