package life

// Next computes the following generation of g under the standard B3/S23 rule
// with toroidal neighbor counting. It returns a fresh grid of identical
// dimensions and reads only from the input snapshot, so every neighbor sum
// for generation N observes generation-N state.
func Next(g *Grid) *Grid {
	w, h := g.w, g.h
	out := &Grid{w: w, h: h, cells: make([]bool, len(g.cells))}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if g.cells[ny*w+nx] {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := g.cells[idx]
			out.cells[idx] = (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
		}
	}
	return out
}
