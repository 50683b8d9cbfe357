package forest

// MarkVisible flags every cell that can be seen from outside the grid.
//
// Each row and column is swept from both ends. The edge cell a sweep starts
// from is always visible; after it, only cells strictly taller than
// everything before them in the sweep are. Flags are only ever set, so the
// result is the union of the four sweeps and re-running is harmless.
func MarkVisible(g *Grid) {
	for _, d := range Directions {
		step := g.step(d)
		starts, n := g.lines(d)
		for _, start := range starts {
			g.cells[start].Visible = true
			tallest := g.cells[start].Height
			g.scan(start+step, step, n-1, func(i int) bool {
				c := &g.cells[i]
				if c.Height > tallest {
					c.Visible = true
					tallest = c.Height
				}
				return tallest < maxHeight
			})
		}
	}
}
