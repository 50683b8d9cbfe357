package forest

// ViewingDistance counts the trees seen from (row, col) looking in d. The
// first tree at least as tall as the origin blocks the view and is counted.
// Cells on the boundary in d see nothing.
func ViewingDistance(g *Grid, row, col int, d Direction) int {
	origin := g.Index(row, col)
	height := g.cells[origin].Height
	step := g.step(d)
	return g.scan(origin+step, step, g.reach(row, col, d), func(i int) bool {
		return g.cells[i].Height < height
	})
}

// ScenicScore is the product of the four viewing distances of (row, col).
func ScenicScore(g *Grid, row, col int) int {
	score := 1
	for _, d := range Directions {
		score *= ViewingDistance(g, row, col, d)
		if score == 0 {
			break
		}
	}
	return score
}

// ComputeScores stores the scenic score of every cell.
func ComputeScores(g *Grid) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			g.cells[g.Index(row, col)].Score = ScenicScore(g, row, col)
		}
	}
}
