package forest

// CountVisible returns how many cells are flagged visible.
func CountVisible(g *Grid) int {
	n := 0
	for _, c := range g.cells {
		if c.Visible {
			n++
		}
	}
	return n
}

// MaxScenicScore returns the highest stored score.
func MaxScenicScore(g *Grid) (int, error) {
	if len(g.cells) == 0 {
		return 0, ErrNoScoreFound
	}
	best := g.cells[0].Score
	for _, c := range g.cells[1:] {
		best = max(best, c.Score)
	}
	return best, nil
}

// BestSpot returns the position of the first cell holding the highest score.
func BestSpot(g *Grid) (row, col, score int, err error) {
	if len(g.cells) == 0 {
		return 0, 0, 0, ErrNoScoreFound
	}
	best := 0
	for i, c := range g.cells {
		if c.Score > g.cells[best].Score {
			best = i
		}
	}
	row, col = g.Coord(best)
	return row, col, g.cells[best].Score, nil
}
