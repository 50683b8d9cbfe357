package validator

import (
	"context"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
)

// BruteForce re-derives visibility cell by cell: a tree is visible when every
// tree between it and some edge is strictly shorter.
type BruteForce struct{}

func New() *BruteForce { return &BruteForce{} }

func (v *BruteForce) Validate(ctx context.Context, g *forest.Grid) (bool, []domain.CellCoord, error) {
	var bad []domain.CellCoord
	for r := 0; r < g.Height; r++ {
		if err := ctx.Err(); err != nil {
			return false, nil, err
		}
		for c := 0; c < g.Width; c++ {
			if g.At(r, c).Visible != visible(g, r, c) {
				bad = append(bad, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return len(bad) == 0, bad, nil
}

func visible(g *forest.Grid, r, c int) bool {
	h := g.At(r, c).Height
	clear := func(dr, dc int) bool {
		for rr, cc := r+dr, c+dc; rr >= 0 && cc >= 0 && rr < g.Height && cc < g.Width; rr, cc = rr+dr, cc+dc {
			if g.At(rr, cc).Height >= h {
				return false
			}
		}
		return true
	}
	return clear(-1, 0) || clear(1, 0) || clear(0, -1) || clear(0, 1)
}
