package hint

import (
	"context"
	"fmt"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
)

// Scenic implements a Hinter that points at the best treehouse spot.
type Scenic struct{}

func NewScenic() *Scenic { return &Scenic{} }

// Hint returns the first cell with the highest scenic score. Nothing is
// found when every score is zero, which is always the case for grids
// without interior cells.
func (h *Scenic) Hint(ctx context.Context, g *forest.Grid) (domain.Hint, bool, error) {
	row, col, score, err := forest.BestSpot(g)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if score == 0 {
		return domain.Hint{}, false, nil
	}
	left := forest.ViewingDistance(g, row, col, forest.Left)
	right := forest.ViewingDistance(g, row, col, forest.Right)
	up := forest.ViewingDistance(g, row, col, forest.Up)
	down := forest.ViewingDistance(g, row, col, forest.Down)
	return domain.Hint{
		Message: fmt.Sprintf("Best spot: height %d sees up %d, left %d, down %d, right %d",
			g.At(row, col).Height, up, left, down, right),
		Cells: []domain.CellCoord{{Row: row, Col: col}},
		Score: score,
	}, true, nil
}
