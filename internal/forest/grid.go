// Package forest computes tree visibility and scenic scores over a
// rectangular grid of single-digit heights.
package forest

// maxHeight is the tallest height a single digit can express.
const maxHeight = 9

// Cell is one tree. Height is fixed at parse time; Visible and Score are
// derived by MarkVisible and ComputeScores.
type Cell struct {
	Height  uint8
	Visible bool
	Score   int
}

// Grid stores cells in row-major order, addressed by row*Width + col.
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

func newGrid(width, height int, heights []uint8) *Grid {
	cells := make([]Cell, len(heights))
	for i, h := range heights {
		cells[i].Height = h
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// Index returns the flat index of (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Width + col }

// Coord is the inverse of Index.
func (g *Grid) Coord(i int) (row, col int) { return i / g.Width, i % g.Width }

// At returns a copy of the cell at (row, col).
func (g *Grid) At(row, col int) Cell { return g.cells[g.Index(row, col)] }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns the backing slice. Callers outside this package must treat
// it as read-only.
func (g *Grid) Cells() []Cell { return g.cells }

// IsBoundary reports whether (row, col) lies on the outer ring.
func (g *Grid) IsBoundary(row, col int) bool {
	return row == 0 || col == 0 || row == g.Height-1 || col == g.Width-1
}
