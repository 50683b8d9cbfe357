package forest

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every cardinal direction in clockwise order.
var Directions = [...]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return ""
}

// step is the flat index delta for one move in d.
func (g *Grid) step(d Direction) int {
	switch d {
	case Up:
		return -g.Width
	case Down:
		return g.Width
	case Left:
		return -1
	default:
		return 1
	}
}

// reach is the number of cells strictly between (row, col) and the
// boundary when looking in d.
func (g *Grid) reach(row, col int, d Direction) int {
	switch d {
	case Up:
		return row
	case Down:
		return g.Height - 1 - row
	case Left:
		return col
	default:
		return g.Width - 1 - col
	}
}

// lines returns the start index of every row or column that is swept in d,
// together with the length of each line. A sweep in Right starts on the left
// edge, a sweep in Down starts on the top edge, and so on.
func (g *Grid) lines(d Direction) (starts []int, length int) {
	switch d {
	case Right, Left:
		col := 0
		if d == Left {
			col = g.Width - 1
		}
		starts = make([]int, g.Height)
		for row := range starts {
			starts[row] = g.Index(row, col)
		}
		return starts, g.Width
	default:
		row := 0
		if d == Up {
			row = g.Height - 1
		}
		starts = make([]int, g.Width)
		for col := range starts {
			starts[col] = g.Index(row, col)
		}
		return starts, g.Height
	}
}

// scan visits at most n cells beginning at start and advancing by step. It
// stops after the first cell for which visit returns false and reports how
// many cells were visited, that cell included.
func (g *Grid) scan(start, step, n int, visit func(i int) bool) int {
	visited := 0
	for i := start; visited < n; i += step {
		visited++
		if !visit(i) {
			break
		}
	}
	return visited
}
