package domain

// Solution holds the two answers of a puzzle day, already formatted.
type Solution struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// CellCoord identifies a cell on a grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint points the UI at an interesting cell.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Score   int         `json:"score,omitempty"`
}

// Run is a recorded puzzle execution.
type Run struct {
	ID         string   `json:"id,omitempty"`
	Day        int      `json:"day"`
	Solution   Solution `json:"solution"`
	DurationNs int64    `json:"durationNs,omitempty"`
	CreatedAt  int64    `json:"createdAt,omitempty"`
}
