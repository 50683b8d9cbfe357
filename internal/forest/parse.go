package forest

import "strings"

// Parse reads one row per line, top to bottom. Blank lines before the first
// row and after the last row are ignored; a blank line between rows is a
// width error.
func Parse(input string) (*Grid, error) {
	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	width := 0
	heights := make([]uint8, 0, len(lines[0])*len(lines))
	for row, line := range lines {
		col := 0
		for _, ch := range line {
			if ch < '0' || ch > '9' {
				return nil, &InvalidDigitError{Char: ch, Row: row, Col: col}
			}
			heights = append(heights, uint8(ch-'0'))
			col++
		}
		if row == 0 {
			width = col
		} else if col != width {
			return nil, &RowWidthError{Expected: width, Actual: col, Row: row}
		}
	}
	return newGrid(width, len(lines), heights), nil
}
