// Package render writes annotated forests for people to look at. Nothing
// here is needed to compute answers.
package render

import (
	"bufio"
	"io"
	"strconv"

	"svw.info/aoc/internal/forest"
)

// Text writes each cell as height:t or height:f (visible or not), cells
// separated by spaces and one row per line, followed by a blank line.
func Text(w io.Writer, g *forest.Grid) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := g.At(row, col)
			flag := "f"
			if c.Visible {
				flag = "t"
			}
			bw.WriteString(strconv.Itoa(int(c.Height)))
			bw.WriteByte(':')
			bw.WriteString(flag)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
