package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"svw.info/aoc/internal/forest"
)

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Heatmap writes an HTML page plotting the scenic score of every cell. Row 0
// is drawn at the top, matching the input text.
func Heatmap(w io.Writer, g *forest.Grid, title string) error {
	cols := make([]string, g.Width)
	for c := range cols {
		cols[c] = strconv.Itoa(c)
	}
	// Category axes grow upwards, so row labels are listed bottom first.
	rows := make([]string, g.Height)
	for r := range rows {
		rows[r] = strconv.Itoa(g.Height - 1 - r)
	}

	best := 0
	data := make([]opts.HeatMapData, 0, g.Len())
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.At(r, c)
			best = max(best, cell.Score)
			label := fmt.Sprintf("height %d, hidden", cell.Height)
			if cell.Visible {
				label = fmt.Sprintf("height %d, visible", cell.Height)
			}
			data = append(data, opts.HeatMapData{Name: label, Value: [3]interface{}{c, g.Height - 1 - r, cell.Score}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%dx%d visible=%d best=%d", g.Width, g.Height, forest.CountVisible(g), best)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: cols, Name: "col"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: rows, Name: "row"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max(best, 1)),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	hm.SetXAxis(cols).AddSeries("scenic score", data)
	return hm.Render(w)
}
