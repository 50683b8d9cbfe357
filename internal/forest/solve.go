package forest

import (
	"strconv"

	"svw.info/aoc/internal/domain"
)

// Analyze parses input and annotates every cell with visibility and score.
func Analyze(input string) (*Grid, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	MarkVisible(g)
	ComputeScores(g)
	return g, nil
}

// Solve returns the visible tree count and the best scenic score.
func Solve(input string) (domain.Solution, error) {
	g, err := Analyze(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return Summarize(g)
}

// Summarize reports the results of an already annotated grid.
func Summarize(g *Grid) (domain.Solution, error) {
	best, err := MaxScenicScore(g)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Solution{
		First:  strconv.Itoa(CountVisible(g)),
		Second: strconv.Itoa(best),
	}, nil
}
