package generator

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"svw.info/aoc/internal/ports"
)

// ForestGenerator produces random height grids for smoke tests and demos.
type ForestGenerator struct {
	// MaxHeight caps generated heights; lower values produce more ties.
	MaxHeight int
}

// NewForestGenerator returns a generator using the full 0-9 height range.
func NewForestGenerator() *ForestGenerator {
	return &ForestGenerator{MaxHeight: 9}
}

// MaxSide bounds both dimensions of a generated forest.
const MaxSide = 1000

var errBadSize = errors.New("generator: width and height must be between 1 and 1000")

// Generate returns width x height digits, one row per line. The same seed
// always yields the same forest.
func (g *ForestGenerator) Generate(ctx context.Context, seed int64, width, height int) (string, ports.Stats, error) {
	start := time.Now()
	if width <= 0 || height <= 0 || width > MaxSide || height > MaxSide {
		return "", ports.Stats{}, errBadSize
	}
	top := g.MaxHeight
	if top < 0 || top > 9 {
		top = 9
	}
	rng := rand.New(rand.NewSource(seed))
	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for r := 0; r < height; r++ {
		if ctx.Err() != nil {
			return "", ports.Stats{Duration: time.Since(start)}, ctx.Err()
		}
		for c := 0; c < width; c++ {
			sb.WriteByte(byte('0' + rng.Intn(top+1)))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), ports.Stats{Duration: time.Since(start)}, nil
}
