package ports

import (
	"context"
	"time"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Duration time.Duration
}

// Solver turns a day's raw input into its two answers.
type Solver interface {
	Solve(ctx context.Context, input string) (domain.Solution, Stats, error)
}

// InputSource returns the raw puzzle input for a day.
type InputSource interface {
	Get(ctx context.Context, day int) (string, error)
}

// Generator creates sample forests.
type Generator interface {
	Generate(ctx context.Context, seed int64, width, height int) (string, Stats, error)
}

// Validator cross-checks an annotated forest against the direct definition
// of visibility.
type Validator interface {
	Validate(ctx context.Context, g *forest.Grid) (ok bool, mismatches []domain.CellCoord, err error)
}

// Hinter points out the most scenic spot of an annotated forest.
type Hinter interface {
	Hint(ctx context.Context, g *forest.Grid) (domain.Hint, bool, error)
}

// History persists and lists completed runs.
type History interface {
	Record(ctx context.Context, r *domain.Run) error
	List(ctx context.Context, day, limit int) ([]domain.Run, error)
}
