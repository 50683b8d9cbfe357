package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
	"svw.info/aoc/internal/ports"
)

// ErrUnknownDay is returned for days without a registered solver.
var ErrUnknownDay = errors.New("unknown day")

// Func adapts a pure input -> answers function into a ports.Solver.
type Func func(input string) (domain.Solution, error)

func (f Func) Solve(ctx context.Context, input string) (domain.Solution, ports.Stats, error) {
	if err := ctx.Err(); err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	start := time.Now()
	sol, err := f(input)
	return sol, ports.Stats{Duration: time.Since(start)}, err
}

// Registry maps puzzle days to solvers.
type Registry struct {
	days map[int]ports.Solver
}

func NewRegistry() *Registry { return &Registry{days: make(map[int]ports.Solver)} }

// NewDefaultRegistry wires every implemented day.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(8, Func(forest.Solve))
	return r
}

// Register installs s for day, replacing any previous solver.
func (r *Registry) Register(day int, s ports.Solver) { r.days[day] = s }

func (r *Registry) Get(day int) (ports.Solver, error) {
	s, ok := r.days[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days lists registered days in ascending order.
func (r *Registry) Days() []int {
	out := make([]int, 0, len(r.days))
	for d := range r.days {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (int, bool) {
	days := r.Days()
	if len(days) == 0 {
		return 0, false
	}
	return days[len(days)-1], true
}
