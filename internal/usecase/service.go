package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
	"svw.info/aoc/internal/ports"
)

// Solvers looks up the solver registered for a day.
type Solvers interface {
	Get(day int) (ports.Solver, error)
	Days() []int
}

// DayLister reports which days have a cached input.
type DayLister interface {
	List(ctx context.Context) ([]int, error)
}

type Service struct {
	Solvers   Solvers
	Inputs    ports.InputSource
	History   ports.History
	Validator ports.Validator
	Hinter    ports.Hinter
	Generator ports.Generator
	Cache     DayLister
	Logger    *slog.Logger
}

func NewService(s Solvers, in ports.InputSource, hist ports.History, v ports.Validator, h ports.Hinter, g ports.Generator) *Service {
	return &Service{Solvers: s, Inputs: in, History: hist, Validator: v, Hinter: h, Generator: g, Logger: slog.Default()}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")

	// ErrVerification is returned when the annotated forest disagrees with
	// the brute-force visibility check.
	ErrVerification = errors.New("visibility verification failed")
)

func (u *Service) logger() *slog.Logger {
	if u.Logger == nil {
		return slog.Default()
	}
	return u.Logger
}

// Run fetches the input for day, solves it and records the run when history
// is configured.
func (u *Service) Run(ctx context.Context, day int) (domain.Run, error) {
	if u.Inputs == nil || u.Solvers == nil {
		return domain.Run{}, errNotConfigured
	}
	s, err := u.Solvers.Get(day)
	if err != nil {
		return domain.Run{}, err
	}
	text, err := u.Inputs.Get(ctx, day)
	if err != nil {
		return domain.Run{}, err
	}
	sol, st, err := s.Solve(ctx, text)
	if err != nil {
		return domain.Run{}, err
	}
	run := domain.Run{
		Day:        day,
		Solution:   sol,
		DurationNs: st.Duration.Nanoseconds(),
		CreatedAt:  time.Now().UnixNano(),
	}
	u.logger().Info("run", "day", day, "first", sol.First, "second", sol.Second, "dur", st.Duration)
	if u.History != nil {
		if err := u.History.Record(ctx, &run); err != nil {
			return run, err
		}
	}
	return run, nil
}

// SolveText solves supplied text without fetching or recording anything.
func (u *Service) SolveText(ctx context.Context, day int, text string) (domain.Solution, ports.Stats, error) {
	if u.Solvers == nil {
		return domain.Solution{}, ports.Stats{}, errNotConfigured
	}
	s, err := u.Solvers.Get(day)
	if err != nil {
		return domain.Solution{}, ports.Stats{}, err
	}
	return s.Solve(ctx, text)
}

// Analyze returns the annotated forest for text along with the best-spot
// hint when a hinter is configured.
func (u *Service) Analyze(ctx context.Context, text string) (*forest.Grid, domain.Hint, error) {
	g, err := forest.Analyze(text)
	if err != nil {
		return nil, domain.Hint{}, err
	}
	if u.Hinter == nil {
		return g, domain.Hint{}, nil
	}
	h, _, err := u.Hinter.Hint(ctx, g)
	return g, h, err
}

// SolveForest analyzes a forest once and returns both results together with
// the best-spot hint.
func (u *Service) SolveForest(ctx context.Context, text string) (domain.Solution, domain.Hint, ports.Stats, error) {
	start := time.Now()
	g, h, err := u.Analyze(ctx, text)
	if err != nil {
		return domain.Solution{}, domain.Hint{}, ports.Stats{}, err
	}
	sol, err := forest.Summarize(g)
	if err != nil {
		return domain.Solution{}, domain.Hint{}, ports.Stats{}, err
	}
	return sol, h, ports.Stats{Duration: time.Since(start)}, nil
}

// Days returns the registered days and, when a cache is configured, the days
// whose input is already cached.
func (u *Service) Days(ctx context.Context) (registered, cached []int, err error) {
	if u.Solvers == nil {
		return nil, nil, errNotConfigured
	}
	registered = u.Solvers.Days()
	if u.Cache == nil {
		return registered, nil, nil
	}
	cached, err = u.Cache.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return registered, cached, nil
}

// Verify cross-checks the visibility flags of an annotated forest.
func (u *Service) Verify(ctx context.Context, g *forest.Grid) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	ok, bad, err := u.Validator.Validate(ctx, g)
	if err != nil {
		return err
	}
	if !ok {
		u.logger().Warn("visibility mismatch", "cells", len(bad))
		return ErrVerification
	}
	return nil
}

// Sample generates a random forest.
func (u *Service) Sample(ctx context.Context, seed int64, width, height int) (string, error) {
	if u.Generator == nil {
		return "", errNotConfigured
	}
	text, _, err := u.Generator.Generate(ctx, seed, width, height)
	return text, err
}

// Runs lists recorded runs, newest first.
func (u *Service) Runs(ctx context.Context, day, limit int) ([]domain.Run, error) {
	if u.History == nil {
		return nil, errNotConfigured
	}
	return u.History.List(ctx, day, limit)
}
