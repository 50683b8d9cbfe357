package solver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
)

func TestDefaultRegistrySolvesForest(t *testing.T) {
	r := NewDefaultRegistry()
	day, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, 8, day)

	s, err := r.Get(8)
	require.NoError(t, err)
	sol, st, err := s.Solve(context.Background(), "30373\n25512\n65332\n33549\n35390\n")
	require.NoError(t, err)
	assert.Equal(t, domain.Solution{First: "21", Second: "8"}, sol)
	assert.GreaterOrEqual(t, st.Duration.Nanoseconds(), int64(0))
}

func TestRegistryUnknownDay(t *testing.T) {
	_, err := NewDefaultRegistry().Get(3)
	assert.ErrorIs(t, err, ErrUnknownDay)
	assert.EqualError(t, err, "unknown day 3")
}

func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Latest()
	assert.False(t, ok)

	noop := Func(func(string) (domain.Solution, error) { return domain.Solution{}, nil })
	r.Register(12, noop)
	r.Register(2, noop)
	r.Register(7, noop)
	assert.Equal(t, []int{2, 7, 12}, r.Days())
	latest, _ := r.Latest()
	assert.Equal(t, 12, latest)
}

func TestFuncPropagatesErrorsAndCancellation(t *testing.T) {
	boom := errors.New("boom")
	f := Func(func(string) (domain.Solution, error) { return domain.Solution{}, boom })
	_, _, err := f.Solve(context.Background(), "")
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = f.Solve(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
