package generator

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShapeAndDeterminism(t *testing.T) {
	g := NewForestGenerator()
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 42, 7, 3)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 42, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	rows := strings.Split(strings.TrimSuffix(a, "\n"), "\n")
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Len(t, row, 7)
		for _, ch := range row {
			assert.True(t, ch >= '0' && ch <= '9', "unexpected %q", ch)
		}
	}
}

func TestGenerateMaxHeight(t *testing.T) {
	g := &ForestGenerator{MaxHeight: 2}
	out, _, err := g.Generate(context.Background(), 1, 20, 20)
	require.NoError(t, err)
	assert.NotContains(t, out, "3")
	assert.NotContains(t, out, "9")
}

func TestGenerateRejectsBadSize(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"negative height", 3, -1},
		{"too wide", MaxSide + 1, 4},
		{"too tall", 4, MaxSide + 1},
		{"overflowing width", math.MaxInt, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := NewForestGenerator().Generate(context.Background(), 1, tc.width, tc.height)
			assert.ErrorIs(t, err, errBadSize)
			assert.Empty(t, out)
		})
	}
}

func TestGenerateLargestSide(t *testing.T) {
	out, _, err := NewForestGenerator().Generate(context.Background(), 1, MaxSide, 1)
	require.NoError(t, err)
	assert.Len(t, out, MaxSide+1)
}
