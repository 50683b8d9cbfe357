package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
)

func TestHintSample(t *testing.T) {
	g, err := forest.Analyze("30373\n25512\n65332\n33549\n35390")
	require.NoError(t, err)

	h, ok, err := NewScenic().Hint(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, h.Score)
	assert.Equal(t, []domain.CellCoord{{Row: 3, Col: 2}}, h.Cells)
	assert.Equal(t, "Best spot: height 5 sees up 2, left 2, down 1, right 2", h.Message)
}

func TestHintNothingScenic(t *testing.T) {
	g, err := forest.Analyze("12\n34")
	require.NoError(t, err)

	_, ok, err := NewScenic().Hint(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, ok)
}
