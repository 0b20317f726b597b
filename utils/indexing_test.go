package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	{ // Ranges are inclusive
		assert.Equal(t, Index{2, 3, 4}, NewRange(2, 4))
		assert.Equal(t, Index{}, NewRange(3, 2))
	}
	{ // ArgSort visits values in ascending order
		I := ArgSort([]float64{0.3, 0.1, 0.2})
		assert.Equal(t, Index{1, 2, 0}, I)
		assert.True(t, I.IsPermutation())
	}
	{ // Ties keep their position without a tie break
		I := ArgSort([]float64{0, 0.5, 0.5, 1})
		assert.Equal(t, Index{0, 1, 2, 3}, I)
	}
	{ // Ties follow the tie break when one is given
		values := []float64{0.5, 0, 1, 0.5}
		centers := []float64{0.75, 0.25, 0.75, 0.25}
		I := ArgSort(values, centers)
		assert.Equal(t, Index{1, 3, 0, 2}, I)
	}
	{ // Scatter and Gather are inverse operations
		I := Index{2, 0, 1}
		src := []float64{10, 20, 30}
		dst := make([]float64, 3)
		assert.NoError(t, I.Scatter(dst, src))
		assert.Equal(t, []float64{20, 30, 10}, dst)
		assert.Equal(t, src, I.Gather(dst))
		assert.Equal(t, Index{1, 2, 0}, I.Inverse())
		assert.Error(t, I.Scatter(dst, src[:2]))
	}
	{
		assert.False(t, Index{0, 0, 1}.IsPermutation())
		assert.False(t, Index{0, 3}.IsPermutation())
	}
}

func TestEvalOp(t *testing.T) {
	assert.True(t, Less.Compare(1, 2))
	assert.False(t, Less.Compare(2, 2))
	assert.True(t, LessOrEqual.Compare(2, 2))
	assert.True(t, Greater.Compare(3, 2))
	assert.True(t, GreaterOrEqual.Compare(2, 2))
	assert.True(t, Equal.Compare(2, 2))
	assert.Equal(t, "<=", LessOrEqual.String())
}
