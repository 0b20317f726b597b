package DG1D

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellPairs(t *testing.T) {
	U := NewCellPairs([]float64{0, 1, 2, 3})
	assert.Equal(t, CellPairs{{0, 1}, {2, 3}}, U)
	assert.Equal(t, []float64{1, 1}, U.Slopes())
	V := U.Copy()
	V.Redistribute([]float64{0.5, -1}, 0.1)
	assert.Equal(t, CellPairs{{0, 1}, {2, 3}}, U)
	assert.InDeltaSlice(t, []float64{-0.05, 1.05, 2.1, 2.9}, V.Flatten(nil), 1.e-15)
	assert.Panics(t, func() { NewCellPairs([]float64{0, 1, 2}) })
}

func TestMonotoneLimiter(t *testing.T) {
	lim := NewMonotoneLimiter()
	means := func(U CellPairs) (m []float64) {
		for _, p := range U {
			m = append(m, 0.5*(p[0]+p[1]))
		}
		return
	}
	{ // A continuous monotone CDF is left alone
		U := CellPairs{{0, .2}, {.2, .4}, {.4, .6}, {.6, .8}, {.8, 1}}
		report := lim.Limit(U)
		assert.True(t, report.Converged)
		assert.Equal(t, 1, report.Iterations)
		assert.Equal(t, 0., report.Error)
		assert.InDeltaSlice(t, []float64{0, .2, .2, .4, .4, .6, .6, .8, .8, 1}, U.Flatten(nil), 1.e-15)
	}
	{ // Overshoot at both boundaries is pulled back inside [0,1]
		U := CellPairs{{-0.05, 0.5}, {0.5, 1.05}}
		m0 := means(U)
		report := lim.Limit(U)
		assert.True(t, report.Converged)
		assert.Equal(t, 2, report.Iterations)
		assert.InDeltaSlice(t, m0, means(U), 1.e-14)
		assert.InDelta(t, 0, U[0][0], 1.e-12)
		assert.InDelta(t, 1, U[1][1], 1.e-12)
		assert.True(t, U[0][1] <= U[1][0])
	}
	{ // A downward jump is removed even when the relaxation stalls
		U := CellPairs{{0, 0.6}, {0.4, 1}}
		m0 := means(U)
		report := lim.Limit(U)
		assert.False(t, report.Converged)
		assert.Equal(t, lim.MaxIter, report.Iterations)
		assert.InDeltaSlice(t, m0, means(U), 1.e-14)
		assert.InDelta(t, 0.5, U[0][1], 1.e-8)
		assert.InDelta(t, 0.5, U[1][0], 1.e-8)
		for _, s := range U.Slopes() {
			assert.True(t, s >= 0)
		}
	}
	{ // A point mass at the left boundary
		U := CellPairs{{1, 1}, {1, 1}}
		report := lim.Limit(U)
		assert.True(t, report.Converged)
		assert.Equal(t, CellPairs{{1, 1}, {1, 1}}, U)
	}
	{
		report := lim.Limit(CellPairs{})
		assert.True(t, report.Converged)
	}
}
