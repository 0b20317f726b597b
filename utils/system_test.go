package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan([]float64{0, 1, -2}))
	assert.True(t, IsNan([]float64{0, math.NaN()}))
	assert.True(t, IsNan(math.Inf(-1)))
	assert.True(t, IsNan(NewMatrix(1, 2, []float64{1, math.NaN()})))
	assert.False(t, IsNan("not numeric"))
	assert.Panics(t, func() { IsNanPanic(math.NaN()) })
	assert.Contains(t, GetMemUsage(), "MiB")
}
