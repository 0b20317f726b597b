package DG1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElement1D(t *testing.T) {
	{ // Linear element
		el := NewElement1D(1)
		assert.Equal(t, 2, el.Np)
		assert.Equal(t, []float64{-1, 1}, el.R)
		assert.True(t, near(el.Mass.At(0, 0), 2./3.))
		assert.True(t, near(el.Mass.At(0, 1), 1./3.))
		assert.True(t, near(el.Mass.At(1, 1), 2./3.))
		assert.True(t, near(el.Dr.At(0, 0), -0.5))
		assert.True(t, near(el.Dr.At(1, 1), 0.5))
		// Weak(i,j) = int phi_i dphi_j/dr
		assert.True(t, near(el.Weak.At(0, 0), -0.5))
		assert.True(t, near(el.Weak.At(1, 0), -0.5))
		assert.True(t, near(el.Weak.At(0, 1), 0.5))
		assert.True(t, near(el.Weak.At(1, 1), 0.5))

		phi := el.Basis(0.5)
		assert.InDeltaSlice(t, []float64{0.25, 0.75}, phi, 1.e-14)
		assert.InDeltaSlice(t, []float64{-0.5, 0.5}, el.GradBasis(-0.3), 1.e-14)
		assert.Panics(t, func() { el.Mass.Set(0, 0, 1) })
	}
	{ // Piecewise constant element
		el := NewElement1D(0)
		assert.Equal(t, []float64{0}, el.R)
		assert.True(t, near(el.Mass.At(0, 0), 2))
		assert.InDeltaSlice(t, []float64{1}, el.Basis(0.7), 1.e-14)
	}
	{ // Higher order: partition of unity and exact mass
		for N := 2; N < 5; N++ {
			el := NewElement1D(N)
			var sum, massSum float64
			for _, val := range el.Basis(0.123) {
				sum += val
			}
			for i := 0; i < el.Np; i++ {
				for j := 0; j < el.Np; j++ {
					massSum += el.Mass.At(i, j)
				}
			}
			assert.InDelta(t, 1, sum, 1.e-12)
			assert.InDelta(t, 2, massSum, 1.e-12)
			// Dr differentiates r^N exactly at the nodes
			u := make([]float64, el.Np)
			for i, r := range el.R {
				u[i] = math.Pow(r, float64(N))
			}
			du := el.Dr.MulVec(u)
			for i, r := range el.R {
				assert.InDelta(t, float64(N)*math.Pow(r, float64(N-1)), du[i], 1.e-10)
			}
		}
	}
}

func TestSimpleMesh1D(t *testing.T) {
	VX, EToV := SimpleMesh1D(0, 2, 4)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, VX)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, EToV)
}

func TestJacobiGL(t *testing.T) {
	assert.Equal(t, []float64{0}, JacobiGL(0, 0, 0))
	assert.Equal(t, []float64{-1, 1}, JacobiGL(0, 0, 1))
	R := JacobiGL(0, 0, 2)
	assert.Equal(t, 3, len(R))
	assert.InDelta(t, 0, R[1], 1.e-15)
	// Interior LGL nodes of degree 4 are 0 and +-sqrt(3/7)
	R = JacobiGL(0, 0, 4)
	assert.Equal(t, -1., R[0])
	assert.Equal(t, 1., R[4])
	assert.InDelta(t, -math.Sqrt(3./7.), R[1], 1.e-13)
	assert.InDelta(t, 0, R[2], 1.e-13)
	assert.InDelta(t, math.Sqrt(3./7.), R[3], 1.e-13)
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Max(math.Abs(a), 1.e-8) {
		l = true
	}
	return
}
