package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseAssembly(t *testing.T) {
	var (
		K = 4
		h = 1. / float64(K)
	)
	// Linear mass matrix on a uniform mesh
	Mloc := NewMatrix(2, 2, []float64{2, 1, 1, 2}).Scale(h / 6)
	A := NewDOK(K+1, K+1)
	for k := 0; k < K; k++ {
		A.AddBlock(Index{k, k + 1}, Mloc)
	}
	assert.Equal(t, 3*K+1, A.NNZ())
	assert.InDelta(t, 2*h/3, A.At(1, 1), 1.e-14)
	assert.InDelta(t, h/3, A.At(0, 0), 1.e-14)
	assert.InDelta(t, h/6, A.At(2, 3), 1.e-14)

	csr := A.ToCSR()
	ones := []float64{1, 1, 1, 1, 1}
	// Row sums of the mass matrix integrate the basis functions
	b := csr.MulVec(ones)
	assert.InDelta(t, h/2, b[0], 1.e-14)
	assert.InDelta(t, h, b[2], 1.e-14)

	x, err := csr.SolveSPD(b)
	require.NoError(t, err)
	for i := range x {
		assert.InDelta(t, 1, x[i], 1.e-12)
	}
	_, err = csr.SolveSPD(b[:3])
	assert.Error(t, err)
}

func TestMatrix(t *testing.T) {
	{
		A := NewMatrix(2, 2, []float64{4, 1, 2, 3})
		Ainv, err := A.Inverse()
		require.NoError(t, err)
		I := A.Mul(Ainv)
		assert.InDelta(t, 1, I.At(0, 0), 1.e-14)
		assert.InDelta(t, 0, I.At(0, 1), 1.e-14)
		assert.InDelta(t, 1, I.At(1, 1), 1.e-14)
		assert.Equal(t, []float64{6, 8}, A.MulVec([]float64{1, 2}))
		assert.Equal(t, []float64{4, 2, 1, 3}, A.Transpose().Data())
		assert.Equal(t, []float64{2, 3}, A.Row(1))
	}
	{
		_, err := NewMatrix(2, 2, []float64{1, 1, 1, 1}).Inverse()
		assert.Error(t, err)
	}
	{ // Read only matrices refuse writes
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.True(t, A.IsReadOnly())
		assert.Panics(t, func() { A.Set(0, 0, 1) })
		assert.Panics(t, func() { A.Scale(2) })
		B := A.Copy()
		assert.NotPanics(t, func() { B.Set(0, 0, 1) })
	}
}
