package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK accumulates finite element contributions, entries added to the same
// (i, j) are summed.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }
func (m DOK) NNZ() int            { return m.M.NNZ() }

func (m DOK) Add(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// AddBlock scatters the dense local matrix A into rows/cols given by I
func (m DOK) AddBlock(I Index, A Matrix) DOK { // Changes receiver
	nr, nc := A.Dims()
	if nr != len(I) || nc != len(I) {
		panic(fmt.Errorf("dimension mismatch: block is %d x %d, index has %d entries", nr, nc, len(I)))
	}
	for i, gi := range I {
		for j, gj := range I {
			m.Add(gi, gj, A.At(i, j))
		}
	}
	return m
}

func (m DOK) ToCSR() (R CSR) {
	R = CSR{m.M.ToCSR()}
	return
}

type CSR struct {
	M *sparse.CSR
}

func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

// MulVec returns m * x
func (m CSR) MulVec(x []float64) (y []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch: matrix has %d columns, vector has %d entries", nc, len(x)))
	}
	y = make([]float64, nr)
	m.M.DoNonZero(func(i, j int, v float64) {
		y[i] += v * x[j]
	})
	return
}

// SolveSPD solves m x = b for a symmetric positive definite m
func (m CSR) SolveSPD(b []float64) (x []float64, err error) {
	var (
		nr, nc = m.Dims()
		chol   mat.Cholesky
	)
	if nr != nc || len(b) != nr {
		err = fmt.Errorf("dimension mismatch: matrix is %d x %d, rhs has %d entries", nr, nc, len(b))
		return
	}
	A := mat.NewSymDense(nr, nil)
	m.M.DoNonZero(func(i, j int, v float64) {
		if j >= i {
			A.SetSym(i, j, v)
		}
	})
	if ok := chol.Factorize(A); !ok {
		err = fmt.Errorf("matrix is not positive definite")
		return
	}
	xv := mat.NewVecDense(nr, nil)
	if err = chol.SolveVecTo(xv, mat.NewVecDense(nr, b)); err != nil {
		return
	}
	x = xv.RawVector().Data
	return
}
