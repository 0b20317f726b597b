package DG1D

import (
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/utils"
)

// Element1D is the reference interval [-1,1] carrying a nodal Lagrange
// basis of degree N on the Legendre-Gauss-Lobatto nodes.
type Element1D struct {
	N, Np   int
	R       []float64 // Lagrange nodes
	V, Vinv utils.Matrix
	Dr      utils.Matrix
	Mass    utils.Matrix // Mass[i][j] = int phi_i phi_j dr
	Weak    utils.Matrix // Weak[j][i] = int phi_j dphi_i/dr dr
}

func NewElement1D(N int) (el *Element1D) {
	el = &Element1D{
		N:  N,
		Np: N + 1,
	}
	el.Startup1D()
	return
}

func (el *Element1D) Startup1D() {
	var (
		err error
	)
	el.R = JacobiGL(0, 0, el.N)
	el.V = Vandermonde1D(el.N, el.R)
	if el.Vinv, err = el.V.Inverse(); err != nil {
		panic(fmt.Errorf("error inverting V: %w", err))
	}
	Vr := GradVandermonde1D(el.R, el.N)
	el.Dr = Vr.Mul(el.Vinv)

	// The modal basis is orthonormal, so M = (V V^T)^-1
	if el.Mass, err = el.V.Mul(el.V.Transpose()).Inverse(); err != nil {
		panic(fmt.Errorf("error inverting V V^T: %w", err))
	}
	el.Weak = el.Mass.Mul(el.Dr)

	// Shared by every function that lives on this element
	el.V.SetReadOnly("V")
	el.Vinv.SetReadOnly("Vinv")
	el.Dr.SetReadOnly("Dr")
	el.Mass.SetReadOnly("Mass")
	el.Weak.SetReadOnly("Weak")
}

// Basis returns phi_i(r) for every node i
func (el *Element1D) Basis(r float64) (phi []float64) {
	var (
		P = make([]float64, el.Np)
		R = []float64{r}
	)
	for j := 0; j < el.Np; j++ {
		P[j] = JacobiP(R, 0, 0, j)[0]
	}
	phi = el.Vinv.Transpose().MulVec(P)
	return
}

// GradBasis returns dphi_i/dr at r for every node i
func (el *Element1D) GradBasis(r float64) (dphi []float64) {
	var (
		P = make([]float64, el.Np)
		R = []float64{r}
	)
	for j := 0; j < el.Np; j++ {
		P[j] = GradJacobiP(R, 0, 0, j)[0]
	}
	dphi = el.Vinv.Transpose().MulVec(P)
	return
}
