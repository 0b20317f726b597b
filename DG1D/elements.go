package DG1D

import (
	"math"

	"github.com/mannixp/D.stratify-pdfe/utils"
	"gonum.org/v1/gonum/mat"
)

// JacobiGQ returns the N+1 point Gauss-Jacobi rule for the weight
// (1-r)^alpha (1+r)^beta on [-1,1]
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	var (
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{2.}
		return
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal of J + J^T: diag(-(alpha^2-beta^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = -(alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal: diag(2./(h1(1:N)+2).*sqrt((1:N).*((1:N)+alpha+beta) .* ((1:N)+alpha).*((1:N)+beta)./(h1(1:N)+1)./(h1(1:N)+3)),1);
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := mat.NewSymDense(N+1, nil)
	for i := 0; i < N+1; i++ {
		JJ.SetSym(i, i, d0[i])
		if i < N {
			JJ.SetSym(i, i+1, d1[i])
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	X = eig.Values(nil)

	VVr = mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	W = make([]float64, N+1)
	g0 := gamma0(alpha, beta)
	for j, val := range VVr.RawRowView(0) {
		W[j] = val * val * g0
	}
	return
}

func Vandermonde1D(N int, R []float64) (V utils.Matrix) {
	V = utils.NewMatrix(len(R), N+1)
	for j := 0; j < N+1; j++ {
		for i, val := range JacobiP(R, 0, 0, j) {
			V.Set(i, j, val)
		}
	}
	return
}

func GradVandermonde1D(R []float64, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(len(R), N+1)
	for j := 0; j < N+1; j++ {
		for i, val := range GradJacobiP(R, 0, 0, j) {
			Vr.Set(i, j, val)
		}
	}
	return
}

// JacobiP evaluates the orthonormal Jacobi polynomial of order N at r
func JacobiP(r []float64, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = len(r)
		rg = 1. / math.Sqrt(gamma0(alpha, beta))
	)
	PL := make([][]float64, N+1)
	PL[0] = utils.ConstArray(Nc, rg)
	if N == 0 {
		p = PL[0]
		return
	}

	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	PL[1] = make([]float64, Nc)
	for i := 0; i < Nc; i++ {
		PL[1][i] = rg1 * ((ab+2.0)*r[i]/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		p = PL[1]
		return
	}

	a1 := alpha + 1.
	b1 := beta + 1.
	ab1 := ab + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt(ip2*(ip1+ab1)*(ip1+a1)*(ip1+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		xi, xip1 := PL[i], PL[i+1]
		PL[i+2] = make([]float64, Nc)
		for j := range xi {
			PL[i+2][j] = (-aold*xi[j] + (r[j]-bnew)*xip1[j]) / anew
		}
		aold = anew
	}
	p = PL[N]
	return
}

func GradJacobiP(r []float64, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, len(r))
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

// JacobiGL returns the N+1 Gauss-Lobatto nodes for the weight
// (1-r)^alpha (1+r)^beta, the end points plus the interior Gauss nodes of
// the (alpha+1, beta+1) rule. N = 0 gives the centre of the element.
func JacobiGL(alpha, beta float64, N int) (R []float64) {
	switch N {
	case 0:
		return []float64{0}
	case 1:
		return []float64{-1, 1}
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	R = make([]float64, N+1)
	R[0], R[N] = -1, 1
	copy(R[1:N], xint)
	return
}

// SimpleMesh1D returns K uniform elements on [xmin, xmax], numbered left to right
func SimpleMesh1D(xmin, xmax float64, K int) (VX []float64, EToV [][2]int) {
	var (
		Nv = K + 1
	)
	VX = make([]float64, Nv)
	for i := range VX {
		VX[i] = (xmax-xmin)*float64(i)/float64(K) + xmin
	}
	VX[K] = xmax
	EToV = make([][2]int, K)
	for k := range EToV {
		EToV[k] = [2]int{k, k + 1}
	}
	return
}
