package DG1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiGQ_RootsAndMoments(t *testing.T) {
	const (
		α   = 0.3
		β   = 0.7
		N   = 5
		tol = 1e-10
	)

	X, W := JacobiGQ(α, β, N)
	assert.Equal(t, N+1, len(X))
	assert.Equal(t, N+1, len(W))

	// The nodes are the roots of the (N+1)-th Jacobi polynomial
	for i, xi := range X {
		pi := JacobiP([]float64{xi}, α, β, N+1)[0]
		assert.InDeltaf(t, 0, pi, 1e-10,
			"JacobiP_{%d}^{(%.1f,%.1f)}(%g) = %g ≠ 0 (node %d)", N+1, α, β, xi, pi, i)
		assert.True(t, xi > -1 && xi < 1)
		assert.True(t, W[i] > 0)
	}

	// Jacobi-Gauss quadrature integrates polynomials up to degree 2N+1 exactly
	for k := 0; k <= 2*N+1; k++ {
		var s float64
		for i, xi := range X {
			s += W[i] * math.Pow(xi, float64(k))
		}
		m := exactMoment(k, α, β)
		assert.InDeltaf(t, m, s, tol,
			"moment %d: got %g, want %g", k, s, m)
	}
}

func TestJacobiGQ_Legendre(t *testing.T) {
	// alpha = beta = 0 is symmetric about 0 and the weights sum to 2
	X, W := JacobiGQ(0, 0, 6)
	var sum float64
	for i := range X {
		sum += W[i]
		j := len(X) - 1 - i
		assert.InDelta(t, -X[i], X[j], 1.e-13)
		assert.InDelta(t, W[i], W[j], 1.e-13)
	}
	assert.InDelta(t, 2, sum, 1.e-13)
}

func TestJacobiPOrthogonality_WithJacobiGQ(t *testing.T) {
	const (
		α    = 0.3
		β    = 0.7
		Nmax = 6
	)
	nodes, weights := JacobiGQ(α, β, Nmax+3)
	Pvals := make([][]float64, Nmax+1)
	for n := 0; n <= Nmax; n++ {
		Pvals[n] = JacobiP(nodes, α, β, n)
	}
	for m := 0; m <= Nmax; m++ {
		for n := 0; n <= Nmax; n++ {
			var sum float64
			for i := range nodes {
				sum += weights[i] * Pvals[m][i] * Pvals[n][i]
			}
			if m == n {
				assert.InDeltaf(t, 1, sum, 1e-10, "norm of P_%d = %g", m, sum)
			} else {
				assert.InDeltaf(t, 0, sum, 1e-10, "<P_%d, P_%d> = %g", m, n, sum)
			}
		}
	}
}

// exactMoment computes ∫_{-1}^1 x^k (1-x)^α (1+x)^β dx analytically
func exactMoment(k int, α, β float64) float64 {
	var result float64
	// Substituting u = (1+x)/2 and expanding (2u-1)^k binomially
	for j := 0; j <= k; j++ {
		coeff := float64(choose(k, j)) * math.Pow(2, float64(j)) * math.Pow(-1, float64(k-j))
		result += coeff * beta(float64(j)+β+1, α+1)
	}
	return result * math.Pow(2, α+β+1)
}

func choose(n, k int) int {
	if k > n || k < 0 {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

func beta(a, b float64) float64 {
	return math.Gamma(a) * math.Gamma(b) / math.Gamma(a+b)
}
