package fem

import (
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

type rule struct {
	X, W []float64
}

var rules sync.Map // n -> rule

// GaussRule returns the n point Gauss-Legendre rule on [-1,1]. Rules are
// shared, callers must not modify them.
func GaussRule(n int) (X, W []float64) {
	if r, ok := rules.Load(n); ok {
		return r.(rule).X, r.(rule).W
	}
	X, W = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(X, W, -1, 1)
	rules.Store(n, rule{X, W})
	return
}

// PointsForDegree is the number of Gauss points per axis that integrates
// polynomials of the given degree exactly
func PointsForDegree(degree int) int {
	if degree < 0 {
		degree = 0
	}
	return degree/2 + 1
}
