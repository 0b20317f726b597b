package DG1D

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CellPairs holds the (left, right) nodal values of a linear DG function,
// one row per element in ascending spatial order.
type CellPairs [][2]float64

func NewCellPairs(dofs []float64) (U CellPairs) {
	if len(dofs)%2 != 0 {
		panic("linear DG data must hold two values per element")
	}
	U = make(CellPairs, len(dofs)/2)
	for k := range U {
		U[k] = [2]float64{dofs[2*k], dofs[2*k+1]}
	}
	return
}

func (U CellPairs) Copy() (R CellPairs) {
	R = make(CellPairs, len(U))
	copy(R, U)
	return
}

// Flatten writes the pairs back in element-major order
func (U CellPairs) Flatten(dofs []float64) []float64 {
	if dofs == nil {
		dofs = make([]float64, 2*len(U))
	}
	for k, p := range U {
		dofs[2*k], dofs[2*k+1] = p[0], p[1]
	}
	return dofs
}

// Slopes returns right - left for every element
func (U CellPairs) Slopes() (s []float64) {
	s = make([]float64, len(U))
	for k, p := range U {
		s[k] = p[1] - p[0]
	}
	return
}

// Redistribute moves alpha*j[k] from the left to the right node of element
// k, leaving the element mean unchanged.
func (U CellPairs) Redistribute(j []float64, alpha float64) {
	for k := range U {
		U[k][0] -= alpha * j[k]
		U[k][1] += alpha * j[k]
	}
}

// MonotoneLimiter repairs a linear DG cumulative distribution so that it is
// non-decreasing and bounded by the virtual neighbour values.
type MonotoneLimiter struct {
	Alpha       float64 // relaxation step
	Tol         float64 // stop when the relative jump change is at or below Tol
	SlopeTol    float64 // slopes smaller in magnitude are treated as zero
	MaxIter     int
	Left, Right float64 // values of the virtual elements beyond each boundary
}

func NewMonotoneLimiter() MonotoneLimiter {
	return MonotoneLimiter{
		Alpha:    0.1,
		Tol:      0.2,
		SlopeTol: 1.e-8,
		MaxIter:  100,
		Left:     0,
		Right:    1,
	}
}

type LimiterReport struct {
	Iterations int
	Error      float64 // relative jump change of the last relaxation step
	Slope      float64 // minimum element slope after relaxation
	Converged  bool
}

func jumpCondition(aMinus, aPlus, a0Minus float64) float64 {
	if aPlus < aMinus {
		return aPlus - aMinus
	}
	return math.Min(aPlus, a0Minus) - aMinus
}

// Jumps computes the per element correction of U measured against the
// baseline U0. jumps is reused when it has the right length.
func (lim MonotoneLimiter) Jumps(U, U0 CellPairs, jumps []float64) []float64 {
	var (
		K = len(U)
	)
	if len(jumps) != K {
		jumps = make([]float64, K)
	}
	for e := 0; e < K; e++ {
		var (
			em1, em1Base = [2]float64{lim.Left, lim.Left}, [2]float64{lim.Left, lim.Left}
			ep1          = [2]float64{lim.Right, lim.Right}
		)
		if e > 0 {
			em1, em1Base = U[e-1], U0[e-1]
		}
		if e < K-1 {
			ep1 = U[e+1]
		}
		left := jumpCondition(em1[1], U[e][0], em1Base[1])
		right := jumpCondition(U[e][1], ep1[0], U0[e][1])
		jumps[e] = math.Min(left, right)
	}
	return jumps
}

// Limit relaxes U in place and finishes with one unscaled correction
func (lim MonotoneLimiter) Limit(U CellPairs) (report LimiterReport) {
	var (
		K     = len(U)
		U0    = U.Copy() // baseline, never written
		jn    = make([]float64, K)
		jo    = make([]float64, K)
		err   = 1.
		slope = -1.
		iter  int
	)
	if K == 0 {
		report.Converged = true
		return
	}
	for (err > lim.Tol || slope < 0) && iter < lim.MaxIter {
		jn = lim.Jumps(U, U0, jn)
		U.Redistribute(jn, lim.Alpha)
		iter++

		if nrm := floats.Norm(jn, 2); nrm == 0 {
			err = 0
		} else {
			err = floats.Distance(jn, jo, 2) / nrm
		}
		jo, jn = jn, jo

		slope = floats.Min(U.Slopes())
		if math.Abs(slope) < lim.SlopeTol {
			slope = 0
		}
	}
	report = LimiterReport{
		Iterations: iter,
		Error:      err,
		Slope:      slope,
		Converged:  err <= lim.Tol && slope >= 0,
	}

	// Remove remaining illegal discontinuities
	jn = lim.Jumps(U, U0, jn)
	U.Redistribute(jn, 1)
	return
}
