package fem

import (
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/expr"
)

type Function struct {
	Space *Space
	Dat   []float64
}

func NewFunction(V *Space) *Function {
	return &Function{
		Space: V,
		Dat:   make([]float64, V.NDofs),
	}
}

func (f *Function) Copy() (g *Function) {
	g = NewFunction(f.Space)
	copy(g.Dat, f.Dat)
	return
}

// CellValues returns the DOF values of cell k in local order
func (f *Function) CellValues(k int) (u []float64) {
	dofs := f.Space.CellDofs[k]
	u = make([]float64, len(dofs))
	for i, dof := range dofs {
		u[i] = f.Dat[dof]
	}
	return
}

func (f *Function) evalCell(k int, r float64) (val float64) {
	dofs := f.Space.CellDofs[k]
	if len(dofs) == 1 {
		return f.Dat[dofs[0]]
	}
	for i, phi := range f.Space.Element.Basis(r) {
		val += phi * f.Dat[dofs[i]]
	}
	return
}

// At evaluates a function on an interval mesh at each of the points
func (f *Function) At(points ...float64) (vals []float64, err error) {
	var (
		k int
		r float64
	)
	m, ok := f.Space.Mesh.(*IntervalMesh)
	if !ok || f.Space.Family == Quadrature {
		err = fmt.Errorf("%w: %s on %T", ErrNotEvaluable, f.Space, f.Space.Mesh)
		return
	}
	vals = make([]float64, len(points))
	for i, x := range points {
		if k, r, err = m.Locate(x); err != nil {
			vals = nil
			return
		}
		vals[i] = f.evalCell(k, r)
	}
	return
}

// Integrate returns the integral of f over its mesh
func (f *Function) Integrate(degree int) (val float64, err error) {
	m, ok := f.Space.Mesh.(*IntervalMesh)
	if !ok {
		err = fmt.Errorf("%w: integration of %s on %T", ErrUnsupported, f.Space, f.Space.Mesh)
		return
	}
	return IntegrateFunctions(m, degree, func(v []float64, _ float64) float64 {
		return v[0]
	}, f)
}

// Interpolate sets every DOF of a new function on V to e evaluated at the
// DOF coordinate
func Interpolate(V *Space, e expr.Expr) (f *Function) {
	f = NewFunction(V)
	for i, x := range V.DofCoordinates() {
		f.Dat[i] = e.Eval(x)
	}
	return
}

// IntegrateFunctions integrates integrand(values of fs at x, x) over the
// interval mesh m with a Gauss rule exact to the given degree. All of fs
// must live on m. Quadrature functions are only usable with the rule they
// were built for.
func IntegrateFunctions(m *IntervalMesh, degree int,
	integrand func(vals []float64, x float64) float64, fs ...*Function) (val float64, err error) {
	var (
		n     = PointsForDegree(degree)
		R, W  = GaussRule(n)
		vals  = make([]float64, len(fs))
		cells = m.NumCells()
	)
	for _, f := range fs {
		if f.Space.Mesh != Mesh(m) {
			err = fmt.Errorf("%w: function on %s does not live on the integration mesh", ErrSpaceMismatch, f.Space)
			return
		}
		if f.Space.Family == Quadrature && len(f.Space.Rq) != n {
			err = fmt.Errorf("%w: %s function under a %d point rule", ErrNotEvaluable, f.Space, n)
			return
		}
	}
	for k := 0; k < cells; k++ {
		jacobi := 0.5 * m.CellVolume(k)
		if jacobi == 0 {
			continue
		}
		for q, r := range R {
			for i, f := range fs {
				if f.Space.Family == Quadrature {
					vals[i] = f.Dat[f.Space.CellDofs[k][q]]
				} else {
					vals[i] = f.evalCell(k, r)
				}
			}
			val += W[q] * jacobi * integrand(vals, m.ToPhysical(k, r))
		}
	}
	return
}

// IntegrateCells integrates fn over every cell of m with a Gauss rule exact
// to the given degree along each axis
func IntegrateCells(m Mesh, degree int, fn func(x []float64) float64) (val float64) {
	n := PointsForDegree(degree)
	for k := 0; k < m.NumCells(); k++ {
		X, W := m.CellQuadrature(k, n)
		for q, x := range X {
			val += W[q] * fn(x)
		}
	}
	return
}

func IntegrateExpr(m Mesh, e expr.Expr, degree int) float64 {
	return IntegrateCells(m, degree, e.Eval)
}
