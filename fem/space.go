package fem

import (
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/DG1D"
)

type Family uint8

const (
	DG Family = iota
	CG
	Quadrature
)

func (f Family) String() string {
	switch f {
	case DG:
		return "DG"
	case CG:
		return "CG"
	case Quadrature:
		return "Quadrature"
	}
	return "?"
}

// Space is a function space on a mesh. CellDofs[k] lists the global DOFs of
// cell k in the local node order of Element.
type Space struct {
	Mesh     Mesh
	Family   Family
	Degree   int
	Element  *DG1D.Element1D // nodal basis along the interval or extruded axis, nil when there is none
	CellDofs [][]int
	NDofs    int
	Rq, Wq   []float64 // reference rule of a Quadrature space
}

func (V *Space) String() string {
	return fmt.Sprintf("%s%d", V.Family, V.Degree)
}

// NewDG returns a discontinuous space. Degree 0 is available on any mesh,
// higher degrees only on interval meshes.
func NewDG(m Mesh, degree int) (V *Space, err error) {
	var (
		K = m.NumCells()
	)
	_, isInterval := m.(*IntervalMesh)
	if degree < 0 || (degree > 0 && !isInterval) {
		err = fmt.Errorf("%w: DG%d on %T", ErrUnsupported, degree, m)
		return
	}
	V = &Space{
		Mesh:   m,
		Family: DG,
		Degree: degree,
	}
	if isInterval {
		V.Element = DG1D.NewElement1D(degree)
	}
	Np := degree + 1
	V.CellDofs = make([][]int, K)
	for k := range V.CellDofs {
		V.CellDofs[k] = make([]int, Np)
		for i := range V.CellDofs[k] {
			V.CellDofs[k][i] = k*Np + i
		}
	}
	V.NDofs = K * Np
	return
}

// NewCG returns a continuous space on an interval mesh. Vertex DOFs carry
// the vertex number, interior DOFs follow cell by cell.
func NewCG(m *IntervalMesh, degree int) (V *Space, err error) {
	var (
		K  = m.NumCells()
		Nv = len(m.VX)
	)
	if degree < 1 {
		err = fmt.Errorf("%w: CG%d", ErrUnsupported, degree)
		return
	}
	V = &Space{
		Mesh:     m,
		Family:   CG,
		Degree:   degree,
		Element:  DG1D.NewElement1D(degree),
		CellDofs: make([][]int, K),
		NDofs:    Nv + K*(degree-1),
	}
	for k := range V.CellDofs {
		dofs := make([]int, degree+1)
		dofs[0], dofs[degree] = m.EToV[k][0], m.EToV[k][1]
		for i := 1; i < degree; i++ {
			dofs[i] = Nv + k*(degree-1) + i - 1
		}
		V.CellDofs[k] = dofs
	}
	return
}

// NewQuadratureSpace holds one value per Gauss point of a rule exact to
// the given degree
func NewQuadratureSpace(m *IntervalMesh, degree int) (V *Space, err error) {
	var (
		K = m.NumCells()
		n = PointsForDegree(degree)
	)
	if degree < 0 {
		err = fmt.Errorf("%w: quadrature degree %d", ErrUnsupported, degree)
		return
	}
	V = &Space{
		Mesh:     m,
		Family:   Quadrature,
		Degree:   degree,
		CellDofs: make([][]int, K),
		NDofs:    K * n,
	}
	V.Rq, V.Wq = GaussRule(n)
	for k := range V.CellDofs {
		V.CellDofs[k] = make([]int, n)
		for q := range V.CellDofs[k] {
			V.CellDofs[k][q] = k*n + q
		}
	}
	return
}

// NewExtrudedDG returns the tensor product of DG0 on the base mesh with
// DG1 along the extrusion. DOFs are stored node plane by node plane: all
// bottom nodes of every cell first, then all top nodes.
func NewExtrudedDG(m *ExtrudedMesh) (V *Space, err error) {
	var (
		K = m.NumCells()
	)
	V = &Space{
		Mesh:     m,
		Family:   DG,
		Degree:   1,
		Element:  DG1D.NewElement1D(1),
		CellDofs: make([][]int, K),
		NDofs:    2 * K,
	}
	for k := range V.CellDofs {
		V.CellDofs[k] = []int{k, K + k}
	}
	return
}

// DofCoordinates returns the coordinates of every DOF
func (V *Space) DofCoordinates() (X [][]float64) {
	X = make([][]float64, V.NDofs)
	for k, dofs := range V.CellDofs {
		for i, x := range V.cellNodes(k) {
			X[dofs[i]] = x
		}
	}
	return
}

// DofCellCentres returns, for every DOF, the centre of the cell that owns
// it. A DOF shared between cells gets the centre of the last one.
func (V *Space) DofCellCentres() (C [][]float64) {
	C = make([][]float64, V.NDofs)
	for k, dofs := range V.CellDofs {
		c := V.Mesh.CellCentre(k)
		for _, dof := range dofs {
			C[dof] = c
		}
	}
	return
}

func (V *Space) cellNodes(k int) (X [][]float64) {
	switch m := V.Mesh.(type) {
	case *IntervalMesh:
		R := V.Rq
		if V.Family != Quadrature {
			R = V.Element.R
		}
		for _, r := range R {
			X = append(X, []float64{m.ToPhysical(k, r)})
		}
	case *ExtrudedMesh:
		column, layer := m.split(k)
		a, b := m.LayerBounds(layer)
		for _, r := range V.Element.R {
			x := append(m.Base.CellCentre(column), affine(a, b, r))
			X = append(X, x)
		}
	default:
		X = [][]float64{m.CellCentre(k)}
	}
	return
}

// BasisAt locates x and returns the DOFs and basis values of the cell
// containing it
func (V *Space) BasisAt(x float64) (dofs []int, phi []float64, err error) {
	var (
		k int
		r float64
	)
	m, ok := V.Mesh.(*IntervalMesh)
	if !ok || V.Family == Quadrature {
		err = fmt.Errorf("%w: %s on %T", ErrNotEvaluable, V, V.Mesh)
		return
	}
	if k, r, err = m.Locate(x); err != nil {
		return
	}
	dofs, phi = V.CellDofs[k], V.Element.Basis(r)
	return
}
