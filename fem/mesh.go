package fem

import (
	"fmt"
	"math"
	"sort"

	"github.com/mannixp/D.stratify-pdfe/DG1D"
)

type Mesh interface {
	NumCells() int
	// Dim is the number of coordinates of a point in the mesh
	Dim() int
	CellVolume(k int) float64
	CellCentre(k int) []float64
	// CellQuadrature maps an n point per axis Gauss-Legendre rule onto cell k
	CellQuadrature(k, n int) (X [][]float64, W []float64)
}

// IntervalMesh is a 1D mesh, cell k spans VX[EToV[k][0]] to VX[EToV[k][1]].
// Cells may have zero length and the vertices need not be sorted.
type IntervalMesh struct {
	VX       []float64
	EToV     [][2]int
	lo, hi   float64
	monotone bool
}

// NewIntervalMesh returns K uniform cells on [xmin, xmax]
func NewIntervalMesh(K int, xmin, xmax float64) (m *IntervalMesh, err error) {
	if K < 1 || !(xmin < xmax) {
		err = fmt.Errorf("%w: interval mesh needs K >= 1 and xmin < xmax, have K = %d, [%g, %g]",
			ErrUnsupported, K, xmin, xmax)
		return
	}
	VX, EToV := DG1D.SimpleMesh1D(xmin, xmax, K)
	m = newIntervalMesh(VX, EToV)
	return
}

// NewIntervalMeshFromVertices returns the len(VX)-1 cells joining
// consecutive vertices. VX is copied.
func NewIntervalMeshFromVertices(VX []float64) (m *IntervalMesh, err error) {
	if len(VX) < 2 {
		err = fmt.Errorf("%w: interval mesh needs at least two vertices, have %d", ErrUnsupported, len(VX))
		return
	}
	vx := make([]float64, len(VX))
	copy(vx, VX)
	EToV := make([][2]int, len(VX)-1)
	for k := range EToV {
		EToV[k] = [2]int{k, k + 1}
	}
	m = newIntervalMesh(vx, EToV)
	return
}

func newIntervalMesh(VX []float64, EToV [][2]int) (m *IntervalMesh) {
	m = &IntervalMesh{
		VX:       VX,
		EToV:     EToV,
		lo:       math.Inf(1),
		hi:       math.Inf(-1),
		monotone: true,
	}
	for i, x := range VX {
		m.lo, m.hi = math.Min(m.lo, x), math.Max(m.hi, x)
		if i > 0 && x < VX[i-1] {
			m.monotone = false
		}
	}
	return
}

func (m *IntervalMesh) NumCells() int { return len(m.EToV) }
func (m *IntervalMesh) Dim() int      { return 1 }

// Bounds returns the smallest and largest vertex coordinate
func (m *IntervalMesh) Bounds() (lo, hi float64) { return m.lo, m.hi }

// Monotone reports whether the vertices are non-decreasing
func (m *IntervalMesh) Monotone() bool { return m.monotone }

func (m *IntervalMesh) CellBounds(k int) (a, b float64) {
	return m.VX[m.EToV[k][0]], m.VX[m.EToV[k][1]]
}

func (m *IntervalMesh) CellVolume(k int) float64 {
	a, b := m.CellBounds(k)
	return math.Abs(b - a)
}

func (m *IntervalMesh) CellCentre(k int) []float64 {
	a, b := m.CellBounds(k)
	return []float64{0.5 * (a + b)}
}

func (m *IntervalMesh) CellQuadrature(k, n int) (X [][]float64, W []float64) {
	var (
		a, b   = m.CellBounds(k)
		R, WR  = GaussRule(n)
		jacobi = 0.5 * math.Abs(b-a)
	)
	X, W = make([][]float64, n), make([]float64, n)
	for q, r := range R {
		X[q] = []float64{m.ToPhysical(k, r)}
		W[q] = WR[q] * jacobi
	}
	return
}

// ToPhysical maps the reference coordinate r in [-1,1] into cell k, the
// ends map exactly onto the vertices
func (m *IntervalMesh) ToPhysical(k int, r float64) float64 {
	a, b := m.CellBounds(k)
	return affine(a, b, r)
}

func affine(a, b, r float64) float64 {
	return 0.5*(1-r)*a + 0.5*(1+r)*b
}

func (m *IntervalMesh) tolerance() float64 {
	if m.hi > m.lo {
		return LocateTol * (m.hi - m.lo)
	}
	return LocateTol
}

// Locate returns the cell containing x and the reference coordinate of x
// in that cell. The lowest numbered cell containing x to within tolerance
// is chosen, so a point on a shared vertex belongs to the cell on its left
// and a value on a plateau of a sorted vertex list maps to the plateau's
// first vertex. Zero length cells are only chosen when no other cell
// contains the point.
func (m *IntervalMesh) Locate(x float64) (k int, r float64, err error) {
	var (
		tol = m.tolerance()
		K   = m.NumCells()
	)
	if math.IsNaN(x) || x < m.lo-tol || x > m.hi+tol {
		err = fmt.Errorf("%w: %g is not in [%g, %g]", ErrPointOutsideMesh, x, m.lo, m.hi)
		return
	}
	if m.monotone {
		k = sort.Search(K-1, func(i int) bool { return m.VX[m.EToV[i][1]] >= x-tol })
		for m.CellVolume(k) == 0 && k+1 < K && m.VX[m.EToV[k+1][0]] <= x+tol {
			k++
		}
	} else {
		k = -1
		for kk := 0; kk < K; kk++ {
			a, b := m.CellBounds(kk)
			if x < math.Min(a, b)-tol || x > math.Max(a, b)+tol {
				continue
			}
			if a != b {
				k = kk
				break
			}
			if k == -1 {
				k = kk
			}
		}
	}
	r = m.reference(k, x)
	return
}

func (m *IntervalMesh) reference(k int, x float64) (r float64) {
	a, b := m.CellBounds(k)
	if a == b {
		return -1
	}
	r = 2*(x-a)/(b-a) - 1
	r = math.Max(-1, math.Min(1, r))
	return
}
