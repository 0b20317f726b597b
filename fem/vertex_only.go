package fem

import (
	"fmt"
)

// VertexOnlyMesh is a point cloud embedded in a parent interval mesh. Each
// point is a cell of the cloud, integration over it is a plain sum.
type VertexOnlyMesh struct {
	Parent *IntervalMesh
	Points []float64
	Cells  []int     // parent cell of each point
	Refs   []float64 // reference coordinate of each point in its parent cell
}

// NewVertexOnlyMesh locates every point in parent and fails with
// ErrPointOutsideMesh for the first point it cannot place
func NewVertexOnlyMesh(parent *IntervalMesh, points []float64) (vom *VertexOnlyMesh, err error) {
	var (
		N = len(points)
	)
	vom = &VertexOnlyMesh{
		Parent: parent,
		Points: make([]float64, N),
		Cells:  make([]int, N),
		Refs:   make([]float64, N),
	}
	copy(vom.Points, points)
	for i, x := range points {
		if vom.Cells[i], vom.Refs[i], err = parent.Locate(x); err != nil {
			err = fmt.Errorf("vertex %d: %w", i, err)
			vom = nil
			return
		}
	}
	return
}

func (vom *VertexOnlyMesh) NumCells() int              { return len(vom.Points) }
func (vom *VertexOnlyMesh) Dim() int                   { return 1 }
func (vom *VertexOnlyMesh) CellVolume(int) float64     { return 1 }
func (vom *VertexOnlyMesh) CellCentre(k int) []float64 { return []float64{vom.Points[k]} }

func (vom *VertexOnlyMesh) CellQuadrature(k, _ int) (X [][]float64, W []float64) {
	return [][]float64{{vom.Points[k]}}, []float64{1}
}

// Interpolate evaluates f, which must live on the parent mesh, at every
// vertex and returns the values as a DG0 function on the point cloud
func (vom *VertexOnlyMesh) Interpolate(f *Function) (g *Function, err error) {
	var (
		V *Space
	)
	if f.Space.Mesh != Mesh(vom.Parent) {
		err = fmt.Errorf("%w: function does not live on the parent mesh", ErrSpaceMismatch)
		return
	}
	if f.Space.Family == Quadrature {
		err = fmt.Errorf("%w: %s space", ErrNotEvaluable, f.Space)
		return
	}
	if V, err = NewDG(vom, 0); err != nil {
		return
	}
	g = NewFunction(V)
	for i := range vom.Points {
		g.Dat[i] = f.evalCell(vom.Cells[i], vom.Refs[i])
	}
	return
}
