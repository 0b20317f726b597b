package fem

import (
	"fmt"
)

// ExtrudedMesh stacks Layers cells of height LayerHeight on every cell of
// Base. The extruded coordinate runs from 0 at the bottom of the first
// layer and is appended to the base coordinates.
type ExtrudedMesh struct {
	Base        Mesh
	Layers      int
	LayerHeight float64
}

func NewExtrudedMesh(base Mesh, layers int, layerHeight float64) (m *ExtrudedMesh, err error) {
	if layers < 1 || !(layerHeight > 0) {
		err = fmt.Errorf("%w: extrusion needs layers >= 1 and a positive height, have %d layers of %g",
			ErrUnsupported, layers, layerHeight)
		return
	}
	m = &ExtrudedMesh{
		Base:        base,
		Layers:      layers,
		LayerHeight: layerHeight,
	}
	return
}

func (m *ExtrudedMesh) NumCells() int { return m.Base.NumCells() * m.Layers }
func (m *ExtrudedMesh) Dim() int      { return m.Base.Dim() + 1 }

// Cell numbers cells column by column, bottom to top
func (m *ExtrudedMesh) Cell(column, layer int) int {
	return column*m.Layers + layer
}

func (m *ExtrudedMesh) split(k int) (column, layer int) {
	return k / m.Layers, k % m.Layers
}

func (m *ExtrudedMesh) LayerBounds(layer int) (a, b float64) {
	return float64(layer) * m.LayerHeight, float64(layer+1) * m.LayerHeight
}

func (m *ExtrudedMesh) CellVolume(k int) float64 {
	column, _ := m.split(k)
	return m.Base.CellVolume(column) * m.LayerHeight
}

func (m *ExtrudedMesh) CellCentre(k int) []float64 {
	column, layer := m.split(k)
	a, b := m.LayerBounds(layer)
	return append(m.Base.CellCentre(column), 0.5*(a+b))
}

func (m *ExtrudedMesh) CellQuadrature(k, n int) (X [][]float64, W []float64) {
	var (
		column, layer = m.split(k)
		a, b          = m.LayerBounds(layer)
		XB, WB        = m.Base.CellQuadrature(column, n)
		R, WR         = GaussRule(n)
		h             = 0.5 * (b - a)
	)
	X, W = make([][]float64, 0, n*len(XB)), make([]float64, 0, n*len(XB))
	for q, r := range R {
		for p, xb := range XB {
			x := make([]float64, len(xb)+1)
			copy(x, xb)
			x[len(xb)] = a + (r+1)*h
			X = append(X, x)
			W = append(W, WB[p]*WR[q]*h)
		}
	}
	return
}
