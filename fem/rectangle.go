package fem

import (
	"fmt"
)

// RectangleMesh is an Nx by Ny grid of quadrilaterals, cell k = j*Nx + i
type RectangleMesh struct {
	Nx, Ny     int
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func NewRectangleMesh(nx, ny int, xmin, xmax, ymin, ymax float64) (m *RectangleMesh, err error) {
	if nx < 1 || ny < 1 || !(xmin < xmax) || !(ymin < ymax) {
		err = fmt.Errorf("%w: rectangle mesh needs nx, ny >= 1 and positive extent, have %d x %d on [%g, %g] x [%g, %g]",
			ErrUnsupported, nx, ny, xmin, xmax, ymin, ymax)
		return
	}
	m = &RectangleMesh{
		Nx: nx, Ny: ny,
		Xmin: xmin, Xmax: xmax,
		Ymin: ymin, Ymax: ymax,
	}
	return
}

func (m *RectangleMesh) NumCells() int { return m.Nx * m.Ny }
func (m *RectangleMesh) Dim() int      { return 2 }

func (m *RectangleMesh) CellBounds(k int) (x, y [2]float64) {
	var (
		i, j   = k % m.Nx, k / m.Nx
		dx, dy = (m.Xmax - m.Xmin) / float64(m.Nx), (m.Ymax - m.Ymin) / float64(m.Ny)
	)
	x = [2]float64{m.Xmin + float64(i)*dx, m.Xmin + float64(i+1)*dx}
	y = [2]float64{m.Ymin + float64(j)*dy, m.Ymin + float64(j+1)*dy}
	return
}

func (m *RectangleMesh) CellVolume(k int) float64 {
	x, y := m.CellBounds(k)
	return (x[1] - x[0]) * (y[1] - y[0])
}

func (m *RectangleMesh) CellCentre(k int) []float64 {
	x, y := m.CellBounds(k)
	return []float64{0.5 * (x[0] + x[1]), 0.5 * (y[0] + y[1])}
}

func (m *RectangleMesh) CellQuadrature(k, n int) (X [][]float64, W []float64) {
	var (
		x, y   = m.CellBounds(k)
		R, WR  = GaussRule(n)
		hx, hy = 0.5 * (x[1] - x[0]), 0.5 * (y[1] - y[0])
	)
	X, W = make([][]float64, 0, n*n), make([]float64, 0, n*n)
	for j, s := range R {
		for i, r := range R {
			X = append(X, []float64{x[0] + (r+1)*hx, y[0] + (s+1)*hy})
			W = append(W, WR[i]*WR[j]*hx*hy)
		}
	}
	return
}
