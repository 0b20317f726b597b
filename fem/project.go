package fem

import (
	"context"
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/utils"
)

// ProjectIndicator solves the L2 projection <u,v> = <I,v> onto the
// extruded DG0 x DG1 space V of the indicator
//
//	I(X, s) = 1 if level(X) < s else 0
//
// where X is a point of the base mesh and s the extruded coordinate. The
// base integral uses a Gauss rule exact to degree, the integral along the
// extrusion is exact. Layers are split over threads goroutines.
func ProjectIndicator(ctx context.Context, V *Space, level func(x []float64) float64,
	degree, threads int) (u *Function, err error) {
	var (
		Minv utils.Matrix
	)
	m, ok := V.Mesh.(*ExtrudedMesh)
	if !ok || V.Family != DG || V.Degree != 1 {
		err = fmt.Errorf("%w: indicator projection needs the extruded DG0 x DG1 space, have %s on %T",
			ErrSpaceMismatch, V, V.Mesh)
		return
	}
	if Minv, err = V.Element.Mass.Inverse(); err != nil {
		return
	}
	var (
		n       = PointsForDegree(degree)
		columns = m.Base.NumCells()
		W       = make([][]float64, columns)
		levels  = make([][]float64, columns)
		volume  = make([]float64, columns)
	)
	// The level set only depends on the base point
	for c := 0; c < columns; c++ {
		var X [][]float64
		X, W[c] = m.Base.CellQuadrature(c, n)
		levels[c] = make([]float64, len(X))
		for q, x := range X {
			levels[c][q] = level(x)
		}
		volume[c] = m.Base.CellVolume(c)
	}

	u = NewFunction(V)
	pm := utils.NewPartitionMap(threads, m.Layers)
	err = pm.RunPartitioned(ctx, func(ctx context.Context, _, lMin, lMax int) error {
		for layer := lMin; layer < lMax; layer++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, b := m.LayerBounds(layer)
			h := b - a
			for c := 0; c < columns; c++ {
				var rhs [2]float64
				for q, lv := range levels[c] {
					s := utils.Clamp(lv, a, b)
					rhs[0] += W[c][q] * (b - s) * (b - s) / (2 * h)
					rhs[1] += W[c][q] * ((b-a)*(b-a) - (s-a)*(s-a)) / (2 * h)
				}
				// Local mass is volume*(h/2)*M on the reference element
				scale := 2 / (volume[c] * h)
				dofs := V.CellDofs[m.Cell(c, layer)]
				for i := 0; i < 2; i++ {
					u.Dat[dofs[i]] = scale * (Minv.At(i, 0)*rhs[0] + Minv.At(i, 1)*rhs[1])
				}
			}
		}
		return nil
	})
	if err != nil {
		u = nil
	}
	return
}
