package numdf

import (
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/fem"
)

// QDF inverts F. The quantile mesh has the vertices [0, F..., 1] and Q
// takes the matching y coordinates [lo, y..., hi] at them.
func (p *Ptp) QDF(F *fem.Function) (Q *fem.Function, err error) {
	var (
		mp *fem.IntervalMesh
		VQ *fem.Space
	)
	if F.Space != p.VF {
		err = fmt.Errorf("%w: the quantile function inverts %s over the probability mesh", fem.ErrSpaceMismatch, p.VF)
		return
	}
	var (
		Fs = p.dst.Gather(F.Dat)
		pv = make([]float64, 0, len(Fs)+2)
		yv = make([]float64, 0, len(Fs)+2)
	)
	pv = append(append(append(pv, 0), Fs...), 1)
	if mp, err = fem.NewIntervalMeshFromVertices(pv); err != nil {
		return
	}
	if !mp.Monotone() {
		p.logger.Warn("quantile mesh vertices are not sorted, the CDF is not monotone")
	}
	if VQ, err = fem.NewCG(mp, 1); err != nil {
		return
	}

	lo, hi := p.MeshY.Bounds()
	yv = append(append(append(yv, lo), p.dst.Gather(dofY(p.VF))...), hi)

	Q = fem.NewFunction(VQ)
	copy(Q.Dat, yv)
	return
}

func dofY(V *fem.Space) (y []float64) {
	X := V.DofCoordinates()
	y = make([]float64, len(X))
	for i, x := range X {
		y[i] = x[0]
	}
	return
}
