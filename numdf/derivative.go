package numdf

import (
	"fmt"
	"math"

	"github.com/mannixp/D.stratify-pdfe/fem"
	"github.com/mannixp/D.stratify-pdfe/utils"
)

// PDF projects the weak derivative of F onto Vf
//
//	<f, v> = -<F, v'> + F(hi) v(hi) - F(lo) v(lo)
func (p *Ptp) PDF(F *fem.Function) (f *fem.Function, err error) {
	var (
		x    []float64
		mass float64
	)
	if F.Space != p.VF {
		err = fmt.Errorf("%w: the density differentiates %s over the probability mesh", fem.ErrSpaceMismatch, p.VF)
		return
	}
	var (
		el = p.Vf.Element
		N  = p.Vf.NDofs
		A  = utils.NewDOK(N, N)
		// D[i][j] = -int phi_j(F) dv_i/dy dy, the Jacobian cancels
		D = utils.NewDOK(N, p.VF.NDofs)
	)
	for k, dofs := range p.Vf.CellDofs {
		A.AddBlock(utils.Index(dofs), el.Mass.Copy().Scale(0.5*p.MeshY.CellVolume(k)))
		for i, dof := range dofs {
			for j, Fdof := range p.VF.CellDofs[k] {
				D.Add(dof, Fdof, -el.Weak.At(j, i))
			}
		}
	}
	b := D.ToCSR().MulVec(F.Dat)
	lo, hi := p.MeshY.Bounds()
	for _, end := range []struct {
		y, sign float64
	}{{lo, -1}, {hi, 1}} {
		var (
			dofs []int
			phi  []float64
			Fy   []float64
		)
		if Fy, err = F.At(end.y); err != nil {
			return
		}
		if dofs, phi, err = p.Vf.BasisAt(end.y); err != nil {
			return
		}
		for i, dof := range dofs {
			b[dof] += end.sign * Fy[0] * phi[i]
		}
	}

	if x, err = A.ToCSR().SolveSPD(b); err != nil {
		err = fmt.Errorf("solving for the density: %w", err)
		return
	}
	f = fem.NewFunction(p.Vf)
	copy(f.Dat, x)

	if mass, err = f.Integrate(2); err != nil {
		return
	}
	if math.Abs(mass-1) > MassTol {
		p.logger.Warn("calculated int f(y) dy should equal 1, check the quadrature degree", "got", mass)
	}
	return
}
