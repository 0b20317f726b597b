package numdf

import (
	"context"
	"fmt"
	"math"

	"github.com/mannixp/D.stratify-pdfe/DG1D"
	"github.com/mannixp/D.stratify-pdfe/expr"
	"github.com/mannixp/D.stratify-pdfe/fem"
	"github.com/mannixp/D.stratify-pdfe/utils"
)

// CDF returns the limited cumulative distribution F of Y on VF
func (p *Ptp) CDF(Y expr.Expr, quadratureDegree int) (F *fem.Function, err error) {
	F, _, _, err = p.cdf(Y, quadratureDegree)
	return
}

// cdf also returns the limiter report and F(hi) - F(lo)
func (p *Ptp) cdf(Y expr.Expr, quadratureDegree int) (F *fem.Function, report DG1D.LimiterReport, mass float64, err error) {
	var (
		FHat  *fem.Function
		level = p.Map(Y)
	)
	if FHat, err = fem.ProjectIndicator(context.Background(), p.VFHat, level.Eval,
		quadratureDegree, p.threads); err != nil {
		err = fmt.Errorf("projecting the indicator of %s: %w", Y, err)
		return
	}
	if utils.IsNan(FHat.Dat) {
		err = fmt.Errorf("%w: %s", ErrNotFinite, Y)
		return
	}

	F = fem.NewFunction(p.VF)
	if err = p.dst.Scatter(F.Dat, p.src.Gather(FHat.Dat)); err != nil {
		return
	}

	if report, err = p.SlopeLimiter(F); err != nil {
		return
	}

	if mass, err = p.cdfMass(F); err != nil {
		return
	}
	if math.Abs(mass-1) > MassTol {
		p.logger.Warn("calculated F(+inf) - F(-inf) should equal 1, check the probability range and the quadrature degree",
			"got", mass, "Y", Y.String())
	}
	return
}

// SlopeLimiter makes F monotone in place, cell pairs are taken in
// ascending y order
func (p *Ptp) SlopeLimiter(F *fem.Function) (report DG1D.LimiterReport, err error) {
	if F.Space != p.VF {
		err = fmt.Errorf("%w: the slope limiter acts on %s over the probability mesh", fem.ErrSpaceMismatch, p.VF)
		return
	}
	U := DG1D.NewCellPairs(p.dst.Gather(F.Dat))
	report = p.limiter.Limit(U)
	if !report.Converged {
		p.logger.Warn("slope limiter relaxation iterations exceeded threshold",
			"iterations", report.Iterations, "error", report.Error, "slope", report.Slope)
	}
	err = p.dst.Scatter(F.Dat, U.Flatten(nil))
	return
}

func (p *Ptp) cdfMass(F *fem.Function) (mass float64, err error) {
	var (
		ends []float64
	)
	lo, hi := p.MeshY.Bounds()
	if ends, err = F.At(lo, hi); err != nil {
		return
	}
	mass = ends[1] - ends[0]
	return
}
