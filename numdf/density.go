package numdf

import (
	"fmt"

	"github.com/mannixp/D.stratify-pdfe/DG1D"
	"github.com/mannixp/D.stratify-pdfe/expr"
	"github.com/mannixp/D.stratify-pdfe/fem"
)

// Density is the result of a fit. Ptp is shared with every other fit made
// from it and must be treated as read only.
type Density struct {
	Ptp *Ptp
	Y   expr.Expr // coordinate of the probability mesh
	CDF *fem.Function
	QDF *fem.Function
	PDF *fem.Function

	Limiter          DG1D.LimiterReport
	cdfMass, pdfMass float64
}

// Fit returns the distribution of Y, a function of the physical
// coordinates. A quadratureDegree of zero or less selects
// DefaultQuadratureDegree.
func (p *Ptp) Fit(Y expr.Expr, quadratureDegree int) (d *Density, err error) {
	if quadratureDegree <= 0 {
		quadratureDegree = DefaultQuadratureDegree
	}
	d = &Density{
		Ptp: p,
		Y:   p.YCoord(),
	}
	if d.CDF, d.Limiter, d.cdfMass, err = p.cdf(Y, quadratureDegree); err != nil {
		return nil, err
	}
	if d.QDF, err = p.QDF(d.CDF); err != nil {
		return nil, err
	}
	if d.PDF, err = p.PDF(d.CDF); err != nil {
		return nil, err
	}
	if d.pdfMass, err = d.PDF.Integrate(2); err != nil {
		return nil, err
	}
	return
}

// Mass returns F(hi) - F(lo) and int f dy, both should be close to 1
func (d *Density) Mass() (cdfMass, pdfMass float64) {
	return d.cdfMass, d.pdfMass
}

// Evaluate returns the CDF, QDF and PDF at each of the points. The QDF is
// defined on [0,1], so every point must lie there as well as in the
// probability range.
func (d *Density) Evaluate(points []float64) (cdf, qdf, pdf, y []float64, err error) {
	if cdf, err = d.CDF.At(points...); err != nil {
		err = fmt.Errorf("evaluating the CDF: %w", err)
		return
	}
	if qdf, err = d.QDF.At(points...); err != nil {
		err = fmt.Errorf("evaluating the QDF: %w", err)
		return
	}
	if pdf, err = d.PDF.At(points...); err != nil {
		err = fmt.Errorf("evaluating the PDF: %w", err)
		return
	}
	y = append([]float64(nil), points...)
	return
}

// Compose returns f(g(y)) at the quadrature points of g's mesh. The points
// are located in g's mesh, and the values of g there are located in f's
// mesh, so f and g may live on unrelated meshes.
func (d *Density) Compose(f, g *fem.Function, quadratureDegree int) (fg *fem.Function, err error) {
	var (
		Vq         *fem.Space
		vomG, vomF *fem.VertexOnlyMesh
		gAtY, fAtG *fem.Function
		meshF, okF = f.Space.Mesh.(*fem.IntervalMesh)
		meshG, okG = g.Space.Mesh.(*fem.IntervalMesh)
	)
	if !okF || !okG {
		err = fmt.Errorf("%w: composition needs functions on interval meshes", fem.ErrSpaceMismatch)
		return
	}
	if Vq, err = fem.NewQuadratureSpace(meshG, quadratureDegree); err != nil {
		return
	}
	yq := fem.Interpolate(Vq, expr.Coord(0, "y"))

	if vomG, err = fem.NewVertexOnlyMesh(meshG, yq.Dat); err != nil {
		err = fmt.Errorf("locating quadrature points in the mesh of g: %w", err)
		return
	}
	if gAtY, err = vomG.Interpolate(g); err != nil {
		return
	}
	if vomF, err = fem.NewVertexOnlyMesh(meshF, gAtY.Dat); err != nil {
		err = fmt.Errorf("locating values of g in the mesh of f: %w", err)
		return
	}
	if fAtG, err = vomF.Interpolate(f); err != nil {
		return
	}

	fg = fem.NewFunction(Vq)
	copy(fg.Dat, fAtG.Dat)
	return
}

// RoundTrip returns int (Q(F(y)) - y) dy over the probability range. It
// vanishes when the QDF inverts the CDF and is negative where F has
// plateaus.
func (d *Density) RoundTrip(quadratureDegree int) (residual float64, err error) {
	var QF *fem.Function
	if QF, err = d.Compose(d.QDF, d.CDF, quadratureDegree); err != nil {
		return
	}
	residual, err = fem.IntegrateFunctions(d.Ptp.MeshY, quadratureDegree, func(v []float64, y float64) float64 {
		return v[0] - y
	}, QF)
	return
}
