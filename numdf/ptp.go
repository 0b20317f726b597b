// Package numdf computes the CDF, quantile function and PDF of a transform
// Y(X) of a variable uniformly distributed over a physical domain. The
// distribution is found by projecting the indicator of {Y(X) < y} onto a
// tensor product (physical x probability) finite element space.
package numdf

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mannixp/D.stratify-pdfe/DG1D"
	"github.com/mannixp/D.stratify-pdfe/expr"
	"github.com/mannixp/D.stratify-pdfe/fem"
	"github.com/mannixp/D.stratify-pdfe/utils"
)

const (
	DefaultQuadratureDegree = 100
	// MassTol bounds |F(hi) - F(lo) - 1| and |int f dy - 1| before a warning
	MassTol = 1.e-2
)

// ErrNotFinite is returned when the transform is NaN somewhere in the
// physical domain
var ErrNotFinite = errors.New("transform is not finite over the physical domain")

type Axis struct {
	Name     string
	Min, Max float64
}

// PhysicalDomain holds one or two axes
type PhysicalDomain []Axis

type ProbabilityRange struct {
	Min, Max float64
}

type InvalidDomainError struct {
	Reason string
}

func (e *InvalidDomainError) Error() string {
	return "invalid domain: " + e.Reason
}

type LimiterConfig struct {
	Alpha    float64
	Tol      float64
	SlopeTol float64
	MaxIter  int
}

type Option func(*Ptp)

// WithThreads splits the indicator assembly over n goroutines
func WithThreads(n int) Option {
	return func(p *Ptp) { p.threads = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Ptp) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithLimiter(cfg LimiterConfig) Option {
	return func(p *Ptp) {
		p.limiter.Alpha = cfg.Alpha
		p.limiter.Tol = cfg.Tol
		p.limiter.SlopeTol = cfg.SlopeTol
		p.limiter.MaxIter = cfg.MaxIter
	}
}

// Ptp (physical to probability) holds the meshes and spaces shared by every
// fit over one domain, range and element count. Fits never modify it.
type Ptp struct {
	Domain    PhysicalDomain
	Range     ProbabilityRange
	NElements int

	MeshX  fem.Mesh          // the physical domain as a single cell
	MeshY  *fem.IntervalMesh // NElements cells over the range
	MeshYX *fem.ExtrudedMesh // MeshX extruded over NElements layers of the unit interval

	VR    *fem.Space // DG0 on MeshX
	VF    *fem.Space // DG1 on MeshY
	VFHat *fem.Space // DG0 x DG1 on MeshYX
	Vf    *fem.Space // CG1 on MeshY

	// VFHat DOF src[k] maps to VF DOF dst[k]
	src, dst utils.Index

	threads int
	logger  *slog.Logger
	limiter DG1D.MonotoneLimiter
}

func NewPtp(domain PhysicalDomain, rng ProbabilityRange, nElements int, opts ...Option) (p *Ptp, err error) {
	if err = validate(domain, rng, nElements); err != nil {
		return
	}
	p = &Ptp{
		Domain:    append(PhysicalDomain(nil), domain...),
		Range:     rng,
		NElements: nElements,
		threads:   1,
		logger:    slog.Default(),
		limiter:   DG1D.NewMonotoneLimiter(),
	}
	for _, opt := range opts {
		opt(p)
	}

	switch len(domain) {
	case 1:
		p.MeshX, err = fem.NewIntervalMesh(1, domain[0].Min, domain[0].Max)
	case 2:
		p.MeshX, err = fem.NewRectangleMesh(1, 1, domain[0].Min, domain[0].Max, domain[1].Min, domain[1].Max)
	}
	if err != nil {
		return nil, err
	}
	if p.MeshY, err = fem.NewIntervalMesh(nElements, rng.Min, rng.Max); err != nil {
		return nil, err
	}
	if p.MeshYX, err = fem.NewExtrudedMesh(p.MeshX, nElements, 1./float64(nElements)); err != nil {
		return nil, err
	}
	if err = p.buildSpaces(); err != nil {
		return nil, err
	}
	p.src, p.dst = dofPermutation(p.VFHat), dofPermutation(p.VF)
	if len(p.src) != len(p.dst) {
		return nil, fmt.Errorf("%w: %d extruded DOFs, %d probability DOFs", fem.ErrSpaceMismatch, len(p.src), len(p.dst))
	}
	return
}

func validate(domain PhysicalDomain, rng ProbabilityRange, nElements int) error {
	if len(domain) != 1 && len(domain) != 2 {
		return &InvalidDomainError{fmt.Sprintf("the physical domain must have 1 or 2 axes, have %d", len(domain))}
	}
	for _, ax := range domain {
		if !(ax.Min < ax.Max) {
			return &InvalidDomainError{fmt.Sprintf("axis %q has Min %g >= Max %g", ax.Name, ax.Min, ax.Max)}
		}
	}
	if !(rng.Min < rng.Max) {
		return &InvalidDomainError{fmt.Sprintf("probability range has Min %g >= Max %g", rng.Min, rng.Max)}
	}
	if nElements < 1 {
		return &InvalidDomainError{fmt.Sprintf("need at least one element, have %d", nElements)}
	}
	return nil
}

func (p *Ptp) buildSpaces() (err error) {
	if p.VR, err = fem.NewDG(p.MeshX, 0); err != nil {
		return
	}
	if p.VF, err = fem.NewDG(p.MeshY, 1); err != nil {
		return
	}
	if p.VFHat, err = fem.NewExtrudedDG(p.MeshYX); err != nil {
		return
	}
	p.Vf, err = fem.NewCG(p.MeshY, 1)
	return
}

// dofPermutation sorts the DOFs of V by their last coordinate, DOFs on a
// shared vertex by the centre of their cell
func dofPermutation(V *fem.Space) utils.Index {
	var (
		X = V.DofCoordinates()
		C = V.DofCellCentres()
		y = make([]float64, len(X))
		c = make([]float64, len(X))
	)
	for i := range X {
		y[i], c[i] = X[i][len(X[i])-1], C[i][len(C[i])-1]
	}
	return utils.ArgSort(y, c)
}

// XCoords returns the physical coordinates x1[, x2] named after the axes
func (p *Ptp) XCoords() (X []expr.Expr) {
	for i, ax := range p.Domain {
		X = append(X, expr.Coord(i, ax.Name))
	}
	return
}

// YCoord is the coordinate of the probability mesh
func (p *Ptp) YCoord() expr.Expr {
	return expr.Coord(0, "y")
}

// XYCoords returns the coordinates of the extruded mesh, the physical
// coordinates followed by the unit extrusion coordinate
func (p *Ptp) XYCoords() []expr.Expr {
	return append(p.XCoords(), expr.Coord(len(p.Domain), "y"))
}

// Map rescales Y from the probability range onto [0,1]
func (p *Ptp) Map(Y expr.Expr) expr.Expr {
	return expr.Div(expr.Sub(Y, expr.Const(p.Range.Min)), expr.Const(p.Range.Max-p.Range.Min))
}

// Indicator is 1 where the mapped transform Y lies below the extrusion
// coordinate
func (p *Ptp) Indicator(Y expr.Expr) expr.Expr {
	XY := p.XYCoords()
	return expr.Lt(Y, XY[len(XY)-1])
}

// Integrate integrates e over the extruded mesh
func (p *Ptp) Integrate(e expr.Expr, degree int) float64 {
	return fem.IntegrateExpr(p.MeshYX, e, degree)
}
