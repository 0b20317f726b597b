// Package fem is a small finite-element backend: interval, rectangle,
// extruded and vertex-only meshes, DG, CG and quadrature function spaces,
// point evaluation, projection and integration.
package fem

import "errors"

var (
	ErrPointOutsideMesh = errors.New("point outside mesh")
	ErrSpaceMismatch    = errors.New("function space mismatch")
	ErrNotEvaluable     = errors.New("function cannot be evaluated at arbitrary points")
	ErrUnsupported      = errors.New("unsupported mesh or element")
)

// LocateTol is the tolerance, relative to the mesh extent, within which a
// point just outside a mesh is still located in its boundary cell.
const LocateTol = 1.e-10
