// Package curve provides the parametric curve mathematics behind a CAGD
// curve editor: evaluation, uniform sampling, basis changes, subdivision and
// trimming, and differentiation of cubic Hermite, arbitrary-degree Bézier,
// and B-spline curves.
//
// The package is a pure computational core. It holds no state, performs no
// I/O, and retains no references to its inputs; every operation is a
// deterministic function from control geometry to freshly allocated results,
// safe to call concurrently. Collecting control points, choosing sample
// density, repairing invalid knot vectors, and all rendering belong to the
// consumer.
//
// # Representations
//
// The three curve representations are deliberately independent — there is no
// shared curve interface, because their contracts differ:
//
//   - [Hermite] is a cubic segment given by two endpoints and two endpoint
//     tangent vectors. It converts exactly to and from power-form
//     polynomials ([Hermite.ToPolynomial], [HermiteFromPolynomial]) and to a
//     cubic Bézier ([Hermite.ToBezier]).
//   - [Bezier] is a control polygon of any degree. Evaluation is available
//     both as a Bernstein sum ([Bezier.Eval]) and as de Casteljau recursion
//     ([Bezier.DeCasteljau]); the two agree to 1e-9. Subdivision and
//     trimming produce control polygons that reproduce the original curve
//     over a sub-domain.
//   - [BSpline] pairs a control polygon with a degree and a [KnotVector].
//     The curve's native domain is [knots[k], knots[len-k-1]], not [0, 1].
//
// # Basis changes
//
// [Mat] is a small dense row-major matrix used transiently for basis
// changes: the fixed Hermite matrix ([HermiteMatrix]), exact Bézier-to-power
// matrices for degrees 2 and 3 ([PowerMatrix]), the cubic subdivision matrix
// ([SubdivisionMatrix]), and cubic domain remapping ([ReparamMatrix]).
// Requests outside the supported degrees fail with [ErrNotImplemented];
// callers needing other degrees use the generic Bernstein/de Casteljau path.
//
// # Validity
//
// Shape-incompatible matrix operands fail with [ErrDimensionMismatch]. Knot
// vectors and trim ranges report validity as booleans
// ([KnotVector.IsValid], [TrimRange.IsValid]) rather than errors, because
// interactive editing routinely produces transiently invalid values; callers
// check before evaluating and fall back (typically to [UniformKnots]).
// Zero-width knot spans never fail: their terms contribute zero.
package curve
