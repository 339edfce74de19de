package curve

// Bezier is a Bézier control polygon of arbitrary degree len−1. The slice
// is treated as read-only; every operation allocates its results.
type Bezier []Point

// Degree returns the polynomial degree of the curve, len−1.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Binomial returns the binomial coefficient C(n, k), computed as an
// incremental product to avoid factorial overflow. It returns 0 for k
// outside [0, n].
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1.0
	for i := 0; i < k; i++ {
		out = out * float64(n-i) / float64(i+1)
	}
	return out
}

// Bernstein returns the Bernstein polynomial B_{i,n}(u) = C(n,i)·(1−u)^(n−i)·u^i.
// Indices outside [0, n] yield 0, not an error, so sums over shifted index
// ranges need no bounds handling.
func Bernstein(i, n int, u float64) float64 {
	if i < 0 || i > n {
		return 0
	}
	out := Binomial(n, i)
	for j := 0; j < i; j++ {
		out *= u
	}
	for j := 0; j < n-i; j++ {
		out *= 1 - u
	}
	return out
}

// Eval evaluates the curve at u as a Bernstein-weighted sum of the control
// points.
func (b Bezier) Eval(u float64) Point {
	n := b.Degree()
	var v Vec2
	for i, p := range b {
		v = v.Add(Vec2(p).Mul(Bernstein(i, n, u)))
	}
	return Point(v)
}

// DeCasteljau evaluates the curve at u by recursive linear interpolation.
// It agrees with [Bezier.Eval] to well below 1e-9; the recursion is the
// numerically stable form. Each level is a fresh slice, the input is never
// written.
func (b Bezier) DeCasteljau(u float64) Point {
	if len(b) == 1 {
		return b[0]
	}
	next := make(Bezier, len(b)-1)
	for i := range next {
		next[i] = b[i].Lerp(b[i+1], u)
	}
	return next.DeCasteljau(u)
}

// Sample evaluates the curve at the n+1 uniformly spaced parameters i/n,
// i = 0..n, including both endpoints.
func (b Bezier) Sample(n int) []Point {
	out := make([]Point, n+1)
	for i := 0; i < n+1; i++ {
		out[i] = b.Eval(float64(i) / float64(n))
	}
	return out
}

// Subdivide splits the curve at u into two control polygons of the same
// degree: the head reproduces the curve over [0, u], the tail over [u, 1].
// The two polygons are read off the outer edges of the de Casteljau
// triangle.
func (b Bezier) Subdivide(u float64) (head, tail Bezier) {
	head = make(Bezier, 0, len(b))
	tail = make(Bezier, 0, len(b))
	level := b
	for {
		head = append(head, level[0])
		tail = append(tail, level[len(level)-1])
		if len(level) == 1 {
			break
		}
		next := make(Bezier, len(level)-1)
		for i := range next {
			next[i] = level[i].Lerp(level[i+1], u)
		}
		level = next
	}
	for i, j := 0, len(tail)-1; i < j; i, j = i+1, j-1 {
		tail[i], tail[j] = tail[j], tail[i]
	}
	return head, tail
}

// TrimRange is a sub-domain [U1, U2] of a Bézier curve's parameter range.
type TrimRange struct {
	U1 float64
	U2 float64
}

// IsValid reports whether the range satisfies 0 ≤ U1 < U2 ≤ 1. [Bezier.Trim]
// requires a valid range; like knot-vector validity, this is a boolean for
// the caller to check, not an error.
func (r TrimRange) IsValid() bool {
	return r.U1 >= 0 && r.U1 < r.U2 && r.U2 <= 1
}

// Trim returns the control polygon of the curve restricted to r, re-mapped
// onto [0, 1]: the result evaluated at v equals the original evaluated at
// U1 + v·(U2−U1). It subdivides at U1, keeps the tail, then subdivides the
// tail at the re-mapped parameter (U2−U1)/(1−U1) and keeps the head.
//
// The range must be valid; see [TrimRange.IsValid].
func (b Bezier) Trim(r TrimRange) Bezier {
	_, tail := b.Subdivide(r.U1)
	head, _ := tail.Subdivide((r.U2 - r.U1) / (1 - r.U1))
	return head
}

// ToPolynomial converts a degree-2 or degree-3 curve to a pair of
// power-form polynomials, one per axis, by applying [PowerMatrix] to the
// control values. Other degrees return [ErrNotImplemented]; evaluation at
// any degree remains available through [Bezier.Eval] and
// [Bezier.DeCasteljau].
func (b Bezier) ToPolynomial() (px, py CubicPoly, err error) {
	m, err := PowerMatrix(b.Degree())
	if err != nil {
		return CubicPoly{}, CubicPoly{}, err
	}
	xs := make([]float64, len(b))
	ys := make([]float64, len(b))
	for i, p := range b {
		xs[i], ys[i] = p.Splat()
	}
	cx, err := m.MulVec(xs)
	if err != nil {
		return CubicPoly{}, CubicPoly{}, err
	}
	cy, err := m.MulVec(ys)
	if err != nil {
		return CubicPoly{}, CubicPoly{}, err
	}
	if b.Degree() == 2 {
		// Pad the quadratic's coefficients up to cubic form.
		cx = append([]float64{0}, cx...)
		cy = append([]float64{0}, cy...)
	}
	return polyFromCoeffs(cx), polyFromCoeffs(cy), nil
}

// Differentiate returns the hodograph, the degree-(n−1) control polygon
// n·(P[i+1]−P[i]) whose evaluation is the exact derivative of the curve at
// any degree.
func (b Bezier) Differentiate() Bezier {
	n := b.Degree()
	out := make(Bezier, n)
	for i := range out {
		out[i] = Point(b[i+1].Sub(b[i]).Mul(float64(n)))
	}
	return out
}

// Derivative returns the curve's derivative vector at u, evaluated from the
// hodograph.
func (b Bezier) Derivative(u float64) Vec2 {
	return Vec2(b.Differentiate().Eval(u))
}

// ReconstructFromIntersection builds a cubic control polygon from two
// endpoints and an interior point pstar:
//
//	P1 = (P0 + 2·P*) / 3
//	P2 = (2·P* + P3) / 3
//
// When pstar is the intersection of the curve's endpoint tangent lines this
// inverts the tangent construction exactly; for any other interior point it
// is a shape heuristic, not an interpolant.
func ReconstructFromIntersection(p0, pstar, p3 Point) Bezier {
	return Bezier{
		p0,
		Point(Vec2(p0).Add(Vec2(pstar).Mul(2)).Div(3)),
		Point(Vec2(pstar).Mul(2).Add(Vec2(p3)).Div(3)),
		p3,
	}
}
