package curve

// KnotVector is a non-decreasing parameter sequence defining B-spline basis
// support. A vector for n control points of degree k has n+k+1 entries.
type KnotVector []float64

// UniformKnots returns the clamped (open-uniform) knot vector for n control
// points of the given degree: degree+1 zeros, evenly spaced interior knots
// i/(n−degree), and degree+1 ones, n+degree+1 entries in total.
func UniformKnots(n, degree int) KnotVector {
	out := make(KnotVector, 0, n+degree+1)
	for i := 0; i < degree+1; i++ {
		out = append(out, 0)
	}
	m := n - degree
	for i := 1; i < m; i++ {
		out = append(out, float64(i)/float64(m))
	}
	for i := 0; i < degree+1; i++ {
		out = append(out, 1)
	}
	return out
}

// IsValid reports whether the vector is usable for n control points of the
// given degree: exactly n+degree+1 entries in non-decreasing order.
//
// Interactive knot editing routinely passes through invalid states, so this
// is a boolean, not an error. Callers check it before evaluating and fall
// back — typically to [UniformKnots] — when it is false.
func (kv KnotVector) IsValid(n, degree int) bool {
	if len(kv) != n+degree+1 {
		return false
	}
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// Domain returns the parameter range [knots[degree], knots[len−degree−1]]
// over which a curve of the given degree is defined. Unlike Hermite and
// Bézier curves, this is generally not [0, 1].
func (kv KnotVector) Domain(degree int) (lo, hi float64) {
	return kv[degree], kv[len(kv)-degree-1]
}

// BasisFunc returns the Cox–de Boor basis function N_{i,k} at u, by plain
// recursion over the degree. Zero-width spans contribute nothing: a term
// whose denominator vanishes is dropped rather than divided.
//
// The half-open span convention would exclude the final knot from every
// basis function's support, cutting the curve's last point off its domain.
// To keep the domain closed, when u equals the final knot the basis
// function i == len(knots)−k−2 short-circuits to 1. The rule is applied at
// every recursion level, not only at k=0; applying it at the base case
// alone loses partition of unity at the final knot, because the recursion's
// zero-width end spans annihilate the base contribution on the way up.
//
// [BSpline.Eval] computes the same values bottom-up in polynomial time;
// this recursive form is the reference the table is checked against.
func BasisFunc(i, k int, u float64, knots KnotVector) float64 {
	if u == knots[len(knots)-1] && i == len(knots)-k-2 {
		return 1
	}
	if k == 0 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		return 0
	}
	var out float64
	if d := knots[i+k] - knots[i]; d != 0 {
		out += (u - knots[i]) / d * BasisFunc(i, k-1, u, knots)
	}
	if d := knots[i+k+1] - knots[i+1]; d != 0 {
		out += (knots[i+k+1] - u) / d * BasisFunc(i+1, k-1, u, knots)
	}
	return out
}

// BSpline is a B-spline curve: a control polygon, a degree, and a knot
// vector. Knots must satisfy [KnotVector.IsValid] for len(Points) and
// Degree before the curve is evaluated.
type BSpline struct {
	Points []Point
	Degree int
	Knots  KnotVector
}

// basisWeights returns N_{i,Degree}(u) for every control point index i,
// built bottom-up over the (i, k) table so that evaluation stays polynomial
// in the degree. Level k of the table applies the same final-knot
// short-circuit as [BasisFunc], keeping the two numerically identical.
func (s BSpline) basisWeights(u float64) []float64 {
	knots := s.Knots
	last := knots[len(knots)-1]
	w := make([]float64, len(knots)-1)
	for i := range w {
		if knots[i] <= u && u < knots[i+1] {
			w[i] = 1
		}
	}
	if u == last {
		w[len(w)-1] = 1
	}
	for k := 1; k <= s.Degree; k++ {
		next := make([]float64, len(knots)-k-1)
		for i := range next {
			var v float64
			if d := knots[i+k] - knots[i]; d != 0 {
				v += (u - knots[i]) / d * w[i]
			}
			if d := knots[i+k+1] - knots[i+1]; d != 0 {
				v += (knots[i+k+1] - u) / d * w[i+1]
			}
			next[i] = v
		}
		if u == last {
			next[len(next)-1] = 1
		}
		w = next
	}
	return w[:len(s.Points)]
}

// Eval evaluates the curve at u, which must lie in the domain given by
// [KnotVector.Domain].
func (s BSpline) Eval(u float64) Point {
	w := s.basisWeights(u)
	var v Vec2
	for i, p := range s.Points {
		v = v.Add(Vec2(p).Mul(w[i]))
	}
	return Point(v)
}

// Sample evaluates the curve at n+1 parameters spaced uniformly across its
// native domain, including both domain ends.
func (s BSpline) Sample(n int) []Point {
	lo, hi := s.Knots.Domain(s.Degree)
	out := make([]Point, n+1)
	for i := 0; i < n+1; i++ {
		u := lo + (hi-lo)*float64(i)/float64(n)
		out[i] = s.Eval(u)
	}
	return out
}

// Differentiate returns the derivative curve: a B-spline of degree−1 over
// the interior knot vector (the original with its first and last knot
// removed), with control points
//
//	D_i = Degree/(knots[i+Degree+1] − knots[i+1]) · (P[i+1] − P[i])
//
// A zero-width denominator span yields a zero control point, matching the
// degenerate-span policy of the basis itself. Differentiating a degree-0
// curve returns a degree-0 curve of zero points.
func (s BSpline) Differentiate() BSpline {
	if s.Degree == 0 {
		out := BSpline{
			Points: make([]Point, len(s.Points)),
			Degree: 0,
			Knots:  append(KnotVector(nil), s.Knots...),
		}
		return out
	}
	d := make([]Point, len(s.Points)-1)
	for i := range d {
		span := s.Knots[i+s.Degree+1] - s.Knots[i+1]
		if span == 0 {
			continue
		}
		d[i] = Point(s.Points[i+1].Sub(s.Points[i]).Mul(float64(s.Degree) / span))
	}
	return BSpline{
		Points: d,
		Degree: s.Degree - 1,
		Knots:  append(KnotVector(nil), s.Knots[1:len(s.Knots)-1]...),
	}
}

// Derivative returns the curve's derivative vector at u. For degree 0 the
// curve is piecewise constant and the derivative is identically zero.
func (s BSpline) Derivative(u float64) Vec2 {
	if s.Degree == 0 {
		return Vec2{}
	}
	return Vec2(s.Differentiate().Eval(u))
}

// BasisSamples returns, for each control point, its basis function sampled
// at n+1 uniform parameters across the curve's domain. Row i holds
// N_{i,Degree} at each sample; column sums are 1 for a valid clamped knot
// vector. Intended for diagnostic and visualization consumers.
func (s BSpline) BasisSamples(n int) [][]float64 {
	lo, hi := s.Knots.Domain(s.Degree)
	out := make([][]float64, len(s.Points))
	for i := range out {
		out[i] = make([]float64, n+1)
	}
	for j := 0; j < n+1; j++ {
		u := lo + (hi-lo)*float64(j)/float64(n)
		w := s.basisWeights(u)
		for i := range out {
			out[i][j] = w[i]
		}
	}
	return out
}
