package curve

// Hermite is a cubic Hermite segment: two endpoints and the tangent vectors
// at them. The curve interpolates P0 at u=0 and P1 at u=1, with derivative
// T0 and T1 there.
type Hermite struct {
	P0 Point
	P1 Point
	T0 Vec2
	T1 Vec2
}

// HermiteBasis returns the four cubic Hermite blending functions at u:
//
//	h0(u) = 2u³ − 3u² + 1
//	h1(u) = −2u³ + 3u²
//	h2(u) = u³ − 2u² + u
//	h3(u) = u³ − u²
//
// h0 and h1 sum to 1 everywhere; h2 and h3 vanish at both ends and
// reproduce the endpoint tangents.
func HermiteBasis(u float64) (h0, h1, h2, h3 float64) {
	u2 := u * u
	u3 := u2 * u
	h0 = 2*u3 - 3*u2 + 1
	h1 = -2*u3 + 3*u2
	h2 = u3 - 2*u2 + u
	h3 = u3 - u2
	return h0, h1, h2, h3
}

// Eval evaluates the segment at u.
func (h Hermite) Eval(u float64) Point {
	h0, h1, h2, h3 := HermiteBasis(u)
	v := Vec2(h.P0).Mul(h0).
		Add(Vec2(h.P1).Mul(h1)).
		Add(h.T0.Mul(h2)).
		Add(h.T1.Mul(h3))
	return Point(v)
}

// Derivative returns the segment's derivative vector at u.
func (h Hermite) Derivative(u float64) Vec2 {
	px, py := h.ToPolynomial()
	dx, dy := px.Derivative(), py.Derivative()
	return Vec2{X: dx.Eval(u), Y: dy.Eval(u)}
}

// Sample evaluates the segment at the n+1 uniformly spaced parameters i/n,
// i = 0..n, including both endpoints.
func (h Hermite) Sample(n int) []Point {
	out := make([]Point, n+1)
	for i := 0; i < n+1; i++ {
		out[i] = h.Eval(float64(i) / float64(n))
	}
	return out
}

// ToPolynomial converts the segment to a pair of power-form polynomials,
// one per axis, by applying [HermiteMatrix] to the geometry vector. The
// result satisfies p(0)=P0, p(1)=P1, p′(0)=T0, p′(1)=T1.
func (h Hermite) ToPolynomial() (px, py CubicPoly) {
	m := HermiteMatrix()
	cx, err := m.MulVec([]float64{h.P0.X, h.P1.X, h.T0.X, h.T1.X})
	if err != nil {
		panic("unreachable")
	}
	cy, err := m.MulVec([]float64{h.P0.Y, h.P1.Y, h.T0.Y, h.T1.Y})
	if err != nil {
		panic("unreachable")
	}
	return polyFromCoeffs(cx), polyFromCoeffs(cy)
}

// HermiteFromPolynomial is the exact inverse of [Hermite.ToPolynomial]:
// given the per-axis power-form polynomials of a cubic, it recovers the
// Hermite geometry as P0 = p(0), P1 = p(1), T0 = p′(0), T1 = p′(1).
func HermiteFromPolynomial(px, py CubicPoly) Hermite {
	return Hermite{
		P0: Pt(px.D, py.D),
		P1: Pt(px.A+px.B+px.C+px.D, py.A+py.B+py.C+py.D),
		T0: Vec(px.C, py.C),
		T1: Vec(3*px.A+2*px.B+px.C, 3*py.A+2*py.B+py.C),
	}
}

// ToBezier returns the cubic Bézier control polygon describing the same
// curve: [P0, P0+T0/3, P1−T1/3, P1].
func (h Hermite) ToBezier() Bezier {
	return Bezier{
		h.P0,
		h.P0.Translate(h.T0.Div(3)),
		h.P1.Translate(h.T1.Div(3).Negate()),
		h.P1,
	}
}
