package curve

// CubicPoly is one axis of a parametric cubic in power form,
// p(u) = A·u³ + B·u² + C·u + D. Lower-degree polynomials embed with the
// leading coefficients set to zero.
type CubicPoly struct {
	A float64
	B float64
	C float64
	D float64
}

// Eval evaluates the polynomial at u using Horner's scheme.
func (p CubicPoly) Eval(u float64) float64 {
	return ((p.A*u+p.B)*u+p.C)*u + p.D
}

// Derivative returns p′ as a cubic with zero leading coefficient.
func (p CubicPoly) Derivative() CubicPoly {
	return CubicPoly{
		B: 3 * p.A,
		C: 2 * p.B,
		D: p.C,
	}
}

// coeffs returns the coefficients highest degree first, the order used by
// the basis-change matrices.
func (p CubicPoly) coeffs() []float64 {
	return []float64{p.A, p.B, p.C, p.D}
}

func polyFromCoeffs(c []float64) CubicPoly {
	return CubicPoly{A: c[0], B: c[1], C: c[2], D: c[3]}
}
