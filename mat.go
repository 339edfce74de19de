package curve

// Mat is a small dense matrix in row-major order. Matrices here are
// transient: they exist only to carry the fixed basis-change computations
// and are never part of a curve's representation.
type Mat struct {
	Rows int
	Cols int
	Data []float64
}

// NewMat returns a rows×cols matrix backed by data, which must have
// rows*cols elements. The slice is copied; the matrix does not alias it.
func NewMat(rows, cols int, data []float64) (Mat, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return Mat{}, ErrDimensionMismatch
	}
	return Mat{
		Rows: rows,
		Cols: cols,
		Data: append([]float64(nil), data...),
	}, nil
}

// At returns the element in row r, column c.
func (m Mat) At(r, c int) float64 {
	return m.Data[r*m.Cols+c]
}

// Mul returns the matrix product m·o. It returns [ErrDimensionMismatch] if
// m.Cols != o.Rows.
func (m Mat) Mul(o Mat) (Mat, error) {
	if m.Cols != o.Rows {
		return Mat{}, ErrDimensionMismatch
	}
	out := Mat{
		Rows: m.Rows,
		Cols: o.Cols,
		Data: make([]float64, m.Rows*o.Cols),
	}
	for i := 0; i < m.Rows; i++ {
		for k := 0; k < m.Cols; k++ {
			f := m.At(i, k)
			if f == 0 {
				continue
			}
			for j := 0; j < o.Cols; j++ {
				out.Data[i*out.Cols+j] += f * o.At(k, j)
			}
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m·v. It returns
// [ErrDimensionMismatch] if m.Cols != len(v).
func (m Mat) MulVec(v []float64) ([]float64, error) {
	if m.Cols != len(v) {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.Rows)
	for i := 0; i < m.Rows; i++ {
		var sum float64
		for j, x := range v {
			sum += m.At(i, j) * x
		}
		out[i] = sum
	}
	return out, nil
}

// Transpose returns the transpose of m.
func (m Mat) Transpose() Mat {
	out := Mat{
		Rows: m.Cols,
		Cols: m.Rows,
		Data: make([]float64, len(m.Data)),
	}
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Data[j*out.Cols+i] = m.At(i, j)
		}
	}
	return out
}

// HermiteMatrix returns the constant 4×4 matrix mapping the per-axis
// geometry vector [P0, P1, T0, T1] of a cubic Hermite segment to its power
// coefficients [a, b, c, d].
func HermiteMatrix() Mat {
	return Mat{
		Rows: 4,
		Cols: 4,
		Data: []float64{
			2, -2, 1, 1,
			-3, 3, -2, -1,
			0, 0, 1, 0,
			1, 0, 0, 0,
		},
	}
}

// PowerMatrix returns the exact matrix mapping the per-axis control values
// of a degree-2 or degree-3 Bézier to its power coefficients, highest degree
// first. Other degrees return [ErrNotImplemented]; use [Bezier.Eval] or
// [Bezier.DeCasteljau] for them.
func PowerMatrix(degree int) (Mat, error) {
	switch degree {
	case 2:
		return Mat{
			Rows: 3,
			Cols: 3,
			Data: []float64{
				1, -2, 1,
				-2, 2, 0,
				1, 0, 0,
			},
		}, nil
	case 3:
		return Mat{
			Rows: 4,
			Cols: 4,
			Data: []float64{
				-1, 3, -3, 1,
				3, -6, 3, 0,
				-3, 3, 0, 0,
				1, 0, 0, 0,
			},
		}, nil
	default:
		return Mat{}, ErrNotImplemented
	}
}

// SubdivisionMatrix returns the 4×4 matrix mapping a cubic control polygon
// to the head polygon of its subdivision at u, i.e. the control points of
// the same curve restricted to [0, u]. Row i holds the degree-i Bernstein
// weights at u. Only degree 3 is supported; other degrees return
// [ErrNotImplemented].
func SubdivisionMatrix(degree int, u float64) (Mat, error) {
	if degree != 3 {
		return Mat{}, ErrNotImplemented
	}
	mu := 1 - u
	return Mat{
		Rows: 4,
		Cols: 4,
		Data: []float64{
			1, 0, 0, 0,
			mu, u, 0, 0,
			mu * mu, 2 * u * mu, u * u, 0,
			mu * mu * mu, 3 * u * mu * mu, 3 * u * u * mu, u * u * u,
		},
	}, nil
}

// ReparamMatrix returns the 4×4 matrix mapping the power coefficients
// [a, b, c, d] of a cubic p to those of v ↦ p(u1 + v·(u2−u1)), remapping the
// sub-domain [u1, u2] onto [0, 1].
func ReparamMatrix(u1, u2 float64) Mat {
	s := u2 - u1
	return Mat{
		Rows: 4,
		Cols: 4,
		Data: []float64{
			s * s * s, 0, 0, 0,
			3 * u1 * s * s, s * s, 0, 0,
			3 * u1 * u1 * s, 2 * u1 * s, s, 0,
			u1 * u1 * u1, u1 * u1, u1, 1,
		},
	}
}
