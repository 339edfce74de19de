package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatMul(t *testing.T) {
	a, err := NewMat(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)
	b, err := NewMat(3, 2, []float64{
		7, 8,
		9, 10,
		11, 12,
	})
	require.NoError(t, err)

	got, err := a.Mul(b)
	require.NoError(t, err)
	want := Mat{Rows: 2, Cols: 2, Data: []float64{
		58, 64,
		139, 154,
	}}
	diff(t, want, got)

	_, err = b.Mul(a.Transpose())
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMatMulVec(t *testing.T) {
	m, err := NewMat(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)

	got, err := m.MulVec([]float64{1, 0, -1})
	require.NoError(t, err)
	diff(t, []float64{-2, -2}, got)

	_, err = m.MulVec([]float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewMatShape(t *testing.T) {
	_, err := NewMat(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = NewMat(0, 2, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	m, err := NewMat(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)
	want := Mat{Rows: 3, Cols: 2, Data: []float64{
		1, 4,
		2, 5,
		3, 6,
	}}
	diff(t, want, m.Transpose())
	diff(t, m, m.Transpose().Transpose())
}

func TestPowerMatrixDegrees(t *testing.T) {
	for _, degree := range []int{2, 3} {
		if _, err := PowerMatrix(degree); err != nil {
			t.Errorf("PowerMatrix(%d): unexpected error %v", degree, err)
		}
	}
	for _, degree := range []int{0, 1, 4, 7} {
		_, err := PowerMatrix(degree)
		assert.ErrorIs(t, err, ErrNotImplemented, "degree %d", degree)
	}
}

// The cubic subdivision matrix must agree with de Casteljau subdivision.
func TestSubdivisionMatrix(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0)}
	for _, u := range []float64{0.2, 0.5, 0.75} {
		m, err := SubdivisionMatrix(3, u)
		require.NoError(t, err)

		xs := []float64{b[0].X, b[1].X, b[2].X, b[3].X}
		ys := []float64{b[0].Y, b[1].Y, b[2].Y, b[3].Y}
		hx, err := m.MulVec(xs)
		require.NoError(t, err)
		hy, err := m.MulVec(ys)
		require.NoError(t, err)

		head, _ := b.Subdivide(u)
		got := Bezier{Pt(hx[0], hy[0]), Pt(hx[1], hy[1]), Pt(hx[2], hy[2]), Pt(hx[3], hy[3])}
		diff(t, head, got, cmpopts.EquateApprox(0, 1e-12))
	}

	_, err := SubdivisionMatrix(2, 0.5)
	assert.ErrorIs(t, err, ErrNotImplemented)
}

// Remapping a cubic's power form onto a sub-domain must match evaluating
// the original inside that sub-domain.
func TestReparamMatrix(t *testing.T) {
	b := Bezier{Pt(0, 0), Pt(1, 2), Pt(3, 3), Pt(4, 0)}
	px, py, err := b.ToPolynomial()
	require.NoError(t, err)

	const u1, u2 = 0.25, 0.75
	r := ReparamMatrix(u1, u2)
	cx, err := r.MulVec(px.coeffs())
	require.NoError(t, err)
	cy, err := r.MulVec(py.coeffs())
	require.NoError(t, err)
	qx, qy := polyFromCoeffs(cx), polyFromCoeffs(cy)

	const n = 8
	for i := 0; i < n+1; i++ {
		v := float64(i) / float64(n)
		want := b.Eval(u1 + v*(u2-u1))
		got := Pt(qx.Eval(v), qy.Eval(v))
		if want.Distance(got) > 1e-12 {
			t.Errorf("v=%g: got %v, want %v", v, got, want)
		}
	}

	// ReparamMatrix(0, 1) is the identity.
	id := ReparamMatrix(0, 1)
	out, err := id.MulVec(px.coeffs())
	require.NoError(t, err)
	diff(t, px.coeffs(), out)
}
