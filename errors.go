package curve

import "errors"

// Sentinel errors returned by matrix operations and matrix-based basis
// changes. Callers match them with errors.Is. Knot-vector and trim-range
// validity are deliberately not errors; see [KnotVector.IsValid] and
// [TrimRange.IsValid].
var (
	// ErrDimensionMismatch is returned when matrix or vector operands have
	// incompatible shapes, e.g. Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("curve: dimension mismatch")

	// ErrNotImplemented is returned when a matrix-based conversion is
	// requested for an unsupported degree. The generic Bernstein and
	// de Casteljau paths handle every degree and never return it.
	ErrNotImplemented = errors.New("curve: degree not supported by matrix conversion")
)
