package quantity

import "github.com/roach88/quanta/dim"

// Number constrains the plain numeric types that convert to and from
// dimensionless quantities.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FromNumber wraps a plain number as a dimensionless Quantity. The source's
// automatic numeric coercions are deliberately explicit conversion
// functions here.
func FromNumber[N Number](v N) Quantity {
	return Tag(float64(v), dim.Dimensionless)
}

// ToNumber extracts the plain numeric value of a dimensionless Quantity.
// Conversion to a narrower target is lossy: integer targets truncate.
// Quantities that carry a dimension are rejected with a
// DimensionMismatchError; stripping a dimension must stay impossible.
func ToNumber[N Number](q Quantity) (N, error) {
	if !q.dim.IsDimensionless() {
		return 0, newMismatch("convert", q.dim, dim.Dimensionless)
	}
	return N(q.mag), nil
}
