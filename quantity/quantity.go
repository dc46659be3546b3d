package quantity

import (
	"math"
	"strconv"
	"strings"

	"github.com/roach88/quanta/dim"
)

// Quantity is a floating-point magnitude tagged with a dimension vector.
// The zero value is a dimensionless zero.
type Quantity struct {
	mag float64
	dim dim.Vector
}

// Tag wraps a plain number as a Quantity of the target dimension. This is
// the sole entry point for introducing a dimension onto raw data.
func Tag(v float64, d dim.Vector) Quantity {
	return Quantity{mag: v, dim: d}
}

// Magnitude returns the plain floating-point magnitude.
func (q Quantity) Magnitude() float64 { return q.mag }

// Dimension returns the dimension vector.
func (q Quantity) Dimension() dim.Vector { return q.dim }

// Mul multiplies two quantities. The result dimension is the component-wise
// sum of the operand dimensions; no compatibility constraint applies.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{mag: q.mag * o.mag, dim: q.dim.Mul(o.dim)}
}

// Div divides two quantities. The result dimension is the component-wise
// difference of the operand dimensions. A zero divisor magnitude follows
// IEEE conventions (infinity or NaN), never an error.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{mag: q.mag / o.mag, dim: q.dim.Div(o.dim)}
}

// Inv returns the reciprocal quantity: 1/magnitude with the inverted
// dimension.
func (q Quantity) Inv() Quantity {
	return Quantity{mag: 1 / q.mag, dim: q.dim.Inv()}
}

// Add adds two quantities of the same dimension.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, newMismatch("add", q.dim, o.dim)
	}
	return Quantity{mag: q.mag + o.mag, dim: q.dim}, nil
}

// Sub subtracts two quantities of the same dimension.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, newMismatch("subtract", q.dim, o.dim)
	}
	return Quantity{mag: q.mag - o.mag, dim: q.dim}, nil
}

// Less reports whether q < o. Both operands must carry the same dimension.
func (q Quantity) Less(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, newMismatch("compare", q.dim, o.dim)
	}
	return q.mag < o.mag, nil
}

// Greater reports whether q > o. Both operands must carry the same dimension.
func (q Quantity) Greater(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, newMismatch("compare", q.dim, o.dim)
	}
	return q.mag > o.mag, nil
}

// LessOrEqual reports whether q <= o. Both operands must carry the same
// dimension.
func (q Quantity) LessOrEqual(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, newMismatch("compare", q.dim, o.dim)
	}
	return q.mag <= o.mag, nil
}

// GreaterOrEqual reports whether q >= o. Both operands must carry the same
// dimension.
func (q Quantity) GreaterOrEqual(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, newMismatch("compare", q.dim, o.dim)
	}
	return q.mag >= o.mag, nil
}

// Equal reports whether q == o under float equality. Both operands must
// carry the same dimension. NaN is not equal to itself.
func (q Quantity) Equal(o Quantity) (bool, error) {
	if !q.dim.Equal(o.dim) {
		return false, newMismatch("compare", q.dim, o.dim)
	}
	return q.mag == o.mag, nil
}

// String renders "<magnitude> <unit-string>". The unit string follows the
// canonical dim rendering; the magnitude is the shortest round-trip decimal
// with a forced trailing ".0" for integral finite values.
func (q Quantity) String() string {
	return formatMagnitude(q.mag) + " " + q.dim.Unit()
}

// formatMagnitude renders a float64 in its shortest round-trip decimal form.
// Integral finite values keep an explicit ".0" so 3 renders as "3.0";
// NaN and the infinities pass through as strconv emits them.
func formatMagnitude(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
