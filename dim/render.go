package dim

import (
	"fmt"
	"strings"
)

// symbols holds the canonical SI base unit symbols in component order.
var symbols = [7]string{"kg", "m", "s", "A", "K", "mol", "cd"}

const (
	// middleDot separates terms within the numerator or denominator.
	middleDot = "‧"

	// dimensionlessUnit marks the all-zero vector.
	dimensionlessUnit = "<1>"
)

// Unit renders the canonical unit string for this vector.
//
// Components with positive exponents become numerator terms, negative
// exponents become denominator terms, zero exponents are dropped. A term
// renders as its bare symbol when the exponent magnitude is 1, otherwise as
// symbol^magnitude. The all-zero vector renders as "<1>". When only
// denominator terms exist the numerator is the literal "1" - a display
// convention, not a simplification target.
func (v Vector) Unit() string {
	var numer, denom []string
	for i, c := range v.components() {
		ord := c.Ordinal()
		switch {
		case ord > 0:
			numer = append(numer, term(symbols[i], ord))
		case ord < 0:
			denom = append(denom, term(symbols[i], -ord))
		}
	}

	if len(numer) == 0 && len(denom) == 0 {
		return dimensionlessUnit
	}

	out := "1"
	if len(numer) > 0 {
		out = strings.Join(numer, middleDot)
	}
	if len(denom) > 0 {
		out += "/" + strings.Join(denom, middleDot)
	}
	return out
}

// term renders a single unit symbol with its absolute exponent.
func term(symbol string, abs int) string {
	if abs == 1 {
		return symbol
	}
	return fmt.Sprintf("%s^%d", symbol, abs)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return v.Unit()
}
