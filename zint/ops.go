package zint

// Negate returns the canonical value denoting -x.Ordinal().
// Negate is total and involutive: Negate(Negate(x)) == x for all x.
func Negate(x Int) Int {
	switch v := x.(type) {
	case zero:
		return x
	case negation:
		// Unwrapping rather than re-wrapping keeps the form canonical.
		return v.mag
	case successor:
		return negation{mag: x, ord: -v.ord}
	default:
		panic("zint: unknown Int variant")
	}
}

// Add returns the canonical value denoting a.Ordinal() + b.Ordinal().
//
// Defined by structural recursion: two positives add by peeling one
// successor off each side and re-wrapping twice, two negatives negate the
// sum of their magnitudes, and mixed signs reduce to Sub.
func Add(a, b Int) Int {
	switch x := a.(type) {
	case zero:
		return b
	case successor:
		switch y := b.(type) {
		case zero:
			return a
		case successor:
			return Succ(Succ(Add(x.prev, y.prev)))
		case negation:
			return Sub(a, y.mag)
		}
	case negation:
		switch y := b.(type) {
		case zero:
			return a
		case negation:
			return Negate(Add(x.mag, y.mag))
		case successor:
			return Sub(b, x.mag)
		}
	}
	panic("zint: unknown Int variant")
}

// Sub returns the canonical value denoting a.Ordinal() - b.Ordinal().
//
// Two positives subtract by peeling one successor off each side, two
// negatives flip into Sub of the magnitudes in reverse order, and mixed
// signs reduce to Add.
func Sub(a, b Int) Int {
	switch y := b.(type) {
	case zero:
		return a
	case negation:
		return Add(a, y.mag)
	case successor:
		switch x := a.(type) {
		case zero:
			return Negate(b)
		case successor:
			return Sub(x.prev, y.prev)
		case negation:
			return Negate(Add(x.mag, b))
		}
	}
	panic("zint: unknown Int variant")
}
