package zint

// Int is a sealed interface representing a canonically-shaped signed integer.
// Only the three variants in this package implement it: zero, the successor
// of a non-negative value, and the negation of a strictly positive value.
type Int interface {
	// Ordinal returns the plain signed integer this value denotes.
	Ordinal() int

	zint() // Sealed - only these types implement it
}

// zero is the canonical representation of 0.
type zero struct{}

func (zero) zint() {}

// Ordinal implements Int.
func (zero) Ordinal() int { return 0 }

// successor represents 1 + prev.Ordinal(). prev is always zero or another
// successor, never a negation.
type successor struct {
	prev Int
	ord  int
}

func (successor) zint() {}

// Ordinal implements Int. The ordinal is precomputed at construction.
func (s successor) Ordinal() int { return s.ord }

// negation represents -mag.Ordinal(). mag is always a successor; negation of
// zero and nested negation do not exist (canonical form).
type negation struct {
	mag Int
	ord int
}

func (negation) zint() {}

// Ordinal implements Int. The ordinal is precomputed at construction.
func (n negation) Ordinal() int { return n.ord }

// Zero is the canonical 0 value.
var Zero Int = zero{}

// One is Succ(Zero), exported for convenience when building exponents.
var One Int = Succ(Zero)

// Succ returns the successor 1 + n.Ordinal(). n must be non-negative;
// a successor wrapped around a negation is not a canonical shape, so
// passing one is an internal invariant violation and panics.
func Succ(n Int) Int {
	switch n.(type) {
	case zero, successor:
		return successor{prev: n, ord: n.Ordinal() + 1}
	case negation:
		panic("zint: successor of a negative value is not canonical")
	default:
		panic("zint: unknown Int variant")
	}
}

// FromInt builds the canonical value denoting n.
func FromInt(n int) Int {
	if n < 0 {
		return Negate(FromInt(-n))
	}
	v := Zero
	for i := 0; i < n; i++ {
		v = Succ(v)
	}
	return v
}

// Equal reports whether a and b denote the same integer.
// For canonical values this agrees with ==.
func Equal(a, b Int) bool {
	return a.Ordinal() == b.Ordinal()
}
