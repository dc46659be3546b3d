package dim

import "github.com/roach88/quanta/zint"

// Vector is an ordered 7-tuple of integer exponents, one per SI base unit,
// in the fixed order kg, m, s, A, K, mol, cd.
//
// The zero value is the dimensionless vector: nil components read as
// zint.Zero, so Vector{} is usable directly.
type Vector struct {
	Kg  zint.Int
	M   zint.Int
	S   zint.Int
	A   zint.Int
	K   zint.Int
	Mol zint.Int
	Cd  zint.Int
}

// Base dimension constants. Each names one SI base unit with exponent 1;
// Dimensionless is the all-zero vector.
var (
	Dimensionless     = Vector{}
	Mass              = Vector{Kg: zint.One}
	Length            = Vector{M: zint.One}
	Time              = Vector{S: zint.One}
	Current           = Vector{A: zint.One}
	Temperature       = Vector{K: zint.One}
	Amount            = Vector{Mol: zint.One}
	LuminousIntensity = Vector{Cd: zint.One}
)

// norm maps a nil component to zint.Zero so the zero Vector is dimensionless.
func norm(n zint.Int) zint.Int {
	if n == nil {
		return zint.Zero
	}
	return n
}

// components returns the exponents in canonical order with nils normalized.
func (v Vector) components() [7]zint.Int {
	return [7]zint.Int{
		norm(v.Kg), norm(v.M), norm(v.S), norm(v.A),
		norm(v.K), norm(v.Mol), norm(v.Cd),
	}
}

// fromComponents rebuilds a Vector from exponents in canonical order.
func fromComponents(c [7]zint.Int) Vector {
	return Vector{
		Kg: c[0], M: c[1], S: c[2], A: c[3],
		K: c[4], Mol: c[5], Cd: c[6],
	}
}

// New builds a Vector from plain exponents in canonical order.
func New(kg, m, s, a, k, mol, cd int) Vector {
	return Vector{
		Kg:  zint.FromInt(kg),
		M:   zint.FromInt(m),
		S:   zint.FromInt(s),
		A:   zint.FromInt(a),
		K:   zint.FromInt(k),
		Mol: zint.FromInt(mol),
		Cd:  zint.FromInt(cd),
	}
}

// Mul returns the dimension of a product of two quantities: component-wise
// addition of exponents.
func (v Vector) Mul(o Vector) Vector {
	a, b := v.components(), o.components()
	var out [7]zint.Int
	for i := range out {
		out[i] = zint.Add(a[i], b[i])
	}
	return fromComponents(out)
}

// Inv returns the inverted dimension U^-1: component-wise negation.
func (v Vector) Inv() Vector {
	c := v.components()
	var out [7]zint.Int
	for i := range out {
		out[i] = zint.Negate(c[i])
	}
	return fromComponents(out)
}

// Div returns the dimension of a quotient: Mul with the inverse.
func (v Vector) Div(o Vector) Vector {
	return v.Mul(o.Inv())
}

// Equal reports whether v and o are the same dimension: all seven exponent
// ordinals match.
func (v Vector) Equal(o Vector) bool {
	a, b := v.components(), o.components()
	for i := range a {
		if a[i].Ordinal() != b[i].Ordinal() {
			return false
		}
	}
	return true
}

// IsDimensionless reports whether all seven exponents are zero.
func (v Vector) IsDimensionless() bool {
	return v.Equal(Dimensionless)
}
