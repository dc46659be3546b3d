// Package dim provides the 7-component dimension vector algebra over the SI
// base units.
//
// A Vector holds one integer exponent per base unit in the fixed order
// kg, m, s, A, K, mol, cd. Vectors compose with Mul (unit multiplication),
// Inv (unit inversion), and Div, all defined component-wise through the
// zint algebra. Two vectors are the same dimension iff all seven exponent
// ordinals match.
//
// Unit renders a vector to its canonical unit string. This rendering is
// byte-exact and locale-independent; downstream consumers compare the
// strings verbatim, so the format must never drift.
package dim
