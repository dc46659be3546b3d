package dim

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestUnitRendering(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want string
	}{
		{"dimensionless", Dimensionless, "<1>"},
		{"mass", Mass, "kg"},
		{"length", Length, "m"},
		{"time", Time, "s"},
		{"current", Current, "A"},
		{"temperature", Temperature, "K"},
		{"amount", Amount, "mol"},
		{"luminous_intensity", LuminousIntensity, "cd"},
		{"velocity", Length.Div(Time), "m/s"},
		{"acceleration", Length.Div(Time).Div(Time), "m/s^2"},
		{"force", Mass.Mul(Length.Div(Time).Div(Time)), "kg‧m/s^2"},
		{"frequency", Time.Inv(), "1/s"},
		{"per_area", New(0, -2, 0, 0, 0, 0, 0), "1/m^2"},
		{"energy", New(1, 2, -2, 0, 0, 0, 0), "kg‧m^2/s^2"},
		{"mixed_exponents", New(0, 0, 0, 3, -2, 0, 1), "A^3‧cd/K^2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Unit())
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestOnlyDenominatorKeepsLiteralOneNumerator(t *testing.T) {
	// Inverse-only dimensions keep the "1" numerator by convention; it must
	// never be simplified away.
	all := New(-1, -1, -1, -1, -1, -1, -1)
	assert.Equal(t, "1/kg‧m‧s‧A‧K‧mol‧cd", all.Unit())
}

// TestUnitTableGolden pins the full rendering table byte-for-byte. The unit
// strings are part of the external contract; any drift fails here first.
func TestUnitTableGolden(t *testing.T) {
	rows := []struct {
		name string
		v    Vector
	}{
		{"dimensionless", Dimensionless},
		{"mass", Mass},
		{"length", Length},
		{"time", Time},
		{"current", Current},
		{"temperature", Temperature},
		{"amount", Amount},
		{"luminous_intensity", LuminousIntensity},
		{"velocity", Length.Div(Time)},
		{"force", Mass.Mul(Length).Div(Time).Div(Time)},
		{"frequency", Time.Inv()},
		{"energy", New(1, 2, -2, 0, 0, 0, 0)},
		{"all_positive", New(1, 1, 1, 1, 1, 1, 1)},
		{"all_negative", New(-1, -1, -1, -1, -1, -1, -1)},
	}

	var buf bytes.Buffer
	for _, row := range rows {
		fmt.Fprintf(&buf, "%s: %s\n", row.name, row.v.Unit())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "unit_table", buf.Bytes())
}
