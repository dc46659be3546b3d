// Package harness provides conformance testing for the quantity algebra.
//
// The harness loads YAML scenario files, evaluates quantity operations over
// named registers, and validates the rendered output of each step as an
// executable contract test.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	steps:
//	  - op: tag
//	    as: mass
//	    value: 6.125
//	    dimension: {kg: 1}
//	  - op: mul
//	    as: force
//	    left: mass
//	    right: accel
//	    expect: "5.060594512195122 kg‧m/s^2"
//	  - op: add
//	    left: mass
//	    right: accel
//	    want_mismatch: true
//
// Supported ops: tag, add, sub, mul, div, inv. Dimension maps use the SI
// base symbols (kg, m, s, A, K, mol, cd) as keys and integer exponents as
// values - they are exponent tuples, never parsed unit strings.
//
// # Deterministic Testing
//
// Every operation in the algebra is a pure function, so a scenario's trace
// is fully determined by its steps. Traces render to plain text lines and
// compare byte-for-byte against golden files via RunWithGolden.
package harness
