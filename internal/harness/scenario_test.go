package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenarioValid(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "seconds_addition.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "seconds_addition", scenario.Name)
	require.Len(t, scenario.Steps, 3)
	assert.Equal(t, OpAdd, scenario.Steps[2].Op)
	assert.Equal(t, "3.0 s", scenario.Steps[2].Expect)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioUnknownFieldRejected(t *testing.T) {
	path := writeScenarioFile(t, `
name: typo
description: "unknown top-level field"
step:
  - op: tag
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing_name",
			"description: \"d\"\nsteps:\n  - {op: tag, as: a}\n",
			"name is required",
		},
		{
			"missing_description",
			"name: n\nsteps:\n  - {op: tag, as: a}\n",
			"description is required",
		},
		{
			"missing_steps",
			"name: n\ndescription: \"d\"\n",
			"steps list is required",
		},
		{
			"unknown_op",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: power, as: a}\n",
			`unknown op "power"`,
		},
		{
			"tag_without_register",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: tag, value: 1}\n",
			"tag requires a register name",
		},
		{
			"unknown_dimension_key",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: tag, as: a, dimension: {lb: 1}}\n",
			`unknown dimension key "lb"`,
		},
		{
			"binary_without_operands",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: add, as: a, left: x}\n",
			"add requires left and right registers",
		},
		{
			"inv_with_right",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: inv, as: a, left: x, right: y}\n",
			"inv takes no right register",
		},
		{
			"expect_and_want_mismatch",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: add, left: x, right: y, expect: \"1.0 s\", want_mismatch: true}\n",
			"mutually exclusive",
		},
		{
			"want_mismatch_on_mul",
			"name: n\ndescription: \"d\"\nsteps:\n  - {op: mul, left: x, right: y, want_mismatch: true}\n",
			"never produces a dimension mismatch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenarioFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestVectorFromExponents(t *testing.T) {
	v, err := vectorFromExponents(map[string]int{"kg": 1, "m": 2, "s": -2})
	require.NoError(t, err)
	assert.Equal(t, "kg‧m^2/s^2", v.Unit())

	empty, err := vectorFromExponents(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsDimensionless())
}
