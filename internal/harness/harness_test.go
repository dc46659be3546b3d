package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestScenario(t *testing.T, name string) *Scenario {
	t.Helper()
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", name+".yaml"))
	require.NoError(t, err)
	return scenario
}

func TestRunSecondsAddition(t *testing.T) {
	result, err := Run(loadTestScenario(t, "seconds_addition"))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Trace, 3)
	assert.Equal(t, "3.0 s", result.Trace[2].Rendered)
}

func TestRunForceProduct(t *testing.T) {
	result, err := Run(loadTestScenario(t, "force_product"))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Trace, 7)
	assert.Equal(t, "5.060594512195122 kg‧m/s^2", result.Trace[6].Rendered)
}

func TestRunMismatchRejection(t *testing.T) {
	result, err := Run(loadTestScenario(t, "mismatch_rejection"))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	require.Len(t, result.Trace, 3)
	assert.Contains(t, result.Trace[2].Rendered, "mismatch")
}

func TestRunUnexpectedMismatchFailsScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "bad_add",
		Description: "adding incompatible dimensions without want_mismatch",
		Steps: []Step{
			{Op: OpTag, As: "duration", Value: 1, Dimension: map[string]int{"s": 1}},
			{Op: OpTag, As: "current", Value: 1, Dimension: map[string]int{"A": 1}},
			{Op: OpAdd, As: "sum", Left: "duration", Right: "current"},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "dimension mismatch")
}

func TestRunExpectedMismatchThatSucceedsFailsScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch_not_triggered",
		Description: "want_mismatch on a compatible add",
		Steps: []Step{
			{Op: OpTag, As: "a", Value: 1, Dimension: map[string]int{"s": 1}},
			{Op: OpTag, As: "b", Value: 2, Dimension: map[string]int{"s": 1}},
			{Op: OpAdd, Left: "a", Right: "b", WantMismatch: true},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "expected dimension mismatch")
}

func TestRunExpectMismatchedRenderingFailsScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "wrong_expect",
		Description: "expect clause that does not match the rendering",
		Steps: []Step{
			{Op: OpTag, As: "a", Value: 1.5, Dimension: map[string]int{"m": 1}, Expect: "2.0 m"},
		},
	}
	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], `rendered "1.5 m", expected "2.0 m"`)
}

func TestRunUnknownRegisterIsStructuralError(t *testing.T) {
	scenario := &Scenario{
		Name:        "unknown_register",
		Description: "referencing a register that was never tagged",
		Steps: []Step{
			{Op: OpTag, As: "a", Value: 1, Dimension: map[string]int{"s": 1}},
			{Op: OpMul, As: "p", Left: "a", Right: "missing"},
		},
	}
	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown register "missing"`)
}

func TestRunRegisterCollisionIsStructuralError(t *testing.T) {
	scenario := &Scenario{
		Name:        "register_collision",
		Description: "storing two results under the same name",
		Steps: []Step{
			{Op: OpTag, As: "a", Value: 1, Dimension: map[string]int{"s": 1}},
			{Op: OpTag, As: "a", Value: 2, Dimension: map[string]int{"s": 1}},
		},
	}
	_, err := Run(scenario)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `register "a" already defined`)
}
