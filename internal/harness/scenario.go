package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/quanta/dim"
)

// Scenario defines a conformance test scenario.
// Scenarios build quantities in named registers, combine them through the
// algebra, and assert on the canonical rendering of each step.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden file
	// name for RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps contains the operations to evaluate, in order.
	Steps []Step `yaml:"steps"`
}

// Step represents a single operation in a scenario.
type Step struct {
	// Op is the operation: "tag", "add", "sub", "mul", "div", or "inv".
	Op string `yaml:"op"`

	// As names the register the result is stored in. Required for steps
	// whose result later steps reference; optional otherwise.
	As string `yaml:"as,omitempty"`

	// Value is the magnitude for "tag" steps.
	Value float64 `yaml:"value,omitempty"`

	// Dimension holds integer exponents for "tag" steps, keyed by SI base
	// symbol (kg, m, s, A, K, mol, cd). Missing keys default to zero, so
	// an absent map tags a dimensionless quantity.
	Dimension map[string]int `yaml:"dimension,omitempty"`

	// Left and Right name the operand registers for binary ops.
	// "inv" uses only Left.
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`

	// Expect, if set, is the exact canonical rendering of the step result.
	Expect string `yaml:"expect,omitempty"`

	// WantMismatch marks a step that must fail with a dimension mismatch.
	WantMismatch bool `yaml:"want_mismatch,omitempty"`
}

// Operation constants.
const (
	OpTag = "tag"
	OpAdd = "add"
	OpSub = "sub"
	OpMul = "mul"
	OpDiv = "div"
	OpInv = "inv"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "want_mismatch:" vs "mismatch:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// validateStep checks the per-op field requirements.
func validateStep(step Step) error {
	switch step.Op {
	case OpTag:
		if step.As == "" {
			return fmt.Errorf("tag requires a register name (as)")
		}
		if _, err := vectorFromExponents(step.Dimension); err != nil {
			return err
		}
	case OpAdd, OpSub, OpMul, OpDiv:
		if step.Left == "" || step.Right == "" {
			return fmt.Errorf("%s requires left and right registers", step.Op)
		}
	case OpInv:
		if step.Left == "" {
			return fmt.Errorf("inv requires a left register")
		}
		if step.Right != "" {
			return fmt.Errorf("inv takes no right register")
		}
	case "":
		return fmt.Errorf("op is required")
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	if step.WantMismatch && step.Expect != "" {
		return fmt.Errorf("expect and want_mismatch are mutually exclusive")
	}
	if step.WantMismatch && (step.Op == OpTag || step.Op == OpMul || step.Op == OpDiv || step.Op == OpInv) {
		return fmt.Errorf("%s never produces a dimension mismatch", step.Op)
	}
	return nil
}

// exponentKeys maps YAML dimension keys to vector positions, keyed by the
// canonical SI base symbols.
var exponentKeys = map[string]int{
	"kg": 0, "m": 1, "s": 2, "A": 3, "K": 4, "mol": 5, "cd": 6,
}

// vectorFromExponents builds a dim.Vector from an exponent map.
// Unknown keys are rejected; missing keys default to zero.
func vectorFromExponents(exps map[string]int) (dim.Vector, error) {
	var c [7]int
	for key, exp := range exps {
		pos, ok := exponentKeys[key]
		if !ok {
			return dim.Vector{}, fmt.Errorf("unknown dimension key %q (want kg, m, s, A, K, mol, cd)", key)
		}
		c[pos] = exp
	}
	return dim.New(c[0], c[1], c[2], c[3], c[4], c[5], c[6]), nil
}
