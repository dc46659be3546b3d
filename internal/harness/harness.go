package harness

import (
	"fmt"

	"github.com/roach88/quanta/quantity"
)

// Run executes a scenario and returns the result.
//
// Steps evaluate in order against a fresh register file, so scenarios are
// fully isolated from each other. Every evaluated step appends one trace
// event; expect clauses compare the canonical rendering byte-for-byte.
//
// Run returns an error only for structural problems (unknown registers,
// register collisions). Expectation failures are reported through the
// result, not as errors.
func Run(scenario *Scenario) (*Result, error) {
	result := NewResult()
	registers := make(map[string]quantity.Quantity)

	for i, step := range scenario.Steps {
		seq := i + 1

		q, err := evalStep(step, registers)
		if err != nil {
			if !quantity.IsDimensionMismatch(err) {
				return nil, fmt.Errorf("step %d (%s): %w", seq, step.Op, err)
			}
			if step.WantMismatch {
				result.AddTrace(seq, step.Op, "", "mismatch: "+err.Error())
				continue
			}
			result.AddError(fmt.Sprintf("step %d (%s): unexpected %v", seq, step.Op, err))
			result.AddTrace(seq, step.Op, "", "error: "+err.Error())
			continue
		}

		if step.WantMismatch {
			result.AddError(fmt.Sprintf("step %d (%s): expected dimension mismatch, got %s", seq, step.Op, q))
			result.AddTrace(seq, step.Op, step.As, q.String())
			continue
		}

		if step.As != "" {
			if _, exists := registers[step.As]; exists {
				return nil, fmt.Errorf("step %d: register %q already defined", seq, step.As)
			}
			registers[step.As] = q
		}

		rendered := q.String()
		result.AddTrace(seq, step.Op, step.As, rendered)

		if step.Expect != "" && rendered != step.Expect {
			result.AddError(fmt.Sprintf("step %d (%s): rendered %q, expected %q", seq, step.Op, rendered, step.Expect))
		}
	}

	return result, nil
}

// evalStep evaluates one step against the current registers.
func evalStep(step Step, registers map[string]quantity.Quantity) (quantity.Quantity, error) {
	switch step.Op {
	case OpTag:
		d, err := vectorFromExponents(step.Dimension)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.Tag(step.Value, d), nil

	case OpInv:
		left, err := lookup(registers, step.Left)
		if err != nil {
			return quantity.Quantity{}, err
		}
		return left.Inv(), nil

	case OpAdd, OpSub, OpMul, OpDiv:
		left, err := lookup(registers, step.Left)
		if err != nil {
			return quantity.Quantity{}, err
		}
		right, err := lookup(registers, step.Right)
		if err != nil {
			return quantity.Quantity{}, err
		}
		switch step.Op {
		case OpAdd:
			return left.Add(right)
		case OpSub:
			return left.Sub(right)
		case OpMul:
			return left.Mul(right), nil
		default:
			return left.Div(right), nil
		}

	default:
		return quantity.Quantity{}, fmt.Errorf("unknown op %q", step.Op)
	}
}

// lookup resolves a register name.
func lookup(registers map[string]quantity.Quantity, name string) (quantity.Quantity, error) {
	q, ok := registers[name]
	if !ok {
		return quantity.Quantity{}, fmt.Errorf("unknown register %q", name)
	}
	return q, nil
}
