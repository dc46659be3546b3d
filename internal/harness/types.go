package harness

import "fmt"

// TraceEvent records one evaluated step for the trace.
type TraceEvent struct {
	// Seq is the 1-based step number.
	Seq int `json:"seq"`

	// Op is the operation that ran ("tag", "add", ...).
	Op string `json:"op"`

	// Register is the register the result was stored in, if any.
	Register string `json:"register,omitempty"`

	// Rendered is the canonical rendering of the step result, or the
	// mismatch notice when the step was expected to fail.
	Rendered string `json:"rendered"`
}

// line renders the event as one trace line for golden comparison.
func (e TraceEvent) line() string {
	if e.Register != "" {
		return fmt.Sprintf("%d %s %s = %s", e.Seq, e.Op, e.Register, e.Rendered)
	}
	return fmt.Sprintf("%d %s %s", e.Seq, e.Op, e.Rendered)
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every expect clause matched.
	Pass bool `json:"pass"`

	// Trace contains one event per evaluated step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step event to the trace.
func (r *Result) AddTrace(seq int, op, register, rendered string) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:      seq,
		Op:       op,
		Register: register,
		Rendered: rendered,
	})
}
