package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// traceBytes renders a result's trace as plain text, one line per event.
func traceBytes(result *Result) []byte {
	var buf bytes.Buffer
	for _, event := range result.Trace {
		buf.WriteString(event.line())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// RunWithGolden executes a scenario and compares the trace against a golden
// file stored in testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected trace output;
// every rendering in the trace is byte-exact, so any drift in the algebra
// or the renderer fails here.
//
// Returns an error if scenario execution fails. Test failure (via goldie)
// occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceBytes(result))

	return nil
}
