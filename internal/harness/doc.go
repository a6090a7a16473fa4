// Package harness provides conformance testing for the balance automaton.
//
// Scenarios are defined in YAML files and run each case directly against
// the machine's public contract: the terminated input goes in, and the
// verdict (or validation error) comes out.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	trace: true
//	cases:
//	  - input: "a b!"
//	    expect: accepted
//	  - input: "cat!"
//	    expect: rejected
//	  - input: "abc"
//	    expect: invalid
//
// Inputs are terminated forms, exactly as the machine receives them, so
// scenarios can probe the validation contract as well as verdicts.
//
// # Golden Traces
//
// With trace enabled, RunWithGolden serializes every case's configuration
// trace to JSON and compares it against testdata/golden/<name>.golden via
// goldie. Runs are deterministic, so golden files are stable across runs.
package harness
