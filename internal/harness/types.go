package harness

import "vcbalance/internal/automaton"

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success: every case produced its
	// expected outcome.
	Pass bool

	// Cases holds one entry per scenario case, in order.
	Cases []CaseResult

	// Errors contains expectation mismatch messages. Empty if Pass.
	Errors []string
}

// CaseResult records what one case actually did.
type CaseResult struct {
	// Input is the terminated input that was run.
	Input string

	// Verdict is the machine's verdict; empty when the input was invalid.
	Verdict automaton.Verdict

	// Err is the validation error message; empty when the run succeeded.
	Err string

	// Trace holds the visited configurations when the scenario enables
	// tracing; nil otherwise.
	Trace []automaton.Configuration
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{Pass: true}
}

// AddError adds an expectation mismatch and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
