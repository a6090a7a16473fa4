package harness

import (
	"fmt"

	"vcbalance/internal/automaton"
)

// Run executes a scenario and returns the result.
//
// Every scenario runs against a fresh machine built from the canonical
// definition. Cases execute in order; an expectation mismatch records an
// error and continues, so one run reports every failing case.
func Run(scenario *Scenario) (*Result, error) {
	def := automaton.VowelConsonantBalance()
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("definition invalid: %w", err)
	}
	machine := automaton.New(def)

	var runOpts []automaton.RunOption
	if scenario.Trace {
		runOpts = append(runOpts, automaton.WithTrace())
	}

	result := NewResult()
	for i, c := range scenario.Cases {
		res, err := machine.Run(c.Input, runOpts...)

		caseResult := CaseResult{Input: c.Input}
		if err != nil {
			caseResult.Err = err.Error()
		} else {
			caseResult.Verdict = res.Verdict
			caseResult.Trace = res.Trace
		}
		result.Cases = append(result.Cases, caseResult)

		checkExpectation(result, i, c, res, err)
	}

	return result, nil
}

// checkExpectation compares one case outcome against its expect clause.
func checkExpectation(result *Result, i int, c Case, res *automaton.Result, err error) {
	switch c.Expect {
	case ExpectInvalid:
		if err == nil {
			result.AddError(fmt.Sprintf("cases[%d] %q: expected invalid input, got verdict %s", i, c.Input, res.Verdict))
		} else if !automaton.IsInvalidInput(err) {
			result.AddError(fmt.Sprintf("cases[%d] %q: expected InvalidInputError, got: %v", i, c.Input, err))
		}

	case ExpectAccepted, ExpectRejected:
		if err != nil {
			result.AddError(fmt.Sprintf("cases[%d] %q: unexpected error: %v", i, c.Input, err))
			return
		}
		want := automaton.Accepted
		if c.Expect == ExpectRejected {
			want = automaton.Rejected
		}
		if res.Verdict != want {
			result.AddError(fmt.Sprintf("cases[%d] %q: expected %s, got %s", i, c.Input, want, res.Verdict))
		}
	}
}
