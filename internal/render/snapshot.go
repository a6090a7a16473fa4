package render

import "vcbalance/internal/automaton"

// Step is one configuration in string form. Field order is fixed for
// deterministic golden serialization.
type Step struct {
	State     string `json:"state"`
	Remaining string `json:"remaining"`
	Stack     string `json:"stack"`
}

// Snapshot captures the outcome of one run for golden comparison.
type Snapshot struct {
	Input   string `json:"input"`
	Verdict string `json:"verdict,omitempty"`
	Error   string `json:"error,omitempty"`
	Steps   []Step `json:"steps,omitempty"`
}

// NewSnapshot converts a run result into its snapshot form.
func NewSnapshot(input string, res *automaton.Result) Snapshot {
	snap := Snapshot{
		Input:   input,
		Verdict: string(res.Verdict),
	}
	if res.Trace != nil {
		snap.Steps = make([]Step, len(res.Trace))
		for i, cfg := range res.Trace {
			snap.Steps[i] = Step{
				State:     string(cfg.State),
				Remaining: Remaining(cfg),
				Stack:     Stack(cfg),
			}
		}
	}
	return snap
}

// NewErrorSnapshot records a run that failed input validation.
func NewErrorSnapshot(input string, err error) Snapshot {
	return Snapshot{Input: input, Error: err.Error()}
}
