package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"vcbalance/internal/automaton"
	"vcbalance/internal/render"
)

// TraceDocument is the golden serialization of a scenario execution: one
// trace snapshot per case, in case order.
type TraceDocument struct {
	Scenario string            `json:"scenario"`
	Cases    []render.Snapshot `json:"cases"`
}

// RunWithGolden executes a scenario and compares its trace document
// against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected trace behavior;
// runs are deterministic, so any diff is a real behavior change.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	doc := TraceDocument{Scenario: scenario.Name}
	for _, cr := range result.Cases {
		if cr.Err != "" {
			doc.Cases = append(doc.Cases, render.Snapshot{Input: cr.Input, Error: cr.Err})
			continue
		}
		doc.Cases = append(doc.Cases, render.NewSnapshot(cr.Input, &automaton.Result{
			Verdict: cr.Verdict,
			Trace:   cr.Trace,
		}))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
