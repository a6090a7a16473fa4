package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Expected verdict values for scenario cases.
const (
	ExpectAccepted = "accepted"
	ExpectRejected = "rejected"
	ExpectInvalid  = "invalid"
)

// Scenario defines a conformance test scenario: a named list of terminated
// inputs with their expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Trace enables configuration capture for every case. Required for
	// golden comparison.
	Trace bool `yaml:"trace,omitempty"`

	// Cases lists the inputs to run, in order.
	Cases []Case `yaml:"cases"`
}

// Case is one terminated input with its expected outcome.
type Case struct {
	// Input is the exact terminated input handed to the machine,
	// end marker included.
	Input string `yaml:"input"`

	// Expect is one of "accepted", "rejected" or "invalid".
	Expect string `yaml:"expect"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "case:" vs "cases:".
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

	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		switch c.Expect {
		case ExpectAccepted, ExpectRejected, ExpectInvalid:
		case "":
			return fmt.Errorf("cases[%d]: expect is required", i)
		default:
			return fmt.Errorf("cases[%d]: unknown expect value %q", i, c.Expect)
		}

		// An empty input is only meaningful when probing validation:
		// it lacks the end marker by definition.
		if c.Input == "" && c.Expect != ExpectInvalid {
			return fmt.Errorf("cases[%d]: input is required", i)
		}
	}

	return nil
}
