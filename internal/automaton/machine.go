package automaton

import (
	"fmt"
	"strings"
)

// Machine executes runs of a validated automaton definition.
//
// Machine is stateless between runs: every Run owns its stack and trace
// exclusively, so a single Machine is safe for concurrent use.
type Machine struct {
	def *Definition
}

// New creates a Machine from a definition.
func New(def *Definition) *Machine {
	return &Machine{def: def}
}

// RunOption configures a single run.
type RunOption func(*runConfig)

type runConfig struct {
	trace bool
}

// WithTrace enables configuration capture: the result carries the initial
// configuration plus one snapshot per consumed symbol.
func WithTrace() RunOption {
	return func(c *runConfig) {
		c.trace = true
	}
}

// Result is the outcome of one run.
type Result struct {
	// Verdict is Accepted iff the sentence had equally many vowel-starting
	// and consonant-starting words.
	Verdict Verdict

	// Trace holds the visited configurations in consumption order.
	// Nil unless the run was started with WithTrace.
	Trace []Configuration
}

// Terminate appends the end marker to a pre-validated sentence, producing
// the terminated form the machine requires.
func Terminate(sentence string) string {
	return sentence + string(EndMarker)
}

// Run consumes a terminated input and returns the verdict.
//
// The input must match [a-z ]*! — zero or more lowercase letters and
// spaces followed by exactly one '!' in final position. A violation
// returns *InvalidInputError before any transition is attempted.
//
// Identical inputs always yield identical results, traces included.
func (m *Machine) Run(input string, opts ...RunOption) (*Result, error) {
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate atomically before touching the stack.
	if err := validateInput(input); err != nil {
		return nil, err
	}

	state := m.def.InitialState
	stack := newSymbolStack()
	stack.push(m.def.InitialSymbol)

	var trace []Configuration
	if cfg.trace {
		trace = make([]Configuration, 0, len(input)+1)
		trace = append(trace, Configuration{
			State:     state,
			Remaining: input,
			Stack:     stack.snapshot(),
		})
	}

	// The validated alphabet is ASCII, so byte indexing is exact.
	for i := 0; i < len(input); i++ {
		sym := rune(input[i])

		top, ok := stack.peek()
		if !ok {
			// The bottom marker is only popped by the final transition.
			return nil, fmt.Errorf("stack empty mid-run at offset %d", i)
		}

		tr, ok := m.def.transition(state, sym, top)
		if !ok {
			return nil, fmt.Errorf("no transition for (%s, %q, %c)", state, sym, top)
		}

		stack.pop()
		for _, s := range tr.Replace {
			stack.push(s)
		}
		state = tr.Next

		if cfg.trace {
			trace = append(trace, Configuration{
				State:     state,
				Remaining: input[i+1:],
				Stack:     stack.snapshot(),
			})
		}
	}

	verdict := Rejected
	if m.def.AcceptingStates[state] && stack.len() == 0 {
		verdict = Accepted
	}

	return &Result{Verdict: verdict, Trace: trace}, nil
}

// validateInput enforces the [a-z ]*! precondition and classifies the
// violation for the error.
func validateInput(input string) error {
	if !strings.HasSuffix(input, string(EndMarker)) {
		return &InvalidInputError{Reason: ReasonMissingEndMarker, Input: input}
	}
	body := input[:len(input)-1]
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch {
		case b == byte(EndMarker):
			return &InvalidInputError{Reason: ReasonMisplacedEndMarker, Input: input}
		case b == ' ' || (b >= 'a' && b <= 'z'):
			// allowed
		default:
			return &InvalidInputError{Reason: ReasonDisallowedCharacter, Input: input}
		}
	}
	return nil
}

// FirstLetterCounts tallies the vowel-starting and consonant-starting words
// of an unterminated sentence. It is the direct-counting oracle the stack
// cancellation is equivalent to.
func FirstLetterCounts(sentence string) (vowels, consonants int) {
	for _, word := range strings.Fields(sentence) {
		if Classify(rune(word[0])) == Vowel {
			vowels++
		} else {
			consonants++
		}
	}
	return vowels, consonants
}
