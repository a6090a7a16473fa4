package automaton

import "fmt"

// EndMarker is the sentinel appended to a sentence to signal end-of-input.
const EndMarker = '!'

// Transition is one entry of the transition function: the next control
// state plus the symbols that replace the current stack top. Replacement is
// ordered bottom-to-top; an empty replacement pops the top symbol.
type Transition struct {
	Next    State
	Replace []StackSymbol
}

// Definition is the automaton 7-tuple (Q, Σ, Γ, δ, q0, Z, F).
//
// INVARIANT: Transitions holds at most one entry per (state, symbol, top)
// triple, so the machine is deterministic by construction. Validate checks
// that the table is also total over the reachable triples.
type Definition struct {
	States          []State
	InputSymbols    []rune
	StackSymbols    []StackSymbol
	Transitions     map[State]map[rune]map[StackSymbol]Transition
	InitialState    State
	InitialSymbol   StackSymbol
	AcceptingStates map[State]bool
}

// VowelConsonantBalance constructs the fixed balance-checking machine.
//
// The table is built programmatically over Σ × Γ rather than written out
// entry by entry:
//   - q0 + letter: commit the first-letter decision and move to q1. The
//     letter's class symbol is pushed, unless the opposite class sits on
//     top, which is popped instead (one vowel cancels one consonant).
//   - q1 + letter: stay in q1, stack untouched.
//   - q0/q1 + space: word boundary, back to q0, stack untouched.
//   - q0/q1 + '!': move to q2; pop the bottom marker if it is on top,
//     leave any leftover class symbols in place.
func VowelConsonantBalance() *Definition {
	letters := make([]rune, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		letters = append(letters, r)
	}
	stackSymbols := []StackSymbol{SymbolBottom, SymbolVowel, SymbolConsonant}

	delta := map[State]map[rune]map[StackSymbol]Transition{
		Q0: make(map[rune]map[StackSymbol]Transition),
		Q1: make(map[rune]map[StackSymbol]Transition),
	}

	for _, r := range letters {
		class := Classify(r)

		// First letter of a word: push the class symbol or cancel the
		// opposite one.
		byTop := make(map[StackSymbol]Transition, len(stackSymbols))
		for _, top := range stackSymbols {
			switch top {
			case class.Opposite().Symbol():
				byTop[top] = Transition{Next: Q1} // cancel
			default:
				byTop[top] = Transition{Next: Q1, Replace: []StackSymbol{top, class.Symbol()}}
			}
		}
		delta[Q0][r] = byTop

		// Subsequent letters of the same word never touch the stack.
		delta[Q1][r] = keepTop(Q1, stackSymbols)
	}

	// Word boundary: back to q0, stack untouched.
	delta[Q0][' '] = keepTop(Q0, stackSymbols)
	delta[Q1][' '] = keepTop(Q0, stackSymbols)

	// End marker: unconditionally to q2. The bottom marker is popped so an
	// exactly balanced run ends with an empty stack; leftover class symbols
	// stay in place as evidence of the imbalance.
	terminal := map[StackSymbol]Transition{
		SymbolBottom:    {Next: Q2},
		SymbolVowel:     {Next: Q2, Replace: []StackSymbol{SymbolVowel}},
		SymbolConsonant: {Next: Q2, Replace: []StackSymbol{SymbolConsonant}},
	}
	delta[Q0][EndMarker] = terminal
	delta[Q1][EndMarker] = terminal

	inputSymbols := append(append([]rune{}, letters...), ' ', EndMarker)

	return &Definition{
		States:          []State{Q0, Q1, Q2},
		InputSymbols:    inputSymbols,
		StackSymbols:    stackSymbols,
		Transitions:     delta,
		InitialState:    Q0,
		InitialSymbol:   SymbolBottom,
		AcceptingStates: map[State]bool{Q2: true},
	}
}

// keepTop builds the δ entries that change state without a stack effect:
// each top symbol is replaced by itself.
func keepTop(next State, symbols []StackSymbol) map[StackSymbol]Transition {
	byTop := make(map[StackSymbol]Transition, len(symbols))
	for _, top := range symbols {
		byTop[top] = Transition{Next: next, Replace: []StackSymbol{top}}
	}
	return byTop
}

// transition looks up δ(state, sym, top).
func (d *Definition) transition(state State, sym rune, top StackSymbol) (Transition, bool) {
	bySym, ok := d.Transitions[state]
	if !ok {
		return Transition{}, false
	}
	byTop, ok := bySym[sym]
	if !ok {
		return Transition{}, false
	}
	tr, ok := byTop[top]
	return tr, ok
}

// Validate checks the structural invariants of the definition:
//   - the initial state, initial stack symbol, and accepting states belong
//     to their respective alphabets
//   - δ is total over every non-terminal state × Σ × Γ, so a well-formed
//     run can never get stuck
//
// Determinism needs no separate check: the map representation admits at
// most one transition per (state, symbol, top) triple.
func (d *Definition) Validate() error {
	if !containsState(d.States, d.InitialState) {
		return fmt.Errorf("initial state %s not in state set", d.InitialState)
	}
	if !containsSymbol(d.StackSymbols, d.InitialSymbol) {
		return fmt.Errorf("initial stack symbol %c not in stack alphabet", d.InitialSymbol)
	}
	for state := range d.AcceptingStates {
		if !containsState(d.States, state) {
			return fmt.Errorf("accepting state %s not in state set", state)
		}
	}

	for _, state := range d.States {
		if d.AcceptingStates[state] {
			continue // terminal, no outgoing transitions required
		}
		for _, sym := range d.InputSymbols {
			for _, top := range d.StackSymbols {
				if _, ok := d.transition(state, sym, top); !ok {
					return fmt.Errorf("no transition for (%s, %q, %c)", state, sym, top)
				}
			}
		}
	}
	return nil
}

func containsState(states []State, s State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}

func containsSymbol(symbols []StackSymbol, s StackSymbol) bool {
	for _, candidate := range symbols {
		if candidate == s {
			return true
		}
	}
	return false
}
