package automaton

// State identifies one of the automaton's control states.
type State string

const (
	// Q0 is the initial state: at a word boundary, so the next letter
	// read is the first letter of a new word.
	Q0 State = "q0"
	// Q1 means the machine is inside a word; the classification decision
	// for the current word has already been committed.
	Q1 State = "q1"
	// Q2 is the sole accepting state, reached by consuming the end marker.
	Q2 State = "q2"
)

// StackSymbol is one cell of the automaton's stack.
type StackSymbol byte

const (
	// SymbolBottom permanently marks the bottom of the stack.
	SymbolBottom StackSymbol = 'S'
	// SymbolVowel records one more vowel-starting word than
	// consonant-starting words.
	SymbolVowel StackSymbol = 'V'
	// SymbolConsonant records one more consonant-starting word than
	// vowel-starting words.
	SymbolConsonant StackSymbol = 'C'
)

// Verdict is the outcome of a run. Rejected is a normal, successful result
// (the counts were unequal), distinct from an input validation error.
type Verdict string

const (
	Accepted Verdict = "ACCEPTED"
	Rejected Verdict = "REJECTED"
)

// Class is the category of a word's first letter.
type Class int

const (
	Vowel Class = iota + 1
	Consonant
)

// Symbol returns the stack symbol that records one word of this class.
func (c Class) Symbol() StackSymbol {
	if c == Vowel {
		return SymbolVowel
	}
	return SymbolConsonant
}

// Opposite returns the cancelling class.
func (c Class) Opposite() Class {
	if c == Vowel {
		return Consonant
	}
	return Vowel
}

// Classify categorizes a lowercase letter as vowel or consonant.
// The caller guarantees r is in 'a'..'z'.
func Classify(r rune) Class {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return Vowel
	}
	return Consonant
}

// Configuration is one snapshot of a run: the control state, the input
// suffix not yet consumed, and the stack contents from bottom to top.
type Configuration struct {
	State     State
	Remaining string
	Stack     []StackSymbol
}
