package automaton

// symbolStack is the run-owned LIFO. It is created fresh for every run and
// discarded when the run completes; nothing is shared between runs.
type symbolStack struct {
	items []StackSymbol
}

// newSymbolStack creates a stack with a small capacity hint. Typical
// sentences cancel aggressively, so depth stays near the bottom marker.
func newSymbolStack() *symbolStack {
	return &symbolStack{items: make([]StackSymbol, 0, 8)}
}

// push adds one symbol to the stack top.
func (s *symbolStack) push(sym StackSymbol) {
	s.items = append(s.items, sym)
}

// pop removes and returns the top symbol.
func (s *symbolStack) pop() (StackSymbol, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	last := len(s.items) - 1
	sym := s.items[last]
	s.items = s.items[:last]
	return sym, true
}

// peek returns the top symbol without removing it.
func (s *symbolStack) peek() (StackSymbol, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

// len reports the current depth.
func (s *symbolStack) len() int {
	return len(s.items)
}

// snapshot returns a bottom-to-top copy for trace capture. The copy keeps
// captured configurations immutable as the run mutates the stack.
func (s *symbolStack) snapshot() []StackSymbol {
	out := make([]StackSymbol, len(s.items))
	copy(out, s.items)
	return out
}
