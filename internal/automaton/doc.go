// Package automaton implements the vowel/consonant balance DPDA.
//
// The machine reads a terminated sentence (lowercase words separated by
// spaces, followed by a single '!' end marker) in one left-to-right pass
// and decides whether the number of words whose first letter is a vowel
// equals the number of words whose first letter is a consonant.
//
// ARCHITECTURE:
//
// Three control states carry the word-boundary flag:
//   - q0: at a word boundary; the next letter is the first letter of a word
//   - q1: inside a word; further letters are ignored for classification
//   - q2: end marker consumed; terminal
//
// The stack carries the running difference between the two counts. 'S'
// permanently marks the bottom. Classifying a first letter pushes its class
// symbol ('V' or 'C') unless the opposite class sits on top, in which case
// that symbol is popped instead. The cancellation fires immediately, so the
// region above 'S' only ever holds symbols of one class.
//
// Acceptance: reading '!' always moves to q2. The input is accepted iff the
// stack was exactly [S] at that instant (the 'S' is popped and the stack
// empties); any remaining 'V' or 'C' means the counts were unequal.
//
// DETERMINISM:
//
// A run is a synchronous, side-effect-free pass: no I/O, no logging, no
// state shared between runs. Each invocation owns its stack and trace, so
// independent runs may proceed concurrently with zero coordination. The
// machine always consumes exactly len(input) symbols and halts.
package automaton
