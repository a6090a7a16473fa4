// Package render presents automaton configuration traces.
//
// Two forms are provided: a Markdown pipe table for terminal display, and a
// JSON snapshot with stable field order for golden-file comparison. Both
// render the stack top-first and use ε for an empty remaining input or an
// empty stack.
package render
