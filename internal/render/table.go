package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"vcbalance/internal/automaton"
)

// Epsilon is displayed for an empty remaining input or an empty stack.
const Epsilon = "ε"

var tableHeaders = [3]string{"State", "Remaining Input", "Stack"}

// Table writes a configuration trace as a Markdown pipe table with columns
// State, Remaining Input and Stack. Column widths adapt to the content;
// whitespace inside the remaining input is preserved.
func Table(w io.Writer, trace []automaton.Configuration) error {
	rows := make([][3]string, len(trace))
	for i, cfg := range trace {
		rows[i] = [3]string{string(cfg.State), Remaining(cfg), Stack(cfg)}
	}

	var widths [3]int
	for i, h := range tableHeaders {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := writeRow(w, tableHeaders, widths); err != nil {
		return err
	}
	if err := writeSeparator(w, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells [3]string, widths [3]int) error {
	_, err := fmt.Fprintf(w, "| %s | %s | %s |\n",
		pad(cells[0], widths[0]),
		pad(cells[1], widths[1]),
		pad(cells[2], widths[2]),
	)
	return err
}

func writeSeparator(w io.Writer, widths [3]int) error {
	_, err := fmt.Fprintf(w, "|%s|%s|%s|\n",
		strings.Repeat("-", widths[0]+2),
		strings.Repeat("-", widths[1]+2),
		strings.Repeat("-", widths[2]+2),
	)
	return err
}

// pad left-aligns by rune count, not byte count, so ε pads correctly.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Remaining renders a configuration's unconsumed input, ε when empty.
func Remaining(cfg automaton.Configuration) string {
	if cfg.Remaining == "" {
		return Epsilon
	}
	return cfg.Remaining
}

// Stack renders a configuration's stack top-first, ε when empty.
func Stack(cfg automaton.Configuration) string {
	if len(cfg.Stack) == 0 {
		return Epsilon
	}
	var b strings.Builder
	for i := len(cfg.Stack) - 1; i >= 0; i-- {
		b.WriteByte(byte(cfg.Stack[i]))
	}
	return b.String()
}
