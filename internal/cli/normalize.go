package cli

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sentencePattern is the gate raw input must pass before the automaton
// sees it: lowercase letters and spaces only. The empty sentence is
// allowed and decides as balanced (zero equals zero).
var sentencePattern = regexp.MustCompile(`^[a-z ]*$`)

// Normalize prepares raw terminal input for the automaton: NFC
// normalization (composed and decomposed sequences validate identically),
// ASCII lowercasing, then the [a-z ]* gate.
//
// Lowercasing happens before the gate so "Cat Dog" is usable input, while
// digits, punctuation and non-ASCII letters are refused.
func Normalize(raw string) (string, error) {
	s := norm.NFC.String(raw)
	s = strings.ToLower(s)
	if !sentencePattern.MatchString(s) {
		return "", fmt.Errorf("input contains non-alphabet/space characters")
	}
	return s, nil
}
