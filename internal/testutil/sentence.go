// Package testutil provides deterministic sentence builders for tests.
package testutil

import (
	"math/rand"
	"strings"
)

// Word pools keyed by first-letter class. All entries are lowercase so the
// built sentences pass validation unchanged.
var (
	vowelWords     = []string{"apple", "echo", "island", "ocean", "umbrella", "ant", "eel"}
	consonantWords = []string{"cat", "dog", "fish", "goat", "hawk", "mole", "wren"}
)

// Balanced builds a sentence with exactly n vowel-starting and n
// consonant-starting words, alternating classes. Deterministic for a
// given n.
func Balanced(n int) string {
	words := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		words = append(words, vowelWords[i%len(vowelWords)], consonantWords[i%len(consonantWords)])
	}
	return strings.Join(words, " ")
}

// Unbalanced builds a sentence with the given class counts. Deterministic
// for given counts; callers pick vowels != consonants to force rejection.
func Unbalanced(vowels, consonants int) string {
	words := make([]string, 0, vowels+consonants)
	for i := 0; i < vowels; i++ {
		words = append(words, vowelWords[i%len(vowelWords)])
	}
	for i := 0; i < consonants; i++ {
		words = append(words, consonantWords[i%len(consonantWords)])
	}
	return strings.Join(words, " ")
}

// Shuffled permutes a sentence's word order with a seeded source. Word
// order never changes first-letter counts, so a verdict must survive any
// permutation.
func Shuffled(sentence string, seed int64) string {
	words := strings.Fields(sentence)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return strings.Join(words, " ")
}
