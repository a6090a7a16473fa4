package automaton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcbalance/internal/testutil"
)

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	def := VowelConsonantBalance()
	require.NoError(t, def.Validate())
	return New(def)
}

func TestRun_ConcreteScenarios(t *testing.T) {
	m := newTestMachine(t)

	tests := []struct {
		name  string
		input string
		want  Verdict
	}{
		{"five consonants five vowels", "captivating melodies echo across the ocean enchanting all who listen!", Accepted},
		{"single consonant word", "cat!", Rejected},
		{"all vowels", "a e i o u!", Rejected},
		{"one of each", "a b!", Accepted},
		{"empty sentence", "!", Accepted},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := m.Run(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Verdict)
			assert.Nil(t, res.Trace, "trace must be nil unless requested")
		})
	}
}

func TestRun_VerdictMatchesDirectCounts(t *testing.T) {
	m := newTestMachine(t)

	for n := 0; n <= 6; n++ {
		sentence := testutil.Balanced(n)
		res, err := m.Run(Terminate(sentence))
		require.NoError(t, err)

		vowels, consonants := FirstLetterCounts(sentence)
		require.Equal(t, vowels, consonants)
		assert.Equal(t, Accepted, res.Verdict, "balanced sentence %q", sentence)
	}

	pairs := [][2]int{{1, 0}, {0, 1}, {3, 2}, {2, 5}, {6, 1}}
	for _, p := range pairs {
		sentence := testutil.Unbalanced(p[0], p[1])
		res, err := m.Run(Terminate(sentence))
		require.NoError(t, err)

		vowels, consonants := FirstLetterCounts(sentence)
		require.NotEqual(t, vowels, consonants)
		assert.Equal(t, Rejected, res.Verdict, "unbalanced sentence %q", sentence)
	}
}

func TestRun_WordOrderDoesNotChangeVerdict(t *testing.T) {
	m := newTestMachine(t)

	balanced := testutil.Balanced(4)
	unbalanced := testutil.Unbalanced(3, 5)

	for seed := int64(1); seed <= 5; seed++ {
		res, err := m.Run(Terminate(testutil.Shuffled(balanced, seed)))
		require.NoError(t, err)
		assert.Equal(t, Accepted, res.Verdict, "seed %d", seed)

		res, err = m.Run(Terminate(testutil.Shuffled(unbalanced, seed)))
		require.NoError(t, err)
		assert.Equal(t, Rejected, res.Verdict, "seed %d", seed)
	}
}

func TestRun_Idempotent(t *testing.T) {
	m := newTestMachine(t)

	first, err := m.Run("cat and dog!", WithTrace())
	require.NoError(t, err)
	second, err := m.Run("cat and dog!", WithTrace())
	require.NoError(t, err)

	assert.Equal(t, first.Verdict, second.Verdict)
	assert.Equal(t, first.Trace, second.Trace)
}

func TestRun_TraceShape(t *testing.T) {
	m := newTestMachine(t)

	for _, input := range []string{"!", "a b!", "cat!", "a e i o u!"} {
		t.Run(input, func(t *testing.T) {
			res, err := m.Run(input, WithTrace())
			require.NoError(t, err)

			// Initial configuration plus one per consumed symbol.
			require.Len(t, res.Trace, len(input)+1)

			initial := res.Trace[0]
			assert.Equal(t, Q0, initial.State)
			assert.Equal(t, input, initial.Remaining)
			assert.Equal(t, []StackSymbol{SymbolBottom}, initial.Stack)

			final := res.Trace[len(res.Trace)-1]
			assert.Equal(t, Q2, final.State)
			assert.Empty(t, final.Remaining)
		})
	}
}

func TestRun_FinalStackReflectsVerdict(t *testing.T) {
	m := newTestMachine(t)

	res, err := m.Run("a b!", WithTrace())
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)
	assert.Empty(t, res.Trace[len(res.Trace)-1].Stack, "accepted run pops the bottom marker")

	res, err = m.Run("cat!", WithTrace())
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
	assert.Equal(t, []StackSymbol{SymbolBottom, SymbolConsonant},
		res.Trace[len(res.Trace)-1].Stack, "rejected run leaves the imbalance in place")
}

func TestRun_SpaceCollapsing(t *testing.T) {
	m := newTestMachine(t)

	// Leading, trailing and doubled spaces must not produce extra
	// classifications: only q0->q1 transitions touch the stack.
	res, err := m.Run("  cat  echo  !", WithTrace())
	require.NoError(t, err)
	assert.Equal(t, Accepted, res.Verdict)

	stackChanges := 0
	for i := 1; i < len(res.Trace); i++ {
		if len(res.Trace[i].Stack) != len(res.Trace[i-1].Stack) {
			stackChanges++
		}
	}
	// Push for 'c', cancelling pop for 'e', final pop of the bottom marker.
	assert.Equal(t, 3, stackChanges)

	res, err = m.Run("  cat  dog!", WithTrace())
	require.NoError(t, err)
	assert.Equal(t, Rejected, res.Verdict)
}

func TestRun_InvalidInputs(t *testing.T) {
	m := newTestMachine(t)

	tests := []struct {
		input  string
		reason InvalidInputReason
	}{
		{"Hello world!", ReasonDisallowedCharacter},
		{"abc123!", ReasonDisallowedCharacter},
		{"café!", ReasonDisallowedCharacter},
		{"abc!!", ReasonMisplacedEndMarker},
		{"a!b!", ReasonMisplacedEndMarker},
		{"abc", ReasonMissingEndMarker},
		{"", ReasonMissingEndMarker},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			res, err := m.Run(tc.input, WithTrace())
			assert.Nil(t, res, "no partial result on invalid input")
			require.Error(t, err)
			assert.True(t, IsInvalidInput(err))

			var ie *InvalidInputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.reason, ie.Reason)
			assert.Equal(t, tc.input, ie.Input)
		})
	}
}

func TestIsInvalidInput_WrappedError(t *testing.T) {
	base := &InvalidInputError{Reason: ReasonMissingEndMarker, Input: "abc"}
	wrapped := fmt.Errorf("outer context: %w", base)

	assert.True(t, IsInvalidInput(wrapped))
	assert.False(t, IsInvalidInput(fmt.Errorf("unrelated")))
	assert.False(t, IsInvalidInput(nil))
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "a b!", Terminate("a b"))
	assert.Equal(t, "!", Terminate(""))
}

func TestFirstLetterCounts(t *testing.T) {
	vowels, consonants := FirstLetterCounts("captivating melodies echo across the ocean enchanting all who listen")
	assert.Equal(t, 5, vowels)
	assert.Equal(t, 5, consonants)

	vowels, consonants = FirstLetterCounts("  cat  dog  ")
	assert.Equal(t, 0, vowels)
	assert.Equal(t, 2, consonants)

	vowels, consonants = FirstLetterCounts("")
	assert.Zero(t, vowels)
	assert.Zero(t, consonants)
}
