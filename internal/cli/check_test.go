package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with scripted stdin and returns the
// captured stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_Accepted(t *testing.T) {
	out, err := executeCommand(t, "", "check", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "ACCEPTED\n", out)
}

func TestCheck_Rejected(t *testing.T) {
	out, err := executeCommand(t, "", "check", "cat")
	assert.Contains(t, out, "REJECTED")

	require.Error(t, err)
	assert.Equal(t, ExitRejected, GetExitCode(err))
	assert.Empty(t, err.Error(), "rejection must not print an extra error line")
}

func TestCheck_LowercasesInput(t *testing.T) {
	out, err := executeCommand(t, "", "check", "Echo", "Cat")
	require.NoError(t, err)
	assert.Contains(t, out, "ACCEPTED")
}

func TestCheck_InvalidInput(t *testing.T) {
	for _, sentence := range []string{"abc123", "hello, world", "café"} {
		t.Run(sentence, func(t *testing.T) {
			_, err := executeCommand(t, "", "check", sentence)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestCheck_ReadsStdin(t *testing.T) {
	out, err := executeCommand(t, "a b\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ACCEPTED")

	// Final line without trailing newline still counts.
	out, err = executeCommand(t, "cat", "check")
	assert.Equal(t, ExitRejected, GetExitCode(err))
	assert.Contains(t, out, "REJECTED")
}

func TestCheck_TraceTable(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--trace", "a", "b")
	require.NoError(t, err)

	assert.Contains(t, out, "| State | Remaining Input | Stack |")
	assert.Contains(t, out, "| q2    | ε               | ε     |")
	assert.Contains(t, out, "ACCEPTED")
}

func TestCheck_JSONOutput(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--format", "json", "--trace", "a", "b")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Input          string `json:"input"`
			Verdict        string `json:"verdict"`
			VowelWords     int    `json:"vowel_words"`
			ConsonantWords int    `json:"consonant_words"`
			Steps          []struct {
				State     string `json:"state"`
				Remaining string `json:"remaining"`
				Stack     string `json:"stack"`
			} `json:"steps"`
		} `json:"data"`
		TraceID string `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)
	assert.Equal(t, "a b", resp.Data.Input)
	assert.Equal(t, "ACCEPTED", resp.Data.Verdict)
	assert.Equal(t, 1, resp.Data.VowelWords)
	assert.Equal(t, 1, resp.Data.ConsonantWords)
	require.Len(t, resp.Data.Steps, 5)
	assert.Equal(t, "q0", resp.Data.Steps[0].State)
}

func TestCheck_JSONInvalidInput(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--format", "json", "abc123")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var resp struct {
		Status string `json:"status"`
		Error  struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestCheck_JSONRejectedStillExitsNonzero(t *testing.T) {
	out, err := executeCommand(t, "", "check", "--format", "json", "cat")
	assert.Equal(t, ExitRejected, GetExitCode(err))
	assert.Contains(t, out, `"REJECTED"`)
}

func TestCheck_EmptySentenceIsBalanced(t *testing.T) {
	// Zero vowel words equals zero consonant words.
	out, err := executeCommand(t, "\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ACCEPTED")
}
