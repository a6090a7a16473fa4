package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitRejected, GetExitCode(&ExitError{Code: ExitRejected}))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("plain error")))
}

func TestGetExitCode_Wrapped(t *testing.T) {
	inner := NewExitError(ExitRejected, "rejected")
	wrapped := fmt.Errorf("outer: %w", inner)
	assert.Equal(t, ExitRejected, GetExitCode(wrapped))
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "boom", NewExitError(ExitCommandError, "boom").Error())
	assert.Empty(t, (&ExitError{Code: ExitRejected}).Error())

	wrapped := WrapExitError(ExitCommandError, "context", fmt.Errorf("cause"))
	assert.Equal(t, "context: cause", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "cause")
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeJSON(&buf, CLIResponse{
		Status:  "ok",
		Data:    map[string]string{"verdict": "ACCEPTED"},
		TraceID: "run-1",
	})
	require.NoError(t, err)

	var decoded CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "ok", decoded.Status)
	assert.Equal(t, "run-1", decoded.TraceID)
	assert.Nil(t, decoded.Error)
}
