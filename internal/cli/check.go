package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"vcbalance/internal/automaton"
	"vcbalance/internal/render"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Trace bool
}

// CheckResult is the payload of a check evaluation.
type CheckResult struct {
	Input          string        `json:"input"`
	Verdict        string        `json:"verdict"`
	VowelWords     int           `json:"vowel_words"`
	ConsonantWords int           `json:"consonant_words"`
	Steps          []render.Step `json:"steps,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [sentence]",
		Short: "Check one sentence for vowel/consonant balance",
		Long: `Check whether a sentence has equally many vowel-starting and
consonant-starting words.

The sentence is read from the arguments, or from stdin when no arguments
are given. Input is lowercased and must contain only letters and spaces.

Exit codes: 0 accepted, 1 rejected, 2 malformed input.

Examples:
  vcbalance check "a b"
  vcbalance check --trace "captivating melodies echo across the ocean enchanting all who listen"
  echo "cat" | vcbalance check --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, cmd, args, UUIDv7Generator{})
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "show the configuration trace")

	return cmd
}

func runCheck(opts *CheckOptions, cmd *cobra.Command, args []string, gen TokenGenerator) error {
	out := cmd.OutOrStdout()

	raw := strings.Join(args, " ")
	if len(args) == 0 {
		line, err := readLine(cmd)
		if err != nil {
			return WrapExitError(ExitCommandError, "read sentence", err)
		}
		raw = line
	}

	token := gen.Generate()

	sentence, err := Normalize(raw)
	if err != nil {
		if opts.Format == "json" {
			_ = EncodeJSON(out, CLIResponse{
				Status:  "error",
				Error:   &CLIError{Code: "INVALID_INPUT", Message: err.Error()},
				TraceID: token,
			})
		}
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	slog.Debug("evaluating sentence",
		"run_token", token,
		"chars", len(sentence),
	)

	machine := automaton.New(automaton.VowelConsonantBalance())

	var runOpts []automaton.RunOption
	if opts.Trace {
		runOpts = append(runOpts, automaton.WithTrace())
	}

	res, err := machine.Run(automaton.Terminate(sentence), runOpts...)
	if err != nil {
		// Normalize guarantees a well-formed terminated input; reaching
		// here means the two validators disagree.
		return WrapExitError(ExitCommandError, "run automaton", err)
	}

	vowels, consonants := automaton.FirstLetterCounts(sentence)
	slog.Debug("verdict reached",
		"run_token", token,
		"verdict", res.Verdict,
		"vowel_words", vowels,
		"consonant_words", consonants,
	)

	if opts.Format == "json" {
		result := CheckResult{
			Input:          sentence,
			Verdict:        string(res.Verdict),
			VowelWords:     vowels,
			ConsonantWords: consonants,
		}
		if res.Trace != nil {
			result.Steps = render.NewSnapshot(automaton.Terminate(sentence), res).Steps
		}
		if err := EncodeJSON(out, CLIResponse{Status: "ok", Data: result, TraceID: token}); err != nil {
			return WrapExitError(ExitCommandError, "encode response", err)
		}
	} else {
		if res.Trace != nil {
			if err := render.Table(out, res.Trace); err != nil {
				return WrapExitError(ExitCommandError, "render trace", err)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, string(res.Verdict))
	}

	if res.Verdict == automaton.Rejected {
		// Verdict already written; the error only carries the exit code.
		return &ExitError{Code: ExitRejected}
	}
	return nil
}

// readLine reads one sentence from stdin. A final line without a trailing
// newline is still accepted.
func readLine(cmd *cobra.Command) (string, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", fmt.Errorf("no sentence on stdin: %w", err)
	}
	return line, nil
}
