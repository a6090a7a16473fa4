package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"vcbalance/internal/automaton"
	"vcbalance/internal/render"
)

const menuBanner = `========================================================================================

Verifies if the string's first letter per word has the same number of consonants/vowels.

For example: captivating melodies echo across the ocean enchanting all who listen
1st letters: c           m        e    a      t   o     e          a   w   l

This string's words have 5 consonants and 5 vowels as their first letter.
Because they are balanced, the string will be accepted.

========================================================================================`

// NewMenuCommand creates the interactive menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu loop",
		Long: `Run the interactive menu: input sentences one at a time, toggle the
step-by-step configuration display, or exit. The loop ends on option 3
or end of input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, UUIDv7Generator{})
		},
	}
	return cmd
}

// runMenu drives the menu loop. The step-by-step toggle is loop-local and
// handed to each evaluation explicitly, so the automaton itself stays free
// of display state.
func runMenu(cmd *cobra.Command, gen TokenGenerator) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	machine := automaton.New(automaton.VowelConsonantBalance())
	showSteps := false

	for {
		printMenu(out, showSteps)

		fmt.Fprint(out, "Choice: ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			if err := evaluateOnce(in, out, machine, gen, showSteps); err != nil {
				return err
			}
		case "2":
			showSteps = !showSteps
		case "3":
			return nil
		default:
			fmt.Fprintln(out, "The menu only has 1, 2, and 3 as choices")
		}
	}
}

// evaluateOnce prompts for one sentence and prints the verdict, preceded by
// the configuration table when showSteps is on.
func evaluateOnce(in *bufio.Scanner, out io.Writer, machine *automaton.Machine, gen TokenGenerator, showSteps bool) error {
	fmt.Fprintln(out, "Valid input is [a-z ] -- that means alphabet and space.")
	fmt.Fprint(out, "Input words here: ")
	if !in.Scan() {
		fmt.Fprintln(out)
		return in.Err()
	}

	sentence, err := Normalize(in.Text())
	if err != nil || sentence == "" {
		fmt.Fprintln(out, "Invalid input!")
		return nil
	}

	token := gen.Generate()
	slog.Debug("evaluating sentence",
		"run_token", token,
		"chars", len(sentence),
		"show_steps", showSteps,
	)

	var runOpts []automaton.RunOption
	if showSteps {
		runOpts = append(runOpts, automaton.WithTrace())
	}

	res, err := machine.Run(automaton.Terminate(sentence), runOpts...)
	if err != nil {
		return WrapExitError(ExitCommandError, "run automaton", err)
	}

	if showSteps {
		fmt.Fprintln(out)
		if err := render.Table(out, res.Trace); err != nil {
			return WrapExitError(ExitCommandError, "render trace", err)
		}
	}

	fmt.Fprintln(out)
	if res.Verdict == automaton.Accepted {
		fmt.Fprintln(out, "INPUT IS ACCEPTED")
	} else {
		fmt.Fprintln(out, "INPUT IS REJECTED")
	}
	fmt.Fprintln(out)
	return nil
}

func printMenu(out io.Writer, showSteps bool) {
	fmt.Fprintln(out, menuBanner)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "CHOICES:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[1] Input a String")
	if showSteps {
		fmt.Fprintln(out, "[2] Show Step-By-Step [ON]")
	} else {
		fmt.Fprintln(out, "[2] Show Step-By-Step [OFF]")
	}
	fmt.Fprintln(out, "[3] Exit Program")
	fmt.Fprintln(out)
}
