package main

import (
	"fmt"
	"os"

	"vcbalance/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// A rejection carries an empty message: the verdict is already on
		// stdout and the error only transports the exit code.
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
