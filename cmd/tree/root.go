package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	// stdout and stderr are swapped out by tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree PATH [DEPTH]",
		Short: "Print a directory hierarchy",
		Long: `tree prints the directory hierarchy below PATH using connector
prefixes, descending at most DEPTH levels (default 2).

Example:
  tree .
  tree path/to/folder 3
  tree path/to/folder 0

Arguments starting with "-" are read as flags. Put them after "--":
  tree -- -odd-name 1`,
		Args:          checkArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	cmd.Version = versionString()
	cmd.SetVersionTemplate("tree {{.Version}}\n")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")
	return cmd
}

func execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command with args and returns the process exit code.
func run(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			fmt.Fprint(stderr, usage.Error())
			return 1
		}
		printError("%v\n", err)
		return 1
	}
	return 0
}

// usageError reports a malformed invocation.
type usageError struct {
	prog string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("Usage: tree PATH\nExample: %s path/to/folder [:depth]\n", e.prog)
}

// checkArgs accepts PATH and an optional DEPTH.
func checkArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return &usageError{prog: filepath.Base(os.Args[0])}
	}
	return nil
}

// Helper functions for output

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "Error: "+format, args...)
}

// printVerbose prints a diagnostic message to stderr if verbose mode is enabled.
// stdout carries only the tree.
func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(stderr, format, args...)
	}
}
