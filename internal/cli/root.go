// Package cli implements the cobra-based CLI commands for nullsafe.
//
// Each subcommand (run, render, validate) is defined in its own file within
// this package. This file defines the root command that serves as the parent
// for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/nullsafe/internal/model"
)

// Flags shared by every subcommand, bound as persistent flags on the root.
var (
	// jsonOutput switches successful command output (and error objects)
	// from human-readable text to structured JSON.
	jsonOutput bool

	// verbose turns on stderr trace output via VerboseLog.
	verbose bool
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action — it only provides
// help text and global flags. Actual functionality is provided by
// subcommands (run, render, validate).
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		// Use is the one-line usage pattern shown in help output.
		Use:   "nullsafe",
		Short: "Optional-value (null-safety) semantics demonstrator",
		Long: `nullsafe demonstrates how explicit optional values behave: it builds a
fixed-size sequence of optional integers (all slots start absent), prints
each slot, and then force-unwraps an absent slot to show the resulting
nil-dereference fault.

The fault can either propagate (the process exits non-zero) or be caught
and reported as a diagnostic line, selectable per scenario.`,

		// Error and usage printing is handled in Execute/printError so
		// the --json flag can shape it; keep cobra's own output quiet.
		SilenceUsage:  true,
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	// Persistent flags propagate to every subcommand.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// One file per subcommand: run.go, render.go, validate.go.
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewRenderCommand())
	rootCmd.AddCommand(NewValidateCommand())

	return rootCmd
}

// Execute runs the root command and exits the process with the error's
// exit code: model.CLIError values carry their own code (see model.ExitCode
// for the contract), anything else maps to ExitGeneralError. Called once
// from main.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Every error our commands return is either a *CLIError built at
		// the failure site or a plain error from cobra itself; a type
		// assertion covers both without the errors.As machinery.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError reports a failure on stderr, honoring the --json flag.
// Errors always go to stderr — stdout carries only the demo's output
// contract, and mixing an error object into it would corrupt consumers
// that parse the slot lines.
func printError(message string, underlying error) {
	if !jsonOutput {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
		return
	}

	inner := map[string]interface{}{"message": message}
	if underlying != nil {
		inner["detail"] = underlying.Error()
	}
	data, _ := json.MarshalIndent(map[string]interface{}{"error": inner}, "", "  ")
	fmt.Fprintln(os.Stderr, string(data))
}

// VerboseLog writes trace output to stderr when --verbose is set.
// Commands call it around scenario resolution so users can see which
// scenario file (if any) was picked up.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput reports whether --json was set; subcommands branch on it
// when printing results.
func IsJSONOutput() bool {
	return jsonOutput
}
