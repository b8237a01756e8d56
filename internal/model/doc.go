// Package model defines the domain types and value objects for the
// nullsafe CLI.
//
// This package contains pure data structures with no external dependencies:
// the demo scenario (Scenario), the fault-handling policy enum (FaultMode),
// exit codes (ExitCode) and a custom error type (CLIError) that carries exit
// codes for proper OS process exit handling.
//
// A Scenario is a transient value assembled from flags and/or a scenario
// file at startup — there is no persistent state.
package model
