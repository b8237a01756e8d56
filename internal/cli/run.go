// Package cli — run.go implements the "nullsafe run" command.
//
// The run command executes the nullable-array demonstration: it resolves a
// scenario (explicit file, discovered file, or the built-in default), applies
// any flag overrides, and runs the demo against stdout. When the scenario's
// fault mode is "propagate", the dereference fault surfaces as a non-zero
// process exit; when it is "catch", a diagnostic line is printed instead and
// the command exits normally.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/nullsafe/internal/config"
	"github.com/mmr-tortoise/nullsafe/internal/demo"
	"github.com/mmr-tortoise/nullsafe/internal/model"
	"github.com/mmr-tortoise/nullsafe/internal/optional"
)

// runFlags holds the flag values for the run command.
// These are bound to cobra flags in NewRunCommand.
type runFlags struct {
	// scenario is an explicit scenario file path. When empty, the command
	// looks for a scenario file in the working directory and falls back to
	// the built-in default scenario.
	scenario string

	// size overrides the scenario's sequence size.
	size int

	// faultIndex overrides the scenario's forced-unwrap slot.
	faultIndex int

	// onFault overrides the scenario's fault policy: propagate or catch.
	onFault string
}

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the nullable-array demonstration",
		Long: `Run the nullable-array demonstration.

Each slot of the sequence is printed in index order ("null" for absent
slots), then the fault slot is force-unwrapped. With the default scenario
all five slots are absent, so the unwrap faults on nullableInts[3].

Examples:
  nullsafe run
  nullsafe run --on-fault catch
  nullsafe run --scenario demo.jsonc
  nullsafe run --size 8 --fault-index 6`,

		// No positional arguments are required for the run command.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.scenario, "scenario", "f", "",
		"Path to a scenario file (JSON, JSONC or YAML)")
	cmd.Flags().IntVar(&flags.size, "size", model.DefaultSize,
		"Number of slots in the sequence")
	cmd.Flags().IntVar(&flags.faultIndex, "fault-index", model.DefaultFaultIndex,
		"Slot index the forced unwrap targets")
	cmd.Flags().StringVar(&flags.onFault, "on-fault", "",
		"Fault policy: propagate (exit non-zero) or catch (print diagnostic)")

	return cmd
}

// runRun is the main logic function for the run command.
// It resolves the scenario, applies flag overrides, and executes the demo.
func runRun(cmd *cobra.Command, flags *runFlags) error {
	// Step 1: Resolve the base scenario (file or built-in default).
	sc, err := resolveScenario(flags.scenario)
	if err != nil {
		return err
	}

	// Step 2: Apply flag overrides. Only flags the user actually set are
	// applied, so a scenario file's values survive unset flags.
	if cmd.Flags().Changed("size") {
		sc.Size = flags.size
	}
	if cmd.Flags().Changed("fault-index") {
		sc.FaultIndex = flags.faultIndex
	}
	if flags.onFault != "" {
		mode, err := model.ParseFaultMode(flags.onFault)
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError,
				fmt.Sprintf("invalid --on-fault value %q", flags.onFault), err)
		}
		sc.OnFault = mode
	}

	// Step 3: Validate the combined scenario before running.
	if err := sc.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid, "invalid scenario", err)
	}

	VerboseLog("Running scenario %q: size=%d faultIndex=%d onFault=%s",
		sc.Name, sc.Size, sc.FaultIndex, sc.OnFault)

	// Step 4: Execute the demo against the command's output stream
	// (stdout in production, a buffer in tests). In catch mode the fault
	// is handled inside the demo; in propagate mode it comes back as a
	// *optional.DerefError and is mapped to the nil-dereference exit code.
	if err := demo.Run(cmd.OutOrStdout(), sc); err != nil {
		var derefErr *optional.DerefError
		if errors.As(err, &derefErr) {
			return model.WrapCLIError(model.ExitNilDeref,
				fmt.Sprintf("unhandled nil dereference at %s", derefErr.Context), err)
		}
		return err
	}
	return nil
}

// resolveScenario loads the scenario to run. Resolution order:
//
//  1. An explicit --scenario path, which must exist.
//  2. A scenario file discovered in the working directory.
//  3. The built-in default scenario (five absent slots, fault at index 3).
//
// Discovery misses fall through to the default; any other load error is
// returned as-is.
func resolveScenario(path string) (*model.Scenario, error) {
	if path != "" {
		return config.LoadScenario(path)
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	found, err := config.FindScenarioFile(dir)
	if err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) && cliErr.Code == model.ExitScenarioNotFound {
			VerboseLog("No scenario file in %s, using built-in default", dir)
			return model.DefaultScenario(), nil
		}
		return nil, err
	}

	VerboseLog("Using scenario file %s", found)
	return config.LoadScenario(found)
}
