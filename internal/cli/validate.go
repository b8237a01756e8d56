// Package cli — validate.go implements the "nullsafe validate" command.
//
// The validate command loads a scenario file, checks it, and reports the
// normalized scenario (with defaults applied) so users can see exactly what
// the run command would execute.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/nullsafe/internal/config"
	"github.com/mmr-tortoise/nullsafe/internal/model"
)

// NewValidateCommand creates the "validate" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Validate a scenario file",
		Long: `Validate a scenario file and print the normalized scenario.

With no argument, the working directory is searched for a scenario file
(nullsafe.jsonc, nullsafe.json, nullsafe.yaml, nullsafe.yml).

Examples:
  nullsafe validate
  nullsafe validate demo.jsonc
  nullsafe validate demo.yaml --json`,

		// At most one positional argument: the scenario file path.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runValidate(path)
		},
	}

	return cmd
}

// runValidate is the main logic function for the validate command.
// Unlike resolveScenario, a missing file is an error here: validating
// the built-in default would always trivially succeed.
func runValidate(path string) error {
	if path == "" {
		dir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		path, err = config.FindScenarioFile(dir)
		if err != nil {
			return err
		}
		VerboseLog("Validating discovered scenario file %s", path)
	}

	// LoadScenario validates as part of loading, so reaching this point
	// means the file parsed and every field is consistent.
	sc, err := config.LoadScenario(path)
	if err != nil {
		return err
	}

	printValidateResult(path, sc)
	return nil
}

// printValidateResult reports a valid scenario in text or JSON format,
// depending on the global --json flag.
func printValidateResult(path string, sc *model.Scenario) {
	if IsJSONOutput() {
		type resultJSON struct {
			Path     string          `json:"path"`
			Valid    bool            `json:"valid"`
			Scenario *model.Scenario `json:"scenario"`
		}
		data, _ := json.MarshalIndent(resultJSON{Path: path, Valid: true, Scenario: sc}, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("%s is valid\n", path)
	fmt.Printf("  name:        %s\n", sc.Name)
	fmt.Printf("  size:        %d\n", sc.Size)
	fmt.Printf("  presets:     %d\n", len(sc.Values))
	fmt.Printf("  fault index: %d\n", sc.FaultIndex)
	fmt.Printf("  on fault:    %s\n", sc.OnFault)
}
