// Package cli — render.go implements the "nullsafe render" command.
//
// The render command displays a scenario's sequence without performing the
// forced unwrap, so it never faults. It shows each slot's index, rendered
// value and presence as a text table or JSON array, depending on the --json
// flag. The --present-only flag switches to the safe-call path: only present
// values are printed, absent slots produce no output at all.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/nullsafe/internal/demo"
	"github.com/mmr-tortoise/nullsafe/internal/model"
	"github.com/mmr-tortoise/nullsafe/internal/sequence"
)

// renderFlags holds the flag values for the render command.
type renderFlags struct {
	// scenario is an explicit scenario file path; same resolution rules
	// as the run command.
	scenario string

	// presentOnly prints only present values via the safe-call path,
	// with no marker lines for absent slots.
	presentOnly bool
}

// NewRenderCommand creates the "render" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scenario's sequence without faulting",
		Long: `Render a scenario's sequence slot by slot, without the forced unwrap.

Absent slots render as "null"; present slots render their integer value.
With --present-only, absent slots are skipped entirely (the safe-call
path), so an all-absent sequence produces no output.

Examples:
  nullsafe render
  nullsafe render --scenario demo.yaml
  nullsafe render --present-only
  nullsafe render --json`,

		// No positional arguments are required for the render command.
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.scenario, "scenario", "f", "",
		"Path to a scenario file (JSON, JSONC or YAML)")
	cmd.Flags().BoolVar(&flags.presentOnly, "present-only", false,
		"Print only present values (safe-call path)")

	return cmd
}

// runRender is the main logic function for the render command.
func runRender(flags *renderFlags) error {
	sc, err := resolveScenario(flags.scenario)
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid, "invalid scenario", err)
	}

	seq := demo.Build(sc)
	VerboseLog("Rendering sequence %q with %d slots", seq.Name(), seq.Len())

	if flags.presentOnly {
		// Safe-call path: absent slots are skipped without marker lines.
		for slot := range seq.Slots() {
			demo.PrintIfPresent(os.Stdout, slot)
		}
		return nil
	}

	printRenderResult(seq)
	return nil
}

// printRenderResult outputs the sequence in text or JSON format,
// depending on the global --json flag.
func printRenderResult(seq *sequence.Sequence) {
	if IsJSONOutput() {
		printRenderResultJSON(seq)
	} else {
		printRenderResultText(seq)
	}
}

// SlotRow describes one slot for render output. It is exported for testing
// (see render_test.go) and doubles as the JSON output structure.
type SlotRow struct {
	// Index is the slot's position in the sequence.
	Index int `json:"index"`

	// Value is the slot's integer when present, null when absent.
	Value *int `json:"value"`

	// Present reports whether the slot holds a value.
	Present bool `json:"present"`
}

// SlotRows converts a sequence into its render rows, one per slot in index
// order. Absent slots get a nil Value so JSON output shows null.
func SlotRows(seq *sequence.Sequence) []SlotRow {
	rows := make([]SlotRow, 0, seq.Len())

	idx := 0
	for slot := range seq.Slots() {
		row := SlotRow{Index: idx}
		if v, ok := slot.Get(); ok {
			row.Value = &v
			row.Present = true
		}
		rows = append(rows, row)
		idx++
	}
	return rows
}

// printRenderResultJSON outputs the sequence as structured JSON.
// The top-level keys are the sequence name and its slot rows.
func printRenderResultJSON(seq *sequence.Sequence) {
	type resultJSON struct {
		Name  string    `json:"name"`
		Slots []SlotRow `json:"slots"`
	}

	result := resultJSON{
		Name:  seq.Name(),
		Slots: SlotRows(seq),
	}

	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printRenderResultText outputs the sequence as a human-readable text table.
//
// The table format is:
//
//	INDEX  VALUE  STATE
//	0      null   absent
//	1      10     present
func printRenderResultText(seq *sequence.Sequence) {
	fmt.Printf("%-6s %-6s %s\n", "INDEX", "VALUE", "STATE")

	idx := 0
	for slot := range seq.Slots() {
		state := "absent"
		if slot.Present() {
			state = "present"
		}
		fmt.Printf("%-6d %-6s %s\n", idx, slot.String(), state)
		idx++
	}
}
