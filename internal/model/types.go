package model

import (
	"fmt"
	"regexp"
	"strings"
)

// FaultMode represents the policy applied when the demo's forced unwrap
// hits an absent slot. The two policies correspond to the two behaviors
// the demo can exhibit:
//
//	propagate — the fault is surfaced as an error and the process exits
//	            non-zero (nothing further is written to stdout)
//	catch     — the fault is caught, a diagnostic line is printed, and the
//	            process exits normally
type FaultMode string

const (
	// FaultPropagate surfaces the dereference fault to the caller.
	// This is the default mode.
	FaultPropagate FaultMode = "propagate"

	// FaultCatch recovers the dereference fault and prints a diagnostic
	// line instead of failing.
	FaultCatch FaultMode = "catch"
)

// String returns the string representation of FaultMode.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and logging.
func (m FaultMode) String() string {
	return string(m)
}

// IsValid checks whether the FaultMode value is one of the
// predefined valid modes.
func (m FaultMode) IsValid() bool {
	switch m {
	case FaultPropagate, FaultCatch:
		return true
	default:
		return false
	}
}

// ParseFaultMode converts a string to a FaultMode.
// Returns an error if the string does not match any valid mode.
func ParseFaultMode(s string) (FaultMode, error) {
	mode := FaultMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid fault mode: %q (valid: propagate, catch)", s)
	}
	return mode, nil
}

// DefaultSequenceName is the name of the demo sequence. It appears in the
// dereference diagnostic, e.g. "NullPointerException ao acessar nullableInts[3]".
const DefaultSequenceName = "nullableInts"

const (
	// DefaultSize is the number of slots in the default demo sequence.
	DefaultSize = 5

	// DefaultFaultIndex is the slot whose forced unwrap triggers the fault
	// in the default scenario. The slot is absent, so the unwrap fails.
	DefaultFaultIndex = 3

	// MaxSize bounds scenario sequences. The demo is meant to be read on a
	// terminal; anything larger than this is a scenario-file mistake.
	MaxSize = 1024
)

// Scenario describes one demo run: how large the sequence is, which slots
// are pre-filled, which slot the forced unwrap targets, and what happens
// when that unwrap faults.
//
// Scenarios are assembled from a scenario file (see internal/config) and/or
// CLI flags; flags take precedence over file values.
type Scenario struct {
	// Name identifies the sequence in output and in the fault diagnostic.
	// Must contain only alphanumeric characters and hyphens.
	Name string `json:"name" yaml:"name"`

	// Size is the number of slots in the sequence. All slots start absent.
	Size int `json:"size" yaml:"size"`

	// Values maps slot indices to preset integer values. Slots not listed
	// here remain absent. May be empty (the default scenario has no presets).
	Values map[int]int `json:"values,omitempty" yaml:"values,omitempty"`

	// FaultIndex is the slot the demo force-unwraps after printing the
	// sequence. If that slot is absent, the unwrap faults.
	FaultIndex int `json:"faultIndex" yaml:"faultIndex"`

	// OnFault is the policy applied when the forced unwrap faults.
	OnFault FaultMode `json:"onFault" yaml:"onFault"`
}

// DefaultScenario returns the scenario the CLI runs when no scenario file
// or flags are given: five absent slots, forced unwrap of slot 3, fault
// propagated to the caller.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:       DefaultSequenceName,
		Size:       DefaultSize,
		FaultIndex: DefaultFaultIndex,
		OnFault:    FaultPropagate,
	}
}

// nameRegex validates sequence names: alphanumeric + hyphens only,
// must start and end with alphanumeric.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// ValidateName checks if the given name is a valid sequence name.
// Valid names contain only alphanumeric characters and hyphens,
// and must start/end with an alphanumeric character.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("sequence name must not be empty")
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid sequence name %q: must contain only alphanumeric characters and hyphens, and start/end with alphanumeric", name)
	}
	return nil
}

// Validate checks whether the Scenario has consistent field values:
// a valid name, a sane size, in-range preset and fault indices, and a
// recognized fault mode.
func (s *Scenario) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if s.Size < 1 || s.Size > MaxSize {
		return fmt.Errorf("scenario: size %d out of range (1-%d)", s.Size, MaxSize)
	}
	if s.FaultIndex < 0 || s.FaultIndex >= s.Size {
		return fmt.Errorf("scenario: fault index %d out of range (0-%d)", s.FaultIndex, s.Size-1)
	}
	for idx := range s.Values {
		if idx < 0 || idx >= s.Size {
			return fmt.Errorf("scenario: preset index %d out of range (0-%d)", idx, s.Size-1)
		}
	}
	if !s.OnFault.IsValid() {
		return fmt.Errorf("scenario: invalid fault mode %q (valid: propagate, catch)", s.OnFault)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitScenarioNotFound indicates no scenario file was found
	// in the expected location.
	ExitScenarioNotFound ExitCode = 2

	// ExitNilDeref indicates the demo's forced unwrap hit an absent slot
	// and the scenario's fault mode was "propagate".
	ExitNilDeref ExitCode = 3

	// ExitConfigInvalid indicates a scenario file could not be parsed
	// or failed validation.
	ExitConfigInvalid ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
