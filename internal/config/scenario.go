// Package config handles loading and locating scenario files for the
// nullsafe CLI.
//
// Scenario files may be JSON, JSONC (JSON with Comments) or YAML, selected
// by file extension. JSONC support uses github.com/tidwall/jsonc to strip
// comments before parsing with the standard encoding/json library; YAML
// support uses gopkg.in/yaml.v3.
//
// Key responsibilities:
//   - Load and parse a scenario file into a model.Scenario
//   - Apply defaults for omitted fields (name, fault mode)
//   - Locate a scenario file in the standard paths of a directory
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/nullsafe/internal/model"
)

// rawScenario is the on-disk shape of a scenario file. Preset values are
// keyed by strings because JSON object keys are always strings; they are
// converted to integer indices during normalization.
//
// Pointer fields distinguish "omitted" from "zero": a file that says
// "size: 0" should fail validation, while a file that omits size should
// get the default.
type rawScenario struct {
	// Name identifies the sequence. Defaults to "nullableInts".
	Name string `json:"name" yaml:"name"`

	// Size is the number of slots. Defaults to 5.
	Size *int `json:"size" yaml:"size"`

	// Values maps slot indices (as strings) to preset integers.
	Values map[string]int `json:"values" yaml:"values"`

	// FaultIndex is the slot the forced unwrap targets. Defaults to 3.
	FaultIndex *int `json:"faultIndex" yaml:"faultIndex"`

	// OnFault is the fault policy: "propagate" or "catch".
	// Defaults to "propagate".
	OnFault string `json:"onFault" yaml:"onFault"`
}

// LoadScenario reads a scenario file and returns the validated Scenario.
//
// The format is chosen by extension: .yaml/.yml parse as YAML, everything
// else parses as JSONC (comments and trailing commas are stripped first,
// so plain JSON works unchanged).
//
// Returns a CLIError with ExitScenarioNotFound if the file does not exist,
// or ExitConfigInvalid if it cannot be parsed or fails validation.
func LoadScenario(path string) (*model.Scenario, error) {
	// os.ReadFile is preferred over os.Open+io.ReadAll because it handles
	// the open-read-close lifecycle in a single call.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitScenarioNotFound,
				fmt.Sprintf("scenario file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var raw rawScenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse scenario file %s", path),
				err,
			)
		}
	default:
		// Strip JSONC comments (// and /* */) and trailing commas before
		// parsing, so annotated scenario files work out of the box.
		cleanJSON := jsonc.ToJSON(data)
		if err := json.Unmarshal(cleanJSON, &raw); err != nil {
			return nil, model.WrapCLIError(
				model.ExitConfigInvalid,
				fmt.Sprintf("failed to parse scenario file %s", path),
				err,
			)
		}
	}

	sc, err := normalize(&raw)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigInvalid,
			fmt.Sprintf("invalid scenario file %s", path),
			err,
		)
	}
	return sc, nil
}

// normalize converts the raw file shape into a model.Scenario, filling
// defaults for omitted fields and validating the result.
func normalize(raw *rawScenario) (*model.Scenario, error) {
	sc := model.DefaultScenario()

	if raw.Name != "" {
		sc.Name = raw.Name
	}
	if raw.Size != nil {
		sc.Size = *raw.Size
	}
	if raw.FaultIndex != nil {
		sc.FaultIndex = *raw.FaultIndex
	}
	if raw.OnFault != "" {
		mode, err := model.ParseFaultMode(raw.OnFault)
		if err != nil {
			return nil, err
		}
		sc.OnFault = mode
	}

	if len(raw.Values) > 0 {
		sc.Values = make(map[int]int, len(raw.Values))
		for key, val := range raw.Values {
			idx, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("invalid preset index %q: %w", key, err)
			}
			sc.Values[idx] = val
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// FindScenarioFile searches for a scenario file in the standard locations
// within a directory.
//
// The search order prefers the commented JSON form:
//  1. <dir>/nullsafe.jsonc
//  2. <dir>/nullsafe.json
//  3. <dir>/nullsafe.yaml
//  4. <dir>/nullsafe.yml
//
// Returns the path to the first found file, or a CLIError with
// ExitScenarioNotFound if no location contains one.
func FindScenarioFile(dir string) (string, error) {
	candidates := []string{
		filepath.Join(dir, "nullsafe.jsonc"),
		filepath.Join(dir, "nullsafe.json"),
		filepath.Join(dir, "nullsafe.yaml"),
		filepath.Join(dir, "nullsafe.yml"),
	}

	for _, path := range candidates {
		// os.Stat checks if the file exists without reading its contents.
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitScenarioNotFound,
		fmt.Sprintf("no scenario file found in %s (searched nullsafe.jsonc, nullsafe.json, nullsafe.yaml, nullsafe.yml)", dir),
	)
}
