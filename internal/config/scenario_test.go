package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/nullsafe/internal/model"
)

// writeFile is a test helper that writes content to a named file inside
// a fresh temp directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadScenario_JSONC verifies that scenario files with comments and
// trailing commas parse, and that string preset keys become integer indices.
func TestLoadScenario_JSONC(t *testing.T) {
	path := writeFile(t, "scenario.jsonc", `{
		// five slots, one preset, caught fault
		"size": 5,
		"values": {"1": 10},
		"faultIndex": 3,
		"onFault": "catch",
	}`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "nullableInts", sc.Name) // default name applies
	assert.Equal(t, 5, sc.Size)
	assert.Equal(t, map[int]int{1: 10}, sc.Values)
	assert.Equal(t, 3, sc.FaultIndex)
	assert.Equal(t, model.FaultCatch, sc.OnFault)
}

// TestLoadScenario_YAML verifies YAML scenario files parse by extension.
func TestLoadScenario_YAML(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: demo-seq
size: 3
values:
  "0": 7
faultIndex: 2
onFault: propagate
`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "demo-seq", sc.Name)
	assert.Equal(t, 3, sc.Size)
	assert.Equal(t, map[int]int{0: 7}, sc.Values)
	assert.Equal(t, 2, sc.FaultIndex)
	assert.Equal(t, model.FaultPropagate, sc.OnFault)
}

// TestLoadScenario_Defaults verifies an empty scenario file yields the
// spec-default scenario.
func TestLoadScenario_Defaults(t *testing.T) {
	path := writeFile(t, "scenario.json", `{}`)

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, model.DefaultScenario(), sc)
}

// TestLoadScenario_Invalid verifies parse and validation failures carry
// the ExitConfigInvalid exit code.
func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed json", "bad.json", `{"size": }`},
		{"zero size", "zero.json", `{"size": 0}`},
		{"fault index out of range", "range.json", `{"size": 5, "faultIndex": 5}`},
		{"preset index out of range", "preset.json", `{"size": 2, "faultIndex": 1, "values": {"9": 1}}`},
		{"non-numeric preset index", "key.json", `{"values": {"three": 1}}`},
		{"unknown fault mode", "mode.json", `{"onFault": "retry"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			_, err := LoadScenario(path)
			require.Error(t, err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitConfigInvalid, cliErr.Code)
		})
	}
}

// TestLoadScenario_NotFound verifies a missing file maps to
// ExitScenarioNotFound.
func TestLoadScenario_NotFound(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitScenarioNotFound, cliErr.Code)
}

// TestFindScenarioFile verifies discovery order and the not-found error.
func TestFindScenarioFile(t *testing.T) {
	t.Run("prefers jsonc over yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nullsafe.yaml"), []byte("size: 5"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nullsafe.jsonc"), []byte("{}"), 0o644))

		path, err := FindScenarioFile(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "nullsafe.jsonc"), path)
	})

	t.Run("finds yaml when alone", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nullsafe.yml"), []byte("size: 5"), 0o644))

		path, err := FindScenarioFile(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "nullsafe.yml"), path)
	})

	t.Run("empty directory reports not found", func(t *testing.T) {
		_, err := FindScenarioFile(t.TempDir())
		require.Error(t, err)

		var cliErr *model.CLIError
		require.True(t, errors.As(err, &cliErr))
		assert.Equal(t, model.ExitScenarioNotFound, cliErr.Code)
	})
}
