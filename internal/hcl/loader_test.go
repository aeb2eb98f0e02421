package hcl

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
)

// writeHCL writes content to name inside dir and returns the full path.
func writeHCL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func load(t *testing.T, paths ...string) (*config.Model, error) {
	t.Helper()
	return NewLoader().Load(context.Background(), paths...)
}

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeHCL(t, dir, "pipeline.hcl", `
task "compile" {
  name = "Compile Code"
  cost = 5
}

task "test" {
  name       = "Run Tests"
  cost       = 3
  depends_on = ["compile"]
}
`)

	// --- Act ---
	model, err := load(t, path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Tasks, 2)

	assert.Equal(t, &config.TaskDefinition{
		ID:        "compile",
		Name:      "Compile Code",
		Cost:      5,
		DependsOn: []string{},
		Source:    path,
	}, model.Tasks[0])
	assert.Equal(t, "test", model.Tasks[1].ID)
	assert.Equal(t, []string{"compile"}, model.Tasks[1].DependsOn)
	assert.Equal(t, 1, model.DependencyCount())
}

func TestLoad_DirectoryIsLexicalAndRecursive(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeHCL(t, dir, "b.hcl", `task "b" {
  name = "B"
  cost = 2
}`)
	writeHCL(t, dir, "a.hcl", `task "a" {
  name = "A"
  cost = 1
}`)
	writeHCL(t, dir, filepath.Join("sub", "c.hcl"), `task "c" {
  name       = "C"
  cost       = 3
  depends_on = ["a", "b"]
}`)
	writeHCL(t, dir, "ignored.txt", `not hcl at all {`)

	// --- Act ---
	model, err := load(t, dir)

	// --- Assert ---
	require.NoError(t, err)
	ids := make([]string, 0, len(model.Tasks))
	for _, td := range model.Tasks {
		ids = append(ids, td.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestLoad_SkippedPathsAreLogged(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	txt := writeHCL(t, dir, "tasks.txt", `task "a" {
  name = "A"
  cost = 1
}`)
	absent := filepath.Join(dir, "nope")

	logs := &bytes.Buffer{}
	ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(logs, nil)))

	// --- Act ---
	model, err := NewLoader().Load(ctx, txt, absent)

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, model.Tasks)
	assert.Contains(t, logs.String(), "Ignoring file without .hcl extension.")
	assert.Contains(t, logs.String(), "tasks.txt")
	assert.Contains(t, logs.String(), "Task path does not exist, skipping.")
}

func TestLoad_CostConversion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cost     string
		want     int64
		errorMsg string
	}{
		{name: "integer", cost: `7`, want: 7},
		{name: "arithmetic", cost: `2 * 3`, want: 6},
		{name: "numeric string", cost: `"12"`, want: 12},
		{name: "negative passes through", cost: `-4`, want: -4},
		{name: "fraction", cost: `1.5`, errorMsg: "whole number"},
		{name: "word", cost: `"lots"`, errorMsg: "invalid cost"},
		{name: "bool", cost: `true`, errorMsg: "invalid cost"},
		{name: "null", cost: `null`, errorMsg: "must not be null"},
		{name: "variable reference", cost: `var.cost`, errorMsg: "invalid cost"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeHCL(t, t.TempDir(), "main.hcl", `task "x" {
  name = "X"
  cost = `+tc.cost+`
}`)

			// --- Act ---
			model, err := load(t, path)

			// --- Assert ---
			if tc.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorMsg)
				assert.Contains(t, err.Error(), `task "x"`)
				return
			}
			require.NoError(t, err)
			require.Len(t, model.Tasks, 1)
			assert.Equal(t, tc.want, model.Tasks[0].Cost)
		})
	}
}

func TestLoad_MissingCostIsDecodeError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeHCL(t, t.TempDir(), "main.hcl", "task \"a\" {\n  name = \"A\"\n}\n")

	// --- Act ---
	_, err := load(t, path)

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode HCL file")
	assert.Contains(t, err.Error(), "Missing required argument")
	assert.Contains(t, err.Error(), `The argument "cost" is required`)
	assert.NotContains(t, err.Error(), "must not be null", "an absent cost must not be reported like an explicit null")
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		content  string
		errorMsg string
	}{
		{
			name:     "syntax error",
			content:  "task \"a\" {\n  name = \"A\"\n",
			errorMsg: "failed to parse HCL file",
		},
		{
			name:     "missing name",
			content:  "task \"a\" {\n  cost = 1\n}\n",
			errorMsg: "failed to decode HCL file",
		},
		{
			name:     "missing cost",
			content:  "task \"a\" {\n  name = \"A\"\n}\n",
			errorMsg: "failed to decode HCL file",
		},
		{
			name:     "unknown block",
			content:  "step \"a\" {\n}\n",
			errorMsg: "failed to decode HCL file",
		},
		{
			name:     "missing label",
			content:  "task {\n  name = \"A\"\n  cost = 1\n}\n",
			errorMsg: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeHCL(t, t.TempDir(), "main.hcl", tc.content)

			// --- Act ---
			_, err := load(t, path)

			// --- Assert ---
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorMsg)
		})
	}
}
