package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/debugutils"
)

const sampleValues = `name: dutest
ports: [80, 443]
limits:
  cpu: 2
  mem: 512
grid:
  - [1, 2]
  - [3, 4]
`

func writeValues(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadValues(t *testing.T) {
	t.Parallel()
	entries, err := loadValues(writeValues(t, sampleValues))
	require.NoError(t, err)

	want := []entry{
		{Key: "name", Line: 1, Value: "dutest"},
		{Key: "ports", Line: 2, Value: []any{80, 443}},
		{Key: "limits", Line: 3, Value: map[string]any{"cpu": 2, "mem": 512}},
		{Key: "grid", Line: 6, Value: []any{[]any{1, 2}, []any{3, 4}}},
	}
	assert.Equal(t, want, entries)
}

func TestLoadValuesErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		content string
		wantErr error
	}{
		"sequence": {content: "- a\n- b\n", wantErr: errNotMapping},
		"invalid":  {content: "a: [1, 2\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := loadValues(writeValues(t, tc.content))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoadValuesEmpty(t *testing.T) {
	t.Parallel()
	entries, err := loadValues(writeValues(t, ""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadValuesMissing(t *testing.T) {
	t.Parallel()
	_, err := loadValues(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	cfg := Config{LogPrefix: "Test_Log", Values: writeValues(t, sampleValues)}

	require.NoError(t, run(&out, &cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "Hello from DUTest!", lines[0])
	assert.Equal(t, "DebugUtils is "+mode(), lines[2])
	assert.Equal(t, "ex2[3]: three", lines[4])
	assert.Equal(t, "v[1]: 4", lines[7])

	logs, err := filepath.Glob("Test_Log_*.log")
	require.NoError(t, err)
	if !debugutils.Enabled {
		assert.Empty(t, logs)
		return
	}
	require.Len(t, logs, 1)
	data, err := os.ReadFile(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ ex3 = (18,2.71828) ]")
	assert.Contains(t, string(data), "[ stack = {9,4,1} || debugutils.Tup(ex1, ex3.First, true) = (\"Test string\",18,T) ]")
	assert.Contains(t, string(data), "values.yaml(2) [ ports = {80,443} ]")
	assert.Contains(t, string(data), "main.go")
	assert.Contains(t, string(data), "Closing the debug logging file")
}

func TestRunBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	var out bytes.Buffer
	cfg := Config{Values: filepath.Join(t.TempDir(), "missing.yaml")}
	err := run(&out, &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
