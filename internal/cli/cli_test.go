package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI in-process against the given config/data dirs.
func run(t *testing.T, configDir, dataDir string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config-dir", configDir, "--data-dir", dataDir}, args...))
	require.NoError(t, root.Execute(), "command %v\noutput: %s", args, out.String())
	return out.String()
}

func TestCLIEndToEnd(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()

	out := run(t, configDir, dataDir, "init", "--backend", "json")
	assert.Contains(t, out, "initialized")

	// init wrote a config file.
	cfg, err := os.ReadFile(filepath.Join(configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "backend: json")

	out = run(t, configDir, dataDir, "category", "list")
	assert.Contains(t, out, "Gym (gym)")
	assert.Contains(t, out, "Pull-ups (pullups, bounded_counter)")

	run(t, configDir, dataDir, "category", "add", "Sleep")
	run(t, configDir, dataDir, "activity", "add", "sleep", "Hours", "--kind", "counter", "--min", "0", "--max", "12")

	run(t, configDir, dataDir, "record", "sleep", "hours", "8", "--date", "2024-03-10")
	run(t, configDir, dataDir, "record", "intake", "meds", "yes", "--date", "2024-03-10")

	out = run(t, configDir, dataDir, "show", "--date", "2024-03-10")
	assert.Contains(t, out, "2024-03-10")
	assert.Contains(t, out, "Meds")

	out = run(t, configDir, dataDir, "history", "--window", "all")
	assert.Contains(t, out, "Hours: 3/10=8")

	out = run(t, configDir, dataDir, "history", "--unified", "--json")
	assert.Contains(t, out, `"Sleep: Hours"`)
	assert.Contains(t, out, `"color"`)

	exportPath := filepath.Join(t.TempDir(), "out.csv")
	run(t, configDir, dataDir, "export", "--out", exportPath)
	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Sleep: Hours")
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-10,"))
}

func TestCLIOptionsAddWithRecord(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	run(t, configDir, dataDir, "init", "--backend", "json")

	out := run(t, configDir, dataDir,
		"options", "add", "reading", "content", "Book: New", "--record", "2024-03-10")
	assert.Contains(t, out, `Added option "Book: New"`)
	assert.Contains(t, out, "Recorded")

	out = run(t, configDir, dataDir, "show", "--date", "2024-03-10")
	assert.Contains(t, out, `"Book: New"`)
}

func TestCLIRejectsBadInput(t *testing.T) {
	configDir := t.TempDir()
	dataDir := t.TempDir()
	run(t, configDir, dataDir, "init", "--backend", "json")

	cases := [][]string{
		{"record", "gym", "pushups", "lots", "--date", "2024-03-10"},
		{"record", "intake", "meds", "maybe", "--date", "2024-03-10"},
		{"record", "gym", "pushups", "1", "--date", "10/03/2024"},
		{"history", "--window", "0"},
		{"activity", "add", "gym", "Rows", "--kind", "slider"},
		{"category", "add", "Gym"},
	}
	for _, args := range cases {
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(append([]string{"--config-dir", configDir, "--data-dir", dataDir}, args...))
		assert.Error(t, root.Execute(), "args %v", args)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "lifetracker v")
	assert.Contains(t, out.String(), modulePath)
}
