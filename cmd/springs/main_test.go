package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/springs/internal/report"
)

// execute runs the command tree with args inside an empty working
// directory so that no stray .springs.yaml is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// examplePath is the absolute path of the reference corpus.
func examplePath(t *testing.T) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join("testdata", "example.txt"))
	require.NoError(t, err)

	return p
}

func TestCount_Total(t *testing.T) {
	path := examplePath(t)
	out, err := execute(t, "", "count", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"total:", "21"}, strings.Fields(out))

	out, err = execute(t, "", "count", path, "-m", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"total:", "525152"}, strings.Fields(out))
}

func TestCount_StdinPerRecordJSON(t *testing.T) {
	stdin := "???.### 1,1,3\n?###???????? 3,2,1\n"
	out, err := execute(t, stdin, "count", "-", "--per-record", "--format", "json")
	require.NoError(t, err)

	var got report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Parts, 1)
	assert.Equal(t, uint64(11), got.Parts[0].Total)
	require.Len(t, got.Parts[0].Records, 2)
	assert.Equal(t, uint64(10), got.Parts[0].Records[1].Count)
}

func TestCount_BruteForceMatches(t *testing.T) {
	out, err := execute(t, "", "count", examplePath(t), "--strategy", "brute-force", "-w", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"total:", "21"}, strings.Fields(out))
}

func TestCount_AbortOnInvalid(t *testing.T) {
	_, err := execute(t, "???.### 1,1,3\n???.### one\n", "count", "-", "--on-error", "abort")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCount_SkipInvalidReported(t *testing.T) {
	out, err := execute(t, "???.### 1,1,3\n???.### one\n", "count", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "total:")
	assert.Contains(t, out, "skipped line 2:")
}

func TestCount_InvalidFlags(t *testing.T) {
	path := examplePath(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := execute(t, "", "count", path, "--strategy", "magic")
	assert.Error(t, err)

	_, err = execute(t, "", "count", path, "-m", "0")
	assert.Error(t, err)

	_, err = execute(t, "", "count", path, "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "", "count", missing)
	assert.Error(t, err)

	_, err = execute(t, "", "count", path)
	assert.NoError(t, err, "the same path counts once the flags are valid")
}

func TestSolve_BothParts(t *testing.T) {
	out, err := execute(t, "", "solve", examplePath(t), "--format", "yaml")
	require.NoError(t, err)

	var got report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Parts, 2)
	assert.Equal(t, "part1", got.Parts[0].Name)
	assert.Equal(t, uint64(21), got.Parts[0].Total)
	assert.Equal(t, "part2", got.Parts[1].Name)
	assert.Equal(t, 5, got.Parts[1].Multiplicity)
	assert.Equal(t, uint64(525152), got.Parts[1].Total)
}

func TestSolve_MetricsFile(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "springs.prom")
	_, err := execute(t, "", "solve", examplePath(t), "--metrics-file", metrics)
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `springs_records_total{strategy="automaton"} 12`)
	assert.Contains(t, string(data), "springs_arrangements_total 525173")
}

func TestExpand(t *testing.T) {
	out, err := execute(t, "", "expand", "???.### 1,1,3")
	require.NoError(t, err)
	assert.Equal(t, "???.###????.###????.###????.###????.### 1,1,3,1,1,3,1,1,3,1,1,3,1,1,3\n", out)

	out, err = execute(t, "", "expand", ".# 1", "-m", "2")
	require.NoError(t, err)
	assert.Equal(t, ".#?.# 1,1\n", out)

	_, err = execute(t, "", "expand", "bad line here")
	assert.Error(t, err)
}

func TestConfigFile_Alphabet(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "springs.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("alphabet:\n  active: D\n  inactive: o\n  unknown: x\n"), 0o600))

	out, err := execute(t, "xxxoDDD 1,1,3\n", "count", "-", "--config", cfg, "--per-record")
	require.NoError(t, err)
	assert.Contains(t, out, "xxxoDDD 1,1,3")
	assert.Contains(t, out, "total:")

	_, err = execute(t, "", "count", "-", "--config", filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err, "an explicit config file must exist")
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SPRINGS_MULTIPLICITY", "5")
	out, err := execute(t, "", "count", examplePath(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"total:", "525152"}, strings.Fields(out))
}

func TestCount_OversizedRun(t *testing.T) {
	out, err := execute(t, "?# 4611686018427387904\n???.### 1,1,3\n", "count", "-", "-m", "5")
	require.NoError(t, err)
	assert.Equal(t, []string{"total:", "1"}, strings.Fields(out))
}
