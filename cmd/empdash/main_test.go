package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/empdash/internal/config"
	"github.com/ludo-technologies/empdash/internal/version"
)

var testFixtures = filepath.Join("..", "..", "internal", "events", "testdata", "dataset.yaml")

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	if version.Short() == "" {
		t.Error("version should not be empty")
	}

	out, _, err := runCommand(t, NewVersionCmd(), "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Short()+"\n", out)

	out, _, err = runCommand(t, NewVersionCmd(), "--json")
	require.NoError(t, err)
	var info version.BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Short(), info.Version)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "render", "export", "options", "risk", "init", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "empdash.yaml")

	out, _, err := runCommand(t, NewInitCmd(), "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)

	_, _, err = runCommand(t, NewInitCmd(), "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCommand(t, NewInitCmd(), "--output", path, "--force")
	require.NoError(t, err)
}

func TestOptionsCommand_JSON(t *testing.T) {
	out, _, err := runCommand(t, NewOptionsCmd(), "employee", "--json", "--fixtures", testFixtures)
	require.NoError(t, err)

	var doc struct {
		Profile string `json:"profile"`
		Options []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Employee", doc.Profile)
	require.Len(t, doc.Options, 2)

	labels := []string{doc.Options[0].Label, doc.Options[1].Label}
	assert.ElementsMatch(t, []string{"Alice Smith", "Bob Jones"}, labels)
}

func TestOptionsCommand_RejectsBothFormats(t *testing.T) {
	_, _, err := runCommand(t, NewOptionsCmd(), "team", "--json", "--yaml", "--fixtures", testFixtures)
	require.Error(t, err)
}

func TestOptionsCommand_UnknownProfile(t *testing.T) {
	_, stderr, err := runCommand(t, NewOptionsCmd(), "manager", "--fixtures", testFixtures)
	require.Error(t, err)
	assert.Contains(t, stderr, "Input Error")
}

func TestRenderCommand_Stdout(t *testing.T) {
	out, _, err := runCommand(t, NewRenderCmd(), "team", "1", "--output", "-", "--fixtures", testFixtures, "--chart-format", "svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"), "got %.40q", out)
	assert.Contains(t, out, "Alpha")
}

func TestRenderCommand_InvalidID(t *testing.T) {
	_, _, err := runCommand(t, NewRenderCmd(), "employee", "abc", "--output", "-", "--fixtures", testFixtures)
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, _, err := runCommand(t, NewExportCmd(), "--profile", "employee", "--output-dir", dir, "--fixtures", testFixtures, "--chart-format", "svg")
	require.NoError(t, err)
	assert.Contains(t, out, "Export Summary")

	for _, name := range []string{"employee-1.html", "employee-2.html"} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, statErr, name)
	}
}

func TestExportCommand_ReportsFailures(t *testing.T) {
	// Team 2 has no members, so its risk cannot be predicted.
	dir := t.TempDir()
	out, _, err := runCommand(t, NewExportCmd(), "--profile", "team", "--output-dir", dir, "--fixtures", testFixtures, "--chart-format", "svg")
	require.Error(t, err)
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "Team")

	_, statErr := os.Stat(filepath.Join(dir, "team-1.html"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, "team-2.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRiskCommand_YAML(t *testing.T) {
	out, _, err := runCommand(t, NewRiskCmd(), "employee", "1", "--yaml", "--fixtures", testFixtures)
	require.NoError(t, err)
	assert.Contains(t, out, "profile: Employee")
	assert.Contains(t, out, "id: \"1\"")
	assert.Contains(t, out, "level:")
}

func TestGenerateTimestampedFileName(t *testing.T) {
	name := generateTimestampedFileName("employee-1.html")
	assert.True(t, strings.HasPrefix(name, "employee-1_"))
	assert.True(t, strings.HasSuffix(name, ".html"))
}
