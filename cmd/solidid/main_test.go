package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivan-a-souza/solid-id/internal/debug"
	"github.com/ivan-a-souza/solid-id/internal/version"
	"github.com/ivan-a-souza/solid-id/pkg/solidid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// runApp executes the CLI in-process and captures stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Keep exit-coded errors from killing the test binary.
	originalExiter := cli.OsExiter
	cli.OsExiter = func(int) {}
	defer func() { cli.OsExiter = originalExiter }()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"solidid"}, args...))
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	// The version flag owns -v; flag registration must not collide with
	// the app-level verbose flag.
	out, err := runApp(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "solid-id")
	assert.Contains(t, out, version.Version)
	assert.Contains(t, out, "commit")
}

func TestVerbose_EmitsDiagnostics(t *testing.T) {
	t.Setenv("DEBUG", "")
	var diag bytes.Buffer
	debug.SetOutput(&diag)
	defer debug.SetOutput(os.Stderr)
	defer debug.SetEnabled(false)

	_, err := runApp(t, "--verbose", "generate")
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "[DEBUG:GEN]")

	diag.Reset()
	_, err = runApp(t, "--verbose", "inspect", "bogus")
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "[DEBUG:PARSE]")
}

func TestVerbose_OffByDefault(t *testing.T) {
	t.Setenv("DEBUG", "")
	var diag bytes.Buffer
	debug.SetOutput(&diag)
	defer debug.SetOutput(os.Stderr)
	defer debug.SetEnabled(false)

	_, err := runApp(t, "generate")
	require.NoError(t, err)
	assert.Empty(t, diag.String())
}

func TestVerbose_FromConfig(t *testing.T) {
	t.Setenv("DEBUG", "")
	var diag bytes.Buffer
	debug.SetOutput(&diag)
	defer debug.SetOutput(os.Stderr)
	defer debug.SetEnabled(false)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".solidid.kdl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output {\n    verbose true\n}\n"), 0644))

	_, err := runApp(t, "--config", cfgPath, "generate")
	require.NoError(t, err)
	assert.Contains(t, diag.String(), "[DEBUG:GEN]")
}

func TestGenerate_Single(t *testing.T) {
	out, err := runApp(t, "generate")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 1)
	assert.True(t, solidid.Validate(lines[0]), "emitted identifier %q must validate", lines[0])
}

func TestGenerate_Count(t *testing.T) {
	out, err := runApp(t, "generate", "-n", "5")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.True(t, solidid.Validate(line))
	}
}

func TestGenerate_Parallel(t *testing.T) {
	out, err := runApp(t, "generate", "-n", "32", "-p", "4")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 32)
	seen := make(map[string]bool)
	for _, line := range lines {
		assert.True(t, solidid.Validate(line))
		assert.False(t, seen[line], "duplicate identifier emitted")
		seen[line] = true
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".solidid.kdl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("generate {\n    count 3\n}\n"), 0644))

	out, err := runApp(t, "--config", cfgPath, "generate")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 3)
}

func TestGenerate_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".solidid.kdl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("generate {\n    count 3\n}\n"), 0644))

	out, err := runApp(t, "--config", cfgPath, "generate", "-n", "2")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)
}

func TestInspect_Valid(t *testing.T) {
	id := solidid.MustNew()

	out, err := runApp(t, "inspect", id.String())
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
	assert.Contains(t, out, "entropy")
	assert.Contains(t, out, "checksum")
}

func TestInspect_Invalid(t *testing.T) {
	out, err := runApp(t, "inspect", "too-short")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid (invalid_length)")
}

func TestInspect_ChecksumDiagnostics(t *testing.T) {
	out, err := runApp(t, "inspect", strings.Repeat("0", 22))
	require.NoError(t, err)
	assert.Contains(t, out, "invalid (invalid_checksum)")
	assert.Contains(t, out, "stored=0x0000")
	assert.Contains(t, out, "computed=0xa96a")
}

func TestInspect_NoArgs(t *testing.T) {
	_, err := runApp(t, "inspect")
	assert.Error(t, err)
}

func TestValidate_AllValid(t *testing.T) {
	a := solidid.MustNew()
	b := solidid.MustNew()

	out, err := runApp(t, "validate", a.String(), b.String())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, "\tok"), "unexpected line %q", line)
	}
}

func TestValidate_Mixed(t *testing.T) {
	id := solidid.MustNew()

	out, err := runApp(t, "validate", id.String(), "bogus")
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, out, "invalid_length")
}

func TestValidate_Quiet(t *testing.T) {
	out, err := runApp(t, "validate", "-q", "bogus")
	require.Error(t, err)
	assert.NotContains(t, out, "invalid_length")
}
