package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-open", "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	dir := t.TempDir()
	left := writeInput(t, dir, "a.ttir", "a\nb\n")
	right := writeInput(t, dir, "b.ttir", "a\nc\n")
	out := filepath.Join(dir, "result.html")

	stdout, err := execute(t, "compare", left, right, "-o", out, "--wrap", "80", "--minify")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Comparison saved to: "+out)
	assert.FileExists(t, out)
}

func TestAllCommand(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "a.ptx", "x\n")
	writeInput(t, dir, "b.ptx", "y\n")
	out := filepath.Join(dir, "reports")

	stdout, err := execute(t, "all", dir, "-o", out, "--workers", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 1 comparisons")
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "comparison_a.ptx_vs_b.ptx.html"))
}

func TestCompareCommand_InvalidFlagValue(t *testing.T) {
	dir := t.TempDir()
	left := writeInput(t, dir, "a.ttir", "a\n")
	right := writeInput(t, dir, "b.ttir", "b\n")

	_, err := execute(t, "compare", left, right, "--threshold", "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidConfiguration))
}

func TestCompareCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()
	left := writeInput(t, dir, "a.ttir", "a\n")

	_, err := execute(t, "compare", left, filepath.Join(dir, "nope.ttir"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNotFound))
}

func TestApplyOverrides_OnlyChangedFlags(t *testing.T) {
	flags := &AppFlags{}
	cmd := &cobra.Command{Use: "irdiff"}
	flags.register(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse([]string{"--wrap", "60", "--context", "--no-open"}))

	cfg := config.NewDefaultGlobalConfig()
	cfg.DiffConfig.ContextLines = 9
	flags.applyOverrides(cmd, cfg)

	assert.Equal(t, 60, cfg.DiffConfig.WrapWidth)
	assert.True(t, cfg.DiffConfig.ContextOnly)
	assert.False(t, cfg.ReporterConfig.OpenBrowser)
	assert.Equal(t, 9, cfg.DiffConfig.ContextLines)
	assert.Equal(t, config.DefaultDiffSimilarityThreshold, cfg.DiffConfig.SimilarityThreshold)
}
