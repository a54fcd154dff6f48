package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resumetex/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_WritesDocument(t *testing.T) {
	input := writeResume(t, sampleResume)
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	require.NoError(t, generate(&out, input, cfg))

	assert.Equal(t, "Parsing "+input+"...\n", out.String())

	content, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	tex := string(content)

	assert.True(t, strings.HasPrefix(tex, "\\documentclass[10pt,letterpaper]{moderncv}"))
	assert.Contains(t, tex, "\\name{Jane}{Doe}")
	assert.Contains(t, tex, "\\textbf{Engineer}")
	assert.Contains(t, tex, "\\textit{Acme}")
	assert.Contains(t, tex, "\\textit{01/2020 - present}")
	assert.Contains(t, tex, "\\item Shipped X")
	assert.Contains(t, tex, "{resources/phone.png}")
	assert.NotContains(t, tex, "\\textbf{Education}")
	assert.NotContains(t, tex, "\\textbf{Skills}")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(tex), "\\end{document}"))
}

func TestGenerate_Deterministic(t *testing.T) {
	input := writeResume(t, sampleResume)
	dir := t.TempDir()

	first := testConfig(filepath.Join(dir, "a"))
	second := testConfig(filepath.Join(dir, "b"))

	var out bytes.Buffer
	require.NoError(t, generate(&out, input, first))
	require.NoError(t, generate(&out, input, second))

	a, err := os.ReadFile(first.Output)
	require.NoError(t, err)
	b, err := os.ReadFile(second.Output)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_InvalidResumeWritesNothing(t *testing.T) {
	input := writeResume(t, `basics:
  name: Jane Doe
  email: jane@example.com
`)
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	err := generate(&out, input, cfg)
	require.Error(t, err)

	var validationErr *parsing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "basics.phone", validationErr.Field)

	assert.NoFileExists(t, cfg.Output)
}

func TestGenerate_MissingFile(t *testing.T) {
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	err := generate(&out, filepath.Join(t.TempDir(), "missing.yaml"), cfg)
	require.Error(t, err)

	var loadErr *parsing.LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.NoFileExists(t, cfg.Output)
}

func TestGenerate_MalformedYAML(t *testing.T) {
	input := writeResume(t, "basics: [unclosed\n")
	cfg := testConfig(t.TempDir())

	var out bytes.Buffer
	err := generate(&out, input, cfg)
	require.Error(t, err)

	var parseErr *parsing.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGenerate_Verbose(t *testing.T) {
	input := writeResume(t, sampleResume)
	cfg := testConfig(t.TempDir())
	cfg.Verbose = true

	var out bytes.Buffer
	require.NoError(t, generate(&out, input, cfg))

	assert.Contains(t, out.String(), "RESUME SUMMARY")
	assert.Contains(t, out.String(), "Wrote "+cfg.Output)
}

func TestGenerate_CustomResourceDir(t *testing.T) {
	input := writeResume(t, sampleResume)
	cfg := testConfig(t.TempDir())
	cfg.ResourceDir = "icons"

	var out bytes.Buffer
	require.NoError(t, generate(&out, input, cfg))

	content, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "{icons/mail.png}")
}

func TestRootCommand_RequiresOneArgument(t *testing.T) {
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}
