package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resumetex/internal/config"
	"github.com/stretchr/testify/require"
)

const sampleResume = `basics:
  name: Jane Doe
  email: jane@example.com
  phone: "555-0100"
work:
  - name: Acme
    position: Engineer
    start_date: 2020-01-01
    highlights:
      - Shipped X
`

// writeResume writes content to a résumé file in a fresh temp directory
func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// testConfig returns the default configuration writing into dir
func testConfig(dir string) config.Config {
	cfg := config.Defaults()
	cfg.Output = filepath.Join(dir, "out.tex")
	return cfg
}
