package validation

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPDFPages_WithPdfinfo(t *testing.T) {
	requireTool(t, "pdfinfo")
	requireTool(t, "pdflatex")

	texFile := writeTex(t, t.TempDir(), `\documentclass{article}
\begin{document}
Page 1
\newpage
Page 2
\end{document}`)

	ctx := context.Background()
	pdfPath, _, err := CompileLaTeX(ctx, texFile, "")
	require.NoError(t, err)

	count, err := CountPDFPages(ctx, pdfPath)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountPDFPages_WithGhostscript(t *testing.T) {
	requireTool(t, "gs")
	requireTool(t, "pdflatex")

	// Skip if pdfinfo is available (we test that path separately)
	if _, err := exec.LookPath("pdfinfo"); err == nil {
		t.Skip("pdfinfo available, testing ghostscript fallback requires pdfinfo to be unavailable")
	}

	texFile := writeTex(t, t.TempDir(), `\documentclass{article}
\begin{document}
Single page
\end{document}`)

	ctx := context.Background()
	pdfPath, _, err := CompileLaTeX(ctx, texFile, "")
	require.NoError(t, err)

	count, err := CountPDFPages(ctx, pdfPath)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCountPDFPages_FileNotFound(t *testing.T) {
	_, err := CountPDFPages(context.Background(), filepath.Join(t.TempDir(), "nonexistent.pdf"))
	require.Error(t, err)

	var valErr *Error
	assert.ErrorAs(t, err, &valErr)
}

func TestParsePdfinfoPages(t *testing.T) {
	output := "Title:          resume\nProducer:       pdfTeX-1.40.25\nPages:          3\nPage size:      612 x 792 pts (letter)\n"

	count, err := parsePdfinfoPages(output)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = parsePdfinfoPages("Title: resume\n")
	assert.Error(t, err)
}
