package validation

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// CompilationTimeout is the maximum time to wait for LaTeX compilation
	CompilationTimeout = 30 * time.Second
	// DefaultEngine is used when no engine is given
	DefaultEngine = "pdflatex"
)

// auxExtensions are the LaTeX byproducts removed after compilation
var auxExtensions = []string{".aux", ".log", ".out", ".toc", ".lof", ".lot"}

// CompileLaTeX compiles texPath with the given engine inside the file's directory,
// so that relative resource paths resolve the same way they would for the user.
// A PDF produced despite engine errors is returned together with a *CompilationError.
func CompileLaTeX(ctx context.Context, texPath string, engine string) (pdfPath string, logOutput string, err error) {
	if engine == "" {
		engine = DefaultEngine
	}

	// Check if the engine is available
	if _, err := exec.LookPath(engine); err != nil {
		return "", "", &CompilationError{
			Message: fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)", engine),
			Cause:   err,
		}
	}

	absPath, err := filepath.Abs(texPath)
	if err != nil {
		return "", "", &FileReadError{
			Message: fmt.Sprintf("failed to resolve LaTeX file path: %s", texPath),
			Cause:   err,
		}
	}
	if _, err := os.Stat(absPath); err != nil {
		return "", "", &FileReadError{
			Message: fmt.Sprintf("failed to read LaTeX file: %s", texPath),
			Cause:   err,
		}
	}

	workDir := filepath.Dir(absPath)
	texBaseName := filepath.Base(absPath)

	ctx, cancel := context.WithTimeout(ctx, CompilationTimeout)
	defer cancel()

	// Use -interaction=nonstopmode to prevent interactive prompts
	cmd := exec.CommandContext(ctx, engine, "-interaction=nonstopmode", "-output-directory", workDir, texBaseName)
	cmd.Dir = workDir

	// Capture both stdout and stderr
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	if ctx.Err() == context.DeadlineExceeded {
		return "", logOutput, &CompilationError{
			Message:   fmt.Sprintf("%s timed out after %s", engine, CompilationTimeout),
			LogOutput: logOutput,
			Cause:     ctx.Err(),
		}
	}

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texBaseName, filepath.Ext(texBaseName))+".pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// LaTeX can produce PDFs with errors
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfPath, logOutput, nil
}

// CleanupCompilationArtifacts removes the auxiliary files LaTeX writes next to texPath.
// The .tex and .pdf files are left in place.
func CleanupCompilationArtifacts(texPath string) error {
	if texPath == "" {
		return nil
	}

	base := strings.TrimSuffix(texPath, filepath.Ext(texPath))
	for _, ext := range auxExtensions {
		if err := os.Remove(base + ext); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", base+ext, err)
		}
	}

	return nil
}
