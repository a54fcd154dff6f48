package validation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jonathan/resumetex/internal/layout"
)

// overfullTolerance is the overflow in points below which a box is not reported
const overfullTolerance = 1.0

// Options configures CompileAndCheck
type Options struct {
	Engine      string // TeX engine, pdflatex when empty
	ResourceDir string // Icon directory, relative to the .tex file unless absolute
	MaxPages    int    // Page limit, 0 disables the check
	KeepAux     bool   // Leave .aux/.log files in place
}

// Report describes the outcome of a successful compilation
type Report struct {
	TexPath  string
	PDFPath  string
	Pages    int
	MaxPages int
	Overfull []OverfullBox
}

// OverLimit reports whether the PDF exceeds the configured page limit
func (r *Report) OverLimit() bool {
	return r.MaxPages > 0 && r.Pages > r.MaxPages
}

// CompileAndCheck verifies the resources, compiles the document and counts its pages.
// A page count over the limit returns the report together with an *Error.
func CompileAndCheck(ctx context.Context, texPath string, opts Options) (*Report, error) {
	resourceDir := opts.ResourceDir
	if resourceDir == "" {
		resourceDir = layout.DefaultResourceDir
	}
	if !filepath.IsAbs(resourceDir) {
		resourceDir = filepath.Join(filepath.Dir(texPath), resourceDir)
	}
	if err := CheckResources(resourceDir); err != nil {
		return nil, err
	}

	pdfPath, logOutput, err := CompileLaTeX(ctx, texPath, opts.Engine)
	if err != nil {
		// a PDF produced with errors may be incomplete
		return nil, err
	}

	if !opts.KeepAux {
		// best effort
		_ = CleanupCompilationArtifacts(texPath)
	}

	pages, err := CountPDFPages(ctx, pdfPath)
	if err != nil {
		return nil, err
	}

	report := &Report{
		TexPath:  texPath,
		PDFPath:  pdfPath,
		Pages:    pages,
		MaxPages: opts.MaxPages,
		Overfull: FindOverfullBoxes(logOutput, overfullTolerance),
	}

	if report.OverLimit() {
		return report, &Error{
			Message: fmt.Sprintf("resume has %d pages, maximum allowed is %d", pages, opts.MaxPages),
		}
	}
	return report, nil
}
