package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/resumetex/internal/config"
	"github.com/jonathan/resumetex/internal/layout"
	"github.com/jonathan/resumetex/internal/observability"
	"github.com/jonathan/resumetex/internal/parsing"
	"github.com/jonathan/resumetex/internal/rendering"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}
	return generate(cmd.OutOrStdout(), args[0], cfg)
}

// generate renders the résumé at inputPath into cfg.Output. The document is built
// completely in memory so a failure never leaves a partial file behind.
func generate(out io.Writer, inputPath string, cfg config.Config) error {
	_, _ = fmt.Fprintf(out, "Parsing %s...\n", inputPath)

	resume, err := parsing.LoadResume(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(out).PrintResumeSummary(resume)
	}

	doc, err := layout.NewAssembler(cfg.ResourceDir).Assemble(resume)
	if err != nil {
		return fmt.Errorf("failed to assemble document: %w", err)
	}

	renderer, err := rendering.NewRenderer(cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		return fmt.Errorf("failed to render LaTeX: %w", err)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write LaTeX to output file: %w", err)
	}

	if cfg.Verbose {
		_, _ = fmt.Fprintf(out, "Wrote %s (%d bytes)\n", cfg.Output, buf.Len())
	}
	return nil
}
