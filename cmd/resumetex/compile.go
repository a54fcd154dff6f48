package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resumetex/internal/config"
	"github.com/jonathan/resumetex/internal/observability"
	"github.com/jonathan/resumetex/internal/validation"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [tex-file]",
	Short: "Compile the generated LaTeX to PDF",
	Long: "Compiles a generated .tex file (the configured output by default) with the configured TeX engine,\n" +
		"then checks the page count against max_pages.",
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var compileKeepAux bool

func init() {
	compileCmd.Flags().BoolVar(&compileKeepAux, "keep-aux", false, "Keep .aux and .log files after compiling")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}

	texPath := cfg.Output
	if len(args) == 1 {
		texPath = args[0]
	}
	return compileResume(cmd.Context(), cmd.OutOrStdout(), texPath, cfg, compileKeepAux)
}

func compileResume(ctx context.Context, out io.Writer, texPath string, cfg config.Config, keepAux bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate input file exists
	if _, err := os.Stat(texPath); os.IsNotExist(err) {
		return fmt.Errorf("LaTeX file not found: %s", texPath)
	}

	_, _ = fmt.Fprintf(out, "Compiling %s with %s...\n", texPath, cfg.Engine)

	report, err := validation.CompileAndCheck(ctx, texPath, validation.Options{
		Engine:      cfg.Engine,
		ResourceDir: cfg.ResourceDir,
		MaxPages:    cfg.MaxPages,
		KeepAux:     keepAux,
	})
	if report != nil && cfg.Verbose {
		observability.NewPrinter(out).PrintCompileReport(report.PDFPath, report.Pages, report.MaxPages)
	}
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	for _, box := range report.Overfull {
		if box.Line > 0 {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: overfull %s (%.1fpt) at line %d\n", box.Kind, box.Points, box.Line)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: overfull %s (%.1fpt)\n", box.Kind, box.Points)
		}
	}

	_, _ = fmt.Fprintf(out, "Wrote %s (%d page(s))\n", report.PDFPath, report.Pages)
	return nil
}
