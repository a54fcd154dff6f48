package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resumetex/internal/config"
	"github.com/jonathan/resumetex/internal/observability"
	"github.com/jonathan/resumetex/internal/parsing"
	"github.com/jonathan/resumetex/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML résumé without generating output",
	Long:  "Validates a YAML résumé against the résumé schema, reporting every violation, then builds the typed résumé.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}
	return validateResume(cmd.OutOrStdout(), args[0], cfg.Verbose)
}

func validateResume(out io.Writer, inputPath string, verbose bool) error {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	raw, err := parsing.ParseYAML(content)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	printer := observability.NewPrinter(out)
	if err := schemas.ValidateDocument(raw); err != nil {
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			return fmt.Errorf("failed to validate resume: %w", err)
		}

		if verbose {
			printer.PrintSchemaErrors(validationErr.Errors)
		} else {
			for _, fe := range validationErr.Errors {
				_, _ = fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
	}

	// The typed parse enforces what the schema cannot express, such as real calendar dates
	resume, err := parsing.ParseResume(raw)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if verbose {
		printer.PrintSchemaErrors(nil)
		printer.PrintResumeSummary(resume)
	}
	_, _ = fmt.Fprintf(out, "Validation passed: %s\n", inputPath)
	return nil
}
