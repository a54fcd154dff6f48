// Package main provides the resumetex CLI, which turns a YAML résumé into a moderncv LaTeX document.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumetex <file>",
	Short: "Generate a LaTeX résumé from YAML",
	Long: "resumetex validates a YAML résumé and writes a moderncv LaTeX document (out.tex by default).\n" +
		"Settings come from RESUMETEX_* environment variables or the JSON file named by RESUMETEX_CONFIG.",
	Args:          cobra.ExactArgs(1),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
