// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumetex/internal/schemas"
	"github.com/jonathan/resumetex/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printBanner prints a single-line box
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBanner(text string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, text)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// sectionLine describes one optional list: its item count, or that it is absent
func sectionLine(name string, present bool, count int) string {
	if !present {
		return fmt.Sprintf("%-14s (absent)\n", name+":")
	}
	return fmt.Sprintf("%-14s %d\n", name+":", count)
}

// PrintResumeSummary outputs the candidate and which sections will be rendered.
func (p *Printer) PrintResumeSummary(r *types.Resume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", r.Basics.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", r.Basics.Email))
	if r.Basics.Location != nil {
		sb.WriteString(fmt.Sprintf("Location: %s, %s\n", r.Basics.Location.City, r.Basics.Location.Region))
	}
	if r.Basics.Profiles != nil {
		networks := make([]string, 0, len(r.Basics.Profiles))
		for _, prof := range r.Basics.Profiles {
			networks = append(networks, prof.Network)
		}
		sb.WriteString(fmt.Sprintf("Profiles: %s\n", strings.Join(networks, ", ")))
	}
	sb.WriteString("\n")

	sb.WriteString(sectionLine("Education", r.HasEducation(), len(r.Education)))
	sb.WriteString(sectionLine("Experience", r.HasWork(), len(r.Work)))
	sb.WriteString(sectionLine("Projects", r.HasProjects(), len(r.Projects)))
	sb.WriteString(sectionLine("Certificates", r.HasCertificates(), len(r.Certificates)))
	sb.WriteString(sectionLine("Awards", r.HasAwards(), len(r.Awards)))
	sb.WriteString(sectionLine("Skills", r.HasSkills(), len(r.Skills)))

	p.printBox("RESUME SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCompileReport outputs the result of compiling the document to PDF.
// A maxPages of zero means no limit was configured.
func (p *Printer) PrintCompileReport(pdfPath string, pages, maxPages int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PDF:   %s\n", pdfPath))
	if maxPages > 0 {
		status := "✓"
		if pages > maxPages {
			status = "✗"
		}
		sb.WriteString(fmt.Sprintf("Pages: %d of %d allowed %s", pages, maxPages, status))
	} else {
		sb.WriteString(fmt.Sprintf("Pages: %d", pages))
	}

	p.printBox("COMPILATION REPORT", sb.String())
}

// PrintSchemaErrors outputs every schema violation, or a pass banner when there are none.
func (p *Printer) PrintSchemaErrors(errs []schemas.FieldError) {
	if len(errs) == 0 {
		p.printBanner("✅ SCHEMA VALIDATION PASSED")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d schema errors:\n\n", len(errs)))

	count := min(len(errs), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		fe := errs[i]
		message := fe.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(errs) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more errors", len(errs)-count))
	}

	p.printBox("SCHEMA ERRORS", sb.String())
}
