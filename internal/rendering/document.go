package rendering

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// DefaultTemplate is the embedded document template used when no override is configured
const DefaultTemplate = "templates/moderncv.tex.tmpl"

// Package is a \usepackage line of the preamble
type Package struct {
	Name    string
	Options []string
}

// Document is a complete LaTeX document: class, packages, preamble commands and body
type Document struct {
	Class        string
	ClassOptions []string
	Packages     []Package
	Geometry     []string // key=value pairs for \geometry
	Preamble     []Node
	Body         []Node
}

// Renderer writes documents through a parsed template
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer loads the document template at templatePath, or the embedded default
// when templatePath is empty.
func NewRenderer(templatePath string) (*Renderer, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes doc to w
func (r *Renderer) Render(w io.Writer, doc *Document) error {
	if doc == nil {
		return &RenderError{Message: "document is nil"}
	}
	if err := r.tmpl.Execute(w, doc); err != nil {
		return &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return nil
}

// RenderString renders doc to a string
func (r *Renderer) RenderString(doc *Document) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, doc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// parseTemplate reads and parses a LaTeX document template. Templates use << >>
// delimiters so that LaTeX braces need no escaping.
func parseTemplate(templatePath string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if templatePath == "" {
		content, err = templateFiles.ReadFile(DefaultTemplate)
		if err != nil {
			return nil, &TemplateError{
				Message: "failed to read embedded template",
				Cause:   err,
			}
		}
	} else {
		content, err = os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return nil, &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
	}

	tmpl, err := template.New("document").
		Delims("<<", ">>").
		Funcs(template.FuncMap{
			"join":   strings.Join,
			"escape": EscapeLaTeX,
			"nodes":  func(nodes []Node) string { return strings.TrimSuffix(Dumps(nodes...), "%\n") },
		}).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}
