package parsing

import (
	"fmt"
	"os"

	"github.com/jonathan/resumetex/internal/types"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document whose root must be a mapping.
func ParseYAML(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{
			Message: "failed to decode YAML",
			Cause:   err,
		}
	}
	if doc == nil {
		return nil, &ParseError{Message: "document is empty"}
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, &ParseError{
			Message: fmt.Sprintf("document root must be a mapping, got %s", kindOf(doc)),
		}
	}
	return m, nil
}

// LoadResume reads, decodes and validates a résumé file
func LoadResume(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	raw, err := ParseYAML(content)
	if err != nil {
		return nil, err
	}

	return ParseResume(raw)
}
