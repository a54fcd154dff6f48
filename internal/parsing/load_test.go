package parsing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML_Mapping(t *testing.T) {
	doc, err := ParseYAML([]byte("basics:\n  name: Jane\nwork: []\n"))
	require.NoError(t, err)

	basics, ok := doc["basics"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", basics["name"])
	assert.Equal(t, []any{}, doc["work"])
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty", input: "", wantMsg: "document is empty"},
		{name: "syntax", input: "basics: [unclosed", wantMsg: "failed to decode YAML"},
		{name: "list root", input: "- a\n- b\n", wantMsg: "must be a mapping, got list"},
		{name: "scalar root", input: "hello", wantMsg: "must be a mapping, got string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.input))
			require.Error(t, err)

			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadResume_ValidationErrorFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	content := "basics:\n  name: Jane\n  email: jane@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadResume(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "basics.phone", validationErr.Field)
}

func TestLoadResume_UnquotedDatesAreAccepted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	content := `basics:
  name: Jane
  email: jane@example.com
  phone: "555"
projects:
  - name: P
    start_date: 2022-02-01
    end_date: "2021-01-01"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r, err := LoadResume(path)
	require.NoError(t, err)
	require.Len(t, r.Projects, 1)
	assert.Equal(t, "02/2022", r.Projects[0].StartDate.MonthYear())
	require.NotNil(t, r.Projects[0].EndDate)
	assert.True(t, r.Projects[0].EndDate.Before(r.Projects[0].StartDate))
}
