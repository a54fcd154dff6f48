package main

import (
	"bytes"
	"testing"

	"github.com/jonathan/resumetex/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResume_Valid(t *testing.T) {
	input := writeResume(t, sampleResume)

	var out bytes.Buffer
	require.NoError(t, validateResume(&out, input, false))
	assert.Contains(t, out.String(), "Validation passed")
}

func TestValidateResume_ListsEverySchemaError(t *testing.T) {
	input := writeResume(t, `basics:
  name: Jane Doe
  phone: 5550100
work:
  - name: Acme
    start_date: 2020-01-01
    highlights: []
`)

	var out bytes.Buffer
	err := validateResume(&out, input, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation found 3 error(s)")

	output := out.String()
	assert.Contains(t, output, "basics: email is required")
	assert.Contains(t, output, "basics.phone:")
	assert.Contains(t, output, "work.0: position is required")
}

func TestValidateResume_VerboseSchemaErrors(t *testing.T) {
	input := writeResume(t, "basics:\n  name: Jane Doe\n")

	var out bytes.Buffer
	err := validateResume(&out, input, true)
	require.Error(t, err)
	assert.Contains(t, out.String(), "SCHEMA ERRORS")
}

func TestValidateResume_ImpossibleDate(t *testing.T) {
	input := writeResume(t, `basics:
  name: Jane Doe
  email: jane@example.com
  phone: "555-0100"
work:
  - name: Acme
    position: Engineer
    start_date: "2020-02-30"
    highlights: []
`)

	var out bytes.Buffer
	err := validateResume(&out, input, false)
	require.Error(t, err)

	var validationErr *parsing.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "work[0].start_date", validationErr.Field)
}

func TestValidateResume_VerbosePass(t *testing.T) {
	input := writeResume(t, sampleResume)

	var out bytes.Buffer
	require.NoError(t, validateResume(&out, input, true))
	assert.Contains(t, out.String(), "SCHEMA VALIDATION PASSED")
	assert.Contains(t, out.String(), "RESUME SUMMARY")
}

func TestValidateResume_MissingFile(t *testing.T) {
	var out bytes.Buffer
	err := validateResume(&out, "/nonexistent/resume.yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}
