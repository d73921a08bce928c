package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *Result {
	result := &Result{}
	result.AddError("groupStrategy", "must be one of none, tag, method, tag-file, method-file", "by-path")
	result.AddWarning("name", "Inferred as unknown", nil)
	result.Issues[1].Context = map[string]string{"file": "notes.txt", "list": "inputs"}
	return result
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText, "options.yaml", false).Report(sampleResult()))

	want := "options.yaml: 1 error(s), 1 warning(s)\n" +
		"  error   groupStrategy: must be one of none, tag, method, tag-file, method-file (got by-path)\n" +
		"  warning name: Inferred as unknown [file=notes.txt, list=inputs]\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_TextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText, "", true).Report(sampleResult()))
	assert.Contains(t, buf.String(), "\x1b[31m")
}

func TestReporter_ClipsValues(t *testing.T) {
	result := &Result{}
	result.AddError("isErrorStatus", "expected string", strings.Repeat("x", 100))

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText, "", false).Report(result))
	assert.Contains(t, buf.String(), "(got "+strings.Repeat("x", maxValueLen-3)+"...)")
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON, "options.yaml", false).Report(sampleResult()))

	var decoded struct {
		Subject string  `json:"subject"`
		Issues  []Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "options.yaml", decoded.Subject)
	require.Len(t, decoded.Issues, 2)
	assert.Equal(t, SeverityError, decoded.Issues[0].Severity)
	assert.Equal(t, SeverityWarning, decoded.Issues[1].Severity)
}

func TestReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText, "x", false).Report(nil))
	require.NoError(t, NewReporter(&buf, FormatText, "x", false).Report(&Result{}))
	assert.Empty(t, buf.String())
}
