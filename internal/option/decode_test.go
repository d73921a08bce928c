package option

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/zodplay/internal/errors"
)

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{
		"options.yaml": FormatYAML,
		"options.YML":  FormatYAML,
		"options.json": FormatJSON,
		"zodplay.toml": FormatTOML,
		"options.hcl":  FormatHCL,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFor("options.ini")
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)
}

func TestDecode_PreservesDocumentOrder(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "groupStrategy: tag\nbaseUrl: http://x\ncomplexityThreshold: 2\nbooleans: [noWithAlias]\n"},
		{FormatJSON, `{"groupStrategy":"tag","baseUrl":"http://x","complexityThreshold":2,"booleans":["noWithAlias"]}`},
		{FormatHCL, "groupStrategy = \"tag\"\nbaseUrl = \"http://x\"\ncomplexityThreshold = 2\nbooleans = [\"noWithAlias\"]\n"},
	}
	want := []Entry{
		{GroupStrategy, String("tag")},
		{BaseURL, String("http://x")},
		{ComplexityThreshold, Number(2)},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, result, err := Decode(tt.format, "options."+string(tt.format), []byte(tt.data))
			require.NoError(t, err)
			assert.False(t, result.HasErrors(), "%v", result.Issues)
			assert.Equal(t, want, doc.Options.Entries())
			assert.Equal(t, []string{"noWithAlias"}, doc.Booleans)
		})
	}
}

func TestDecode_TOMLUsesCanonicalOrder(t *testing.T) {
	data := "groupStrategy = \"tag\"\nbaseUrl = \"http://x\"\nnoWithAlias = true\ncomplexityThreshold = 2\n"

	doc, result, err := Decode(FormatTOML, "options.toml", []byte(data))
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, []Entry{
		{NoWithAlias, Bool(true)},
		{BaseURL, String("http://x")},
		{GroupStrategy, String("tag")},
		{ComplexityThreshold, Number(2)},
	}, doc.Options.Entries())
}

func TestDecode_ReportsSemanticIssues(t *testing.T) {
	data := `
baseUrl: 42
mystery: true
groupStrategy: by-path
apiClientName: ~
booleans: [baseUrl, withDeprecatedEndpoints, 3]
shouldExportAllTypes: true
`
	doc, result, err := Decode(FormatYAML, "options.yaml", []byte(data))
	require.NoError(t, err)

	fields := make([]string, 0, len(result.Issues))
	for _, i := range result.Errors() {
		fields = append(fields, i.Field)
	}
	assert.Equal(t, []string{"baseUrl", "mystery", "groupStrategy", "booleans", "booleans"}, fields)

	assert.Equal(t, []Entry{{ShouldExportAllTypes, Bool(true)}}, doc.Options.Entries())
	assert.Equal(t, []string{"withDeprecatedEndpoints"}, doc.Booleans)
	assert.ErrorIs(t, result.Err(ErrInvalidOptions), ErrInvalidOptions)
}

func TestDecode_SyntaxErrors(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "baseUrl: [unclosed"},
		{FormatYAML, "- a\n- b\n"},
		{FormatJSON, `{"baseUrl": }`},
		{FormatJSON, `["baseUrl"]`},
		{FormatTOML, "baseUrl = "},
		{FormatHCL, "baseUrl = "},
		{FormatHCL, "options {\n  baseUrl = \"x\"\n}\n"},
		{Format("ini"), "baseUrl=x"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, _, err := Decode(tt.format, "options", []byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	doc, result, err := Decode(FormatYAML, "options.yaml", nil)
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, 0, doc.Options.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"baseUrl":"http://x","groupStrategy":"none"}`), 0o600))

	doc, result, err := Load(path)
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, []Entry{{BaseURL, String("http://x")}}, doc.Relevant().Entries())
}

func TestLoad_Missing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_InMemory(t *testing.T) {
	rec := NewRecord(
		Entry{ComplexityThreshold, String("4")},
		Entry{DefaultStatusBehavior, String("auto-correct")},
	)

	result := Validate(rec, []string{"groupStrategy"})

	require.Len(t, result.Errors(), 2)
	assert.Equal(t, "complexityThreshold", result.Errors()[0].Field)
	assert.Equal(t, BooleansKey, result.Errors()[1].Field)
}
