package presets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zodplay/internal/role"
)

func TestTemplates_AllHaveContent(t *testing.T) {
	for _, tmpl := range Templates() {
		content, err := TemplateContent(tmpl.Preset)
		require.NoError(t, err, tmpl.Preset)
		assert.Contains(t, content, "{{#each schemas}}", tmpl.Preset)
	}
}

func TestTemplateContent_Unknown(t *testing.T) {
	_, err := TemplateContent("nope")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestFindTemplate(t *testing.T) {
	got, ok := FindTemplate(DefaultTemplate)
	require.True(t, ok)
	assert.Equal(t, "Default (Zodios client)", got.Name)

	_, ok = FindTemplate("")
	assert.False(t, ok)
}

func TestDefaultInput_IsOpenAPI(t *testing.T) {
	var doc struct {
		OpenAPI string         `yaml:"openapi"`
		Paths   map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(DefaultInput()), &doc))
	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/pets")
}

func TestPrettierConfig_IsJSON(t *testing.T) {
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(PrettierConfig()), &cfg))
	assert.EqualValues(t, 120, cfg["printWidth"])
}

func TestPresetNames_InferToTheirRoles(t *testing.T) {
	rules := role.Rules{}
	assert.Equal(t, role.Document, role.Infer(rules, DocumentName))
	assert.Equal(t, role.Template, role.Infer(rules, TemplateName))
	assert.Equal(t, role.Prettier, role.Infer(rules, PrettierConfigName))
}
