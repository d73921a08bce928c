// Package presets holds the files the playground starts with: the petstore
// OpenAPI document, a prettier configuration and the template presets.
package presets

import (
	"embed"
	"path"

	"github.com/thoreinstein/zodplay/internal/errors"
)

//go:embed files
var files embed.FS

// Default file names of the preset inputs.
const (
	DocumentName       = "petstore.yaml"
	TemplateName       = "template.hbs"
	PrettierConfigName = ".prettierrc.json"
)

// DefaultTemplate is the preset selected at startup.
const DefaultTemplate = "default"

// ErrUnknownTemplate indicates a template preset that does not exist.
var ErrUnknownTemplate = errors.New("unknown template preset")

// Template describes a template preset.
type Template struct {
	Preset string `json:"preset"`
	Name   string `json:"name"`
}

var templates = []Template{
	{Preset: "default", Name: "Default (Zodios client)"},
	{Preset: "grouped", Name: "Grouped by tag"},
	{Preset: "schemas-only", Name: "Schemas only"},
	{Preset: "schemas-with-metadata", Name: "Schemas with metadata"},
}

// Templates returns the template presets in menu order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// FindTemplate returns the preset with the given key.
func FindTemplate(preset string) (Template, bool) {
	for _, t := range templates {
		if t.Preset == preset {
			return t, true
		}
	}
	return Template{}, false
}

// TemplateContent returns the handlebars source of a template preset.
func TemplateContent(preset string) (string, error) {
	if _, ok := FindTemplate(preset); !ok {
		return "", errors.Wrapf(ErrUnknownTemplate, "%q", preset)
	}
	return read(path.Join("templates", preset+".hbs")), nil
}

// DefaultInput returns the petstore OpenAPI document.
func DefaultInput() string {
	return read("petstore.yaml")
}

// PrettierConfig returns the preset prettier configuration.
func PrettierConfig() string {
	return read("prettierrc.json")
}

func read(name string) string {
	data, err := files.ReadFile(path.Join("files", name))
	if err != nil {
		panic(errors.AssertionFailedf("missing embedded preset %q: %v", name, err))
	}
	return string(data)
}
