// Package role infers what a playground file is for from its name.
//
// A file is either a prettier configuration, a handlebars template, an
// OpenAPI document, or unknown. Name checks may overlap (".prettierrc.json"
// is also a ".json" document name), so they are evaluated in a fixed order
// and the first match wins.
package role

import (
	"path"
	"strings"
)

// Role is the inferred semantic category of a file.
type Role int

const (
	// Unknown is returned when no name check matches.
	Unknown Role = iota
	// Prettier marks a prettier configuration file.
	Prettier
	// Template marks a handlebars template.
	Template
	// Document marks an OpenAPI document.
	Document
)

func (r Role) String() string {
	switch r {
	case Prettier:
		return "prettier"
	case Template:
		return "template"
	case Document:
		return "openapi document"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Validator reports whether a file name is acceptable for each role.
type Validator interface {
	IsPrettierConfigName(name string) bool
	IsTemplateName(name string) bool
	IsDocumentName(name string) bool
}

type check struct {
	match func(Validator, string) bool
	role  Role
}

// order is part of the contract: earlier checks shadow later ones.
var order = []check{
	{Validator.IsPrettierConfigName, Prettier},
	{Validator.IsTemplateName, Template},
	{Validator.IsDocumentName, Document},
}

// Infer returns the role of the first check in priority order that accepts
// fileName, or Unknown.
func Infer(v Validator, fileName string) Role {
	for _, c := range order {
		if c.match(v, fileName) {
			return c.role
		}
	}
	return Unknown
}

// Extension returns the text after the last dot of fileName, or "" when the
// name has no dot.
func Extension(fileName string) string {
	i := strings.LastIndexByte(fileName, '.')
	if i < 0 {
		return ""
	}
	return fileName[i+1:]
}

// Language maps a file name to the editor language of its content.
func Language(fileName string) string {
	switch strings.ToLower(Extension(fileName)) {
	case "yaml", "yml":
		return "yaml"
	case "json", "prettierrc":
		return "json"
	case "hbs":
		return "handlebars"
	case "ts":
		return "typescript"
	default:
		return Extension(fileName)
	}
}

// DefaultHelp is shown for file names without an extension.
const DefaultHelp = "The extension will be used to determine if it's an OpenAPI document `{.yaml,.yml,.json}`, " +
	"an handlebars template `.hbs` or a prettier config `.prettierrc.json`"

// Help returns the file name helper text: the inferred role once the name
// has an extension, DefaultHelp before that.
func Help(v Validator, fileName string) string {
	if Extension(fileName) == "" {
		return DefaultHelp
	}
	return "Inferred as " + Infer(v, fileName).String()
}

// Rules is the default Validator.
type Rules struct{}

var prettierNames = map[string]bool{
	".prettierrc":          true,
	".prettierrc.json":     true,
	".prettierrc.yaml":     true,
	".prettierrc.yml":      true,
	"prettier.config.json": true,
}

// IsPrettierConfigName accepts the JSON/YAML prettier rc file names.
func (Rules) IsPrettierConfigName(name string) bool {
	return prettierNames[strings.ToLower(path.Base(name))]
}

// IsTemplateName accepts *.hbs names with a non-empty stem.
func (Rules) IsTemplateName(name string) bool {
	return hasExt(name, "hbs")
}

// IsDocumentName accepts *.yaml, *.yml and *.json names with a non-empty stem.
func (Rules) IsDocumentName(name string) bool {
	return hasExt(name, "yaml", "yml", "json")
}

func hasExt(name string, exts ...string) bool {
	base := path.Base(name)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return false
	}
	got := strings.ToLower(base[i+1:])
	for _, ext := range exts {
		if got == ext {
			return true
		}
	}
	return false
}
