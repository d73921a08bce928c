package playground

import (
	"slices"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/role"
	"github.com/thoreinstein/zodplay/internal/validator"
)

// Sentinel errors for file operations.
var (
	// ErrInvalidFile indicates the file form failed validation.
	ErrInvalidFile = errors.New("invalid file")

	// ErrFileNotFound indicates an event referenced a file not in the list.
	ErrFileNotFound = errors.New("file not found")

	// ErrPresetFile indicates an attempt to rename or remove a preset file.
	ErrPresetFile = errors.New("preset files cannot be edited or removed")
)

// File is one editor tab.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Preset  bool   `json:"preset,omitempty"`
}

// FileForm holds the values of the add/edit file form. Index is the
// position of the file being edited, or -1 when adding.
type FileForm struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ValidateFileForm checks a submitted file against the list it will join.
// The file at index (the one being edited, if any) does not count as a
// name clash.
func ValidateFileForm(v role.Validator, list []File, index int, f File) *validator.Result {
	result := &validator.Result{}

	if f.Name == "" {
		result.AddError("name", "File name is required", nil)
		return result
	}

	for i, existing := range list {
		if existing.Name == f.Name && i != index {
			result.AddError("name", "File name should be unique", f.Name)
			break
		}
	}

	if role.Infer(v, f.Name) == role.Unknown {
		result.AddWarning("name", role.Help(v, f.Name), f.Name)
	}

	return result
}

func indexOf(list []File, name string) int {
	return slices.IndexFunc(list, func(f File) bool { return f.Name == name })
}
