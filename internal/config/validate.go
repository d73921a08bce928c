package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/zodplay/internal/playground/presets"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrEmptyProgram indicates the program used in composed commands is blank.
	ErrEmptyProgram = errors.New("program must not be empty")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnknownPreset indicates preset_template names no template preset.
	ErrUnknownPreset = errors.New("preset_template must name a template preset")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if strings.TrimSpace(cfg.Program) == "" {
		errs = append(errs, ErrEmptyProgram)
	}

	if _, ok := presets.FindTemplate(cfg.PresetTemplate); !ok {
		errs = append(errs, ErrUnknownPreset)
	}

	for field, path := range map[string]string{
		"sample_input": cfg.SampleInput,
		"output_path":  cfg.OutputPath,
	} {
		if err := validatePath(path); err != nil {
			errs = append(errs, &PathError{Field: field, Path: path, Err: err})
		}
	}

	return errs
}

// validatePath checks that a path is syntactically usable. Existence is not
// checked; the sample input only appears in the printed command.
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "." || cleaned == "/" {
		return ErrInvalidPath
	}
	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
