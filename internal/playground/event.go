package playground

import "github.com/thoreinstein/zodplay/internal/option"

// Event is a message accepted by Store.Send. The set of events is closed.
type Event interface {
	eventName() string
}

// AddFile opens the file form for a new input file.
type AddFile struct{}

// EditFile opens the file form for an existing, non-preset input file.
type EditFile struct{ File File }

// RemoveFile removes a non-preset input file.
type RemoveFile struct{ File File }

// SelectInputTab activates an input tab.
type SelectInputTab struct{ File File }

// SelectOutputTab activates an output tab.
type SelectOutputTab struct{ File File }

// UpdateInput replaces the content of the active input file.
type UpdateInput struct{ Value string }

// SubmitFileForm adds or updates the file described by the open form.
type SubmitFileForm struct{ File File }

// CloseFileForm discards the open file form.
type CloseFileForm struct{}

// Save regenerates the output files.
type Save struct{}

// Reset restores the initial files, options and template preset.
type Reset struct{}

// SelectPresetTemplate loads a template preset into the selected template.
type SelectPresetTemplate struct{ Preset string }

// OpenOptions opens the options drawer.
type OpenOptions struct{}

// CloseOptions closes the options drawer, keeping the preview.
type CloseOptions struct{}

// UpdatePreviewOptions replaces the options being previewed.
type UpdatePreviewOptions struct {
	Options  option.Record
	Booleans []string
}

// SaveOptions stores the options and closes the drawer.
type SaveOptions struct {
	Options  option.Record
	Booleans []string
}

// ResetPreviewOptions discards preview edits.
type ResetPreviewOptions struct{}

func (AddFile) eventName() string              { return "Add file" }
func (EditFile) eventName() string             { return "Edit file" }
func (RemoveFile) eventName() string           { return "Remove file" }
func (SelectInputTab) eventName() string       { return "Select input tab" }
func (SelectOutputTab) eventName() string      { return "Select output tab" }
func (UpdateInput) eventName() string          { return "Update input" }
func (SubmitFileForm) eventName() string       { return "Submit file modal" }
func (CloseFileForm) eventName() string        { return "Close modal" }
func (Save) eventName() string                 { return "Save" }
func (Reset) eventName() string                { return "Reset" }
func (SelectPresetTemplate) eventName() string { return "Select preset template" }
func (OpenOptions) eventName() string          { return "Open options" }
func (CloseOptions) eventName() string         { return "Close options" }
func (UpdatePreviewOptions) eventName() string { return "Update preview options" }
func (SaveOptions) eventName() string          { return "Save options" }
func (ResetPreviewOptions) eventName() string  { return "Reset preview options" }

// EventName returns the display name of ev.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
