package playground

import (
	"slices"

	"github.com/thoreinstein/zodplay/internal/invocation"
	"github.com/thoreinstein/zodplay/internal/option"
	"github.com/thoreinstein/zodplay/internal/playground/presets"
)

// State is the mode the playground is in.
type State int

const (
	// Ready is the idle state.
	Ready State = iota
	// CreatingFile means the file form is open for a new file.
	CreatingFile
	// EditingFile means the file form is open for an existing file.
	EditingFile
	// EditingOptions means the options drawer is open.
	EditingOptions
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case CreatingFile:
		return "creating file"
	case EditingFile:
		return "editing file"
	case EditingOptions:
		return "editing options"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the playground state.
type Snapshot struct {
	SessionID string
	State     State

	InputList         []File
	OutputList        []File
	ActiveInputIndex  int
	ActiveOutputIndex int

	SelectedDocument       string
	SelectedTemplate       string
	SelectedPrettierConfig string
	SelectedPresetTemplate string

	Options         option.Record
	PreviewOptions  option.Record
	PreviewBooleans []string
	OptionsFormKey  int

	FileForm FileForm
}

// HasFileForm reports whether the file form is open.
func (s Snapshot) HasFileForm() bool {
	return s.State == CreatingFile || s.State == EditingFile
}

// ActiveInputTab returns the name of the active input file.
func (s Snapshot) ActiveInputTab() string {
	return nameAt(s.InputList, s.ActiveInputIndex)
}

// ActiveOutputTab returns the name of the active output file.
func (s Snapshot) ActiveOutputTab() string {
	return nameAt(s.OutputList, s.ActiveOutputIndex)
}

// ActiveInput returns the active input file.
func (s Snapshot) ActiveInput() (File, bool) {
	if s.ActiveInputIndex < 0 || s.ActiveInputIndex >= len(s.InputList) {
		return File{}, false
	}
	return s.InputList[s.ActiveInputIndex], true
}

// Indicator returns the tab marker of an input file: "[o]" for the selected
// OpenAPI document, "[t]" for the selected template, "[p]" for the selected
// prettier config, "" otherwise.
func (s Snapshot) Indicator(name string) string {
	switch name {
	case s.SelectedDocument:
		return "[o]"
	case s.SelectedTemplate:
		return "[t]"
	case s.SelectedPrettierConfig:
		return "[p]"
	default:
		return ""
	}
}

// RelevantOptions projects the previewed options.
func (s Snapshot) RelevantOptions() option.Record {
	return option.Project(s.PreviewOptions, s.PreviewBooleans)
}

// CommandLine composes the command for the active output tab from the
// relevant options.
func (s Snapshot) CommandLine(c invocation.Composer) string {
	return c.Compose(s.ActiveOutputTab(), s.RelevantOptions().ForCommand())
}

// PresetTemplates returns the template presets in menu order.
func (s Snapshot) PresetTemplates() []presets.Template {
	return presets.Templates()
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.InputList = slices.Clone(s.InputList)
	c.OutputList = slices.Clone(s.OutputList)
	c.Options = s.Options.Clone()
	c.PreviewOptions = s.PreviewOptions.Clone()
	c.PreviewBooleans = slices.Clone(s.PreviewBooleans)
	return c
}

func nameAt(list []File, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i].Name
}
