package playground

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/option"
	"github.com/thoreinstein/zodplay/internal/playground/presets"
	"github.com/thoreinstein/zodplay/internal/role"
)

// ErrInvalidTransition indicates an event the current state does not accept.
var ErrInvalidTransition = errors.New("invalid transition")

// DefaultOutputPath names the output tab when none is configured.
const DefaultOutputPath = "api.client.ts"

// Store is the playground state container: a snapshot read and a single
// event entry point.
type Store interface {
	Snapshot() Snapshot
	Send(ctx context.Context, ev Event) error
}

// GenerateInput is what a Generator receives on Save.
type GenerateInput struct {
	Document       File
	Template       File
	PrettierConfig File
	Options        option.Record
}

// Generator turns the selected inputs into output files.
type Generator interface {
	Generate(ctx context.Context, in GenerateInput) ([]File, error)
}

// Machine is the in-memory Store.
type Machine struct {
	mu        sync.Mutex
	snap      Snapshot
	initial   Snapshot
	validator role.Validator
	generator Generator
	logger    *slog.Logger

	files      []File
	outputPath string
	options    option.Record
	preset     string
}

var _ Store = (*Machine)(nil)

// Option configures a Machine.
type Option func(*Machine)

// WithFiles appends input files after the presets. A file named like a
// preset replaces its content. Files whose role can be inferred become the
// selection for that role, last one winning.
func WithFiles(files ...File) Option {
	return func(m *Machine) { m.files = append(m.files, files...) }
}

// WithOutputPath names the initial output tab.
func WithOutputPath(name string) Option {
	return func(m *Machine) { m.outputPath = name }
}

// WithOptions sets the initial options.
func WithOptions(rec option.Record) Option {
	return func(m *Machine) { m.options = rec.Clone() }
}

// WithPresetTemplate loads a template preset into the selected template.
// Unknown presets are logged and ignored.
func WithPresetTemplate(preset string) Option {
	return func(m *Machine) { m.preset = preset }
}

// WithGenerator sets the generator used on Save.
func WithGenerator(g Generator) Option {
	return func(m *Machine) { m.generator = g }
}

// WithValidator replaces the file name rules.
func WithValidator(v role.Validator) Option {
	return func(m *Machine) { m.validator = v }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// New creates a Machine seeded with the preset files.
func New(opts ...Option) *Machine {
	m := &Machine{
		validator:  role.Rules{},
		logger:     logging.NewDiscard(),
		outputPath: DefaultOutputPath,
		preset:     presets.DefaultTemplate,
	}
	for _, opt := range opts {
		opt(m)
	}

	s := Snapshot{
		SessionID: uuid.NewString(),
		InputList: []File{
			{Name: presets.DocumentName, Content: presets.DefaultInput(), Preset: true},
			{Name: presets.TemplateName, Preset: true},
			{Name: presets.PrettierConfigName, Content: presets.PrettierConfig(), Preset: true},
		},
		OutputList:             []File{{Name: m.outputPath}},
		SelectedDocument:       presets.DocumentName,
		SelectedTemplate:       presets.TemplateName,
		SelectedPrettierConfig: presets.PrettierConfigName,
		Options:                m.options.Clone(),
		PreviewOptions:         m.options.Clone(),
		FileForm:               FileForm{Index: -1},
	}
	m.logger = m.logger.With("session", s.SessionID)

	if err := setPreset(&s, m.preset); err != nil {
		m.logger.Warn("ignoring template preset", "preset", m.preset, "error", err)
		_ = setPreset(&s, presets.DefaultTemplate)
	}
	for _, f := range m.files {
		if i := indexOf(s.InputList, f.Name); i >= 0 {
			s.InputList[i].Content = f.Content
		} else {
			s.InputList = append(s.InputList, File{Name: f.Name, Content: f.Content})
		}
		m.selectRole(&s, f.Name)
	}

	m.snap = s
	m.initial = s.clone()
	m.files, m.options = nil, option.Record{}
	return m
}

// Snapshot returns a copy of the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone()
}

// Send applies ev. On error the state is unchanged.
func (m *Machine) Send(ctx context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.snap.State
	next := m.snap.clone()
	if err := m.apply(ctx, &next, ev); err != nil {
		m.logger.Debug("event rejected", "event", EventName(ev), "state", from, "error", err)
		return err
	}
	m.snap = next
	m.logger.Log(ctx, logging.LevelTrace, "event applied", "event", EventName(ev), "from", from, "to", next.State)
	return nil
}

func (m *Machine) apply(ctx context.Context, s *Snapshot, ev Event) error {
	switch s.State {
	case Ready:
		return m.applyReady(ctx, s, ev)
	case CreatingFile, EditingFile:
		return m.applyFileForm(s, ev)
	case EditingOptions:
		return m.applyOptions(s, ev)
	}
	return invalid(s.State, ev)
}

func (m *Machine) applyReady(ctx context.Context, s *Snapshot, ev Event) error {
	switch e := ev.(type) {
	case AddFile:
		s.FileForm = FileForm{Index: -1}
		s.State = CreatingFile
	case EditFile:
		i, err := mutableIndex(s.InputList, e.File)
		if err != nil {
			return err
		}
		f := s.InputList[i]
		s.FileForm = FileForm{Index: i, Name: f.Name, Content: f.Content}
		s.State = EditingFile
	case RemoveFile:
		i, err := mutableIndex(s.InputList, e.File)
		if err != nil {
			return err
		}
		removeInput(s, i)
	case SelectInputTab:
		i := indexOf(s.InputList, e.File.Name)
		if i < 0 {
			return errors.Wrapf(ErrFileNotFound, "input %q", e.File.Name)
		}
		s.ActiveInputIndex = i
	case SelectOutputTab:
		i := indexOf(s.OutputList, e.File.Name)
		if i < 0 {
			return errors.Wrapf(ErrFileNotFound, "output %q", e.File.Name)
		}
		s.ActiveOutputIndex = i
	case UpdateInput:
		if _, ok := s.ActiveInput(); !ok {
			return errors.Wrap(ErrFileNotFound, "no active input")
		}
		s.InputList[s.ActiveInputIndex].Content = e.Value
	case Save:
		return m.generate(ctx, s)
	case Reset:
		*s = m.initial.clone()
	case SelectPresetTemplate:
		return setPreset(s, e.Preset)
	case OpenOptions:
		s.PreviewOptions = s.Options.Clone()
		s.PreviewBooleans = nil
		s.State = EditingOptions
	default:
		return invalid(s.State, ev)
	}
	return nil
}

func (m *Machine) applyFileForm(s *Snapshot, ev Event) error {
	switch e := ev.(type) {
	case SubmitFileForm:
		index := -1
		if s.State == EditingFile {
			index = s.FileForm.Index
		}
		if err := ValidateFileForm(m.validator, s.InputList, index, e.File).Err(ErrInvalidFile); err != nil {
			return err
		}

		f := File{Name: e.File.Name, Content: e.File.Content}
		if index < 0 {
			s.InputList = append(s.InputList, f)
			s.ActiveInputIndex = len(s.InputList) - 1
		} else {
			releaseSelection(s, s.InputList[index].Name)
			s.InputList[index] = f
		}
		m.selectRole(s, f.Name)
		s.FileForm = FileForm{Index: -1}
		s.State = Ready
	case CloseFileForm:
		s.FileForm = FileForm{Index: -1}
		s.State = Ready
	default:
		return invalid(s.State, ev)
	}
	return nil
}

func (m *Machine) applyOptions(s *Snapshot, ev Event) error {
	switch e := ev.(type) {
	case UpdatePreviewOptions:
		s.PreviewOptions = e.Options.Clone()
		s.PreviewBooleans = append([]string(nil), e.Booleans...)
	case SaveOptions:
		if err := option.Validate(e.Options, e.Booleans).Err(option.ErrInvalidOptions); err != nil {
			return err
		}
		s.Options = option.Merge(e.Options, e.Booleans)
		s.PreviewOptions = s.Options.Clone()
		s.PreviewBooleans = nil
		s.State = Ready
	case ResetPreviewOptions:
		s.PreviewOptions = s.Options.Clone()
		s.PreviewBooleans = nil
		s.OptionsFormKey++
	case CloseOptions:
		s.State = Ready
	default:
		return invalid(s.State, ev)
	}
	return nil
}

func (m *Machine) generate(ctx context.Context, s *Snapshot) error {
	if m.generator == nil {
		m.logger.Info("no generator configured, outputs unchanged")
		return nil
	}

	in := GenerateInput{Options: s.Options.Clone()}
	var ok bool
	if in.Document, ok = lookup(s.InputList, s.SelectedDocument); !ok {
		return errors.AssertionFailedf("selected document %q is not an input", s.SelectedDocument)
	}
	in.Template, _ = lookup(s.InputList, s.SelectedTemplate)
	in.PrettierConfig, _ = lookup(s.InputList, s.SelectedPrettierConfig)

	outputs, err := m.generator.Generate(ctx, in)
	if err != nil {
		return errors.Wrap(err, "generating outputs")
	}

	active := s.ActiveOutputTab()
	s.OutputList = outputs
	s.ActiveOutputIndex = max(indexOf(outputs, active), 0)
	return nil
}

func (m *Machine) selectRole(s *Snapshot, name string) {
	switch role.Infer(m.validator, name) {
	case role.Document:
		s.SelectedDocument = name
	case role.Template:
		s.SelectedTemplate = name
	case role.Prettier:
		s.SelectedPrettierConfig = name
	}
}

func setPreset(s *Snapshot, preset string) error {
	content, err := presets.TemplateContent(preset)
	if err != nil {
		return err
	}
	i := indexOf(s.InputList, s.SelectedTemplate)
	if i < 0 {
		return errors.Wrapf(ErrFileNotFound, "template %q", s.SelectedTemplate)
	}
	s.InputList[i].Content = content
	s.SelectedPresetTemplate = preset
	return nil
}

func mutableIndex(list []File, f File) (int, error) {
	i := indexOf(list, f.Name)
	if i < 0 {
		return -1, errors.Wrapf(ErrFileNotFound, "input %q", f.Name)
	}
	if list[i].Preset {
		return -1, errors.Wrapf(ErrPresetFile, "%q", f.Name)
	}
	return i, nil
}

func removeInput(s *Snapshot, i int) {
	releaseSelection(s, s.InputList[i].Name)
	s.InputList = append(s.InputList[:i:i], s.InputList[i+1:]...)
	if s.ActiveInputIndex >= i && s.ActiveInputIndex > 0 {
		s.ActiveInputIndex--
	}
}

// releaseSelection points every selection naming name back at the preset
// file for its role. Preset files cannot be removed, so selections always
// name an input.
func releaseSelection(s *Snapshot, name string) {
	for _, sel := range []struct {
		name   *string
		preset string
	}{
		{&s.SelectedDocument, presets.DocumentName},
		{&s.SelectedTemplate, presets.TemplateName},
		{&s.SelectedPrettierConfig, presets.PrettierConfigName},
	} {
		if *sel.name == name {
			*sel.name = sel.preset
		}
	}
}

func lookup(list []File, name string) (File, bool) {
	if i := indexOf(list, name); i >= 0 {
		return list[i], true
	}
	return File{}, false
}

func invalid(s State, ev Event) error {
	return errors.Wrapf(ErrInvalidTransition, "%q while %s", EventName(ev), s)
}
