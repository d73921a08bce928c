package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/internal/editor"
	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/invocation"
	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/markdown"
	"github.com/thoreinstein/zodplay/internal/paths"
	"github.com/thoreinstein/zodplay/internal/playground"
	"github.com/thoreinstein/zodplay/internal/role"
	"github.com/thoreinstein/zodplay/pkg/fileutil"
)

var (
	filesInteractive bool
	filesEdit        bool
	filesOptions     string
	filesPreset      string
)

// findFile picks an input file; tests replace it.
var findFile = func(files []playground.File) (int, error) {
	return fuzzyfinder.Find(
		files,
		func(i int) string { return files[i].Name },
		fuzzyfinder.WithPromptString("Go to file> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return files[i].Content
		}),
	)
}

// openEditor edits a workspace file; tests replace it.
var openEditor = editor.Open

func init() {
	filesCmd.Flags().BoolVarP(&filesInteractive, "interactive", "i", false,
		"pick a file with a fuzzy finder")
	filesCmd.Flags().BoolVar(&filesEdit, "edit", false,
		"open the picked file in $EDITOR (implies --interactive)")
	filesCmd.Flags().StringVar(&filesOptions, "options", "",
		"options file applied to the playground")
	filesCmd.Flags().StringVar(&filesPreset, "preset", "",
		"template preset (default from config preset_template)")
	rootCmd.AddCommand(filesCmd)
}

var filesCmd = &cobra.Command{
	Use:   "files [dir]",
	Short: "Show a workspace as playground tabs",
	Long: `Load the files of a workspace directory next to the playground presets
and print the input tabs with the role each one is selected for:
[o] OpenAPI document, [t] template, [p] prettier config.

Subdirectories and hidden files other than prettier configs are skipped.`,
	Example: `  zodplay files
  zodplay files ./openapi --options options.yaml
  zodplay files ./openapi --interactive
  zodplay files ./openapi --edit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	files, err := loadWorkspace(dir, logger)
	if err != nil {
		return err
	}

	opts := []playground.Option{
		playground.WithLogger(logger),
		playground.WithFiles(files...),
		playground.WithOutputPath(cfg.OutputPath),
		playground.WithPresetTemplate(cfg.PresetTemplate),
	}
	if filesOptions != "" {
		doc, err := loadOptions(cmd.ErrOrStderr(), logger, []string{filesOptions}, nil)
		if err != nil {
			return err
		}
		opts = append(opts, playground.WithOptions(doc.Merged()))
	}
	store := playground.New(opts...)

	if filesPreset != "" {
		if err := store.Send(ctx, playground.SelectPresetTemplate{Preset: filesPreset}); err != nil {
			return errors.NewUserError(err, "Run: zodplay presets")
		}
	}

	w := cmd.OutOrStdout()
	if filesInteractive || filesEdit {
		picked, ok, err := pickFile(ctx, store)
		if err != nil {
			return err
		}
		if ok && filesEdit {
			if err := editFile(ctx, store, dir, picked); err != nil {
				return err
			}
		}
	}
	return renderTabs(w, store, composer(), logging.SupportsColor(w))
}

// loadWorkspace reads the visible regular files of dir.
func loadWorkspace(dir string, logger *slog.Logger) ([]playground.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewUserError(errors.Wrapf(err, "reading workspace %s", dir),
			"Pass an existing directory")
	}

	var files []playground.File
	for _, e := range entries {
		if !e.Type().IsRegular() || (paths.IsHidden(e.Name()) && role.Infer(role.Rules{}, e.Name()) != role.Prettier) {
			continue
		}
		data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, e.Name()))
		if err != nil {
			logger.Warn("skipping workspace file", "file", e.Name(), "error", err)
			continue
		}
		files = append(files, playground.File{Name: e.Name(), Content: string(data)})
	}
	return files, nil
}

// pickFile lets the user choose an input tab and makes it active.
func pickFile(ctx context.Context, store playground.Store) (playground.File, bool, error) {
	inputs := store.Snapshot().InputList
	i, err := findFile(inputs)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return playground.File{}, false, nil
		}
		return playground.File{}, false, errors.Wrap(err, "picking file")
	}

	f := inputs[i]
	if err := store.Send(ctx, playground.SelectInputTab{File: f}); err != nil {
		return playground.File{}, false, err
	}
	return f, true, nil
}

// editFile opens a workspace file in the editor and loads the result back
// into the active tab.
func editFile(ctx context.Context, store playground.Store, dir string, f playground.File) error {
	if f.Preset {
		return errors.NewUserError(errors.Wrapf(playground.ErrPresetFile, "%q", f.Name),
			"Pick a file from the workspace directory")
	}

	path := filepath.Join(dir, f.Name)
	if err := openEditor(ctx, path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return err
	}
	return store.Send(ctx, playground.UpdateInput{Value: string(data)})
}

// renderTabs prints the input and output tabs of the store.
func renderTabs(w io.Writer, store playground.Store, c invocation.Composer, colorize bool) error {
	s := store.Snapshot()

	var sb strings.Builder
	sb.WriteString("Inputs:\n")
	for i, f := range s.InputList {
		writeTab(&sb, f.Name, i == s.ActiveInputIndex, s.Indicator(f.Name), f.Preset)
	}
	sb.WriteString("Outputs:\n")
	for i, f := range s.OutputList {
		writeTab(&sb, f.Name, i == s.ActiveOutputIndex, "", false)
	}
	fmt.Fprintf(&sb, "Template preset: %s\n", s.SelectedPresetTemplate)

	if active, ok := s.ActiveInput(); ok && !active.Preset {
		help := role.Help(role.Rules{}, active.Name)
		fmt.Fprintf(&sb, "\n%s\n", markdown.Render(help, colorize))
	}

	fmt.Fprintf(&sb, "\n%s\n", s.CommandLine(c))

	_, err := io.WriteString(w, sb.String())
	return errors.Wrap(err, "writing tabs")
}

func writeTab(sb *strings.Builder, name string, active bool, indicator string, preset bool) {
	marker := " "
	if active {
		marker = "*"
	}
	fmt.Fprintf(sb, "  %s %s", marker, name)
	if indicator != "" {
		sb.WriteString(" " + indicator)
	}
	if preset {
		sb.WriteString(" (preset)")
	}
	sb.WriteByte('\n')
}
