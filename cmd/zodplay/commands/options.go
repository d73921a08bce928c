package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/option"
	"github.com/thoreinstein/zodplay/internal/validator"
	"github.com/thoreinstein/zodplay/pkg/fileutil"
)

var (
	optionsSave     string
	optionsEnable   []string
	optionsDefaults bool
)

func init() {
	optionsCmd.Flags().StringVar(&optionsSave, "save", "",
		"write the merged options to this file (format from extension)")
	optionsCmd.Flags().StringSliceVar(&optionsEnable, "enable", nil,
		"boolean options to switch on, as with the form's booleans list")
	optionsCmd.Flags().BoolVar(&optionsDefaults, "defaults", false,
		"print the documented defaults instead")
	rootCmd.AddCommand(optionsCmd)
}

var optionsCmd = &cobra.Command{
	Use:   "options [file]",
	Short: "Show the options that differ from the defaults",
	Long: `Load an openapi-zod-client options file (YAML, JSON, TOML or HCL, chosen
by extension) and print, as JSON, only the options that are set to a truthy
value different from their documented default. A "booleans" list in the file
switches the named boolean options on.

Unknown options and values of the wrong type are reported and skipped.`,
	Example: `  zodplay options options.yaml
  zodplay options options.json --enable withDeprecatedEndpoints
  zodplay options options.toml --save options.yaml
  zodplay options --defaults`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if optionsDefaults {
		return printRecord(w, option.Defaults)
	}

	doc, err := loadOptions(cmd.ErrOrStderr(), logging.FromContext(cmd.Context()), args, optionsEnable)
	if err != nil {
		return err
	}

	if optionsSave != "" {
		if err := saveOptions(optionsSave, doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved options to %s\n", optionsSave)
	}
	return printRecord(w, doc.Relevant())
}

// loadOptions reads the optional options file named by args, reporting
// validation issues to errOut, and folds in the --enable names.
func loadOptions(errOut io.Writer, logger *slog.Logger, args, enable []string) (option.Document, error) {
	var doc option.Document
	if len(args) > 0 {
		loaded, result, err := option.Load(args[0])
		if err != nil {
			if errors.Is(err, errors.ErrUnsupportedFormat) {
				return doc, errors.NewUserError(err, "Use a .yaml, .yml, .json, .toml or .hcl options file")
			}
			return doc, errors.NewUserError(err, "Check that the options file exists and is well formed")
		}
		reporter := validator.NewReporter(errOut, validator.FormatText, args[0], logging.SupportsColor(errOut))
		if err := reporter.Report(result); err != nil {
			return doc, err
		}
		logger.Debug("loaded options", "path", args[0], "options", loaded.Options.Len(), "booleans", len(loaded.Booleans))
		doc = loaded
	}

	if len(enable) > 0 {
		if err := option.Validate(option.Record{}, enable).Err(option.ErrInvalidOptions); err != nil {
			return doc, errors.NewUserError(err, "Pass boolean option names, e.g. --enable withDeprecatedEndpoints")
		}
		doc.Booleans = append(doc.Booleans, enable...)
	}
	return doc, nil
}

func saveOptions(path string, doc option.Document) error {
	format, err := option.FormatFor(path)
	if err != nil {
		return errors.NewUserError(err, "Save to a .yaml, .yml, .json, .toml or .hcl file")
	}
	data, err := option.Encode(format, option.Document{Options: doc.Merged()})
	if err != nil {
		return err
	}
	return errors.Wrapf(fileutil.WriteAtomic(path, data), "saving options to %s", path)
}

func printRecord(w io.Writer, rec option.Record) error {
	data, err := option.Encode(option.FormatJSON, option.Document{Options: rec})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing options")
}
