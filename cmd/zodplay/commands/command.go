package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/logging"
)

var (
	commandOutput string
	commandArgv   bool
	commandEnable []string
)

func init() {
	commandCmd.Flags().StringVarP(&commandOutput, "output", "o", "",
		"output file name (default from config output_path)")
	commandCmd.Flags().BoolVar(&commandArgv, "argv", false,
		"print the argument vector as a JSON array")
	commandCmd.Flags().StringSliceVar(&commandEnable, "enable", nil,
		"boolean options to switch on")
	rootCmd.AddCommand(commandCmd)
}

var commandCmd = &cobra.Command{
	Use:   "command [options-file]",
	Short: "Compose the openapi-zod-client command line",
	Long: `Compose the openapi-zod-client invocation for an options file, with one
flag per relevant option. Options without a command-line flag are left out.

The program and sample input come from the program and sample_input config
keys.`,
	Example: `  zodplay command options.yaml -o api.client.ts
  zodplay command --enable shouldExportAllTypes
  zodplay command options.yaml --argv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommand,
}

func runCommand(cmd *cobra.Command, args []string) error {
	doc, err := loadOptions(cmd.ErrOrStderr(), logging.FromContext(cmd.Context()), args, commandEnable)
	if err != nil {
		return err
	}

	out := commandOutput
	if out == "" {
		out = cfg.OutputPath
	}
	relevant := doc.Relevant().ForCommand()

	w := cmd.OutOrStdout()
	if commandArgv {
		enc := json.NewEncoder(w)
		return errors.Wrap(enc.Encode(composer().Args(out, relevant)), "encoding JSON")
	}
	_, err = fmt.Fprintln(w, composer().Compose(out, relevant))
	return errors.Wrap(err, "writing command")
}
