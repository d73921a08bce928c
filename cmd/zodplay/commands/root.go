// Package commands implements the zodplay CLI.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/cmd"
	"github.com/thoreinstein/zodplay/internal/config"
	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/invocation"
	"github.com/thoreinstein/zodplay/internal/logging"
)

var (
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
)

// cfg is the loaded configuration; configLoadErr is reported by commands
// that need it rather than at startup.
var (
	cfg           = config.Default()
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/zodplay/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("zodplay version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configFile)
	if err != nil {
		configLoadErr = err
		cfg = config.Default()
		return
	}
	cfg, configLoadErr = loaded, nil
}

var rootCmd = &cobra.Command{
	Use:   "zodplay",
	Short: "Playground helpers for openapi-zod-client",
	Long: `zodplay carries the derived state of the openapi-zod-client playground
to the terminal: it infers the role of workspace files from their names,
reduces an options file to the options that differ from the defaults, and
composes the matching openapi-zod-client command line.`,
	Example: `  # What is this file for?
  zodplay infer petstore.yaml template.hbs .prettierrc.json

  # Options worth keeping, and the command that applies them
  zodplay options options.yaml
  zodplay command options.yaml -o api.client.ts

  # Browse a workspace as editor tabs
  zodplay files ./openapi --interactive`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil && !toleratesBadConfig(cmd) {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// toleratesBadConfig reports whether cmd runs even when the config file is
// broken: help, version and the config commands used to inspect it.
func toleratesBadConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "config":
			return true
		}
	}
	return false
}

// setupLogging installs the default logger from the verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Pass only one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			switch os.Getenv("ZODPLAY_DEBUG") {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primary slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primary = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primary = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handler := primary
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handler = logging.NewMultiHandler(primary, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// composer builds command lines from the configured program and sample input.
func composer() invocation.Composer {
	return invocation.Composer{Program: cfg.Program, Input: cfg.SampleInput}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
