package commands

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zodplay/internal/config"
	"github.com/thoreinstein/zodplay/internal/editor"
	"github.com/thoreinstein/zodplay/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show zodplay configuration",
	Long: `Show the effective configuration as YAML, with file, ZODPLAY_* environment
and default values merged. Validation problems of the config file are listed
after the values.`,
	Example: `  zodplay config
  zodplay config get program
  zodplay config set output_path src/api.client.ts
  ZODPLAY_PROGRAM="npx openapi-zod-client" zodplay config get program`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the user config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the user config file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.FilePath()
		if _, err := os.Stat(path); err != nil {
			return errors.NewUserError(errors.Wrapf(err, "config file %s", path),
				"Create it with: zodplay config set version 1")
		}
		return editor.Open(cmd.Context(), path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = config.FilePath() + " (not present)"
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Current())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	w := cmd.OutOrStdout()
	fmt.Fprint(w, string(data))

	if configLoadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nconfig problems: %v\n", configLoadErr)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys(), key) {
		return unknownKey(key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	c := config.Current()
	switch key {
	case "version":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "version %q", value), "version is an integer")
		}
		c.Version = v
	case "program":
		c.Program = value
	case "sample_input":
		c.SampleInput = value
	case "output_path":
		c.OutputPath = value
	case "preset_template":
		c.PresetTemplate = value
	default:
		return unknownKey(key)
	}

	path := config.FilePath()
	if err := config.Save(c, path); err != nil {
		return errors.NewUserError(err, "Run: zodplay config")
	}
	viper.Set(key, value)
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return nil
}

func unknownKey(key string) error {
	return errors.NewUserError(errors.Newf("unknown config key %q", key),
		"Valid keys: "+strings.Join(config.Keys(), ", "))
}
