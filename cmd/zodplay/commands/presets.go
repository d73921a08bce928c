package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/playground"
	"github.com/thoreinstein/zodplay/internal/playground/presets"
)

var presetsShow string

func init() {
	presetsCmd.Flags().StringVar(&presetsShow, "show", "", "print the template of a preset")
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the template presets",
	Long: `List the handlebars template presets the playground can load into its
template tab. The configured preset (preset_template) is marked with *.`,
	Example: `  zodplay presets
  zodplay presets --show grouped`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if presetsShow != "" {
			content, err := presets.TemplateContent(presetsShow)
			if err != nil {
				return err
			}
			fmt.Fprint(w, content)
			return nil
		}

		s := playground.New(
			playground.WithLogger(logging.FromContext(cmd.Context())),
			playground.WithPresetTemplate(cfg.PresetTemplate),
		).Snapshot()
		for _, t := range s.PresetTemplates() {
			marker := " "
			if t.Preset == s.SelectedPresetTemplate {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %-24s %s\n", marker, t.Preset, t.Name)
		}
		return nil
	},
}
