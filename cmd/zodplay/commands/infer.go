package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/markdown"
	"github.com/thoreinstein/zodplay/internal/role"
)

var inferJSON bool

func init() {
	inferCmd.Flags().BoolVar(&inferJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inferCmd)
}

var inferCmd = &cobra.Command{
	Use:   "infer <file-name>...",
	Short: "Infer the role of files from their names",
	Long: `Infer whether each file name is an OpenAPI document, a handlebars
template or a prettier config, the way the playground file form does.

Names are matched on their extension (and the well-known prettier config
names); the file does not need to exist.`,
	Example: `  zodplay infer petstore.yaml template.hbs .prettierrc.json notes.txt
  zodplay infer --json api.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfer,
}

type inferResult struct {
	Name      string    `json:"name"`
	Role      role.Role `json:"role"`
	Extension string    `json:"extension"`
	Language  string    `json:"language"`
	Help      string    `json:"help"`
}

func runInfer(cmd *cobra.Command, args []string) error {
	v := role.Rules{}
	results := make([]inferResult, 0, len(args))
	for _, name := range args {
		results = append(results, inferResult{
			Name:      name,
			Role:      role.Infer(v, name),
			Extension: role.Extension(name),
			Language:  role.Language(name),
			Help:      role.Help(v, name),
		})
	}

	w := cmd.OutOrStdout()
	if inferJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(results), "encoding JSON")
	}
	return printInferResults(w, results, logging.SupportsColor(w))
}

func printInferResults(w io.Writer, results []inferResult, colorize bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, paintRole(r.Role, colorize), markdown.Render(r.Help, colorize))
	}
	return errors.Wrap(tw.Flush(), "writing results")
}

var roleColors = map[role.Role]color.Attribute{
	role.Document: color.FgGreen,
	role.Template: color.FgMagenta,
	role.Prettier: color.FgBlue,
	role.Unknown:  color.FgYellow,
}

func paintRole(r role.Role, colorize bool) string {
	if !colorize {
		return r.String()
	}
	c := color.New(roleColors[r])
	c.EnableColor()
	return c.Sprint(r.String())
}
