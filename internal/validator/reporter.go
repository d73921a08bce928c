package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/zodplay/internal/errors"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// maxValueLen bounds offending values echoed in text reports.
const maxValueLen = 48

// Reporter writes validation results for one subject, usually a file name.
type Reporter struct {
	out     io.Writer
	format  Format
	subject string
	color   bool
}

// NewReporter creates a Reporter. Text reports are colored only when color
// is true.
func NewReporter(out io.Writer, format Format, subject string, color bool) *Reporter {
	return &Reporter{out: out, format: format, subject: subject, color: color}
}

// Report writes result. Nil and empty results produce no output.
func (r *Reporter) Report(result *Result) error {
	if result == nil || len(result.Issues) == 0 {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		report := struct {
			Subject string  `json:"subject,omitempty"`
			Issues  []Issue `json:"issues"`
		}{r.subject, result.Issues}
		return errors.Wrap(enc.Encode(report), "encoding JSON report")
	}
	return r.reportText(result)
}

func (r *Reporter) reportText(result *Result) error {
	red := r.paint(color.FgRed)
	yellow := r.paint(color.FgYellow)
	grey := r.paint(color.FgHiBlack)

	var counts []string
	if n := len(result.Errors()); n > 0 {
		counts = append(counts, red.Sprintf("%d error(s)", n))
	}
	if n := len(result.Warnings()); n > 0 {
		counts = append(counts, yellow.Sprintf("%d warning(s)", n))
	}

	var sb strings.Builder
	if r.subject != "" {
		sb.WriteString(r.subject + ": ")
	}
	sb.WriteString(strings.Join(counts, ", "))
	sb.WriteByte('\n')

	for _, i := range result.Issues {
		label := red.Sprint("error  ")
		if i.Severity == SeverityWarning {
			label = yellow.Sprint("warning")
		}
		sb.WriteString("  " + label + " ")
		if i.Field != "" {
			sb.WriteString(i.Field + ": ")
		}
		sb.WriteString(i.Message)
		if i.Value != nil {
			sb.WriteString(grey.Sprintf(" (got %s)", clipValue(i.Value)))
		}
		if len(i.Context) > 0 {
			var parts []string
			for _, k := range slices.Sorted(maps.Keys(i.Context)) {
				parts = append(parts, k+"="+i.Context[k])
			}
			sb.WriteString(grey.Sprintf(" [%s]", strings.Join(parts, ", ")))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(r.out, sb.String())
	return errors.Wrap(err, "writing report")
}

func (r *Reporter) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if r.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func clipValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > maxValueLen {
		return s[:maxValueLen-3] + "..."
	}
	return s
}
