// Package markdown renders the short Markdown helper strings shown next to
// form fields as terminal text.
//
// Only inline constructs and paragraphs are styled. Code spans are painted
// cyan, strong emphasis bold and emphasis italic when color is enabled; with
// color disabled code spans keep their backticks so the text stays
// unambiguous.
package markdown

import (
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

type renderer struct {
	source []byte
	code   *color.Color
	strong *color.Color
	em     *color.Color
	color  bool
}

// Render converts src to terminal text. Paragraphs are separated by a blank
// line; list items are prefixed with "- ".
func Render(src string, colorize bool) string {
	r := &renderer{
		source: []byte(src),
		code:   color.New(color.FgCyan),
		strong: color.New(color.Bold),
		em:     color.New(color.Italic),
		color:  colorize,
	}
	for _, c := range []*color.Color{r.code, r.strong, r.em} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	doc := md.Parser().Parse(text.NewReader(r.source))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b := r.block(n); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// Plain returns src with all Markdown markup removed.
func Plain(src string) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.NextSibling() != nil {
				sb.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(source))
			if n.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func (r *renderer) block(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return r.inlines(n)
	case *ast.List:
		var items []string
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			var parts []string
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				parts = append(parts, r.block(c))
			}
			items = append(items, "- "+strings.Join(parts, " "))
		}
		return strings.Join(items, "\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var sb strings.Builder
		lines := n.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			sb.WriteString("    ")
			sb.Write(seg.Value(r.source))
		}
		return strings.TrimRight(sb.String(), "\n")
	default:
		return r.inlines(n)
	}
}

func (r *renderer) inlines(n ast.Node) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		sb.WriteString(r.inline(c))
	}
	return sb.String()
}

func (r *renderer) inline(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Text:
		s := string(n.Segment.Value(r.source))
		if n.SoftLineBreak() {
			s += " "
		}
		if n.HardLineBreak() {
			s += "\n"
		}
		return s
	case *ast.String:
		return string(n.Value)
	case *ast.CodeSpan:
		var code strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if t, ok := c.(*ast.Text); ok {
				code.Write(t.Segment.Value(r.source))
			}
		}
		if !r.color {
			return "`" + code.String() + "`"
		}
		return r.code.Sprint(code.String())
	case *ast.Emphasis:
		inner := r.inlines(n)
		if n.Level == 2 {
			return r.strong.Sprint(inner)
		}
		return r.em.Sprint(inner)
	case *ast.Link:
		inner := r.inlines(n)
		return inner + " (" + string(n.Destination) + ")"
	case *ast.AutoLink:
		return string(n.URL(r.source))
	case *ast.RawHTML:
		return ""
	default:
		return r.inlines(n)
	}
}
