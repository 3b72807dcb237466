// Package render turns theme blocks into output documents.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/yludeuk/svoyak/models"
)

// Renderer writes one theme block in a single document format.
type Renderer interface {
	Ext() string
	Render(w io.Writer, block models.ThemeBlock) error
}

// For returns the renderer for an output format.
func For(format models.OutputFormat) (Renderer, error) {
	switch format {
	case models.FormatDocx:
		return DocxRenderer{}, nil
	case models.FormatText:
		return TextRenderer{}, nil
	case models.FormatMarkdown:
		return MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// TextRenderer writes the block text as UTF-8 plain text.
type TextRenderer struct{}

func (TextRenderer) Ext() string { return "txt" }

func (TextRenderer) Render(w io.Writer, block models.ThemeBlock) error {
	if _, err := io.WriteString(w, block.Text()+"\n"); err != nil {
		return fmt.Errorf("writing text: %w", err)
	}
	return nil
}

// MarkdownRenderer writes each theme as a level-2 heading followed by its records.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Ext() string { return "md" }

func (MarkdownRenderer) Render(w io.Writer, block models.ThemeBlock) error {
	if _, err := io.WriteString(w, Markdown(block)); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// Markdown formats a block as markdown.
func Markdown(block models.ThemeBlock) string {
	var b strings.Builder
	for i, t := range block.Themes {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %d. %s\n", t.Number, escapeMarkdown(t.Theme.Name))
		for _, r := range t.Records {
			fmt.Fprintf(&b, "\n**%d.** %s\n\n", r.NormalizedPrice, hardBreaks(escapeMarkdown(r.Question)))
			if r.Answer != "" {
				fmt.Fprintf(&b, "> %s\n", strings.ReplaceAll(hardBreaks(escapeMarkdown(r.Answer)), "\n", "\n> "))
			}
		}
	}
	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`<`, `\<`, `>`, `\>`, `#`, `\#`, `|`, `\|`,
)

var orderedListMarker = regexp.MustCompile(`^(\d+)([.)])`)

// escapeMarkdown makes transcript text render literally. Inline markup is
// backslash-escaped and list markers are escaped at line start. Only escapes
// glamour strips again are used.
func escapeMarkdown(s string) string {
	lines := strings.Split(markdownEscaper.Replace(s), "\n")
	for i, l := range lines {
		if l != "" && strings.ContainsRune("-+", rune(l[0])) {
			lines[i] = `\` + l
			continue
		}
		lines[i] = orderedListMarker.ReplaceAllString(l, `$1\$2`)
	}
	return strings.Join(lines, "\n")
}

// hardBreaks keeps multi-line questions and answers on separate lines.
func hardBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "  \n")
}

// Preview renders a block for the terminal through glamour.
func Preview(block models.ThemeBlock, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating preview renderer: %w", err)
	}
	out, err := r.Render(Markdown(block))
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return out, nil
}
