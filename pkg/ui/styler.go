package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/amake/pkg/style"
)

// Styler turns semantic pieces of output into text. Results describe
// themselves through a Styler so the same code serves plain and rich output.
type Styler interface {
	// Style renders text with a named style from the style sheet
	Style(name, text string) string
	// Table lays out rows under a header
	Table(header []string, rows [][]string) string
	// Markdown renders a markdown document
	Markdown(doc string) string
	// Error renders an error with its context
	Error(err error) string
}

// Plain is a Styler producing unstyled text
type Plain struct{}

// Style returns text unchanged
func (Plain) Style(_, text string) string { return text }

// Table aligns columns with spaces
func (Plain) Table(header []string, rows [][]string) string {
	return layoutTable(header, rows, func(row, _ int) lipgloss.Style {
		return lipgloss.NewStyle().PaddingRight(2)
	})
}

// Markdown returns the document as written
func (Plain) Markdown(doc string) string { return doc }

// Error renders "Error: ..." followed by the error's context
func (Plain) Error(err error) string { return style.FormatErrorPlain(err) }

// Rich is a Styler for color terminals
type Rich struct {
	// Width wraps markdown output; zero keeps glamour's default
	Width int
}

// Style applies the named style
func (Rich) Style(name, text string) string { return style.Render(name, text) }

// Table renders a pterm table with a highlighted header
func (Rich) Table(header []string, rows [][]string) string {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return Plain{}.Table(header, rows)
	}
	return out
}

// Markdown renders through glamour, falling back to the raw document
func (r Rich) Markdown(doc string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return doc
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return doc
	}
	return rendered
}

// Error renders the error with a pterm prefix
func (Rich) Error(err error) string { return style.FormatError(err) }

func layoutTable(header []string, rows [][]string, styleFunc table.StyleFunc) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(styleFunc).
		Headers(header...).
		Rows(rows...)

	lines := strings.Split(t.Render(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
