package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

type mark int

const (
	markInfo mark = iota
	markSuccess
	markWarning
	markFailure
)

// printer writes user-facing lines. Glyphs and colors are only used when
// the destination is a terminal.
type printer struct {
	w       io.Writer
	unicode bool
	styles  map[mark]lipgloss.Style
	heading lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		unicode: isTerminal(w),
		styles: map[mark]lipgloss.Style{
			markInfo:    r.NewStyle().Foreground(lipgloss.Color("6")),
			markSuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
			markWarning: r.NewStyle().Foreground(lipgloss.Color("3")),
			markFailure: r.NewStyle().Foreground(lipgloss.Color("1")),
		},
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

func (p *printer) icon(m mark) string {
	if p.unicode {
		return map[mark]string{markInfo: "ℹ", markSuccess: "✓", markWarning: "⚠", markFailure: "✗"}[m]
	}
	return map[mark]string{markInfo: "[..]", markSuccess: "[OK]", markWarning: "[!!]", markFailure: "[XX]"}[m]
}

func (p *printer) line(m mark, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.styles[m].Render(p.icon(m)), fmt.Sprintf(format, args...))
}

func (p *printer) title(text string) {
	fmt.Fprintf(p.w, "\n%s\n\n", p.heading.Render(text))
}

func (p *printer) raw(text string) {
	fmt.Fprint(p.w, text)
}
