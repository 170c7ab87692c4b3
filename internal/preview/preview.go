// Package preview renders a palette and selected derived colors as terminal
// swatches.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ether/internal/color"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

type group struct {
	title  string
	fields []tokens.Field
}

var baseGroups = []group{
	{"Backgrounds", []tokens.Field{tokens.DarkestBackground, tokens.EditorBackground, tokens.InputBackground, tokens.PanelBackground}},
	{"Foregrounds", []tokens.Field{tokens.PrimaryForeground, tokens.EditorForeground, tokens.MutedForeground, tokens.Comment, tokens.AccentPrimary}},
	{"Syntax", []tokens.Field{tokens.SyntaxRed, tokens.SyntaxBlue, tokens.SyntaxGreen, tokens.SyntaxYellow, tokens.SyntaxPurple, tokens.SyntaxOrange, tokens.SyntaxCyan}},
	{"Diagnostics", []tokens.Field{tokens.ErrorColor, tokens.WarningColor, tokens.InfoColor}},
	{"Git", []tokens.Field{tokens.GitAdded, tokens.GitModified, tokens.GitDeleted, tokens.GitConflicting, tokens.GitIgnored}},
	{"Terminal", []tokens.Field{
		tokens.TerminalBlack, tokens.TerminalRed, tokens.TerminalGreen, tokens.TerminalYellow,
		tokens.TerminalBlue, tokens.TerminalMagenta, tokens.TerminalCyan, tokens.TerminalWhite,
		tokens.TerminalBrightBlack, tokens.TerminalBrightRed, tokens.TerminalBrightGreen, tokens.TerminalBrightYellow,
		tokens.TerminalBrightBlue, tokens.TerminalBrightMagenta, tokens.TerminalBrightCyan, tokens.TerminalBrightWhite,
	}},
}

// DerivedKeys are the UI colors shown under "Editor" and "Brackets".
var DerivedKeys = map[string][]string{
	"Editor": {
		"editor.selectionBackground",
		"editor.lineHighlightBackground",
		"editor.findMatchBackground",
		"focusBorder",
		"list.hoverBackground",
	},
	"Brackets": {
		"editorBracketHighlight.foreground1",
		"editorBracketHighlight.foreground2",
		"editorBracketHighlight.foreground3",
		"editorBracketHighlight.foreground4",
		"editorBracketHighlight.foreground5",
		"editorBracketHighlight.foreground6",
	},
}

var derivedOrder = []string{"Editor", "Brackets"}

// Previewer renders swatches with a lipgloss renderer.
type Previewer struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
}

// New builds a Previewer. A nil renderer uses lipgloss' default, which
// inspects stdout.
func New(r *lipgloss.Renderer) *Previewer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Previewer{
		renderer: r,
		title:    r.NewStyle().Bold(true).MarginTop(1),
		label:    r.NewStyle().Width(40),
		value:    r.NewStyle().Faint(true),
	}
}

// Render draws every base token and the derived UI colors of th.
// Translucent UI colors are composited over the editor background so the
// swatch shows what the editor would paint.
func (p *Previewer) Render(base tokens.BaseTokens, th *theme.Theme) (string, error) {
	var b strings.Builder

	header := fmt.Sprintf("%s (%s)", base.Name, base.Type)
	b.WriteString(p.renderer.NewStyle().Bold(true).Render(header))
	b.WriteByte('\n')

	for _, g := range baseGroups {
		p.writeTitle(&b, g.title)
		for _, f := range g.fields {
			row, err := p.row(string(f), base.Value(f), "")
			if err != nil {
				return "", err
			}
			b.WriteString(row)
		}
	}

	if th == nil {
		return b.String(), nil
	}

	for _, title := range derivedOrder {
		p.writeTitle(&b, title)
		for _, key := range DerivedKeys[title] {
			value, ok := th.Colors.Get(key)
			if !ok {
				return "", fmt.Errorf("preview: theme has no color %q", key)
			}
			row, err := p.row(key, value, base.EditorBackground)
			if err != nil {
				return "", err
			}
			b.WriteString(row)
		}
	}

	return b.String(), nil
}

func (p *Previewer) writeTitle(b *strings.Builder, title string) {
	b.WriteString(p.title.Render(title))
	b.WriteByte('\n')
}

// row renders one swatch. A non-empty backdrop flattens translucent values.
func (p *Previewer) row(name, value, backdrop string) (string, error) {
	shown := value
	if backdrop != "" {
		flat, err := color.Composite(value, backdrop)
		if err != nil {
			return "", fmt.Errorf("preview %s: %w", name, err)
		}
		shown = flat
	}

	solid, err := color.WithAlpha(shown, 1)
	if err != nil {
		return "", fmt.Errorf("preview %s: %w", name, err)
	}

	swatch := p.renderer.NewStyle().Background(lipgloss.Color(solid)).Render("      ")
	text := value
	if !strings.EqualFold(shown, value) {
		text = fmt.Sprintf("%s → %s", value, solid)
	}
	return fmt.Sprintf("  %s  %s %s\n", swatch, p.label.Render(name), p.value.Render(text)), nil
}
