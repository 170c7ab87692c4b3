package preview

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/ether/internal/color"
	"github.com/alexisbeaulieu97/ether/internal/theme"
)

// Sample is the snippet highlighted by Code when no source is supplied.
const Sample = `package main

import "fmt"

// Palette holds named colors.
type Palette struct {
	Name   string
	Colors map[string]string
}

func (p *Palette) Describe() string {
	if len(p.Colors) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%s has %d colors", p.Name, len(p.Colors)+1)
}
`

// scopeMap ties chroma token types to the editor scope whose settings they
// take. Types without an entry inherit from their chroma parent category.
var scopeMap = []struct {
	token chroma.TokenType
	scope string
}{
	{chroma.Comment, "comment"},
	{chroma.CommentPreproc, "meta.preprocessor"},
	{chroma.Keyword, "keyword.control"},
	{chroma.KeywordDeclaration, "storage.type"},
	{chroma.KeywordNamespace, "keyword.control.import"},
	{chroma.KeywordType, "support.type.builtin"},
	{chroma.KeywordConstant, "constant.language"},
	{chroma.Name, "variable"},
	{chroma.NameFunction, "entity.name.function"},
	{chroma.NameBuiltin, "support.function.builtin"},
	{chroma.NameClass, "entity.name.class"},
	{chroma.NameTag, "entity.name.tag"},
	{chroma.NameAttribute, "entity.other.attribute-name"},
	{chroma.NameConstant, "constant"},
	{chroma.LiteralString, "string"},
	{chroma.LiteralStringEscape, "constant.character.escape"},
	{chroma.LiteralStringRegex, "string.regexp"},
	{chroma.LiteralNumber, "constant.numeric"},
	{chroma.Operator, "keyword.operator"},
	{chroma.Punctuation, "punctuation"},
	{chroma.GenericHeading, "markup.heading"},
	{chroma.GenericInserted, "markup.inserted"},
	{chroma.GenericDeleted, "markup.deleted"},
	{chroma.GenericEmph, "markup.italic"},
	{chroma.GenericStrong, "markup.bold"},
	{chroma.Error, "invalid"},
}

// ChromaStyle converts th into a chroma style. Translucent colors are
// flattened onto the editor background because chroma only understands
// opaque colors.
func ChromaStyle(th *theme.Theme) (*chroma.Style, error) {
	background, ok := th.Colors.Get("editor.background")
	if !ok {
		return nil, fmt.Errorf("preview: theme has no color %q", "editor.background")
	}
	background, err := color.WithAlpha(background, 1)
	if err != nil {
		return nil, fmt.Errorf("preview editor.background: %w", err)
	}

	foreground, ok := th.Colors.Get("editor.foreground")
	if !ok {
		return nil, fmt.Errorf("preview: theme has no color %q", "editor.foreground")
	}
	foreground, err = color.Composite(foreground, background)
	if err != nil {
		return nil, fmt.Errorf("preview editor.foreground: %w", err)
	}

	builder := chroma.NewStyleBuilder(th.Name)
	builder.Add(chroma.Background, fmt.Sprintf("bg:%s %s", background, foreground))

	for _, m := range scopeMap {
		settings, ok := th.Resolve(m.scope)
		if !ok {
			continue
		}
		entry, err := styleEntry(settings, background)
		if err != nil {
			return nil, fmt.Errorf("preview %s: %w", m.scope, err)
		}
		if entry != "" {
			builder.Add(m.token, entry)
		}
	}

	return builder.Build()
}

func styleEntry(settings theme.Settings, background string) (string, error) {
	var parts []string
	for _, style := range strings.Fields(settings.FontStyle) {
		switch style {
		case "bold", "italic", "underline":
			parts = append(parts, style)
		}
	}
	if settings.Foreground != "" {
		fg, err := color.Composite(settings.Foreground, background)
		if err != nil {
			return "", err
		}
		parts = append(parts, fg)
	}
	if settings.Background != "" {
		bg, err := color.Composite(settings.Background, background)
		if err != nil {
			return "", err
		}
		parts = append(parts, "bg:"+bg)
	}
	return strings.Join(parts, " "), nil
}

// Code highlights source with the lexer registered under language using
// the colors of th. An empty source renders Sample.
func (p *Previewer) Code(th *theme.Theme, language, source string) (string, error) {
	if source == "" {
		source = Sample
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return "", fmt.Errorf("preview: no lexer for %q", language)
	}
	lexer = chroma.Coalesce(lexer)

	style, err := ChromaStyle(th)
	if err != nil {
		return "", err
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("preview: tokenise: %w", err)
	}

	bg := style.Get(chroma.Background).Background
	var b strings.Builder
	for _, token := range iterator.Tokens() {
		st := p.tokenStyle(style.Get(token.Type), bg)
		lines := strings.Split(token.Value, "\n")
		for i, segment := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			if segment != "" {
				b.WriteString(st.Render(segment))
			}
		}
	}
	return b.String(), nil
}

func (p *Previewer) tokenStyle(entry chroma.StyleEntry, bg chroma.Colour) lipgloss.Style {
	st := p.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Background.IsSet() {
		st = st.Background(lipgloss.Color(entry.Background.String()))
	} else if bg.IsSet() {
		st = st.Background(lipgloss.Color(bg.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// LanguageFor returns the lexer name chroma associates with filename, or
// an empty string when none matches.
func LanguageFor(filename string) string {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
