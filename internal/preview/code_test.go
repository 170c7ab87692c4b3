package preview

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/ether/internal/color"
	"github.com/alexisbeaulieu97/ether/internal/generator"
	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens/tokenstest"
)

func TestChromaStyleFollowsTokenColors(t *testing.T) {
	t.Parallel()

	base := tokenstest.Palette()
	th, err := generator.BuildTheme(base)
	require.NoError(t, err)

	style, err := ChromaStyle(th)
	require.NoError(t, err)

	bg := style.Get(chroma.Background)
	require.Equal(t, base.EditorBackground, bg.Background.String())

	comment := style.Get(chroma.Comment)
	require.Equal(t, base.Comment, comment.Colour.String())
	require.Equal(t, chroma.Yes, comment.Italic)

	str := style.Get(chroma.LiteralString)
	want, err := color.ToHex(base.SyntaxGreen)
	require.NoError(t, err)
	require.Equal(t, want, str.Colour.String())

	fn := style.Get(chroma.NameFunction)
	require.Equal(t, base.SyntaxBlue, fn.Colour.String())
}

func TestCodeRendersSource(t *testing.T) {
	t.Parallel()

	th, err := generator.BuildTheme(tokenstest.Palette())
	require.NoError(t, err)

	out, err := plainPreviewer().Code(th, "go", "")
	require.NoError(t, err)
	require.Equal(t, Sample, out)

	out, err = plainPreviewer().Code(th, "json", "{\"a\": 1}\n")
	require.NoError(t, err)
	require.Equal(t, "{\"a\": 1}\n", out)
}

func TestCodeErrors(t *testing.T) {
	t.Parallel()

	th, err := generator.BuildTheme(tokenstest.Palette())
	require.NoError(t, err)

	_, err = plainPreviewer().Code(th, "no-such-language", "x")
	require.ErrorContains(t, err, "no lexer")

	_, err = plainPreviewer().Code(&theme.Theme{}, "go", "")
	require.ErrorContains(t, err, "editor.background")
}

func TestLanguageFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Go", LanguageFor("main.go"))
	require.Empty(t, LanguageFor("palette.unknown-extension"))
}
