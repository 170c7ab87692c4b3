// Package tokenstest provides palettes for tests.
package tokenstest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// Palette returns a complete, valid dark palette.
func Palette() tokens.BaseTokens {
	return tokens.BaseTokens{
		Name: "Eerie",
		Type: tokens.KindDark,

		DarkestBackground: "#0d0f14",
		EditorBackground:  "#14171f",
		InputBackground:   "#1b1f2a",
		PanelBackground:   "#181c25",

		PrimaryForeground: "#c9d1e0",
		EditorForeground:  "#b4bccc",
		MutedForeground:   "#6c7589",
		Comment:           "#4f5869",

		AccentPrimary: "#7aa2f7",

		SyntaxRed:    "#f7768e",
		SyntaxBlue:   "#7aa2f7",
		SyntaxGreen:  "#9ece6a",
		SyntaxYellow: "#e0af68",
		SyntaxPurple: "#bb9af7",
		SyntaxOrange: "#ff9e64",
		SyntaxCyan:   "#7dcfff",

		ErrorColor:   "#f7768e",
		WarningColor: "#e0af68",
		InfoColor:    "#7dcfff",

		GitAdded:       "#9ece6a",
		GitModified:    "#e0af68",
		GitDeleted:     "#f7768e",
		GitConflicting: "#ff9e64",
		GitIgnored:     "#4f5869",

		TerminalBlack:         "#15161e",
		TerminalBrightBlack:   "#414868",
		TerminalRed:           "#f7768e",
		TerminalBrightRed:     "#ff899d",
		TerminalGreen:         "#9ece6a",
		TerminalBrightGreen:   "#9fe044",
		TerminalYellow:        "#e0af68",
		TerminalBrightYellow:  "#faba4a",
		TerminalBlue:          "#7aa2f7",
		TerminalBrightBlue:    "#8db0ff",
		TerminalMagenta:       "#bb9af7",
		TerminalBrightMagenta: "#c7a9ff",
		TerminalCyan:          "#7dcfff",
		TerminalBrightCyan:    "#a4daff",
		TerminalWhite:         "#a9b1d6",
		TerminalBrightWhite:   "#c0caf5",
	}
}

// Minimal returns a valid palette where every color is #808080 except the
// darkest background (#000000) and the accent (#FF0000).
func Minimal() tokens.BaseTokens {
	var t tokens.BaseTokens
	t.Name = "Minimal"
	t.Type = tokens.KindDark
	for _, f := range tokens.ColorFields {
		Set(&t, f, "#808080")
	}
	Set(&t, tokens.DarkestBackground, "#000000")
	Set(&t, tokens.AccentPrimary, "#FF0000")
	return t
}

// Set assigns value to field f of t.
func Set(t *tokens.BaseTokens, f tokens.Field, value string) {
	if ptr := t.FieldPointer(f); ptr != nil {
		*ptr = value
	}
}

// WriteJSON stores tok as dir/<name>.json and returns the path.
func WriteJSON(tb testing.TB, dir, name string, tok tokens.BaseTokens) string {
	tb.Helper()

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		tb.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		tb.Fatalf("create %s: %v", dir, err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
