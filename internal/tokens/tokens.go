// Package tokens defines the base palette a theme is derived from.
package tokens

// Field names a base token by its document key.
type Field string

// ThemeKind is the editor theme variant.
type ThemeKind string

const (
	KindDark  ThemeKind = "dark"
	KindLight ThemeKind = "light"
)

const (
	FieldName             Field = "name"
	FieldType             Field = "type"
	DarkestBackground     Field = "darkestBackground"
	EditorBackground      Field = "editorBackground"
	InputBackground       Field = "inputBackground"
	PanelBackground       Field = "panelBackground"
	PrimaryForeground     Field = "primaryForeground"
	EditorForeground      Field = "editorForeground"
	MutedForeground       Field = "mutedForeground"
	Comment               Field = "comment"
	AccentPrimary         Field = "accentPrimary"
	SyntaxRed             Field = "syntaxRed"
	SyntaxBlue            Field = "syntaxBlue"
	SyntaxGreen           Field = "syntaxGreen"
	SyntaxYellow          Field = "syntaxYellow"
	SyntaxPurple          Field = "syntaxPurple"
	SyntaxOrange          Field = "syntaxOrange"
	SyntaxCyan            Field = "syntaxCyan"
	ErrorColor            Field = "errorColor"
	WarningColor          Field = "warningColor"
	InfoColor             Field = "infoColor"
	GitAdded              Field = "gitAdded"
	GitModified           Field = "gitModified"
	GitDeleted            Field = "gitDeleted"
	GitConflicting        Field = "gitConflicting"
	GitIgnored            Field = "gitIgnored"
	TerminalBlack         Field = "terminalBlack"
	TerminalBrightBlack   Field = "terminalBrightBlack"
	TerminalRed           Field = "terminalRed"
	TerminalBrightRed     Field = "terminalBrightRed"
	TerminalGreen         Field = "terminalGreen"
	TerminalBrightGreen   Field = "terminalBrightGreen"
	TerminalYellow        Field = "terminalYellow"
	TerminalBrightYellow  Field = "terminalBrightYellow"
	TerminalBlue          Field = "terminalBlue"
	TerminalBrightBlue    Field = "terminalBrightBlue"
	TerminalMagenta       Field = "terminalMagenta"
	TerminalBrightMagenta Field = "terminalBrightMagenta"
	TerminalCyan          Field = "terminalCyan"
	TerminalBrightCyan    Field = "terminalBrightCyan"
	TerminalWhite         Field = "terminalWhite"
	TerminalBrightWhite   Field = "terminalBrightWhite"
)

// ColorFields lists every color-valued token in declaration order.
var ColorFields = []Field{
	DarkestBackground,
	EditorBackground,
	InputBackground,
	PanelBackground,
	PrimaryForeground,
	EditorForeground,
	MutedForeground,
	Comment,
	AccentPrimary,
	SyntaxRed,
	SyntaxBlue,
	SyntaxGreen,
	SyntaxYellow,
	SyntaxPurple,
	SyntaxOrange,
	SyntaxCyan,
	ErrorColor,
	WarningColor,
	InfoColor,
	GitAdded,
	GitModified,
	GitDeleted,
	GitConflicting,
	GitIgnored,
	TerminalBlack,
	TerminalBrightBlack,
	TerminalRed,
	TerminalBrightRed,
	TerminalGreen,
	TerminalBrightGreen,
	TerminalYellow,
	TerminalBrightYellow,
	TerminalBlue,
	TerminalBrightBlue,
	TerminalMagenta,
	TerminalBrightMagenta,
	TerminalCyan,
	TerminalBrightCyan,
	TerminalWhite,
	TerminalBrightWhite,
}

// RequiredFields is the name, the type and every color field.
var RequiredFields = append([]Field{FieldName, FieldType}, ColorFields...)

// BaseTokens is the palette a theme author supplies. It is a value type;
// callers own their copy.
type BaseTokens struct {
	Name string    `json:"name" yaml:"name" validate:"required"`
	Type ThemeKind `json:"type" yaml:"type" validate:"required,oneof=dark light"`
	// Test themes are generated but left out of the package manifest.
	Test bool `json:"test,omitempty" yaml:"test,omitempty"`

	// Sidebar, activity bar, status bar.
	DarkestBackground string `json:"darkestBackground" yaml:"darkestBackground" validate:"required,themecolor"`
	// Main editor and active tabs.
	EditorBackground string `json:"editorBackground" yaml:"editorBackground" validate:"required,themecolor"`
	// Inputs, dropdowns, widgets.
	InputBackground string `json:"inputBackground" yaml:"inputBackground" validate:"required,themecolor"`
	// Panels and notifications.
	PanelBackground string `json:"panelBackground" yaml:"panelBackground" validate:"required,themecolor"`
	// Main UI text.
	PrimaryForeground string `json:"primaryForeground" yaml:"primaryForeground" validate:"required,themecolor"`
	// Editor code text.
	EditorForeground string `json:"editorForeground" yaml:"editorForeground" validate:"required,themecolor"`
	// Secondary text and inactive states.
	MutedForeground string `json:"mutedForeground" yaml:"mutedForeground" validate:"required,themecolor"`
	Comment         string `json:"comment" yaml:"comment" validate:"required,themecolor"`
	// Main theme accent.
	AccentPrimary string `json:"accentPrimary" yaml:"accentPrimary" validate:"required,themecolor"`
	// Variables, tags, identifiers.
	SyntaxRed string `json:"syntaxRed" yaml:"syntaxRed" validate:"required,themecolor"`
	// Functions and methods.
	SyntaxBlue string `json:"syntaxBlue" yaml:"syntaxBlue" validate:"required,themecolor"`
	// Strings.
	SyntaxGreen string `json:"syntaxGreen" yaml:"syntaxGreen" validate:"required,themecolor"`
	// Classes, types, namespaces.
	SyntaxYellow string `json:"syntaxYellow" yaml:"syntaxYellow" validate:"required,themecolor"`
	// Keywords and storage.
	SyntaxPurple string `json:"syntaxPurple" yaml:"syntaxPurple" validate:"required,themecolor"`
	// Numbers and constants.
	SyntaxOrange string `json:"syntaxOrange" yaml:"syntaxOrange" validate:"required,themecolor"`
	// Operators and support.
	SyntaxCyan            string `json:"syntaxCyan" yaml:"syntaxCyan" validate:"required,themecolor"`
	ErrorColor            string `json:"errorColor" yaml:"errorColor" validate:"required,themecolor"`
	WarningColor          string `json:"warningColor" yaml:"warningColor" validate:"required,themecolor"`
	InfoColor             string `json:"infoColor" yaml:"infoColor" validate:"required,themecolor"`
	GitAdded              string `json:"gitAdded" yaml:"gitAdded" validate:"required,themecolor"`
	GitModified           string `json:"gitModified" yaml:"gitModified" validate:"required,themecolor"`
	GitDeleted            string `json:"gitDeleted" yaml:"gitDeleted" validate:"required,themecolor"`
	GitConflicting        string `json:"gitConflicting" yaml:"gitConflicting" validate:"required,themecolor"`
	GitIgnored            string `json:"gitIgnored" yaml:"gitIgnored" validate:"required,themecolor"`
	TerminalBlack         string `json:"terminalBlack" yaml:"terminalBlack" validate:"required,themecolor"`
	TerminalBrightBlack   string `json:"terminalBrightBlack" yaml:"terminalBrightBlack" validate:"required,themecolor"`
	TerminalRed           string `json:"terminalRed" yaml:"terminalRed" validate:"required,themecolor"`
	TerminalBrightRed     string `json:"terminalBrightRed" yaml:"terminalBrightRed" validate:"required,themecolor"`
	TerminalGreen         string `json:"terminalGreen" yaml:"terminalGreen" validate:"required,themecolor"`
	TerminalBrightGreen   string `json:"terminalBrightGreen" yaml:"terminalBrightGreen" validate:"required,themecolor"`
	TerminalYellow        string `json:"terminalYellow" yaml:"terminalYellow" validate:"required,themecolor"`
	TerminalBrightYellow  string `json:"terminalBrightYellow" yaml:"terminalBrightYellow" validate:"required,themecolor"`
	TerminalBlue          string `json:"terminalBlue" yaml:"terminalBlue" validate:"required,themecolor"`
	TerminalBrightBlue    string `json:"terminalBrightBlue" yaml:"terminalBrightBlue" validate:"required,themecolor"`
	TerminalMagenta       string `json:"terminalMagenta" yaml:"terminalMagenta" validate:"required,themecolor"`
	TerminalBrightMagenta string `json:"terminalBrightMagenta" yaml:"terminalBrightMagenta" validate:"required,themecolor"`
	TerminalCyan          string `json:"terminalCyan" yaml:"terminalCyan" validate:"required,themecolor"`
	TerminalBrightCyan    string `json:"terminalBrightCyan" yaml:"terminalBrightCyan" validate:"required,themecolor"`
	TerminalWhite         string `json:"terminalWhite" yaml:"terminalWhite" validate:"required,themecolor"`
	TerminalBrightWhite   string `json:"terminalBrightWhite" yaml:"terminalBrightWhite" validate:"required,themecolor"`
}

// Value returns the raw string stored under f, or "" for an unknown field.
func (t BaseTokens) Value(f Field) string {
	switch f {
	case FieldName:
		return t.Name
	case FieldType:
		return string(t.Type)
	case DarkestBackground:
		return t.DarkestBackground
	case EditorBackground:
		return t.EditorBackground
	case InputBackground:
		return t.InputBackground
	case PanelBackground:
		return t.PanelBackground
	case PrimaryForeground:
		return t.PrimaryForeground
	case EditorForeground:
		return t.EditorForeground
	case MutedForeground:
		return t.MutedForeground
	case Comment:
		return t.Comment
	case AccentPrimary:
		return t.AccentPrimary
	case SyntaxRed:
		return t.SyntaxRed
	case SyntaxBlue:
		return t.SyntaxBlue
	case SyntaxGreen:
		return t.SyntaxGreen
	case SyntaxYellow:
		return t.SyntaxYellow
	case SyntaxPurple:
		return t.SyntaxPurple
	case SyntaxOrange:
		return t.SyntaxOrange
	case SyntaxCyan:
		return t.SyntaxCyan
	case ErrorColor:
		return t.ErrorColor
	case WarningColor:
		return t.WarningColor
	case InfoColor:
		return t.InfoColor
	case GitAdded:
		return t.GitAdded
	case GitModified:
		return t.GitModified
	case GitDeleted:
		return t.GitDeleted
	case GitConflicting:
		return t.GitConflicting
	case GitIgnored:
		return t.GitIgnored
	case TerminalBlack:
		return t.TerminalBlack
	case TerminalBrightBlack:
		return t.TerminalBrightBlack
	case TerminalRed:
		return t.TerminalRed
	case TerminalBrightRed:
		return t.TerminalBrightRed
	case TerminalGreen:
		return t.TerminalGreen
	case TerminalBrightGreen:
		return t.TerminalBrightGreen
	case TerminalYellow:
		return t.TerminalYellow
	case TerminalBrightYellow:
		return t.TerminalBrightYellow
	case TerminalBlue:
		return t.TerminalBlue
	case TerminalBrightBlue:
		return t.TerminalBrightBlue
	case TerminalMagenta:
		return t.TerminalMagenta
	case TerminalBrightMagenta:
		return t.TerminalBrightMagenta
	case TerminalCyan:
		return t.TerminalCyan
	case TerminalBrightCyan:
		return t.TerminalBrightCyan
	case TerminalWhite:
		return t.TerminalWhite
	case TerminalBrightWhite:
		return t.TerminalBrightWhite
	}
	return ""
}

// FieldPointer returns the address of the string behind a color field, the
// name, or nil for the type and unknown fields.
func (t *BaseTokens) FieldPointer(f Field) *string {
	switch f {
	case FieldName:
		return &t.Name
	case DarkestBackground:
		return &t.DarkestBackground
	case EditorBackground:
		return &t.EditorBackground
	case InputBackground:
		return &t.InputBackground
	case PanelBackground:
		return &t.PanelBackground
	case PrimaryForeground:
		return &t.PrimaryForeground
	case EditorForeground:
		return &t.EditorForeground
	case MutedForeground:
		return &t.MutedForeground
	case Comment:
		return &t.Comment
	case AccentPrimary:
		return &t.AccentPrimary
	case SyntaxRed:
		return &t.SyntaxRed
	case SyntaxBlue:
		return &t.SyntaxBlue
	case SyntaxGreen:
		return &t.SyntaxGreen
	case SyntaxYellow:
		return &t.SyntaxYellow
	case SyntaxPurple:
		return &t.SyntaxPurple
	case SyntaxOrange:
		return &t.SyntaxOrange
	case SyntaxCyan:
		return &t.SyntaxCyan
	case ErrorColor:
		return &t.ErrorColor
	case WarningColor:
		return &t.WarningColor
	case InfoColor:
		return &t.InfoColor
	case GitAdded:
		return &t.GitAdded
	case GitModified:
		return &t.GitModified
	case GitDeleted:
		return &t.GitDeleted
	case GitConflicting:
		return &t.GitConflicting
	case GitIgnored:
		return &t.GitIgnored
	case TerminalBlack:
		return &t.TerminalBlack
	case TerminalBrightBlack:
		return &t.TerminalBrightBlack
	case TerminalRed:
		return &t.TerminalRed
	case TerminalBrightRed:
		return &t.TerminalBrightRed
	case TerminalGreen:
		return &t.TerminalGreen
	case TerminalBrightGreen:
		return &t.TerminalBrightGreen
	case TerminalYellow:
		return &t.TerminalYellow
	case TerminalBrightYellow:
		return &t.TerminalBrightYellow
	case TerminalBlue:
		return &t.TerminalBlue
	case TerminalBrightBlue:
		return &t.TerminalBrightBlue
	case TerminalMagenta:
		return &t.TerminalMagenta
	case TerminalBrightMagenta:
		return &t.TerminalBrightMagenta
	case TerminalCyan:
		return &t.TerminalCyan
	case TerminalBrightCyan:
		return &t.TerminalBrightCyan
	case TerminalWhite:
		return &t.TerminalWhite
	case TerminalBrightWhite:
		return &t.TerminalBrightWhite
	}
	return nil
}
