package generator

import (
	"fmt"

	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

const (
	fontItalic        = "italic"
	fontBold          = "bold"
	fontUnderline     = "underline"
	fontStrikethrough = "strikethrough"
	fontBoldItalic    = "bold italic"
)

// TokenRule derives one TextMate token color rule. Background is optional.
type TokenRule struct {
	Name       string
	Scope      []string
	Foreground Source
	Background Source
	FontStyle  string
}

// TokenColorTable returns the lexical highlighting rules in output order.
// Later rules win in the editor, so order matters.
func TokenColorTable() []TokenRule {
	return append([]TokenRule(nil), tokenColorTable...)
}

// GenerateTokenColors expands t into the ordered token color rules.
func GenerateTokenColors(t tokens.BaseTokens) ([]theme.TokenColorRule, error) {
	rules := make([]theme.TokenColorRule, 0, len(tokenColorTable))
	for _, rule := range tokenColorTable {
		settings, err := resolveSettings(t, rule.Foreground, rule.Background, rule.FontStyle)
		if err != nil {
			return nil, fmt.Errorf("tokenColors[%s]: %w", rule.Name, err)
		}
		rules = append(rules, theme.TokenColorRule{
			Name:     rule.Name,
			Scope:    append(theme.Scope(nil), rule.Scope...),
			Settings: settings,
		})
	}
	return rules, nil
}

func resolveSettings(t tokens.BaseTokens, fg, bg Source, fontStyle string) (theme.Settings, error) {
	settings := theme.Settings{FontStyle: fontStyle}
	if fg != nil {
		value, err := fg.Resolve(t)
		if err != nil {
			return theme.Settings{}, err
		}
		settings.Foreground = value
	}
	if bg != nil {
		value, err := bg.Resolve(t)
		if err != nil {
			return theme.Settings{}, err
		}
		settings.Background = value
	}
	return settings, nil
}

func scopes(s ...string) []string { return s }

var tokenColorTable = []TokenRule{
	{
		Name:       "Source",
		Scope:      scopes("source", "text", "meta.embedded"),
		Foreground: editorFg,
	},

	// Comments
	{
		Name:       "Comment",
		Scope:      scopes("comment", "punctuation.definition.comment", "string.comment"),
		Foreground: comment,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Documentation comment tags",
		Scope:      scopes("comment.block.documentation storage.type", "comment.block.documentation entity.name.type", "keyword.other.phpdoc", "storage.type.class.jsdoc"),
		Foreground: Lighten(comment, 0.1),
		FontStyle:  fontItalic,
	},
	{
		Name:       "Documentation comment variables",
		Scope:      scopes("comment.block.documentation variable", "variable.other.jsdoc", "variable.parameter.jsdoc"),
		Foreground: Mix(comment, editorFg, 0.4),
		FontStyle:  fontItalic,
	},

	// Keywords and storage
	{
		Name:       "Keyword",
		Scope:      scopes("keyword", "keyword.control", "keyword.other.using", "keyword.other.operator"),
		Foreground: purple,
	},
	{
		Name:       "Control flow",
		Scope:      scopes("keyword.control.flow", "keyword.control.conditional", "keyword.control.loop", "keyword.control.return", "keyword.control.trycatch"),
		Foreground: purple,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Import and export",
		Scope:      scopes("keyword.control.import", "keyword.control.export", "keyword.control.from", "keyword.control.default", "keyword.import", "keyword.package"),
		Foreground: purple,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Storage",
		Scope:      scopes("storage", "storage.type", "storage.modifier", "storage.type.function", "storage.type.class"),
		Foreground: purple,
	},
	{
		Name:       "Declaration keywords",
		Scope:      scopes("keyword.function", "keyword.type", "keyword.struct", "keyword.interface", "keyword.var", "keyword.const"),
		Foreground: purple,
		FontStyle:  fontBold,
	},
	{
		Name:       "this and self",
		Scope:      scopes("variable.language.this", "variable.language.self", "variable.language.super", "variable.parameter.function.language.special.self"),
		Foreground: Lighten(purple, 0.08),
		FontStyle:  fontItalic,
	},
	{
		Name:       "Modifiers",
		Scope:      scopes("storage.modifier.async", "keyword.control.async", "keyword.control.await", "storage.modifier.static", "storage.modifier.readonly"),
		Foreground: Desaturate(purple, 0.15),
		FontStyle:  fontItalic,
	},

	// Operators and punctuation
	{
		Name:       "Operator",
		Scope:      scopes("keyword.operator", "keyword.operator.assignment", "keyword.operator.arithmetic", "keyword.operator.comparison", "keyword.operator.logical"),
		Foreground: cyan,
	},
	{
		Name:       "Word operators",
		Scope:      scopes("keyword.operator.new", "keyword.operator.expression", "keyword.operator.typeof", "keyword.operator.instanceof", "keyword.operator.delete", "keyword.operator.sizeof"),
		Foreground: purple,
	},
	{
		Name:       "Arrow and spread",
		Scope:      scopes("storage.type.function.arrow", "keyword.operator.spread", "keyword.operator.rest", "keyword.operator.type.annotation"),
		Foreground: cyan,
	},
	{
		Name:       "Punctuation",
		Scope:      scopes("punctuation", "punctuation.separator", "punctuation.terminator", "punctuation.accessor", "meta.brace", "meta.delimiter"),
		Foreground: Alpha(editorFg, 0.7),
	},
	{
		Name:       "Embedded punctuation",
		Scope:      scopes("punctuation.definition.template-expression", "punctuation.section.embedded", "punctuation.definition.interpolation"),
		Foreground: purple,
	},

	// Strings
	{
		Name:       "String",
		Scope:      scopes("string", "string.quoted", "string.template", "punctuation.definition.string"),
		Foreground: green,
	},
	{
		Name:       "String escape",
		Scope:      scopes("constant.character.escape", "constant.character.string.escape", "constant.other.placeholder"),
		Foreground: cyan,
	},
	{
		Name:       "Regular expression",
		Scope:      scopes("string.regexp", "string.regexp punctuation.definition.string", "constant.regexp"),
		Foreground: Darken(cyan, 0.05),
	},
	{
		Name:       "Regular expression groups",
		Scope:      scopes("punctuation.definition.group.regexp", "punctuation.definition.character-class.regexp", "keyword.operator.quantifier.regexp"),
		Foreground: orange,
	},
	{
		Name:       "Template expression",
		Scope:      scopes("meta.template.expression", "meta.embedded.line"),
		Foreground: editorFg,
	},

	// Numbers and constants
	{
		Name:       "Number",
		Scope:      scopes("constant.numeric", "constant.numeric.integer", "constant.numeric.float", "constant.numeric.hex"),
		Foreground: orange,
	},
	{
		Name:       "Language constant",
		Scope:      scopes("constant.language", "constant.language.boolean", "constant.language.null", "constant.language.undefined"),
		Foreground: orange,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Other constant",
		Scope:      scopes("constant", "constant.other", "variable.other.constant", "variable.other.enummember", "entity.name.constant"),
		Foreground: orange,
	},
	{
		Name:       "Character",
		Scope:      scopes("constant.character", "constant.other.character-class"),
		Foreground: Lighten(orange, 0.05),
	},
	{
		Name:       "Units",
		Scope:      scopes("keyword.other.unit", "keyword.other.unit.suffix"),
		Foreground: Darken(orange, 0.1),
	},

	// Variables
	{
		Name:       "Variable",
		Scope:      scopes("variable", "variable.other", "variable.other.readwrite", "meta.definition.variable.name"),
		Foreground: red,
	},
	{
		Name:       "Parameter",
		Scope:      scopes("variable.parameter", "meta.parameter", "variable.parameter.function"),
		Foreground: Mix(red, editorFg, 0.4),
		FontStyle:  fontItalic,
	},
	{
		Name:       "Object property",
		Scope:      scopes("variable.other.property", "variable.other.object.property", "meta.object-literal.key", "support.type.property-name"),
		Foreground: Mix(red, editorFg, 0.25),
	},
	{
		Name:       "Object",
		Scope:      scopes("variable.other.object", "variable.other.object.js", "variable.other.module"),
		Foreground: red,
	},
	{
		Name:       "Global variable",
		Scope:      scopes("variable.other.global", "variable.language", "support.variable"),
		Foreground: Saturate(red, 0.1),
		FontStyle:  fontItalic,
	},

	// Functions
	{
		Name:       "Function",
		Scope:      scopes("entity.name.function", "meta.function-call", "variable.function", "support.function", "meta.require"),
		Foreground: blue,
	},
	{
		Name:       "Method",
		Scope:      scopes("entity.name.function.member", "entity.name.method", "meta.method-call entity.name.function"),
		Foreground: blue,
	},
	{
		Name:       "Function declaration",
		Scope:      scopes("meta.definition.function entity.name.function", "meta.function entity.name.function", "entity.name.function.definition"),
		Foreground: blue,
		FontStyle:  fontBold,
	},
	{
		Name:       "Builtin function",
		Scope:      scopes("support.function.builtin", "support.function.go", "support.function.console", "entity.name.function.builtin"),
		Foreground: cyan,
	},
	{
		Name:       "Decorator",
		Scope:      scopes("meta.decorator", "entity.name.function.decorator", "punctuation.decorator", "meta.annotation", "storage.type.annotation"),
		Foreground: Mix(blue, editorFg, 0.3),
		FontStyle:  fontItalic,
	},
	{
		Name:       "Macro",
		Scope:      scopes("entity.name.function.macro", "entity.name.function.preprocessor", "meta.preprocessor"),
		Foreground: cyan,
	},

	// Types
	{
		Name:       "Class",
		Scope:      scopes("entity.name.class", "entity.name.type.class", "support.class", "entity.other.inherited-class"),
		Foreground: yellow,
	},
	{
		Name:       "Type",
		Scope:      scopes("entity.name.type", "support.type", "storage.type.primitive", "storage.type.built-in", "entity.name.type.alias"),
		Foreground: yellow,
	},
	{
		Name:       "Interface and trait",
		Scope:      scopes("entity.name.type.interface", "entity.name.type.trait", "entity.name.type.protocol"),
		Foreground: yellow,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Enum",
		Scope:      scopes("entity.name.type.enum", "entity.name.enum"),
		Foreground: Lighten(yellow, 0.05),
	},
	{
		Name:       "Type parameter",
		Scope:      scopes("entity.name.type.parameter", "meta.type.parameters entity.name.type", "variable.type.parameter"),
		Foreground: Darken(yellow, 0.08),
		FontStyle:  fontItalic,
	},
	{
		Name:       "Namespace",
		Scope:      scopes("entity.name.namespace", "entity.name.module", "entity.name.package", "entity.name.type.module", "storage.modifier.import", "storage.modifier.package"),
		Foreground: yellow,
	},
	{
		Name:       "Builtin type",
		Scope:      scopes("support.type.builtin", "support.type.primitive", "keyword.type.go", "storage.type.numeric.go", "storage.type.string.go", "storage.type.boolean.go"),
		Foreground: Desaturate(yellow, 0.1),
		FontStyle:  fontItalic,
	},

	// Markup tags
	{
		Name:       "Tag",
		Scope:      scopes("entity.name.tag", "meta.tag.sgml", "markup.deleted.git_gutter"),
		Foreground: red,
	},
	{
		Name:       "Tag punctuation",
		Scope:      scopes("punctuation.definition.tag", "punctuation.definition.tag.begin", "punctuation.definition.tag.end"),
		Foreground: Alpha(cyan, 0.7),
	},
	{
		Name:       "Component tag",
		Scope:      scopes("support.class.component", "entity.name.tag.component"),
		Foreground: yellow,
	},
	{
		Name:       "Tag attribute",
		Scope:      scopes("entity.other.attribute-name", "entity.other.attribute-name.html", "entity.other.attribute-name.jsx"),
		Foreground: orange,
		FontStyle:  fontItalic,
	},
	{
		Name:       "CSS selector",
		Scope:      scopes("entity.other.attribute-name.class.css", "entity.other.attribute-name.id.css", "entity.other.attribute-name.pseudo-class.css", "entity.other.attribute-name.pseudo-element.css"),
		Foreground: yellow,
	},
	{
		Name:       "CSS property",
		Scope:      scopes("support.type.property-name.css", "support.type.vendored.property-name.css"),
		Foreground: cyan,
	},
	{
		Name:       "CSS value",
		Scope:      scopes("support.constant.property-value.css", "support.constant.font-name", "support.constant.color"),
		Foreground: orange,
	},

	// Data formats
	{
		Name:       "JSON key",
		Scope:      scopes("source.json meta.structure.dictionary.json support.type.property-name.json"),
		Foreground: blue,
	},
	{
		Name:       "JSON nested key",
		Scope:      scopes("source.json meta.structure.dictionary.json meta.structure.dictionary.value.json meta.structure.dictionary.json support.type.property-name.json"),
		Foreground: purple,
	},
	{
		Name:       "YAML and TOML key",
		Scope:      scopes("entity.name.tag.yaml", "support.type.property-name.toml", "entity.other.attribute-name.table.toml"),
		Foreground: red,
	},
	{
		Name:       "Environment variable",
		Scope:      scopes("variable.other.env", "variable.other.normal.shell", "punctuation.definition.variable.shell"),
		Foreground: orange,
	},

	// Markdown
	{
		Name:       "Heading",
		Scope:      scopes("markup.heading", "entity.name.section.markdown", "markup.heading.setext"),
		Foreground: blue,
		FontStyle:  fontBold,
	},
	{
		Name:       "Heading punctuation",
		Scope:      scopes("punctuation.definition.heading.markdown"),
		Foreground: Alpha(blue, 0.6),
	},
	{
		Name:       "Bold",
		Scope:      scopes("markup.bold", "punctuation.definition.bold.markdown"),
		Foreground: orange,
		FontStyle:  fontBold,
	},
	{
		Name:       "Italic",
		Scope:      scopes("markup.italic", "punctuation.definition.italic.markdown"),
		Foreground: purple,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Bold italic",
		Scope:      scopes("markup.bold markup.italic", "markup.italic markup.bold"),
		Foreground: orange,
		FontStyle:  fontBoldItalic,
	},
	{
		Name:       "Strikethrough",
		Scope:      scopes("markup.strikethrough"),
		Foreground: mutedFg,
		FontStyle:  fontStrikethrough,
	},
	{
		Name:       "Inline code",
		Scope:      scopes("markup.inline.raw", "markup.inline.raw.string.markdown", "markup.fenced_code.block.markdown punctuation.definition"),
		Foreground: green,
	},
	{
		Name:       "Link",
		Scope:      scopes("markup.underline.link", "string.other.link.title.markdown", "constant.other.reference.link.markdown"),
		Foreground: cyan,
		FontStyle:  fontUnderline,
	},
	{
		Name:       "Link text",
		Scope:      scopes("string.other.link.description.markdown", "meta.link.inline.markdown"),
		Foreground: blue,
	},
	{
		Name:       "Quote",
		Scope:      scopes("markup.quote", "punctuation.definition.quote.begin.markdown"),
		Foreground: comment,
		FontStyle:  fontItalic,
	},
	{
		Name:       "List marker",
		Scope:      scopes("punctuation.definition.list.begin.markdown", "beginning.punctuation.definition.list.markdown", "markup.list punctuation.definition"),
		Foreground: accent,
	},
	{
		Name:       "Separator",
		Scope:      scopes("meta.separator", "meta.separator.markdown"),
		Foreground: mutedFg,
		FontStyle:  fontBold,
	},

	// Diff
	{
		Name:       "Inserted",
		Scope:      scopes("markup.inserted", "meta.diff.header.to-file", "punctuation.definition.inserted.diff"),
		Foreground: gitAdded,
	},
	{
		Name:       "Deleted",
		Scope:      scopes("markup.deleted", "meta.diff.header.from-file", "punctuation.definition.deleted.diff"),
		Foreground: gitDeleted,
	},
	{
		Name:       "Changed",
		Scope:      scopes("markup.changed", "punctuation.definition.changed.diff"),
		Foreground: gitModified,
	},
	{
		Name:       "Diff range",
		Scope:      scopes("meta.diff.range", "meta.diff.header", "meta.diff.index"),
		Foreground: infoFg,
		FontStyle:  fontItalic,
	},
	{
		Name:       "Ignored",
		Scope:      scopes("markup.ignored", "markup.untracked"),
		Foreground: gitIgnored,
	},

	// Diagnostics
	{
		Name:       "Invalid",
		Scope:      scopes("invalid", "invalid.illegal"),
		Foreground: errorFg,
		FontStyle:  fontUnderline,
	},
	{
		Name:       "Deprecated",
		Scope:      scopes("invalid.deprecated", "markup.deprecated"),
		Foreground: warningFg,
		FontStyle:  fontStrikethrough,
	},
	{
		Name:       "Unimplemented",
		Scope:      scopes("invalid.unimplemented"),
		Foreground: warningFg,
		Background: Alpha(warningFg, 0.1),
	},
	{
		Name:       "Log levels",
		Scope:      scopes("markup.info.log", "log.info"),
		Foreground: infoFg,
	},
	{
		Name:       "Log warnings",
		Scope:      scopes("markup.warning.log", "log.warning"),
		Foreground: warningFg,
	},
	{
		Name:       "Log errors",
		Scope:      scopes("markup.error.log", "log.error"),
		Foreground: errorFg,
		FontStyle:  fontBold,
	},
}
