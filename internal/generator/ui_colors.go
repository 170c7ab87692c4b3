package generator

import (
	"fmt"

	"github.com/alexisbeaulieu97/ether/internal/theme"
	"github.com/alexisbeaulieu97/ether/internal/tokens"
)

// UIRule derives one workbench color key.
type UIRule struct {
	Key    string
	Source Source
}

// UIColorTable returns the workbench color derivations in output order.
func UIColorTable() []UIRule {
	return append([]UIRule(nil), uiColorTable...)
}

// GenerateUIColors expands t into the workbench color map. t must already
// have passed validation; an error here means a color failed to parse.
func GenerateUIColors(t tokens.BaseTokens) (*theme.ColorMap, error) {
	colors := theme.NewOrderedMap[string](len(uiColorTable))
	for _, rule := range uiColorTable {
		value, err := rule.Source.Resolve(t)
		if err != nil {
			return nil, fmt.Errorf("colors[%s]: %w", rule.Key, err)
		}
		colors.Set(rule.Key, value)
	}
	return colors, nil
}

var uiColorTable = []UIRule{
	// Base colors
	{"foreground", primaryFg},
	{"focusBorder", Alpha(accent, 0.5)},
	{"selection.background", Alpha(accent, 0.3)},
	{"scrollbar.shadow", darkest},

	// Activity Bar
	{"activityBar.foreground", accent},
	{"activityBar.background", darkest},
	{"activityBar.inactiveForeground", Alpha(mutedFg, 0.6)},
	{"activityBarBadge.foreground", darkest},
	{"activityBarBadge.background", accent},
	{"activityBar.border", transparent},
	{"activityBar.activeBackground", transparent},

	// Side Bar
	{"sideBar.background", darkest},
	{"sideBar.foreground", mutedFg},
	{"sideBarSectionHeader.background", darkest},
	{"sideBarSectionHeader.foreground", editorFg},
	{"sideBarSectionHeader.border", transparent},
	{"sideBarTitle.foreground", accent},
	{"sideBar.border", transparent},

	// Lists
	{"list.inactiveSelectionBackground", Alpha(accent, 0.05)},
	{"list.inactiveSelectionForeground", accent},
	{"list.hoverBackground", Alpha(accent, 0.05)},
	{"list.hoverForeground", accent},
	{"list.activeSelectionBackground", Alpha(accent, 0.15)},
	{"list.activeSelectionForeground", accent},
	{"tree.indentGuidesStroke", Alpha(Lighten(editorFg, 0.2), 0.3)},
	{"list.dropBackground", Alpha(accent, 0.1)},
	{"list.highlightForeground", accent},
	{"list.focusBackground", Alpha(accent, 0.2)},
	{"list.focusForeground", accent},

	// List Filter Widget
	{"listFilterWidget.background", inputBg},
	{"listFilterWidget.outline", Alpha(editorFg, 0.5)},
	{"listFilterWidget.noMatchesOutline", errorFg},

	// Status Bar
	{"statusBar.foreground", Alpha(mutedFg, 0.7)},
	{"statusBar.background", darkest},
	{"statusBarItem.hoverBackground", Literal("#00000010")},
	{"statusBar.border", transparent},
	{"statusBar.debuggingBackground", errorFg},
	{"statusBar.debuggingForeground", darkest},
	{"statusBar.debuggingBorder", transparent},
	{"statusBar.noFolderBackground", accent},
	{"statusBar.noFolderForeground", darkest},
	{"statusBar.noFolderBorder", transparent},
	{"statusBarItem.remoteBackground", accent},
	{"statusBarItem.remoteForeground", darkest},

	// Title Bar
	{"titleBar.activeBackground", darkest},
	{"titleBar.activeForeground", mutedFg},
	{"titleBar.inactiveBackground", darkest},
	{"titleBar.inactiveForeground", Alpha(mutedFg, 0.6)},
	{"titleBar.border", transparent},

	// Menu Bar
	{"menubar.selectionForeground", accent},
	{"menubar.selectionBackground", Alpha(inputBg, 0.1)},
	{"menubar.selectionBorder", transparent},

	// Menu
	{"menu.foreground", primaryFg},
	{"menu.background", inputBg},
	{"menu.selectionForeground", accent},
	{"menu.selectionBackground", Alpha(accent, 0.2)},
	{"menu.selectionBorder", transparent},
	{"menu.separatorBackground", Alpha(mutedFg, 0.4)},
	{"menu.border", darkest},

	// Button
	{"button.background", accent},
	{"button.foreground", darkest},
	{"button.hoverBackground", Lighten(accent, 0.05)},
	{"button.secondaryForeground", accent},
	{"button.secondaryBackground", Darken(accent, 0.6)},
	{"button.secondaryHoverBackground", Darken(accent, 0.55)},

	// Input
	{"input.background", inputBg},
	{"input.border", transparent},
	{"input.foreground", primaryFg},
	{"inputOption.activeBackground", accent},
	{"inputOption.activeBorder", transparent},
	{"inputOption.activeForeground", inputBg},
	{"input.placeholderForeground", Alpha(mutedFg, 0.6)},

	// Text Link
	{"textLink.foreground", accent},

	// Editor
	{"editor.background", editorBg},
	{"editor.foreground", editorFg},
	{"editorLineNumber.foreground", Alpha(editorFg, 0.3)},
	{"editorCursor.foreground", accent},
	{"editorCursor.background", editorBg},
	{"editor.selectionBackground", Alpha(purple, 0.3)},
	{"editor.inactiveSelectionBackground", Alpha(purple, 0.3)},
	{"editorWhitespace.foreground", Alpha(accent, 0.1)},
	{"editor.selectionHighlightBackground", Alpha(purple, 0.3)},
	{"editor.selectionHighlightBorder", Alpha(purple, 0.5)},
	{"editor.findMatchBackground", Alpha(purple, 0.2)},
	{"editor.findMatchBorder", Alpha(purple, 0.3)},
	{"editor.findMatchHighlightBackground", Alpha(purple, 0.3)},
	{"editor.findMatchHighlightBorder", transparent},
	{"editor.findRangeHighlightBackground", Alpha(purple, 0.2)},
	{"editor.findRangeHighlightBorder", Alpha(purple, 0.1)},
	{"editor.rangeHighlightBackground", Alpha(editorBg, 0.1)},
	{"editor.rangeHighlightBorder", Alpha(editorBg, 0.1)},
	{"editor.hoverHighlightBackground", Alpha(purple, 0.2)},
	{"editor.wordHighlightStrongBackground", Alpha(purple, 0.3)},
	{"editor.wordHighlightStrongBorder", Alpha(purple, 0.3)},
	{"editor.wordHighlightBackground", Alpha(purple, 0.15)},
	{"editor.wordHighlightBorder", transparent},
	{"editor.lineHighlightBackground", Alpha(purple, 0.1)},
	{"editor.lineHighlightBorder", Alpha(purple, 0.1)},
	{"editorLineNumber.activeForeground", accent},
	{"editorLink.activeForeground", Lighten(cyan, 0.2)},

	// Editor Indent Guide
	{"editorIndentGuide.background", Alpha(editorFg, 0.15)},
	{"editorIndentGuide.activeBackground", editorFg},
	{"editorRuler.foreground", Alpha(editorFg, 0.2)},

	// Editor Bracket Match
	{"editorBracketMatch.background", Alpha(accent, 0.1)},
	{"editorBracketMatch.border", Alpha(accent, 0.5)},
	{"editor.foldBackground", Alpha(accent, 0.1)},

	// Editor Overview Ruler
	{"editorOverviewRuler.background", editorBg},
	{"editorOverviewRuler.border", editorBg},

	// Errors and Warnings
	{"editorError.foreground", errorFg},
	{"editorError.background", Alpha(errorFg, 0.1)},
	{"editorError.border", transparent},
	{"editorWarning.foreground", warningFg},
	{"editorWarning.background", Alpha(warningFg, 0.1)},
	{"editorWarning.border", transparent},
	{"editorInfo.foreground", infoFg},
	{"editorInfo.background", Alpha(infoFg, 0.1)},
	{"editorInfo.border", transparent},

	// Editor Gutter
	{"editorGutter.background", editorBg},
	{"editorGutter.modifiedBackground", warningFg},
	{"editorGutter.addedBackground", gitAdded},
	{"editorGutter.deletedBackground", errorFg},
	{"editorGutter.foldingControlForeground", Alpha(editorFg, 0.5)},
	{"editorCodeLens.foreground", comment},

	// Editor Group
	{"editorGroup.border", darkest},

	// Diff Editor
	{"diffEditor.insertedTextBackground", Alpha(gitAdded, 0.2)},
	{"diffEditor.insertedTextBorder", Alpha(gitAdded, 0.05)},
	{"diffEditor.removedTextBackground", Alpha(gitDeleted, 0.2)},
	{"diffEditor.removedTextBorder", Alpha(gitDeleted, 0.05)},
	{"diffEditor.border", darkest},

	// Panel
	{"panel.background", panelBg},
	{"panel.border", transparent},
	{"panelTitle.activeBorder", accent},
	{"panelTitle.activeForeground", accent},
	{"panelTitle.inactiveForeground", mutedFg},

	// Badge
	{"badge.background", accent},
	{"badge.foreground", darkest},

	// Terminal
	{"terminal.foreground", editorFg},
	{"terminal.selectionBackground", Alpha(accent, 0.3)},
	{"terminalCursor.background", editorBg},
	{"terminalCursor.foreground", accent},
	{"terminal.border", editorBg},
	{"terminal.ansiBlack", Token(tokens.TerminalBlack)},
	{"terminal.ansiBlue", Token(tokens.TerminalBlue)},
	{"terminal.ansiBrightBlack", Token(tokens.TerminalBrightBlack)},
	{"terminal.ansiBrightBlue", Token(tokens.TerminalBrightBlue)},
	{"terminal.ansiBrightCyan", Token(tokens.TerminalBrightCyan)},
	{"terminal.ansiBrightGreen", Token(tokens.TerminalBrightGreen)},
	{"terminal.ansiBrightMagenta", Token(tokens.TerminalBrightMagenta)},
	{"terminal.ansiBrightRed", Token(tokens.TerminalBrightRed)},
	{"terminal.ansiBrightWhite", Token(tokens.TerminalBrightWhite)},
	{"terminal.ansiBrightYellow", Token(tokens.TerminalBrightYellow)},
	{"terminal.ansiCyan", Token(tokens.TerminalCyan)},
	{"terminal.ansiGreen", Token(tokens.TerminalGreen)},
	{"terminal.ansiMagenta", Token(tokens.TerminalMagenta)},
	{"terminal.ansiRed", Token(tokens.TerminalRed)},
	{"terminal.ansiWhite", Token(tokens.TerminalWhite)},
	{"terminal.ansiYellow", Token(tokens.TerminalYellow)},

	// Breadcrumb
	{"breadcrumb.background", editorBg},
	{"breadcrumb.foreground", primaryFg},
	{"breadcrumb.focusForeground", accent},
	{"breadcrumb.activeSelectionForeground", accent},

	// Editor Group Header
	{"editorGroupHeader.border", darkest},
	{"editorGroupHeader.tabsBackground", darkest},
	{"editorGroupHeader.tabsBorder", transparent},

	// Tabs
	{"tab.activeForeground", accent},
	{"tab.border", transparent},
	{"tab.activeBackground", editorBg},
	{"tab.activeBorder", transparent},
	{"tab.activeBorderTop", transparent},
	{"tab.inactiveBackground", darkest},
	{"tab.inactiveForeground", mutedFg},
	{"tab.hoverBackground", transparent},

	// Scrollbar
	{"scrollbarSlider.background", Alpha(Lighten(darkest, 0.1), 0.5)},
	{"scrollbarSlider.hoverBackground", Alpha(Lighten(darkest, 0.15), 0.7)},
	{"scrollbarSlider.activeBackground", Lighten(darkest, 0.15)},

	// Progress Bar
	{"progressBar.background", accent},

	// Widget
	{"widget.shadow", darkest},
	{"editorWidget.foreground", primaryFg},
	{"editorWidget.background", panelBg},
	{"editorWidget.resizeBorder", accent},

	// Picker Group
	{"pickerGroup.border", darkest},
	{"pickerGroup.foreground", accent},

	// Debug Tool Bar
	{"debugToolBar.background", panelBg},
	{"debugToolBar.border", inputBg},

	// Notifications
	{"notifications.foreground", primaryFg},
	{"notifications.background", panelBg},
	{"notificationToast.border", inputBg},
	{"notificationsErrorIcon.foreground", errorFg},
	{"notificationsWarningIcon.foreground", warningFg},
	{"notificationsInfoIcon.foreground", infoFg},
	{"notificationCenter.border", inputBg},
	{"notificationCenterHeader.foreground", primaryFg},
	{"notificationCenterHeader.background", inputBg},
	{"notifications.border", inputBg},

	// Git Decoration
	{"gitDecoration.addedResourceForeground", gitAdded},
	{"gitDecoration.conflictingResourceForeground", gitConflicting},
	{"gitDecoration.deletedResourceForeground", gitDeleted},
	{"gitDecoration.ignoredResourceForeground", gitIgnored},
	{"gitDecoration.modifiedResourceForeground", gitModified},
	{"gitDecoration.stageDeletedResourceForeground", gitDeleted},
	{"gitDecoration.stageModifiedResourceForeground", gitModified},
	{"gitDecoration.submoduleResourceForeground", gitConflicting},
	{"gitDecoration.untrackedResourceForeground", Lighten(gitAdded, 0.1)},

	// Editor Marker Navigation
	{"editorMarkerNavigation.background", panelBg},
	{"editorMarkerNavigationError.background", errorFg},
	{"editorMarkerNavigationWarning.background", warningFg},
	{"editorMarkerNavigationInfo.background", infoFg},

	// Merge Conflicts
	{"merge.currentHeaderBackground", Alpha(gitAdded, 0.3)},
	{"merge.currentContentBackground", Alpha(gitAdded, 0.1)},
	{"merge.incomingHeaderBackground", Alpha(infoFg, 0.3)},
	{"merge.incomingContentBackground", Alpha(infoFg, 0.1)},
	{"merge.commonHeaderBackground", Alpha(mutedFg, 0.3)},
	{"merge.commonContentBackground", Alpha(mutedFg, 0.1)},

	// Editor Suggest Widget
	{"editorSuggestWidget.background", panelBg},
	{"editorSuggestWidget.border", Alpha(editorFg, 0.1)},
	{"editorSuggestWidget.foreground", editorFg},
	{"editorSuggestWidget.highlightForeground", accent},
	{"editorSuggestWidget.selectedBackground", Darken(panelBg, 0.05)},

	// Editor Hover Widget
	{"editorHoverWidget.foreground", editorFg},
	{"editorHoverWidget.background", panelBg},
	{"editorHoverWidget.border", Alpha(editorFg, 0.1)},

	// Peek View
	{"peekView.border", accent},
	{"peekViewEditor.background", Darken(editorBg, 0.1)},
	{"peekViewEditorGutter.background", Darken(editorBg, 0.1)},
	{"peekViewEditor.matchHighlightBackground", Alpha(accent, 0.3)},
	{"peekViewEditor.matchHighlightBorder", accent},
	{"peekViewResult.background", Darken(editorBg, 0.1)},
	{"peekViewResult.fileForeground", primaryFg},
	{"peekViewResult.lineForeground", editorFg},
	{"peekViewResult.matchHighlightBackground", Alpha(accent, 0.4)},
	{"peekViewResult.selectionBackground", Alpha(accent, 0.3)},
	{"peekViewResult.selectionForeground", primaryFg},
	{"peekViewTitle.background", panelBg},
	{"peekViewTitleDescription.foreground", mutedFg},
	{"peekViewTitleLabel.foreground", primaryFg},

	// Icon
	{"icon.foreground", primaryFg},

	// Checkbox
	{"checkbox.background", inputBg},
	{"checkbox.foreground", primaryFg},
	{"checkbox.border", transparent},

	// Dropdown
	{"dropdown.background", inputBg},
	{"dropdown.foreground", primaryFg},
	{"dropdown.border", transparent},

	// Minimap
	{"minimapGutter.addedBackground", gitAdded},
	{"minimapGutter.modifiedBackground", gitModified},
	{"minimapGutter.deletedBackground", gitDeleted},
	{"minimap.findMatchHighlight", Alpha(purple, 0.2)},
	{"minimap.selectionHighlight", Alpha(purple, 0.3)},
	{"minimap.errorHighlight", errorFg},
	{"minimap.warningHighlight", warningFg},
	{"minimap.background", editorBg},

	// Side Bar
	{"sideBar.dropBackground", Alpha(accent, 0.1)},

	// Editor Group
	{"editorGroup.emptyBackground", editorBg},

	// Panel Section
	{"panelSection.border", Alpha(editorFg, 0.1)},

	// Status Bar Item
	{"statusBarItem.activeBackground", Literal("#FFFFFF25")},

	// Settings
	{"settings.headerForeground", primaryFg},
	{"settings.focusedRowBackground", Literal("#ffffff07")},

	// Walk Through
	{"walkThrough.embeddedEditorBackground", Literal("#00000050")},

	// Editor Gutter Comment Range
	{"editorGutter.commentRangeForeground", Alpha(editorFg, 0.5)},

	// Debug Exception Widget
	{"debugExceptionWidget.background", panelBg},
	{"debugExceptionWidget.border", inputBg},

	// Editor Bracket Highlighting
	{"editorBracketHighlight.foreground1", Mix(blue, cyan, 0.5)},
	{"editorBracketHighlight.foreground2", Mix(green, cyan, 0.5)},
	{"editorBracketHighlight.foreground3", Mix(purple, red, 0.5)},
	{"editorBracketHighlight.foreground4", Mix(orange, yellow, 0.5)},
	{"editorBracketHighlight.foreground5", Mix(cyan, blue, 0.3)},
	{"editorBracketHighlight.foreground6", Mix(green, yellow, 0.5)},
}
