package theme

import "github.com/slimy-theme/slimy/internal/color"

type role struct {
	key   string
	value color.Color
}

// highContrastRoles only exist in high-contrast variants.
func highContrastRoles(p *palette) []role {
	return []role{
		{"contrastActiveBorder", p.Common.Accent},
		{"contrastBorder", p.Common.Accent.Alpha(0.5)},
	}
}

// workbenchRoles is the workbench color table, in output order.
// See https://code.visualstudio.com/api/references/theme-color
func workbenchRoles(p *palette) []role {
	return []role{
		{"focusBorder", p.Common.UI.Fade(0.4)},
		{"foreground", p.Common.UI},
		{"widget.shadow", optional(p.UI.Panel.Shadow)},
		{"selection.background", p.selectionBg.Alpha(0.4)},
		{"descriptionForeground", p.Common.UI},
		{"errorForeground", p.Syntax.Error},
		{"icon.foreground", p.Common.UI},

		{"window.activeBorder", transparent},
		{"window.inactiveBorder", transparent},

		{"textBlockQuote.background", p.UI.Panel.Bg},
		{"textBlockQuote.border", optional(p.UI.Panel.Border)},
		{"textCodeBlock.background", p.UI.Popover.Bg},
		{"textLink.activeForeground", p.Common.Accent.Brighten(0.2)},
		{"textLink.foreground", p.Common.Accent},
		{"textPreformat.foreground", p.Common.Fg},
		{"textSeparator.foreground", p.Common.UI},

		{"button.background", p.buttonBg},
		{"button.foreground", p.buttonFg},
		{"button.hoverBackground", p.buttonBg.Brighten(p.sink(0.2))},
		{"button.secondaryBackground", p.secondaryButtonBg},
		{"button.secondaryForeground", p.secondaryButtonFg},
		{"button.secondaryHoverBackground", p.secondaryButtonBg.Brighten(p.sink(0.2))},
		{"checkbox.background", p.UI.Popover.Bg},
		{"checkbox.foreground", p.Common.UI},
		{"checkbox.border", optional(p.UI.Popover.Border)},

		{"dropdown.background", p.UI.Popover.Bg},
		{"dropdown.listBackground", p.UI.Popover.Bg},
		{"dropdown.border", optional(p.UI.Popover.Border)},
		{"dropdown.foreground", p.Common.UI},

		{"input.background", p.UI.Popover.Bg},
		{"input.border", optional(p.UI.Popover.Border)},
		{"input.foreground", p.Common.Fg},
		{"input.placeholderForeground", p.Common.UI.Fade(0.3)},
		{"inputOption.activeBackground", p.UI.Popover.Bg},
		{"inputOption.activeBorder", p.Common.Accent},
		{"inputOption.activeForeground", p.Common.Fg},
		{"inputValidation.errorBackground", p.UI.Popover.Bg},
		{"inputValidation.errorBorder", p.UI.State.Error},
		{"inputValidation.errorForeground", p.Common.Fg},
		{"inputValidation.infoBackground", p.UI.Popover.Bg},
		{"inputValidation.infoBorder", p.UI.State.Info},
		{"inputValidation.infoForeground", p.Common.Fg},
		{"inputValidation.warningBackground", p.UI.Popover.Bg},
		{"inputValidation.warningBorder", p.UI.State.Warning},
		{"inputValidation.warningForeground", p.Common.Fg},

		{"scrollbar.shadow", transparent},
		{"scrollbarSlider.activeBackground", p.Common.UI.Alpha(p.contrast(0.9, 0.5))},
		{"scrollbarSlider.background", p.Common.UI.Alpha(p.contrast(0.5, 0.2))},
		{"scrollbarSlider.hoverBackground", p.Common.UI.Alpha(p.contrast(0.8, 0.4))},

		{"badge.background", p.badgeBg},
		{"badge.foreground", p.badgeFg},

		{"progressBar.background", p.Common.Accent},

		{"list.activeSelectionBackground", p.listActiveBg},
		{"list.activeSelectionForeground", p.listActiveFg},
		{"list.dropBackground", p.listActiveBg},
		{"list.focusBackground", p.listActiveBg},
		{"list.focusForeground", p.listActiveFg},
		{"list.highlightForeground", p.Common.Accent.Brighten(p.lift(0.2))},
		{"list.hoverBackground", p.listHoverBg},
		{"list.hoverForeground", p.listHoverFg},
		{"list.inactiveSelectionBackground", p.listActiveBg.Alpha(0.5)},
		{"list.inactiveSelectionForeground", p.listActiveFg.Alpha(0.5)},
		{"list.invalidItemForeground", p.Common.UI.Alpha(0.7)},
		{"list.errorForeground", p.UI.State.Error.Brighten(p.lift(0.2))},
		{"list.warningForeground", p.UI.State.Warning.Brighten(p.lift(0.2))},
		{"listFilterWidget.background", p.UI.Popover.Bg},
		{"listFilterWidget.outline", optional(p.UI.Popover.Border)},
		{"listFilterWidget.noMatchesOutline", p.UI.State.Error},
		{"list.filterMatchBackground", p.Common.Accent.Alpha(0.05)},
		{"list.filterMatchBorder", p.Common.Accent},
		{"tree.indentGuidesStroke", transparent},
		{"list.deemphasizedForeground", p.Common.Fg.Fade(0.25)},

		{"activityBar.background", p.Common.Bg},
		{"activityBar.dropBorder", p.Common.Accent},
		{"activityBar.foreground", p.Common.UI.Alpha(p.contrast(1, 0.6))},
		{"activityBar.inactiveForeground", p.Common.UI.Alpha(p.contrast(0.6, 0.4))},
		{"activityBar.border", transparent},
		{"activityBarBadge.background", p.badgeBg},
		{"activityBarBadge.foreground", p.badgeFg},
		{"activityBar.activeBorder", transparent},
		{"activityBar.activeBackground", transparent},
		{"activityBar.activeFocusBorder", p.contrastColor(p.Common.Accent, transparent)},

		{"sideBar.background", p.Common.Bg},
		{"sideBar.foreground", p.Common.Fg},
		{"sideBar.border", transparent},
		{"sideBar.dropBackground", transparent},
		{"sideBarTitle.foreground", p.Common.UI},
		{"sideBarSectionHeader.background", p.Common.Bg},
		{"sideBarSectionHeader.foreground", p.Common.UI},
		{"sideBarSectionHeader.border", transparent},

		{"editorGroup.border", transparent},
		{"editorGroup.dropBackground", p.Common.Accent.Alpha(0.2)},
		{"editorGroupHeader.noTabsBackground", p.Common.Bg},
		{"editorGroupHeader.tabsBackground", p.Common.Bg},
		{"editorGroupHeader.tabsBorder", transparent},
		{"editorGroupHeader.border", transparent},
		{"editorGroup.emptyBackground", p.Common.Bg},
		{"editorGroup.focusedEmptyBorder", transparent},
		{"tab.activeBackground", p.Common.Bg.Brighten(0.4)},
		{"tab.unfocusedActiveBackground", p.Common.Bg.Brighten(0.4)},
		{"tab.activeForeground", p.tabActiveFg},
		{"tab.border", transparent},
		{"tab.activeBorder", transparent},
		{"tab.unfocusedActiveBorder", transparent},
		{"tab.activeBorderTop", p.Common.Accent},
		{"tab.unfocusedActiveBorderTop", transparent},
		{"tab.inactiveBackground", p.Common.Bg},
		{"tab.inactiveForeground", p.Common.UI},
		{"tab.unfocusedActiveForeground", p.tabActiveFg},
		{"tab.unfocusedInactiveForeground", p.Common.UI},
		{"tab.hoverBackground", p.Common.Bg.Brighten(0.2)},
		{"tab.unfocusedHoverBackground", p.Common.Bg.Brighten(0.2)},
		{"tab.hoverForeground", p.tabHoverFg},
		{"tab.unfocusedHoverForeground", p.tabHoverFg},
		{"tab.hoverBorder", transparent},
		{"tab.unfocusedHoverBorder", transparent},
		{"editorPane.background", p.Common.Bg},

		{"editor.background", p.Common.Bg},
		{"editor.foreground", p.Common.Fg},
		{"editorLineNumber.foreground", p.UI.Gutter.Normal},
		{"editorLineNumber.activeForeground", p.UI.Gutter.Active},
		{"editorCursor.background", transparent},
		{"editorCursor.foreground", p.Common.Accent},
		{"editor.selectionBackground", p.selectionBg},
		{"editor.selectionForeground", p.selectionFg},
		{"editor.inactiveSelectionBackground", p.UI.Selection.Inactive},
		{"editor.selectionHighlightBackground", p.UI.Selection.Inactive},
		{"editor.selectionHighlightBorder", optional(p.UI.Selection.Border)},
		{"editor.wordHighlightBackground", p.VCS.Modified.Alpha(0.07)},
		{"editor.wordHighlightBorder", transparent},
		{"editor.wordHighlightStrongBackground", p.VCS.Added.Alpha(0.07)},
		{"editor.wordHighlightStrongBorder", transparent},
		{"editor.findMatchBackground", p.Common.Accent.Alpha(0.05)},
		{"editor.findMatchBorder", transparent},
		{"editor.findMatchHighlightBackground", p.Common.Accent.Alpha(0.05)},
		{"editor.findMatchHighlightBorder", transparent},
		{"editor.findRangeHighlightBackground", p.UI.Selection.Inactive},
		{"editor.findRangeHighlightBorder", transparent},
		{"editor.hoverHighlightBackground", p.Common.Bg.Darken(0.8).Alpha(0.2)},
		{"editor.lineHighlightBackground", p.Common.Bg.Darken(0.2)},
		{"editor.lineHighlightBorder", transparent},
		{"editorLink.activeForeground", p.Common.Accent},
		{"editor.rangeHighlightBackground", p.Common.Bg.Darken(0.8).Alpha(0.2)},
		{"editor.rangeHighlightBorder", transparent},
		{"editor.symbolHighlightBackground", p.Common.Bg.Darken(0.8).Alpha(0.2)},
		{"editor.symbolHighlightBorder", transparent},
		{"editorWhitespace.foreground", p.UI.Gutter.Normal},
		{"editorIndentGuide.background", p.UI.Guide.Normal},
		{"editorIndentGuide.activeBackground", p.UI.Guide.Active},
		{"editorRuler.foreground", p.UI.Guide.Normal},

		{"editorCodeLens.foreground", p.Syntax.Comment},

		{"editorLightBulb.foreground", p.Common.Accent},

		{"editorBracketMatch.background", p.UI.Gutter.Normal.Alpha(0.3)},
		{"editorBracketMatch.border", p.UI.Gutter.Active.Alpha(0.6)},
		{"editorOverviewRuler.border", transparent},
		{"editorOverviewRuler.findMatchForeground", p.Common.Accent.Alpha(0.8)},
		{"editorOverviewRuler.wordHighlightForeground", p.Common.Accent.Alpha(0.4)},
		{"editorOverviewRuler.wordHighlightStrongForeground", p.Common.Accent.Alpha(0.4)},
		{"editorOverviewRuler.modifiedForeground", p.Syntax.Entity.Alpha(0.35)},
		{"editorOverviewRuler.addedForeground", p.VCS.Added.Alpha(0.6)},
		{"editorOverviewRuler.deletedForeground", p.VCS.Removed.Alpha(0.6)},
		{"editorOverviewRuler.errorForeground", p.Syntax.Error},
		{"editorOverviewRuler.warningForeground", p.UI.State.Warning},
		{"editorOverviewRuler.infoForeground", p.Common.Accent},

		{"editorError.foreground", p.UI.State.Error},
		{"editorError.border", transparent},
		{"editorWarning.foreground", p.Syntax.Entity},
		{"editorWarning.border", transparent},
		{"editorInfo.foreground", p.Common.Accent},
		{"editorInfo.border", transparent},
		{"editorHint.border", transparent},
		{"editorGutter.background", p.Common.Bg},
		{"editorGutter.modifiedBackground", p.VCS.Modified.Alpha(0.6)},
		{"editorGutter.addedBackground", p.VCS.Added.Alpha(0.6)},
		{"editorGutter.deletedBackground", p.VCS.Removed.Alpha(0.6)},

		{"diffEditor.insertedTextBackground", p.VCS.Added.Alpha(0.25)},
		{"diffEditor.insertedTextBorder", transparent},
		{"diffEditor.removedTextBackground", p.VCS.Removed.Alpha(0.25)},
		{"diffEditor.removedTextBorder", transparent},
		{"diffEditor.border", transparent},

		{"editorWidget.foreground", p.Common.Fg},
		{"editorWidget.background", p.UI.Popover.Bg},
		{"editorWidget.border", optional(p.UI.Popover.Border)},
		{"editorWidget.resizeBorder", optional(p.UI.Popover.Border)},
		{"editorSuggestWidget.background", p.UI.Popover.Bg},
		{"editorSuggestWidget.border", optional(p.UI.Popover.Border)},
		{"editorSuggestWidget.foreground", p.Common.UI.Brighten(0.2)},
		{"editorSuggestWidget.highlightForeground", p.Common.UI.Brighten(0.2)},
		{"editorSuggestWidget.selectedBackground", p.listActiveBg},
		{"editorHoverWidget.foreground", p.Common.UI},
		{"editorHoverWidget.background", p.UI.Popover.Bg},
		{"editorHoverWidget.border", optional(p.UI.Popover.Border)},
		{"editorHoverWidget.statusBarBackground", p.UI.Popover.Bg},
		{"debugExceptionWidget.background", p.UI.Popover.Bg},
		{"debugExceptionWidget.border", optional(p.UI.Popover.Border)},
		{"editorMarkerNavigation.background", p.UI.Popover.Bg},
		{"editorMarkerNavigationError.background", p.UI.State.Error},
		{"editorMarkerNavigationWarning.background", p.UI.State.Warning},
		{"editorMarkerNavigationInfo.background", p.UI.State.Info},

		{"peekViewEditor.background", p.UI.Popover.Bg},
		{"peekView.border", optional(p.UI.Popover.Border)},
		{"peekViewEditorGutter.background", p.UI.Popover.Bg},
		{"peekViewEditor.matchHighlightBackground", p.selectionBg},
		{"peekViewEditor.matchHighlightBorder", transparent},
		{"peekViewResult.background", p.UI.Popover.Bg},
		{"peekViewResult.matchHighlightBackground", p.selectionBg},
		{"peekViewResult.selectionBackground", p.selectionBg},
		{"peekViewResult.selectionForeground", p.selectionFg},
		{"peekViewTitle.background", p.UI.Popover.Bg},
		{"peekViewTitleDescription.foreground", p.Common.UI},
		{"peekViewTitleLabel.foreground", p.Common.UI},

		{"merge.currentHeaderBackground", p.UI.Button.Bg.Brighten(0.2).Alpha(0.4)},
		{"merge.currentContentBackground", p.UI.Button.Bg.Brighten(0.2).Alpha(0.25)},
		{"merge.incomingHeaderBackground", p.UI.Button.Bg.Brighten(0.2).Alpha(0.4)},
		{"merge.incomingContentBackground", p.UI.Button.Bg.Brighten(0.2).Alpha(0.25)},
		{"merge.border", transparent},

		{"panel.background", p.Common.Bg},
		{"panel.border", transparent},
		{"panelTitle.activeBorder", transparent},
		{"panelTitle.activeForeground", p.Common.Fg},
		{"panelTitle.inactiveForeground", p.Common.UI.Brighten(0.2)},

		{"statusBar.background", p.Common.Bg},
		{"statusBar.foreground", p.Common.UI.Brighten(0.2)},
		{"statusBar.border", transparent},
		{"statusBar.debuggingBackground", p.Syntax.Constant},
		{"statusBar.debuggingForeground", p.Common.Fg},
		{"statusBar.debuggingBorder", transparent},
		{"statusBar.noFolderForeground", p.Common.UI.Brighten(0.2)},
		{"statusBar.noFolderBackground", p.Common.Bg},
		{"statusBar.noFolderBorder", transparent},
		{"statusBarItem.activeBackground", transparent},
		{"statusBarItem.hoverBackground", transparent},
		{"statusBarItem.prominentForeground", p.Common.Fg},
		{"statusBarItem.prominentBackground", transparent},
		{"statusBarItem.prominentHoverBackground", transparent},

		{"titleBar.activeBackground", p.Common.Bg},
		{"titleBar.activeForeground", p.Common.Fg},
		{"titleBar.inactiveBackground", p.Common.Bg},
		{"titleBar.inactiveForeground", p.Common.UI.Brighten(0.2)},
		{"titleBar.border", transparent},

		{"menubar.selectionForeground", p.Common.Fg},
		{"menubar.selectionBorder", optional(p.UI.Popover.Border)},
		{"menu.foreground", p.Common.UI.Brighten(0.2)},
		{"menu.background", p.UI.Popover.Bg},
		{"menu.border", optional(p.UI.Popover.Border)},
		{"menu.selectionForeground", p.Common.Fg},
		{"menu.selectionBorder", optional(p.UI.Popover.Border)},
		{"menu.separatorBackground", transparent},

		{"notificationCenter.border", optional(p.UI.Popover.Border)},
		{"notificationCenterHeader.foreground", p.Common.UI.Brighten(0.2)},
		{"notificationCenterHeader.background", p.UI.Popover.Bg},
		{"notificationToast.border", transparent},
		{"notifications.foreground", p.Common.Fg},
		{"notifications.background", p.UI.Popover.Bg},
		{"notifications.border", optional(p.UI.Popover.Border)},
		{"notificationLink.foreground", p.Common.Accent},

		{"extensionButton.prominentForeground", p.Common.Bg.Fade(0.5)},
		{"extensionButton.prominentBackground", p.Common.Accent},
		{"extensionButton.prominentHoverBackground", p.Common.Accent.Darken(0.1)},
		{"extensionBadge.remoteBackground", p.badgeBg},
		{"extensionBadge.remoteForeground", p.badgeFg},

		{"pickerGroup.border", optional(p.UI.Popover.Border)},
		{"pickerGroup.foreground", p.Common.UI.Fade(0.5)},
		{"quickInput.background", p.UI.Popover.Bg},
		{"quickInput.foreground", p.Common.UI.Brighten(0.2)},

		{"terminal.background", p.Common.Bg},
		{"terminal.border", transparent},
		{"terminal.foreground", p.Common.UI.Brighten(0.2)},
		{"terminal.ansiBlack", p.Chalk.Black},
		{"terminal.ansiRed", p.Chalk.Red},
		{"terminal.ansiGreen", p.Chalk.Green},
		{"terminal.ansiYellow", p.Chalk.Yellow},
		{"terminal.ansiBlue", p.Chalk.Blue},
		{"terminal.ansiMagenta", p.Chalk.Magenta},
		{"terminal.ansiCyan", p.Chalk.Cyan},
		{"terminal.ansiWhite", p.Chalk.White},
		{"terminal.ansiBrightBlack", p.Chalk.Black.Brighten(p.lift(0.2))},
		{"terminal.ansiBrightRed", p.Chalk.Red.Brighten(0.3)},
		{"terminal.ansiBrightGreen", p.Chalk.Green.Brighten(0.3)},
		{"terminal.ansiBrightYellow", p.Chalk.Yellow.Brighten(0.3)},
		{"terminal.ansiBrightBlue", p.Chalk.Blue.Brighten(0.3)},
		{"terminal.ansiBrightMagenta", p.Chalk.Magenta.Brighten(0.3)},
		{"terminal.ansiBrightCyan", p.Chalk.Cyan.Brighten(0.3)},
		{"terminal.ansiBrightWhite", p.Chalk.White.Brighten(p.lift(0.2))},
		{"terminal.selectionBackground", p.selectionBg},
		{"terminalCursor.background", transparent},
		{"terminalCursor.foreground", p.Common.Accent},

		{"debugToolBar.background", p.UI.Panel.Bg},
		{"debugToolBar.border", optional(p.UI.Panel.Border)},
		{"debugTokenExpression.name", p.Common.UI},
		{"debugTokenExpression.value", p.Syntax.Entity},
		{"debugTokenExpression.string", p.Syntax.String},
		{"debugTokenExpression.boolean", p.Syntax.Boolean},
		{"debugTokenExpression.number", p.Syntax.Number},
		{"debugTokenExpression.error", p.Syntax.Error},

		{"gitDecoration.addedResourceForeground", p.Common.UI.Brighten(0.2)},
		{"gitDecoration.modifiedResourceForeground", p.Common.UI.Brighten(0.2)},
		{"gitDecoration.deletedResourceForeground", p.Common.UI.Brighten(0.2)},
		{"gitDecoration.untrackedResourceForeground", p.Common.UI.Brighten(0.2)},
		{"gitDecoration.ignoredResourceForeground", p.Common.UI.Fade(0.2)},
		{"gitDecoration.conflictingResourceForeground", p.Common.UI.Brighten(0.2)},
		{"gitDecoration.submoduleResourceForeground", p.Common.UI.Brighten(0.2)},

		{"settings.checkboxBackground", p.UI.Popover.Bg},
		{"settings.checkboxForeground", p.Common.UI.Brighten(0.2)},
		{"settings.checkboxBorder", optional(p.UI.Popover.Border)},

		{"breadcrumb.foreground", p.Common.UI.Brighten(0.2)},
		{"breadcrumb.background", p.Common.Bg},
		{"breadcrumb.focusForeground", p.Common.Fg},
		{"breadcrumb.activeSelectionForeground", p.Common.UI.Brighten(0.2)},

		{"symbolIcon.arrayForeground", p.Syntax.Punctuation},
		{"symbolIcon.booleanForeground", p.Syntax.Boolean},
		{"symbolIcon.classForeground", p.Syntax.Class},
		{"symbolIcon.colorForeground", p.Syntax.Special},
		{"symbolIcon.constantForeground", p.Syntax.Constant},
		{"symbolIcon.constructorForeground", p.Syntax.Func},
		{"symbolIcon.enumeratorForeground", p.enum},
		{"symbolIcon.enumeratorMemberForeground", p.enumMember},
		{"symbolIcon.eventForeground", p.Syntax.Variable},
		{"symbolIcon.fieldForeground", p.Syntax.Entity},
		{"symbolIcon.fileForeground", p.Syntax.Special},
		{"symbolIcon.folderForeground", p.Syntax.Special},
		{"symbolIcon.functionForeground", p.Syntax.Func},
		{"symbolIcon.interfaceForeground", p.iface},
		{"symbolIcon.keyForeground", p.objectKey},
		{"symbolIcon.keywordForeground", p.Syntax.Keyword},
		{"symbolIcon.methodForeground", p.Syntax.Func},
		{"symbolIcon.moduleForeground", p.keywordControl},
		{"symbolIcon.namespaceForeground", p.namespace},
		{"symbolIcon.nullForeground", p.null},
		{"symbolIcon.numberForeground", p.Syntax.Number},
		{"symbolIcon.objectForeground", p.Common.UI},
		{"symbolIcon.operatorForeground", p.Syntax.Operator},
		{"symbolIcon.packageForeground", p.keywordControl},
		{"symbolIcon.propertyForeground", p.objectKey},
		{"symbolIcon.referenceForeground", p.reference},
		{"symbolIcon.snippetForeground", p.Syntax.Entity},
		{"symbolIcon.stringForeground", p.Syntax.String},
		{"symbolIcon.structForeground", p.Syntax.Special},
		{"symbolIcon.textForeground", p.Common.Fg},
		{"symbolIcon.typeParameterForeground", p.typeParam},
		{"symbolIcon.unitForeground", p.Syntax.Keyword},
		{"symbolIcon.variableForeground", p.Syntax.Variable},

		{"debugIcon.breakpointForeground", p.Common.Accent},
		{"debugIcon.breakpointDisabledForeground", p.UI.State.Error},
		{"debugIcon.startForeground", p.UI.State.Success},
		{"debugIcon.pauseForeground", p.UI.State.Success.Mix(p.UI.State.Info, 0.5)},
		{"debugIcon.stopForeground", p.UI.State.Error},
		{"debugIcon.disconnectForeground", p.UI.State.Error.Mix(p.UI.State.Warning, 0.5)},
		{"debugIcon.restartForeground", p.UI.State.Info},
		{"debugIcon.stepOverForeground", p.UI.State.Info},
		{"debugIcon.stepIntoForeground", p.UI.State.Info},
		{"debugIcon.stepOutForeground", p.UI.State.Info},
		{"debugIcon.continueForeground", p.UI.State.Success},
		{"debugIcon.stepBackForeground", p.UI.State.Success.Mix(p.UI.State.Info, 0.5)},
		{"debugConsole.infoForeground", p.UI.State.Info},
		{"debugConsole.warningForeground", p.UI.State.Warning},
		{"debugConsole.errorForeground", p.UI.State.Error},
	}
}
