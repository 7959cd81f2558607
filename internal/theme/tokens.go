package theme

import "github.com/slimy-theme/slimy/internal/color"

type fontStyle int

const (
	styleNone fontStyle = iota
	styleItalic
	styleBold
	styleBoldItalic
	styleReset
	styleItalicOrReset
)

// resolve returns nil when the rule should carry no fontStyle at all.
func (s fontStyle) resolve(italics bool) *string {
	var v string
	switch s {
	case styleItalic:
		if !italics {
			return nil
		}
		v = "italic"
	case styleBold:
		v = "bold"
	case styleBoldItalic:
		v = "bold"
		if italics {
			v = "bold italic"
		}
	case styleReset:
		v = ""
	case styleItalicOrReset:
		if italics {
			v = "italic"
		}
	default:
		return nil
	}
	return &v
}

// tokenRule is one row of the TextMate table. A zero fg or bg is left out
// of the output, and scope is a string, a []string, or nil.
type tokenRule struct {
	name  string
	scope interface{}
	fg    color.Color
	bg    color.Color
	style fontStyle
}

func (r tokenRule) render(italics bool) TokenColor {
	tc := TokenColor{
		Name:  r.name,
		Scope: r.scope,
		Settings: TokenSettings{
			FontStyle: r.style.resolve(italics),
		},
	}
	if !r.fg.IsZero() {
		tc.Settings.Foreground = r.fg.Hex()
	}
	if !r.bg.IsZero() {
		tc.Settings.Background = r.bg.Hex()
	}
	return tc
}

// tokenRules is the TextMate rule table, in output order. Later rules win
// in VS Code, so order is significant.
func tokenRules(p *palette) []tokenRule {
	return []tokenRule{
		{
			name: "Globals",
			bg:   p.Common.Bg,
			fg:   p.Common.Fg,
		},
		{
			name: "Diffs",
			scope: []string{
				"meta.diff.header",
				"meta.diff.header.git",
				"meta.diff.header.from-file",
				"meta.diff.header.to-file",
			},
			fg:    p.VCS.Modified,
			style: styleItalic,
		},
		{
			name:  "Changed",
			scope: []string{"markup.changed"},
			fg:    p.VCS.Modified,
			style: styleItalic,
		},
		{
			name:  "Deleted",
			scope: []string{"markup.deleted"},
			fg:    p.VCS.Removed,
			style: styleItalic,
		},
		{
			name:  "Inserted",
			scope: []string{"markup.inserted"},
			fg:    p.VCS.Added,
			style: styleItalic,
		},
		{
			name:  "Markup Strike",
			scope: []string{"markup.strike"},
			fg:    p.Syntax.Special,
		},
		{
			name:  "Markup Table",
			scope: []string{"markup.table"},
			fg:    p.Syntax.Tag,
		},
		{
			name: "Comments",
			scope: []string{
				"comment",
				"punctuation.definition.comment",
			},
			fg: p.Syntax.Comment,
		},
		{
			name: "Strings",
			scope: []string{
				"string",
				"string.quoted",
				"string.quoted.single.js",
				"string.quoted.single.ts",
				"invalid.illegal.bad-ampersand.html",
				"string.quoted.double.html invalid.illegal.bad-ampersand.html",
				"string.quoted.single.html invalid.illegal.bad-ampersand.html",
			},
			fg: p.Syntax.String,
		},
		{
			name: "Text",
			scope: []string{
				"text",
				"text.html.basic",
				"source",
				"meta.tag.jsx",
				"meta.tag.tsx",
				"meta.jsx.children",
				"meta.tsx.children",
				"meta.jsx.children.js",
				"meta.tsx.children.js",
				"meta.jsx.children.tsx",
				"meta.tsx.children.tsx",
			},
			fg: p.Common.Fg,
		},
		{
			name: "Numbers",
			scope: []string{
				"constant.numeric",
				"constant.character.numeric",
			},
			fg: p.Syntax.Number,
		},
		{
			name: "Units",
			scope: []string{
				"constant.length.units",
				"constant.percentage.units",
				"constant.angle.units",
				"meta.at-rule.keyword.other.unit.media",
				"keyword.other.unit.css",
				"keyword.other.unit.sass",
				"keyword.other.unit.scss",
			},
			fg: p.Syntax.Keyword,
		},
		{
			name: "Boolean",
			scope: []string{
				"constant.language.boolean",
				"meta.tag.any.html.string.quoted.double.embedded.line.php.source.constant.language.inline",
				"meta.embedded.line.php.source.constant.language",
			},
			fg: p.Syntax.Boolean,
		},
		{
			name:  "Null",
			scope: []string{"constant.language.null"},
			fg:    p.null,
		},
		{
			name:  "Undefined",
			scope: []string{"constant.language.undefined"},
			fg:    p.undefined,
		},
		{
			name:  "NaN",
			scope: []string{"constant.language.nan"},
			fg:    p.nan,
		},
		{
			name: "Regular Expressions",
			scope: []string{
				"string.regexp",
				"string.regexp keyword.other",
			},
			fg: p.Syntax.Regexp,
		},
		{
			name:  "Regular Expression Quantifier",
			scope: "keyword.operator.quantifier.regexp",
			fg:    p.Syntax.Entity.Brighten(0.2),
		},
		{
			name:  "Regular Expression Brackets",
			scope: "punctuation.definition.character-class.regexp",
			fg:    p.Syntax.Markup.Brighten(0.15),
		},
		{
			name:  "Regular Expression Group",
			scope: "punctuation.definition.group.regexp",
			fg:    p.Syntax.Error.Brighten(0.2),
		},
		{
			name:  "Regular Expression Group Nocapture",
			scope: "punctuation.definition.group.no-capture.regexp",
			fg:    p.Syntax.Constant.Brighten(0.15),
		},
		{
			name:  "Regular Expression Anchor",
			scope: "keyword.control.anchor.regexp",
			fg:    p.Syntax.Special.Brighten(0.15),
		},
		{
			name: "Constants",
			scope: []string{
				"constant",
				"constant.language",
				"punctuation.definition.constant",
				"constant.language.python",
				"variable.other.constant.property",
				"constant.other",
				"support.constant",
			},
			fg: p.Syntax.Constant,
		},
		{
			name: "Constant Character Escape",
			scope: []string{
				"constant.character",
				"constant.character.escape",
			},
			fg: p.Syntax.Regexp.Brighten(0.2),
		},
		{
			name:  "Support Constant Math",
			scope: "support.constant.math",
			fg:    p.Common.Fg,
		},
		{
			name:  "Entity name",
			scope: []string{"entity.name"},
			fg:    p.Syntax.Entity,
		},
		{
			name: "Classes",
			scope: []string{
				"support.type",
				"support.class",
				"support.class.php",
				"entity.name.class",
				"entity.name.type.class",
				"entity.name.type.instance",
				"meta.class",
				"meta.class entity.name.type.class",
				"meta.class entity.name.type.class.tsx",
				"source.go storage.type",
				"new.expr.ts entity.name.type.ts",
			},
			fg: p.Syntax.Class,
		},
		{
			name:  "Delimiters",
			scope: []string{"none"},
			fg:    p.Common.Fg,
		},
		{
			name:  "Separator",
			scope: "meta.separator",
			fg:    p.Syntax.Comment,
		},
		{
			name: "Punctuation",
			scope: []string{
				"block.brace.array.literal.square",
				"block.punctuation",
				"meta.delimiter",
				"meta.delimiter.comma",
				"meta.function meta.delimiter.comma",
				"meta.function punctuation.separator.comma",
				"punctuation",
				"punctuation.definition",
				"punctuation.decorator.objectliteral.object.member.accessor",
				"punctuation.section",
				"punctuation.section.function",
				"punctuation.separator",
				"punctuation.support.type.property-name",
				"punctuation.terminator",
				"punctuation.accessor",
				"string.template punctuation.definition.string",
				"keyword.operator.css",
				"meta.at-rule.media.scss",
				"meta.function.closure.php",
				"meta.function-call.php punctuation",
				"meta.structure.dictionary.json support.type.property-name.json punctuation.support.type.property-name.begin.json",
				"meta.structure.dictionary.json support.type.property-name.json punctuation.support.type.property-name.end.json",
				"meta.structure.dictionary.value.json string.quoted.double.json punctuation.definition.string.begin.json",
				"meta.structure.dictionary.value.json string.quoted.double.json punctuation.definition.string.end.json",
				"meta.type.annotation.ts",
				"punctuation.accessor.js",
				"punctuation.accessor.ts",
				"punctuation.definition.string.begin.js",
				"punctuation.definition.string.begin.ts",
				"punctuation.definition.string.end.js",
				"punctuation.definition.string.end.ts",
				"punctuation.support.type.property-name.begin.json",
				"punctuation.support.type.property-name.end.json",
				"source.css.scss",
				"string.quoted.double.html punctuation.definition.string.begin.html",
				"string.quoted.double.html punctuation.definition.string.end.html",
				"text.html.php meta.embedded.block.php source.php",
				"text.html.php meta.embedded.line.php source.php",
				"text.html.php meta.tag.block.any.html",
			},
			fg: p.Syntax.Punctuation,
		},
		{
			name:  "Curly braces",
			scope: []string{"meta.brace.curly"},
			fg:    p.Common.Fg.Alpha(0.9),
		},
		{
			name:  "Round braces",
			scope: []string{"meta.brace.round"},
			fg:    p.Common.Fg.Alpha(0.8),
		},
		{
			name: "Square braces",
			scope: []string{
				"meta.brace.square",
				"brace.array.literal.square",
			},
			fg: p.Common.Fg.Brighten(0.15).Alpha(0.9),
		},
		{
			name: "Logical Operator",
			scope: []string{
				"keyword.operator",
				"keyword.operator.comparison",
				"keyword.operator.logical",
				"keyword.operator.ternary",
			},
			fg: p.Common.UI.Brighten(0.3),
		},
		{
			name: "Decorators/annotation",
			scope: []string{
				"meta.function.decorator",
				"meta.decorator variable.other",
				"meta.decorator punctuation.decorator",
				"storage.type.annotation",
				"punctuation.decorator.ts",
				"punctuation.decorator.tsx",
				"meta.function.decorator support.type.python",
				"entity.name.function.decorator.python",
				"entity.name.function.decorator.python punctuation.definition",
			},
			fg: p.Syntax.Special,
		},
		{
			name:  "Invalid",
			scope: []string{"invalid"},
			fg:    p.Syntax.Error,
		},
		{
			name:  "Italics",
			scope: "italic",
			style: styleItalic,
		},
		{
			name:  "Bold",
			scope: "bold",
			style: styleBold,
		},
		{
			name: "Bold italic",
			scope: []string{
				"bold italic",
				"italic bold",
			},
			style: styleBoldItalic,
		},
		{
			name:  "Function keyword",
			scope: []string{"storage.type.function"},
			fg:    p.Chalk.Orange,
			style: styleItalic,
		},
		{
			name: "Function names",
			scope: []string{
				"meta.function",
				"meta.require",
				"support.function.any-method",
				"entity.name.function",
				"entity.name.function.ts",
				"entity.name.function.tsx",
				"entity.name.function.attribute.rust",
				"meta.var.expr entity.name.function.ts",
				"meta.var.expr entity.name.function.tsx",
				"source.ruby variable.other.readwrite",
			},
			fg: p.Syntax.Func,
		},
		{
			name:  "Macros",
			scope: []string{"support.macro"},
			fg:    p.Syntax.Markup,
		},
		{
			name: "Function call",
			scope: []string{
				"variable.function",
				"variable.annotation",
				"entity.name.function.tagged-template",
				"meta.function-call.generic",
				"meta.function-call entity.name.function",
				"meta.method-call entity.name.function",
				"meta.function-call entity.name.function.ts",
				"meta.function-call entity.name.function.tsx",
				"meta.function-call.php support.function",
				"meta.function-call.python meta.function-call.generic.python",
				"meta.function-call.python support.function.builtin.python",
				"meta.function-call.generic.python",
				"meta.method-call entity.name.function.ts",
				"meta.method-call entity.name.function.tsx",
				"source.js support.function",
				"source.ts support.function",
				"source.tsx support.function",
				"string.quasi.js entity.name.tag.js",
				"support.function.css",
				"support.function.go",
				"variable.language.super",
			},
			fg:    p.Syntax.Func.Brighten(0.2),
			style: styleItalic,
		},
		{
			name: "Doctypes",
			scope: []string{
				"meta.tag.sgml.doctype",
				"meta.tag.metadata.doctype",
				"entity.name.tag.doctype",
			},
			fg: p.Syntax.Markup.Darken(0.15),
		},
		{
			name: "Meta Tag",
			scope: []string{
				"meta.tag",
				"punctuation.definition.tag",
				"punctuation.definition.tag.end",
				"punctuation.definition.tag.begin",
				"punctuation.definition.tag.begin.html source.js",
				"punctuation.definition.tag.end.html source.js",
			},
			fg: p.Common.UI.Brighten(0.2),
		},
		{
			name:  "Keywords",
			scope: []string{"keyword"},
			fg:    p.Syntax.Keyword,
		},
		{
			name: "Keyword `new`",
			scope: []string{
				"keyword.operator.new",
				"keyword.other.new",
			},
			style: styleItalic,
		},
		{
			name:  "Output",
			scope: []string{"support.function.construct.output"},
			style: styleItalic,
		},
		{
			name: "Keyword control",
			scope: []string{
				"keyword.control",
				"keyword.control.import",
				"keyword.control.export",
				"keyword.control.flow",
				"keyword.control.from",
				"storage.type.extends",
				"storage.type.function.arrow",
				"storage.type.function.arrow.js",
				"storage.type.function.arrow.jsx",
				"storage.type.function.arrow.ts",
				"storage.type.function.arrow.tsx",
			},
			fg:    p.keywordControl,
			style: styleItalic,
		},
		{
			name: "Storage",
			scope: []string{
				"storage",
				"meta.var.expr",
				"meta.class meta.method.declaration meta.var.expr storage.type.js",
				"storage.type.property.js",
				"storage.type.property.jsx",
				"storage.type.property.ts",
				"storage.type.property.tsx",
			},
			fg: p.Syntax.Storage,
		},
		{
			name: "Storage type",
			scope: []string{
				"storage.type",
				"source.java storage.type",
				"source.haskell storage.type",
				"source.c storage.type",
			},
			fg: p.Chalk.Orange.Brighten(p.lift(0.3)).Desaturate(0.5).Fade(0.1),
		},
		{
			name:  "Storage modifier",
			scope: []string{"storage.modifier"},
			fg:    p.Syntax.Markup.Fade(0.2),
		},
		{
			name: "Primitive storage types",
			scope: []string{
				"storage.type.primitive",
				"source.java storage.type.primitive",
			},
			fg: p.Syntax.Tag,
		},
		{
			name: "Variables",
			scope: []string{
				"entity.name.variable",
				"punctuation.definition.variable.php",
				"source.python variable.language.special",
				"support.variable",
				"variable",
				"variable.member",
				"variable.language",
				"variable.language.this.php",
				"variable.language.this.php punctuation.definition.variable",
				"variable.other",
				"variable.other.event",
				"variable.other.php",
				"variable.other.global",
				"variable.other.global.php",
				"variable.other.global.php punctuation.definition.variable",
				"variable.other.property",
				"variable.other.property.php",
				"variable.other.readwrite",
				"variable.other.readwrite.alias",
				"variable.other.readwrite.alias",
				"variable.other.readwrite.alias",
				"variable.other.readwrite.alias.ts",
				"variable.other.readwrite.alias.tsx",
				"variable.other.readwrite.ts",
				"variable.other.readwrite.tsx",
				"variable.other.ts",
				"variable.other.tsx",
				"variable.parameter.url.sass",
				"variable.parameter.url.scss",
				"variable.sass",
				"variable.scss",
				"variable.ts",
				"variable.tsx",
			},
			fg: p.Syntax.Variable,
		},
		{
			name:  "Invalid",
			scope: "invalid.illegal",
			fg:    p.Common.Fg.Alpha(0.8),
		},
		{
			name:  "Invalid Deprecated",
			scope: "invalid.deprecated",
			fg:    p.Common.Fg.Alpha(0.8),
		},
		{
			name: "Object",
			scope: []string{
				"support.type.object",
				"support.variable.object.process.js",
				"support.variable.object.process.jsx",
				"support.variable.object.process.ts",
				"support.variable.object.process.tsx",
				"variable.other.object.js",
				"variable.other.object.jsx",
				"variable.other.object.ts",
				"variable.other.object.tsx",
			},
			fg: p.Syntax.Special.Brighten(p.lift(0.5)).Desaturate(1),
		},
		{
			name:  "DOM Object",
			scope: []string{"support.type.object.dom"},
			fg:    p.Syntax.Entity,
		},
		{
			name: "Object keys",
			scope: []string{
				"meta.object-literal.key",
				"meta.object-literal.key",
				"meta.object.member",
				"meta.object.member.object-literal.key",
				"constant.other.object.key",
				"constant.other.object.key.js",
				"constant.other.object.key.js string.quoted.single.js",
				"constant.other.object.key.js string.quoted.double.js",
				"constant.other.object.key.js string.unquoted.js",
				"meta.object-literal.key.js entity.name.function.js",
				"meta.object-literal.key.ts string.quoted.double.ts",
				"meta.object-literal.key.tsx string.quoted.double.tsx",
			},
			fg: p.objectKey,
		},
		{
			name: "This",
			scope: []string{
				"variable.language.this",
				"variable.language.this.ts",
				"variable.language.this.tsx",
				"variable.language.special.self.python",
			},
			fg: p.Syntax.Special.Brighten(p.lift(0.3)).Desaturate(1),
		},
		{
			name: "Variable parameter",
			scope: []string{
				"variable.parameter",
				"meta.parameter",
			},
			fg: p.Syntax.Variable.Brighten(0.4),
		},
		{
			name:  "Variable parameter function",
			scope: []string{"variable.parameter.function"},
			fg:    p.Syntax.Variable,
		},
		{
			name:  "Function storage block",
			scope: "function.storage.type.block",
			fg:    p.Syntax.Tag.Brighten(0.05),
		},
		{
			name:  "Types",
			scope: []string{"entity.name.type"},
			fg:    p.Syntax.Type,
		},
		{
			name:  "Type params",
			scope: []string{"meta.type.parameters entity.name.type"},
			fg:    p.typeParam,
		},
		{
			name:  "Type inherited class",
			scope: []string{"entity.other.inherited-class"},
			fg:    p.Syntax.Type.Alpha(0.75),
		},
		{
			name:  "Interfaces",
			scope: []string{"entity.name.type.interface"},
			fg:    p.iface,
		},
		{
			name:  "Enums",
			scope: []string{"entity.name.type.enum"},
			fg:    p.enum,
		},
		{
			name:  "Enum members",
			scope: []string{"variable.other.enummember"},
			fg:    p.enumMember,
		},
		{
			name: "Namespaces",
			scope: []string{
				"entity.name.namespace",
				"entity.name.type.namespace",
				"meta.namespace",
				"meta.namespace.declaration.ts",
				"support.other.namespace",
			},
			fg: p.namespace,
		},
		{
			name:  "Info token",
			scope: "token.info-token",
			fg:    p.Common.Accent,
		},
		{
			name:  "Warning token",
			scope: "token.warn-token",
			fg:    p.Syntax.Entity,
		},
		{
			name:  "Error token",
			scope: "token.error-token",
			fg:    p.Syntax.Error,
		},
		{
			name:  "Debug token",
			scope: "token.debug-token",
			fg:    p.Syntax.Constant,
		},
		{
			name: "Entity names in code documentations",
			scope: []string{
				"entity.name.type.instance.jsdoc",
				"entity.name.type.instance.phpdoc",
				"entity.name.type.instance.sassdoc",
				"meta.other.type.phpdoc",
				"meta.other.type.phpdoc support.class.php",
				"meta.other.type.phpdoc keyword.other.type.php",
			},
			fg: p.Syntax.Entity.Brighten(p.sink(0.2)),
		},
		{
			name: "Other Variables in Code Documentations",
			scope: []string{
				"variable.other.jsdoc",
				"variable.other.phpdoc",
				"variable.other.sassdoc",
				"comment.block.documentation punctuation.definition",
				"comment.block.documentation storage.type",
			},
			fg: p.Syntax.Variable.Brighten(p.sink(0.2)).Fade(0.3),
		},
		{
			name:  "CSS",
			scope: "source.css",
			fg:    p.Common.Fg.Brighten(p.lift(0.15)),
		},
		{
			name: "CSS class selector",
			scope: []string{
				"entity.other.attribute-name.class.css",
				"entity.other.attribute-name.parent-selector-suffix.scss",
				"meta.selector",
			},
			fg: p.Syntax.CSSClass,
		},
		{
			name: "CSS Class Selector punctuation",
			scope: []string{
				"entity.punctuation.other.attribute-name.class.css.definition",
				"entity.scss.meta.property-list.punctuation.other.attribute-name.class.css.definition",
				"punctuation.definition.entity.css",
				"meta.selector.css",
			},
			fg: p.Syntax.Special.Brighten(0.2),
		},
		{
			name: "CSS Tag Selector",
			scope: []string{
				"entity.name.tag.css",
				"entity.name.tag.scss",
			},
			fg: p.Syntax.CSSTag,
		},
		{
			name:  "CSS parent operator",
			scope: []string{"source.css keyword.operator.parent"},
			fg:    p.Syntax.Special.Brighten(0.1),
		},
		{
			name: "CSS ID selector",
			scope: []string{
				"entity.other.attribute-name.id.css",
				"entity.other.attribute-name.id.css punctuation.definition.entity.css",
			},
			fg: p.Syntax.CSSID,
		},
		{
			name: "CSS property name",
			scope: []string{
				"entity.name.tag.custom.sass",
				"entity.name.tag.custom.scss",
				"meta.property-list.css meta.property-name.css",
				"meta.property-list.scss meta.property-name.sass",
				"meta.property-list.scss meta.property-name.scss",
				"support.type.property-name.css",
				"support.type.property-name.sass",
				"support.type.property-name.scss",
			},
			fg: p.Syntax.CSSProperties,
		},
		{
			name:  "CSS Vendored Property Name",
			scope: "support.type.vendored.property-name.css",
			fg:    p.Syntax.Regexp.Brighten(p.lift(0.2)),
		},
		{
			name: "CSS property value",
			scope: []string{
				"meta.property-group support.constant.property-value.css",
				"meta.property-list.css meta.property-value.css",
				"meta.property-value support.constant.property-value.css",
				"meta.property-group support.constant.property-value.scss",
				"meta.property-group support.constant.property-value.sass",
				"meta.property-value support.constant.property-value.scss",
				"meta.property-value support.constant.property-value.sass",
				"variable.parameter.misc.css",
				"parameter.less.data-uri comment markup.raw",
				"source.less meta.property-value.css",
				"meta.property-value.scss",
				"support.constant.property-value.css",
			},
			fg: p.Common.Fg.Brighten(p.sink(0.25)),
		},
		{
			name:  "CSS Vendor Prefixed Property Value",
			scope: "support.constant.vendored.property-value.css",
			fg:    p.Syntax.Entity,
		},
		{
			name: "CSS colors",
			scope: []string{
				"constant.numeric.color.hex-value",
				"constant.other.color",
				"constant.other.color.rgb-value punctuation.definition.constant",
				"meta.property-value constant",
				"punctuation.definition.constant",
				"support.constant.color",
			},
			fg: p.Common.Fg.Brighten(p.sink(0.25)),
		},
		{
			name:  "CSS Font Names",
			scope: "support.constant.font-name.scss, support.constant.font-name.css",
			fg:    p.Common.Fg.Brighten(p.sink(0.25)),
		},
		{
			name: "CSS constructor",
			scope: []string{
				"meta.constructor.argument.css",
				"meta.constructor.argument.sass",
				"meta.constructor.argument.scss",
			},
			fg: p.Syntax.Special.Brighten(p.sink(0.3)),
		},
		{
			name: "CSS Placeholder",
			scope: []string{
				"entity.other.attribute-name.placeholder.css",
				"entity.other.attribute-name.placeholder.sass",
				"entity.other.attribute-name.placeholder.scss",
			},
			fg: p.Syntax.Markup,
		},
		{
			name: "CSS @rule",
			scope: []string{
				"keyword.control.at-rule",
				"keyword.control.at-rule punctuation.definition",
				"meta.at-rule.return",
				"meta.at-rule.if",
				"source.css keyword.control.return",
				"source.css keyword.control.content",
				"source.css keyword.control.each",
				"source.css keyword.control.if",
				"source.css keyword.control.else",
				"source.css keyword.control.warn",
				"source.css keyword.control.debug",
				"meta.preprocessor.at-rule keyword.control.at-rule",
				"meta.preprocessor.at-rule keyword.control.at-rule punctuation.definition",
				"source.css keyword.control.else punctuation.definition",
				"source.css keyword.control.return punctuation.definition",
				"source.css keyword.control.if punctuation.definition",
				"source.css keyword.control.content punctuation.definition",
				"source.css keyword.control.each punctuation.definition",
				"source.css keyword.control.warn punctuation.definition",
				"source.css keyword.control.debug punctuation.definition",
			},
			fg: p.Syntax.Error.Brighten(p.lift(1)).Desaturate(0.6),
		},
		{
			name:  "CSS @rule",
			scope: []string{"meta.at-rule.return variable.parameter.url.scss"},
			fg:    p.Common.Fg.Brighten(p.lift(0.5)),
		},
		{
			name: "CSS important",
			scope: []string{
				"keyword.other.important",
				"token.literal.sass",
			},
			fg:    p.Syntax.Error.Brighten(p.lift(0.2)),
			style: styleBold,
		},
		{
			name: "CSS pseudo",
			scope: []string{
				"entity.other.attribute-name.pseudo-class.css",
				"entity.other.attribute-name.pseudo-element.css",
				"entity.property-list.other.attribute-name.pseudo-class.css",
				"entity.property-list.other.attribute-name.pseudo-element.css",
				"entity.other.attribute-name.pseudo-class.css punctuation.definition.entity.css",
				"entity.other.attribute-name.pseudo-element.css punctuation.definition.entity.css",
				"entity.property-list.other.attribute-name.pseudo-class.css punctuation.definition.entity.css",
				"entity.property-list.other.attribute-name.pseudo-element.css punctuation.definition.entity.css",
			},
			fg: p.Syntax.Special,
		},
		{
			name: "CSS attribute name",
			scope: []string{
				"entity.other.attribute-name.attribute",
				"entity.other.attribute-name.css",
			},
			fg: p.Syntax.Error.Desaturate(1),
		},
		{
			name: "CSS at-media attribute",
			scope: []string{
				"support.type.property-name.media",
				"meta.at-rule.include.scss",
				"meta.at-rule.include.scss support.constant.math.scss",
				"source.css support.constant.media.css support.constant",
			},
			fg: p.Syntax.Regexp,
		},
		{
			name:  "SASS at-import string",
			scope: "scss.meta.at-rule.import.string.quoted.single",
			fg:    p.Syntax.Special.Brighten(p.sink(0.15)),
		},
		{
			name: "SASS @mixin + @function name",
			scope: []string{
				"source.css meta.at-rule.function support.function",
				"source.css meta.at-rule.mixin entity.name.function",
				"source.css meta.at-rule.include entity.name.function",
				"source.css support.function.misc",
			},
			fg: p.Syntax.Markup,
		},
		{
			name: "SASS Interpolation",
			scope: []string{
				"variable.interpolation.sass",
				"variable.interpolation.scss",
				"support.function.interpolation.sass",
				"support.function.interpolation.scss",
				"punctuation.definition.interpolation.begin.bracket.curly.sass",
				"punctuation.definition.interpolation.begin.bracket.curly.scss",
				"punctuation.definition.interpolation.end.bracket.curly.sass",
				"punctuation.definition.interpolation.end.bracket.curly.scss",
			},
			fg: p.Syntax.Special.Brighten(p.lift(0.1)),
		},
		{
			name:  "SASS tag reference ampersand",
			scope: "entity.name.tag.reference.scss",
			fg:    p.reference,
		},
		{
			name:  "SASS map key",
			scope: "meta.definition.variable.map.scss support.type.map.key.scss",
			fg:    p.Syntax.Regexp.Brighten(p.sink(0.15)),
		},
		{
			name: "SASS Placeholder %",
			scope: []string{
				"entity.other.attribute-name.placeholder.css punctuation.definition.entity.css",
				"entity.other.attribute-name.placeholder.scss punctuation.definition.entity.sass",
				"entity.other.attribute-name.placeholder.scss punctuation.definition.entity.scss",
			},
			fg: p.Syntax.Markup.Brighten(p.sink(0.15)),
		},
		{
			name: "HTML Tag Names",
			scope: []string{
				"entity.name.tag",
				"meta.tag.other.html",
				"meta.tag.other.js",
				"meta.tag.other.tsx",
				"meta.tag.sgml",
				"entity.name.tag",
				"entity.name.tag.open.jsx",
				"entity.name.tag.close.jsx",
				"entity.name.tag.open.tsx",
				"entity.name.tag.close.tsx",
				"meta.tag.js",
				"meta.tag.tsx",
				"meta.tag.html",
				"keyword.control.html.elements",
			},
			fg: p.Syntax.Tag,
		},
		{
			name: "HTML Tag Attribute Name",
			scope: []string{
				"entity.other.attribute-name",
				"entity.other.attribute-name.js",
				"entity.other.attribute-name.html",
				"entity.other.attribute-name.id.html",
				"meta.tag.any.html entity.other.attribute-name.html",
				"meta.tag.block.any.html entity.other.attribute-name.html",
				"meta.tag.inline.any.html entity.other.attribute-name.html",
				"meta.tag.structure.any.html entity.other.attribute-name.html",
				"meta.tag.other.html entity.other.attribute-name.html",
				"source.js.embedded.html entity.other.attribute-name.html",
				"source.ts entity.other.attribute-name",
				"source.tsx entity.other.attribute-name",
				"entity.other.attribute-name.jsx",
				"entity.other.attribute-name.tsx",
			},
			fg: p.Common.Fg.Brighten(p.lift(0.15)),
		},
		{
			name: "HTML Tag Attribute Values",
			scope: []string{
				"string.quoted.double.html",
				"meta.template string.quoted.double",
				"string.quoted.double.html invalid.illegal.bad-ampersand.html",
			},
			fg: p.Syntax.String,
		},
		{
			name:  "Markdown Headings",
			scope: "entity.name.section.markdown",
			fg:    p.Syntax.Constant.Brighten(0.2),
			style: styleBold,
		},
		{
			name:  "Markdown Headings punctuation",
			scope: "punctuation.definition.heading.markdown",
			fg:    p.Syntax.Constant,
			style: styleReset,
		},
		{
			name:  "Markdown bold",
			scope: "markup.bold",
			fg:    p.Syntax.Func,
			style: styleBold,
		},
		{
			name:  "Markdown bold punctuation",
			scope: "punctuation.definition.bold.markdown",
			fg:    p.Syntax.Func.Darken(0.2),
			style: styleBold,
		},
		{
			name:  "Markdown paragraphs",
			scope: "meta.paragraph.markdown",
			fg:    p.Common.Fg,
			style: styleReset,
		},
		{
			name:  "Markdown italic",
			scope: "markup.italic",
			fg:    p.Syntax.Special.Darken(0.1),
			style: styleItalic,
		},
		{
			name:  "Markdown italic punctuation",
			scope: "punctuation.definition.italic.markdown",
			fg:    p.Syntax.Special.Darken(0.25),
			style: styleItalicOrReset,
		},
		{
			name: "Markdown bold italic",
			scope: []string{
				"markup.italic markup.bold",
				"markup.bold markup.italic",
			},
			fg:    p.Syntax.Special,
			style: styleBoldItalic,
		},
		{
			name: "Markdown bold italic punctuation",
			scope: []string{
				"punctuation.definition.bold.markdown punctuation.definition.italic.markdown",
				"punctuation.definition.italic.markdown punctuation.definition.bold.markdown",
			},
			fg:    p.Syntax.Special.Darken(0.25),
			style: styleBoldItalic,
		},
		{
			name:  "Markdown code",
			scope: []string{"markup.raw"},
			bg:    p.Common.Fg.Alpha(0.02),
		},
		{
			name:  "Markdown code inline",
			scope: []string{"markup.raw.inline"},
			bg:    p.Common.Fg.Alpha(0.06),
		},
		{
			name: "Markdown code block",
			scope: []string{
				"markup.fenced_code.block.markdown punctuation.definition.markdown",
				"punctuation.definition.markdown",
				"punctuation.definition.raw.markdown",
			},
			fg: p.Syntax.Comment,
		},
		{
			name: "Markpdown raw inline",
			scope: []string{
				"markup.inline.raw.markdown",
				"text.html.markdown markup.fenced_code.block.markdown",
				"text.html.markdown markup.inline.raw",
				"markup.inline.raw.string.markdown",
			},
			fg: p.Syntax.Operator,
		},
		{
			name:  "Markdown quotes",
			scope: "markup.quote",
			fg:    p.Syntax.Regexp,
			style: styleItalic,
		},
		{
			name:  "Markdown line break",
			scope: []string{"text.html.markdown meta.dummy.line-break"},
			bg:    p.Syntax.Comment,
			fg:    p.Syntax.Comment,
		},
		{
			name: "Markdown link text",
			scope: []string{
				"markup.underline.link",
				"string.other.link",
			},
			fg: p.Common.Accent.Darken(0.2),
		},
		{
			name: "Markdown link URL",
			scope: []string{
				"meta.link",
				"meta.paragraph.inline.link.underline.detected-link",
				"markup.underline.link.image.markdown",
			},
			fg: p.Common.Accent,
		},
		{
			name:  "Markdown lists",
			scope: "markup.list meta.paragraph.markdown",
			fg:    p.Common.Fg,
		},
		{
			name: "Markdown list bullets",
			scope: []string{
				"markup.list punctuation.definition.list.begin",
				"beginning.punctuation.definition.list.markdown",
			},
			fg: p.Common.UI,
		},
		{
			name:  "JavaScript support variable object process",
			scope: "support.variable.object.process.js",
			fg:    p.Syntax.Regexp.Brighten(p.lift(0.3)),
		},
		{
			name:  "JavaScript Method Declaration e.g. `constructor`",
			scope: "meta.method.declaration storage.type.js",
			fg:    p.Syntax.Func,
		},
		{
			name: "JavaScript meta template expression",
			scope: []string{
				"meta.template.expression.js punctuation.definition.template-expression",
				"punctuation.definition.template-expression.begin.ts",
				"punctuation.definition.template-expression.begin.tsx",
				"punctuation.definition.template-expression.end.ts",
				"punctuation.definition.template-expression.end.tsx",
				"punctuation.quasi.element.begin.js",
				"punctuation.quasi.element.end.js",
			},
			fg: p.Syntax.Special.Brighten(0.1),
		},
		{
			name: "TypeScript return",
			scope: []string{
				"support.type.class.declaration.method.return.primitive.ts",
				"support.type.class.declaration.method.return.primitive.tsx",
				"type.annotation.support.class.declaration.method.parameters.primitive.ts",
				"type.annotation.support.class.declaration.method.parameters.primitive.tsx",
			},
			fg: p.Chalk.Cyan,
		},
		{
			name: "TypeScript support type primitive",
			scope: []string{
				"support.type.primitive.ts",
				"support.type.primitive.tsx",
			},
			fg: p.Syntax.Entity.Fade(0.5),
		},
		{
			name: "TypeScript method",
			scope: []string{
				"block.variable.other.class.declaration.property.method.ts",
				"block.variable.other.class.declaration.property.method.tsx",
				"block.variable.other.object.array.literal.class.declaration.method.var.expr.ts  block.variable.class.declaration.method.parameter.arrow.ts",
				"block.variable.other.object.array.literal.class.declaration.method.var.expr.tsx  block.variable.class.declaration.method.parameter.arrow.tsx",
				"block.variable.other.object.class.declaration.method.ts",
				"block.variable.other.object.class.declaration.method.tsx",
			},
			fg: p.Syntax.Variable.Brighten(0.15),
		},
		{
			name: "TypeScript method declaration e.g. `constructor`",
			scope: []string{
				"meta.method.declaration storage.type.ts",
				"meta.method.declaration storage.type.tsx",
			},
			fg: p.Syntax.Func,
		},
		{
			name:  "JSON property constant",
			scope: "constant.language.json",
			fg:    p.Syntax.Entity.Brighten(0.15).Fade(0.15),
		},
		{
			name: "JSON property value",
			scope: []string{
				"meta.structure.dictionary.value.json",
				"string.quoted.double.json",
				"meta.structure.dictionary.json meta.structure.dictionary.value.json meta.structure.dictionary.json meta.structure.dictionary.value.json meta.structure.array.json meta.structure.dictionary.json support.type.property-name.json",
			},
			fg: p.Syntax.Special.Fade(0.3).Brighten(p.lift(0.5)).Desaturate(0.8),
		},
		{
			name: "JSON property name",
			scope: []string{
				"support.type.property-name.json",
				"meta.structure.array.json meta.structure.dictionary.json support.type.property-name.json",
				"meta.structure.dictionary.json meta.structure.dictionary.value.json meta.structure.array.json meta.structure.dictionary.json meta.structure.dictionary.value.json meta.structure.array.json meta.structure.dictionary.json support.type.property-name.json",
			},
			fg: p.objectKey,
		},
		{
			name: "PHP delimiters",
			scope: []string{
				"punctuation.section.embedded.begin.php",
				"punctuation.section.embedded.end.php",
				"punctuation.section.embedded.begin.metatag.php",
				"punctuation.section.embedded.end.metatag.php",
				"text.html.php meta.embedded.line.php punctuation.section.embedded.end.metatag.php source.php",
				"text.html.php meta.embedded.block.php punctuation.section.embedded.end.metatag.php source.php",
				"text.html.php meta.embedded.block.php punctuation.section.embedded.end.php source.php",
				"text.html.php meta.embedded.line.php punctuation.section.embedded.end.php source.php",
			},
			fg: p.Syntax.Error.Darken(0.15),
		},
		{
			name:  "PHP Control Keywords",
			scope: "keyword.control.php",
			fg:    p.Syntax.Tag.Fade(0.1),
		},
		{
			name:  "PHP Echo",
			scope: "support.function.construct.output.php",
			fg:    p.Syntax.Tag.Fade(0.1),
		},
		{
			name:  "Search results numbers",
			scope: []string{"constant.numeric.line-number.find-in-files - match"},
			fg:    p.Syntax.Comment,
		},
		{
			name:  "Search results match numbers",
			scope: []string{"constant.numeric.line-number.match"},
			fg:    p.Syntax.Keyword,
		},
		{
			name:  "Search results lines",
			scope: []string{"entity.name.filename.find-in-files"},
			fg:    p.Syntax.String,
		},
		{
			name:  "Error messages",
			scope: []string{"message.error"},
			fg:    p.Syntax.Error,
		},
		{
			name: "normalize font style of certain components",
			scope: []string{
				"meta.property-list.css meta.property-value.css variable.other.less",
				"meta.property-list.scss variable.scss",
				"meta.property-list.sass variable.sass",
				"meta.brace",
				"keyword.operator.operator",
				"keyword.operator.or.regexp",
				"keyword.operator.expression.in",
				"keyword.operator.relational",
				"keyword.operator.assignment",
				"keyword.operator.comparison",
				"keyword.operator.type",
				"keyword.operator",
				"keyword",
				"punctuation.definintion.string",
				"punctuation",
				"variable.other.readwrite.js",
				"source.css",
				"string.quoted",
			},
			style: styleReset,
		},
	}
}
