package figma

import (
	"strconv"

	figskema "github.com/reoring/figskema"
)

func decodeText(f *fields, n *TextNode) {
	n.Characters = f.String("characters")
	n.Style = decodeTypeStyle(f.Object("style"))
	n.CharacterStyleOverrides = f.ints("characterStyleOverrides")
	n.StyleOverrideTable = map[int]TypeStyleOverride{}
	f.Each("styleOverrideTable", func(key string, v any, at figskema.PathRef) {
		id, err := strconv.Atoi(key)
		if err != nil {
			f.d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "integer key", "got", key))
			return
		}
		n.StyleOverrideTable[id] = decodeTypeStyleOverride(f.d.object(v, at))
	})
	decodeVector(f, &n.VectorNode)
}

// ints decodes the required integer array name.
func (f *fields) ints(name string) []int {
	raw, at := f.List(name)
	out := make([]int, 0, len(raw))
	for i, v := range raw {
		x, ok := toInt(v)
		if !ok {
			f.d.fail(at.Index(i).Issue(figskema.CodeShapeMismatch, "", "expected", "integer", "got", kindOf(v)))
			return nil
		}
		out = append(out, x)
	}
	return out
}

func decodeTypeStyle(f *fields) TypeStyle {
	s := TypeStyle{
		Italic:                    f.BoolOr("italic", false),
		Fills:                     paintTable.decodeField(f, "fills"),
		FontFamily:                f.OptString("fontFamily"),
		FontWeight:                f.Float("fontWeight"),
		FontPostScriptName:        f.String("fontPostScriptName"),
		FontSize:                  f.Float("fontSize"),
		LetterSpacing:             f.Float("letterSpacing"),
		LineHeightPx:              f.Float("lineHeightPx"),
		LineHeightPercentFontSize: f.FloatOr("lineHeightPercentFontSize", 100),
		LineHeightUnit:            LineHeightUnit(f.String("lineHeightUnit")),
		ListSpacing:               f.FloatOr("listSpacing", 0),
		OpenTypeFlags:             f.flags("openTypeFlags"),
		ParagraphIndent:           f.FloatOr("paragraphIndent", 0),
		ParagraphSpacing:          f.FloatOr("paragraphSpacing", 0),
		TextAlignHorizontal:       TextAlignHorizontal(f.String("textAlignHorizontal")),
		TextAlignVertical:         TextAlignVertical(f.String("textAlignVertical")),
		TextAutoResize:            TextAutoResize(f.StringOr("textAutoResize", string(TextAutoResizeNone))),
		TextCase:                  TextCase(f.StringOr("textCase", string(TextCaseOriginal))),
		TextDecoration:            TextDecoration(f.StringOr("textDecoration", string(TextDecorationNone))),
	}
	if h, ok := f.OptObject("hyperlink"); ok {
		s.Hyperlink = decodeHyperlink(h)
	}
	return s
}

func decodeTypeStyleOverride(f *fields) TypeStyleOverride {
	o := TypeStyleOverride{
		Italic:                    f.OptBool("italic"),
		FontFamily:                f.OptString("fontFamily"),
		FontWeight:                f.OptFloat("fontWeight"),
		FontPostScriptName:        f.OptString("fontPostScriptName"),
		FontSize:                  f.OptFloat("fontSize"),
		LetterSpacing:             f.OptFloat("letterSpacing"),
		LineHeightPx:              f.OptFloat("lineHeightPx"),
		LineHeightPercentFontSize: f.OptFloat("lineHeightPercentFontSize"),
		LineHeightUnit:            optEnum[LineHeightUnit](f, "lineHeightUnit"),
		ListSpacing:               f.OptFloat("listSpacing"),
		ParagraphIndent:           f.OptFloat("paragraphIndent"),
		ParagraphSpacing:          f.OptFloat("paragraphSpacing"),
		TextAlignHorizontal:       optEnum[TextAlignHorizontal](f, "textAlignHorizontal"),
		TextAlignVertical:         optEnum[TextAlignVertical](f, "textAlignVertical"),
		TextAutoResize:            optEnum[TextAutoResize](f, "textAutoResize"),
		TextCase:                  optEnum[TextCase](f, "textCase"),
		TextDecoration:            optEnum[TextDecoration](f, "textDecoration"),
	}
	if f.has("fills") {
		o.Fills = paintTable.decodeField(f, "fills")
	}
	if f.has("openTypeFlags") {
		o.OpenTypeFlags = f.flags("openTypeFlags")
	}
	if h, ok := f.OptObject("hyperlink"); ok {
		link := decodeHyperlink(h)
		o.Hyperlink = &link
	}
	return o
}

func optEnum[E ~string](f *fields, name string) *E {
	s := f.OptString(name)
	if s == nil {
		return nil
	}
	e := E(*s)
	return &e
}

// flags decodes the optional boolean map name. Absent maps are empty.
func (f *fields) flags(name string) map[string]bool {
	out := map[string]bool{}
	f.Each(name, func(key string, v any, at figskema.PathRef) {
		b, ok := v.(bool)
		if !ok {
			f.d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "boolean", "got", kindOf(v)))
			return
		}
		out[key] = b
	})
	return out
}

// decodeHyperlink reads a URL or NODE link. An absent tag is HyperlinkNone.
// The target id of a NODE link is read from the first configured member name
// that is present.
func decodeHyperlink(f *fields) Hyperlink {
	kind, ok := f.lookup(discriminatorField)
	if !ok {
		return Hyperlink{Kind: HyperlinkNone}
	}
	tag, ok := kind.(string)
	if !ok {
		f.mismatch(discriminatorField, "string", kind)
		return Hyperlink{}
	}
	switch HyperlinkKind(tag) {
	case HyperlinkURL:
		return Hyperlink{Kind: HyperlinkURL, URL: f.String("url")}
	case HyperlinkNode:
		names := f.d.opts.HyperlinkNodeFields
		name, ok := f.firstOf(names)
		if !ok {
			f.missing(names[0])
			return Hyperlink{}
		}
		return Hyperlink{Kind: HyperlinkNode, NodeID: f.String(name)}
	}
	f.d.fail(f.at.Field(discriminatorField).Issue(figskema.CodeUnknownVariant, "", "tag", tag, "space", "hyperlink"))
	return Hyperlink{}
}
