package figma

// TypeStyle is the character formatting of a text node.
type TypeStyle struct {
	Italic                    bool                `json:"italic"`
	Fills                     []Paint             `json:"fills"`
	FontFamily                *string             `json:"fontFamily,omitempty"`
	FontWeight                float64             `json:"fontWeight"`
	FontPostScriptName        string              `json:"fontPostScriptName"`
	FontSize                  float64             `json:"fontSize"`
	Hyperlink                 Hyperlink           `json:"hyperlink"`
	LetterSpacing             float64             `json:"letterSpacing"`
	LineHeightPx              float64             `json:"lineHeightPx"`
	LineHeightPercentFontSize float64             `json:"lineHeightPercentFontSize"`
	LineHeightUnit            LineHeightUnit      `json:"lineHeightUnit"`
	ListSpacing               float64             `json:"listSpacing"`
	OpenTypeFlags             map[string]bool     `json:"openTypeFlags"`
	ParagraphIndent           float64             `json:"paragraphIndent"`
	ParagraphSpacing          float64             `json:"paragraphSpacing"`
	TextAlignHorizontal       TextAlignHorizontal `json:"textAlignHorizontal"`
	TextAlignVertical         TextAlignVertical   `json:"textAlignVertical"`
	TextAutoResize            TextAutoResize      `json:"textAutoResize"`
	TextCase                  TextCase            `json:"textCase"`
	TextDecoration            TextDecoration      `json:"textDecoration"`
}

// TypeStyleOverride overrides selected fields of a TypeStyle. Nil means
// "inherit".
type TypeStyleOverride struct {
	Italic                    *bool                `json:"italic,omitempty"`
	Fills                     []Paint              `json:"fills,omitempty"`
	FontFamily                *string              `json:"fontFamily,omitempty"`
	FontWeight                *float64             `json:"fontWeight,omitempty"`
	FontPostScriptName        *string              `json:"fontPostScriptName,omitempty"`
	FontSize                  *float64             `json:"fontSize,omitempty"`
	Hyperlink                 *Hyperlink           `json:"hyperlink,omitempty"`
	LetterSpacing             *float64             `json:"letterSpacing,omitempty"`
	LineHeightPx              *float64             `json:"lineHeightPx,omitempty"`
	LineHeightPercentFontSize *float64             `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            *LineHeightUnit      `json:"lineHeightUnit,omitempty"`
	ListSpacing               *float64             `json:"listSpacing,omitempty"`
	OpenTypeFlags             map[string]bool      `json:"openTypeFlags,omitempty"`
	ParagraphIndent           *float64             `json:"paragraphIndent,omitempty"`
	ParagraphSpacing          *float64             `json:"paragraphSpacing,omitempty"`
	TextAlignHorizontal       *TextAlignHorizontal `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical         *TextAlignVertical   `json:"textAlignVertical,omitempty"`
	TextAutoResize            *TextAutoResize      `json:"textAutoResize,omitempty"`
	TextCase                  *TextCase            `json:"textCase,omitempty"`
	TextDecoration            *TextDecoration      `json:"textDecoration,omitempty"`
}

// Apply returns base with every non-nil override field applied.
func (o TypeStyleOverride) Apply(base TypeStyle) TypeStyle {
	out := base
	if o.Italic != nil {
		out.Italic = *o.Italic
	}
	if o.Fills != nil {
		out.Fills = o.Fills
	}
	if o.FontFamily != nil {
		out.FontFamily = o.FontFamily
	}
	if o.FontWeight != nil {
		out.FontWeight = *o.FontWeight
	}
	if o.FontPostScriptName != nil {
		out.FontPostScriptName = *o.FontPostScriptName
	}
	if o.FontSize != nil {
		out.FontSize = *o.FontSize
	}
	if o.Hyperlink != nil {
		out.Hyperlink = *o.Hyperlink
	}
	if o.LetterSpacing != nil {
		out.LetterSpacing = *o.LetterSpacing
	}
	if o.LineHeightPx != nil {
		out.LineHeightPx = *o.LineHeightPx
	}
	if o.LineHeightPercentFontSize != nil {
		out.LineHeightPercentFontSize = *o.LineHeightPercentFontSize
	}
	if o.LineHeightUnit != nil {
		out.LineHeightUnit = *o.LineHeightUnit
	}
	if o.ListSpacing != nil {
		out.ListSpacing = *o.ListSpacing
	}
	if o.OpenTypeFlags != nil {
		out.OpenTypeFlags = o.OpenTypeFlags
	}
	if o.ParagraphIndent != nil {
		out.ParagraphIndent = *o.ParagraphIndent
	}
	if o.ParagraphSpacing != nil {
		out.ParagraphSpacing = *o.ParagraphSpacing
	}
	if o.TextAlignHorizontal != nil {
		out.TextAlignHorizontal = *o.TextAlignHorizontal
	}
	if o.TextAlignVertical != nil {
		out.TextAlignVertical = *o.TextAlignVertical
	}
	if o.TextAutoResize != nil {
		out.TextAutoResize = *o.TextAutoResize
	}
	if o.TextCase != nil {
		out.TextCase = *o.TextCase
	}
	if o.TextDecoration != nil {
		out.TextDecoration = *o.TextDecoration
	}
	return out
}

// StyleAt returns the effective style of the character at index i of a text
// node. Characters past the end of the override list, and override id 0,
// use the base style.
func (n *TextNode) StyleAt(i int) TypeStyle {
	if i < 0 || i >= len(n.CharacterStyleOverrides) {
		return n.Style
	}
	o, ok := n.StyleOverrideTable[n.CharacterStyleOverrides[i]]
	if !ok {
		return n.Style
	}
	return o.Apply(n.Style)
}

type LineHeightUnit string

const (
	LineHeightPixels              LineHeightUnit = "PIXELS"
	LineHeightFontSizePercentage  LineHeightUnit = "FONT_SIZE_%"
	LineHeightIntrinsicPercentage LineHeightUnit = "INTRINSIC_%"
)

type TextAlignHorizontal string

const (
	TextAlignLeft      TextAlignHorizontal = "LEFT"
	TextAlignRight     TextAlignHorizontal = "RIGHT"
	TextAlignCenter    TextAlignHorizontal = "CENTER"
	TextAlignJustified TextAlignHorizontal = "JUSTIFIED"
)

type TextAlignVertical string

const (
	TextAlignTop    TextAlignVertical = "TOP"
	TextAlignBottom TextAlignVertical = "BOTTOM"
	TextAlignMiddle TextAlignVertical = "CENTER"
)

type TextAutoResize string

const (
	TextAutoResizeNone           TextAutoResize = "NONE"
	TextAutoResizeHeight         TextAutoResize = "HEIGHT"
	TextAutoResizeWidthAndHeight TextAutoResize = "WIDTH_AND_HEIGHT"
)

type TextCase string

const (
	TextCaseOriginal        TextCase = "ORIGINAL"
	TextCaseUpper           TextCase = "UPPER"
	TextCaseLower           TextCase = "LOWER"
	TextCaseTitle           TextCase = "TITLE"
	TextCaseSmallCaps       TextCase = "SMALL_CAPS"
	TextCaseSmallCapsForced TextCase = "SMALL_CAPS_FORCED"
)

type TextDecoration string

const (
	TextDecorationNone          TextDecoration = "NONE"
	TextDecorationStrikethrough TextDecoration = "STRIKETHROUGH"
	TextDecorationUnderline     TextDecoration = "UNDERLINE"
)

// HyperlinkKind discriminates Hyperlink. The zero value is HyperlinkNone.
type HyperlinkKind string

const (
	HyperlinkNone HyperlinkKind = ""
	HyperlinkURL  HyperlinkKind = "URL"
	HyperlinkNode HyperlinkKind = "NODE"
)

// Hyperlink links text to a URL or to another node in the document.
type Hyperlink struct {
	Kind   HyperlinkKind `json:"type,omitempty"`
	URL    string        `json:"url,omitempty"`
	NodeID string        `json:"nodeID,omitempty"`
}
