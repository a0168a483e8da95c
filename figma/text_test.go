package figma_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
	"github.com/reoring/figskema/figma"
)

func textNode(t *testing.T, style, extra string, opts ...figskema.Options) *figma.TextNode {
	t.Helper()
	in := nodeJSON(figma.NodeText, vectorFields+`,"characters":"Hello","style":`+style+extra)
	n, err := figma.DecodeNode(ctx, src(in), opts...)
	require.NoError(t, err)
	return n.(*figma.TextNode)
}

func TestDecodeText_StyleDefaults(t *testing.T) {
	n := textNode(t, typeStyleJSON, `,"characterStyleOverrides":[]`)
	s := n.Style

	assert.Equal(t, "Hello", n.Characters)
	assert.False(t, s.Italic)
	require.NotNil(t, s.FontFamily)
	assert.Equal(t, "Inter", *s.FontFamily)
	assert.Equal(t, 400.0, s.FontWeight)
	assert.Equal(t, 14.5, s.LineHeightPx)
	assert.Equal(t, 100.0, s.LineHeightPercentFontSize)
	assert.Equal(t, figma.LineHeightIntrinsicPercentage, s.LineHeightUnit)
	assert.Equal(t, 0.0, s.ListSpacing)
	assert.Equal(t, 0.0, s.ParagraphIndent)
	assert.Equal(t, 0.0, s.ParagraphSpacing)
	assert.Equal(t, figma.TextCaseOriginal, s.TextCase)
	assert.Equal(t, figma.TextDecorationNone, s.TextDecoration)
	assert.Equal(t, figma.TextAutoResizeNone, s.TextAutoResize)
	assert.Equal(t, figma.HyperlinkNone, s.Hyperlink.Kind)
	assert.NotNil(t, s.OpenTypeFlags)
	assert.Empty(t, s.OpenTypeFlags)
	assert.NotNil(t, s.Fills)
	assert.Empty(t, n.StyleOverrideTable)
}

func TestDecodeText_StyleExplicit(t *testing.T) {
	style := strings.TrimSuffix(typeStyleJSON, "}") +
		`,"italic":true,"lineHeightPercentFontSize":120,"textCase":"UPPER","textDecoration":"UNDERLINE",` +
		`"textAutoResize":"HEIGHT","openTypeFlags":{"KERN":true,"LIGA":false},` +
		`"fills":[{"type":"SOLID","color":{"r":0,"g":0,"b":0,"a":1}}],` +
		`"hyperlink":{"type":"URL","url":"https://example.com"}}`
	s := textNode(t, style, `,"characterStyleOverrides":[]`).Style

	assert.True(t, s.Italic)
	assert.Equal(t, 120.0, s.LineHeightPercentFontSize)
	assert.Equal(t, figma.TextCaseUpper, s.TextCase)
	assert.Equal(t, figma.TextDecorationUnderline, s.TextDecoration)
	assert.Equal(t, figma.TextAutoResizeHeight, s.TextAutoResize)
	assert.Equal(t, map[string]bool{"KERN": true, "LIGA": false}, s.OpenTypeFlags)
	require.Len(t, s.Fills, 1)
	assert.Equal(t, figma.Hyperlink{Kind: figma.HyperlinkURL, URL: "https://example.com"}, s.Hyperlink)
}

func TestDecodeText_HyperlinkNodeFieldNames(t *testing.T) {
	link := func(body string) string {
		return strings.TrimSuffix(typeStyleJSON, "}") + `,"hyperlink":` + body + `}`
	}
	tests := []struct {
		name string
		body string
		opts []figskema.Options
		want string
	}{
		{"current name", `{"type":"NODE","nodeID":"1:7"}`, nil, "1:7"},
		{"legacy name", `{"type":"NODE","node":"1:8"}`, nil, "1:8"},
		{"current name wins", `{"type":"NODE","node":"1:8","nodeID":"1:7"}`, nil, "1:7"},
		{
			"configured name",
			`{"type":"NODE","target":"2:1","nodeID":"1:7"}`,
			[]figskema.Options{{HyperlinkNodeFields: []string{"target", "nodeID"}}},
			"2:1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := textNode(t, link(tt.body), `,"characterStyleOverrides":[]`, tt.opts...).Style
			assert.Equal(t, figma.HyperlinkNode, s.Hyperlink.Kind)
			assert.Equal(t, tt.want, s.Hyperlink.NodeID)
		})
	}
}

func TestDecodeText_HyperlinkErrors(t *testing.T) {
	style := func(body string) string {
		return strings.TrimSuffix(typeStyleJSON, "}") + `,"hyperlink":` + body + `}`
	}
	tests := []struct {
		name string
		body string
		code string
		path string
	}{
		{"node without target", `{"type":"NODE"}`, figskema.CodeRequired, "/style/hyperlink/nodeID"},
		{"url without url", `{"type":"URL"}`, figskema.CodeRequired, "/style/hyperlink/url"},
		{"unknown kind", `{"type":"EMAIL"}`, figskema.CodeUnknownVariant, "/style/hyperlink/type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := nodeJSON(figma.NodeText, vectorFields+`,"characters":"x","characterStyleOverrides":[],"style":`+style(tt.body))
			_, err := figma.DecodeNode(ctx, src(in))
			requireIssue(t, err, tt.code, tt.path)
		})
	}
}

func TestDecodeText_Overrides(t *testing.T) {
	extra := `,"characterStyleOverrides":[0,0,3,3,0],` +
		`"styleOverrideTable":{"3":{"fontWeight":700,"textDecoration":"STRIKETHROUGH","fills":[]}}`
	n := textNode(t, typeStyleJSON, extra)

	assert.Equal(t, []int{0, 0, 3, 3, 0}, n.CharacterStyleOverrides)
	require.Contains(t, n.StyleOverrideTable, 3)
	o := n.StyleOverrideTable[3]
	assert.Equal(t, 700.0, *o.FontWeight)
	assert.Nil(t, o.FontSize)
	assert.Nil(t, o.Italic)
	assert.Nil(t, o.Hyperlink)
	assert.Nil(t, o.OpenTypeFlags)
	assert.NotNil(t, o.Fills)
	assert.Empty(t, o.Fills)

	assert.Equal(t, 400.0, n.StyleAt(0).FontWeight)
	bold := n.StyleAt(2)
	assert.Equal(t, 700.0, bold.FontWeight)
	assert.Equal(t, figma.TextDecorationStrikethrough, bold.TextDecoration)
	assert.Equal(t, 12.0, bold.FontSize)
	assert.Empty(t, bold.Fills)
	assert.Equal(t, 400.0, n.StyleAt(4).FontWeight)
	assert.Equal(t, 400.0, n.StyleAt(99).FontWeight)
}

func TestDecodeText_Errors(t *testing.T) {
	tests := []struct {
		name  string
		style string
		extra string
		code  string
		path  string
	}{
		{"overrides required", typeStyleJSON, "", figskema.CodeRequired, "/characterStyleOverrides"},
		{"override index not integer", typeStyleJSON, `,"characterStyleOverrides":[1.5]`, figskema.CodeShapeMismatch, "/characterStyleOverrides/0"},
		{"table key not integer", typeStyleJSON, `,"characterStyleOverrides":[],"styleOverrideTable":{"bold":{}}`, figskema.CodeShapeMismatch, "/styleOverrideTable/bold"},
		{"font size required", strings.Replace(typeStyleJSON, `"fontSize":12,`, "", 1), `,"characterStyleOverrides":[]`, figskema.CodeRequired, "/style/fontSize"},
		{"flag not boolean", strings.TrimSuffix(typeStyleJSON, "}") + `,"openTypeFlags":{"KERN":1}}`, `,"characterStyleOverrides":[]`, figskema.CodeShapeMismatch, "/style/openTypeFlags/KERN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := nodeJSON(figma.NodeText, vectorFields+`,"characters":"x","style":`+tt.style+tt.extra)
			_, err := figma.DecodeNode(ctx, src(in))
			requireIssue(t, err, tt.code, tt.path)
		})
	}
}
