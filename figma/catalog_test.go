package figma_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
	"github.com/reoring/figskema/figma"
)

const catalogFileJSON = `{
	"name":"Kit","lastModified":"2024-03-01T10:00:00Z","thumbnailUrl":"t","version":"7",
	"role":"editor","linkAccess":"org_view","schemaVersion":0,
	"components":{
		"10:1":{"key":"k1","name":"Button","description":"primary",
			"documentationLinks":[{"uri":"https://example.com/button"}],"componentSetId":"10:0"},
		"10:2":{"key":"k2","name":"Icon","description":""}
	},
	"componentSets":{"10:0":{"key":"ks","name":"Buttons","description":"all buttons"}},
	"styles":{
		"S:1":{"key":"sk1","name":"Brand/Blue","description":"","styleType":"FILL"},
		"S:2":{"key":"sk2","name":"Shadow","description":"","type":"EFFECT"}
	},
	"document":{"id":"0:0","name":"Document","type":"DOCUMENT","children":[
		{"id":"0:1","name":"Page","type":"CANVAS","backgroundColor":{"r":1,"g":1,"b":1,"a":1},"children":[
			{"id":"3:1","name":"Button","type":"INSTANCE","componentId":"10:1","clipsContent":true,` + vectorFields + `,
				"styles":{"fill":"S:1","effect":"S:2","text":"S:404"}},
			{"id":"3:2","name":"Orphan","type":"INSTANCE","componentId":"99:9","clipsContent":false,` + vectorFields + `}
		]}
	]}
}`

func TestCatalogs_Lookups(t *testing.T) {
	file, err := figma.DecodeFile(ctx, src(catalogFileJSON))
	require.NoError(t, err)

	assert.Equal(t, figma.RoleEditor, file.Role)
	assert.Equal(t, figma.LinkOrgView, file.LinkAccess)
	assert.Empty(t, file.EditorType)
	require.Len(t, file.Components, 2)
	require.Len(t, file.ComponentSets, 1)
	require.Len(t, file.Styles, 2)

	button, ok := file.Component("10:1")
	require.True(t, ok)
	assert.Equal(t, "Button", button.Name)
	assert.Equal(t, []figma.DocumentationLink{{URI: "https://example.com/button"}}, button.DocumentationLinks)

	set, ok := file.ComponentSetOf(button)
	require.True(t, ok)
	assert.Equal(t, "Buttons", set.Name)

	icon, ok := file.Component("10:2")
	require.True(t, ok)
	assert.Nil(t, icon.ComponentSetID)
	assert.NotNil(t, icon.DocumentationLinks)
	_, ok = file.ComponentSetOf(icon)
	assert.False(t, ok)

	s, ok := file.Style("S:2")
	require.True(t, ok)
	assert.Equal(t, figma.StyleEffect, s.StyleType)
	_, ok = file.Style("S:404")
	assert.False(t, ok)

	n, ok := figma.Find(file.Document, "3:1")
	require.True(t, ok)
	inst := n.(*figma.InstanceNode)
	comp, ok := file.ComponentOf(inst)
	require.True(t, ok)
	assert.Equal(t, "k1", comp.Key)

	styles := file.StylesOf(inst)
	assert.Equal(t, map[figma.StyleType]figma.Style{
		figma.StyleFill:   file.Styles["S:1"],
		figma.StyleEffect: file.Styles["S:2"],
	}, styles)

	n, ok = figma.Find(file.Document, "3:2")
	require.True(t, ok)
	_, ok = file.ComponentOf(n.(*figma.InstanceNode))
	assert.False(t, ok)
	assert.Empty(t, file.StylesOf(n.(*figma.InstanceNode)))
	_, ok = file.ComponentOf(nil)
	assert.False(t, ok)
}

func TestCatalogs_AbsentAreEmpty(t *testing.T) {
	file, err := figma.DecodeFile(ctx, figskema.JSONBytes(fixture(t, "one_frame.json")))
	require.NoError(t, err)
	assert.NotNil(t, file.Components)
	assert.NotNil(t, file.ComponentSets)
	assert.Empty(t, file.Components)
	_, ok := file.Component("anything")
	assert.False(t, ok)
}

func TestCatalogs_Errors(t *testing.T) {
	const meta = `"name":"n","lastModified":"l","thumbnailUrl":"t","version":"v","role":"owner","linkAccess":"view",`
	tests := []struct {
		name string
		in   string
		code string
		path string
	}{
		{
			name: "component without key",
			in:   `{` + meta + `"components":{"1:1":{"name":"x","description":""}}}`,
			code: figskema.CodeRequired,
			path: "/components/1:1/key",
		},
		{
			name: "style without kind",
			in:   `{` + meta + `"styles":{"S:1":{"key":"k","name":"n","description":""}}}`,
			code: figskema.CodeRequired,
			path: "/styles/S:1/styleType",
		},
		{
			name: "catalog not an object",
			in:   `{` + meta + `"componentSets":[]}`,
			code: figskema.CodeShapeMismatch,
			path: "/componentSets",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := figma.DecodeFile(ctx, src(tt.in))
			requireIssue(t, err, tt.code, tt.path)
		})
	}
}

func TestDecodeFileNodes(t *testing.T) {
	in := `{
		"name":"Kit","lastModified":"2024-03-01T10:00:00Z","thumbnailUrl":"t","version":"7",
		"role":"viewer","linkAccess":"view","editorType":"figjam",
		"nodes":{
			"3:1":{"schemaVersion":0,
				"components":{"10:1":{"key":"k1","name":"Button","description":""}},
				"document":{"id":"3:1","name":"Button","type":"INSTANCE","componentId":"10:1","clipsContent":true,` + vectorFields + `,
					"children":[{"id":"3:5","name":"Label","type":"RECTANGLE",` + vectorFields + `}]}},
			"9:9":null
		}
	}`
	out, err := figma.DecodeFileNodes(ctx, src(in))
	require.NoError(t, err)
	assert.Equal(t, figma.EditorFigJam, out.EditorType)
	require.Len(t, out.Nodes, 2)
	assert.Nil(t, out.Nodes["9:9"])

	fn := out.Nodes["3:1"]
	require.NotNil(t, fn)
	inst, ok := fn.Document.(*figma.InstanceNode)
	require.True(t, ok, "got %T", fn.Document)
	require.Len(t, inst.Children, 1)
	assert.IsType(t, &figma.RectangleNode{}, inst.Children[0])

	comp, ok := fn.ComponentOf(inst)
	require.True(t, ok)
	assert.Equal(t, "Button", comp.Name)
	assert.Empty(t, fn.Styles)
}

func TestDecodeFileNodes_Errors(t *testing.T) {
	meta := `"name":"n","lastModified":"l","thumbnailUrl":"t","version":"v","role":"owner","linkAccess":"view"`
	tests := []struct {
		name string
		in   string
		code string
		path string
	}{
		{"nodes missing", `{` + meta + `}`, figskema.CodeRequired, "/nodes"},
		{"document missing", `{` + meta + `,"nodes":{"1:1":{"schemaVersion":0}}}`, figskema.CodeRequired, "/nodes/1:1/document"},
		{"entry not object", `{` + meta + `,"nodes":{"1:1":7}}`, figskema.CodeShapeMismatch, "/nodes/1:1"},
		{
			"bad child",
			`{` + meta + `,"nodes":{"1:1":{"schemaVersion":0,"document":{"id":"1:1","name":"g","type":"DOCUMENT","children":[{"id":"1:2","type":"GROUP"}]}}}}`,
			figskema.CodeRequired,
			"/nodes/1:1/document/children/0/name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := figma.DecodeFileNodes(ctx, src(tt.in))
			requireIssue(t, err, tt.code, tt.path)
		})
	}
}

func TestDecodeImages(t *testing.T) {
	out, err := figma.DecodeImages(ctx, src(`{"err":null,"images":{"1:1":"https://img/1.png","1:2":null},"status":200}`))
	require.NoError(t, err)
	assert.Nil(t, out.Err)
	assert.Equal(t, map[string]string{"1:1": "https://img/1.png", "1:2": ""}, out.Images)

	out, err = figma.DecodeImages(ctx, src(`{"err":"render timeout","images":{}}`))
	require.NoError(t, err)
	require.NotNil(t, out.Err)
	assert.Equal(t, "render timeout", *out.Err)
	assert.Empty(t, out.Images)

	_, err = figma.DecodeImages(ctx, src(`{"err":null}`))
	requireIssue(t, err, figskema.CodeRequired, "/images")

	_, err = figma.DecodeImages(ctx, src(`{"images":{"1:1":3}}`))
	requireIssue(t, err, figskema.CodeShapeMismatch, "/images/1:1")
}
