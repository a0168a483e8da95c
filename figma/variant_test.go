package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
)

func TestVariantTables_CoverDeclaredTags(t *testing.T) {
	for _, tag := range NodeTypes() {
		assert.Contains(t, nodeTable.routines, tag)
	}
	for _, tag := range PaintTypes() {
		assert.Contains(t, paintTable.routines, tag)
	}
	for _, tag := range EffectTypes() {
		assert.Contains(t, effectTable.routines, tag)
	}
	assert.Len(t, nodeTable.routines, len(NodeTypes()))
	assert.Len(t, paintTable.routines, len(PaintTypes()))
	assert.Len(t, effectTable.routines, len(EffectTypes()))
}

func TestVariantTable_MustCoverPanics(t *testing.T) {
	tbl := &variantTable[PaintType, Paint]{space: "paint", routines: map[PaintType]func(*fields) Paint{}}
	assert.PanicsWithValue(t, `figma: paint tag "SOLID" has no decode routine`, func() {
		tbl.mustCover([]PaintType{PaintSolid})
	})
}

func TestVariantTable_Discriminator(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		code string
		path string
	}{
		{"missing", map[string]any{"color": nil}, figskema.CodeDiscriminatorMissing, "/type"},
		{"null", map[string]any{"type": nil}, figskema.CodeDiscriminatorMissing, "/type"},
		{"not a string", map[string]any{"type": true}, figskema.CodeShapeMismatch, "/type"},
		{"unknown", map[string]any{"type": "VIDEO"}, figskema.CodeUnknownVariant, "/type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDecoder(figskema.DefaultOptions())
			out := paintTable.decodeOne(d.object(tt.raw, figskema.Root()))
			assert.Nil(t, out)
			require.Error(t, d.err)
			iss, ok := figskema.AsIssues(d.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, iss[0].Code)
			assert.Equal(t, tt.path, iss[0].Path)
		})
	}
}

func TestDecoder_FirstFailureSticks(t *testing.T) {
	d := newDecoder(figskema.DefaultOptions())
	f := d.object(map[string]any{"a": "x"}, figskema.Root())
	_ = f.Float("a")
	_ = f.String("missing")
	iss, ok := figskema.AsIssues(d.err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, "/a", iss[0].Path)
	assert.Equal(t, "number", iss[0].Params["expected"])
	assert.Equal(t, "string", iss[0].Params["got"])
}
