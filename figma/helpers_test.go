package figma_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
)

// vectorFields are the members every vector-level node requires.
const vectorFields = `"absoluteBoundingBox":{"x":0,"y":0,"width":10,"height":20},` +
	`"blendMode":"NORMAL",` +
	`"constraints":{"vertical":"TOP","horizontal":"LEFT"},` +
	`"relativeTransform":[[1,0,0],[0,1,0]],` +
	`"size":{"x":10,"y":20},` +
	`"strokeWeight":1`

const typeStyleJSON = `{"fontFamily":"Inter","fontPostScriptName":"Inter-Regular","fontWeight":400,` +
	`"fontSize":12,"letterSpacing":0,"lineHeightPx":14.5,"lineHeightUnit":"INTRINSIC_%",` +
	`"textAlignHorizontal":"LEFT","textAlignVertical":"TOP"}`

func src(s string) figskema.Source { return figskema.JSONBytes([]byte(s)) }

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

// requireIssue asserts err carries Issues whose first entry has code at path.
func requireIssue(t *testing.T, err error, code, path string) figskema.Issue {
	t.Helper()
	require.Error(t, err)
	iss, ok := figskema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %T: %v", err, err)
	require.NotEmpty(t, iss)
	require.Equal(t, code, iss[0].Code, "issue: %+v", iss[0])
	require.Equal(t, path, iss[0].Path, "issue: %+v", iss[0])
	return iss[0]
}

var ctx = context.Background()
