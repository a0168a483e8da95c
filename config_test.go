package figskema_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
	"github.com/reoring/figskema/i18n"
)

func TestParseOptions_OverridesDefaults(t *testing.T) {
	opt, err := figskema.ParseOptions([]byte(`
strictness:
  onDuplicateKey: error
maxDepth: 64
hyperlinkNodeFields: [node]
language: ja
`))
	require.NoError(t, err)
	assert.Equal(t, figskema.Error, opt.Strictness.OnDuplicateKey)
	assert.Equal(t, 64, opt.MaxDepth)
	assert.Equal(t, []string{"node"}, opt.HyperlinkNodeFields)
	assert.Equal(t, figskema.DefaultBooleanOperationFields, opt.BooleanOperationFields)
	assert.Equal(t, "ja", opt.Language)
}

func TestParseOptions_Empty(t *testing.T) {
	opt, err := figskema.ParseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, figskema.DefaultOptions(), opt)
}

func TestParseOptions_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPath string
	}{
		{name: "negative depth", yaml: "maxDepth: -1", wantPath: "/maxDepth"},
		{name: "negative bytes", yaml: "maxBytes: -10", wantPath: "/maxBytes"},
		{name: "language", yaml: "language: fr", wantPath: "/language"},
		{name: "empty field name", yaml: `booleanOperationFields: ["booleanOperation", ""]`, wantPath: "/booleanOperationFields/1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := figskema.ParseOptions([]byte(tt.yaml))
			iss, ok := figskema.AsIssues(err)
			require.True(t, ok, "expected Issues, got %v", err)
			assert.Equal(t, figskema.CodeInvalidConfig, iss[0].Code)
			assert.Equal(t, tt.wantPath, iss[0].Path)
		})
	}
}

func TestParseOptions_BadSeverity(t *testing.T) {
	_, err := figskema.ParseOptions([]byte("strictness:\n  onDuplicateKey: loud\n"))
	require.Error(t, err)
	_, isIssues := figskema.AsIssues(err)
	assert.False(t, isIssues)
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figskema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxBytes: 1048576\n"), 0o600))

	opt, err := figskema.LoadOptions(path)
	require.NoError(t, err)
	assert.EqualValues(t, 1<<20, opt.MaxBytes)

	_, err = figskema.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOptions_ApplyLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	figskema.Options{Language: "ja"}.ApplyLanguage()
	assert.Equal(t, "解析エラー", figskema.Message(figskema.CodeParseError, nil))

	figskema.Options{}.ApplyLanguage()
	assert.Equal(t, "解析エラー", figskema.Message(figskema.CodeParseError, nil))

	figskema.DefaultOptions().ApplyLanguage()
	assert.Equal(t, "parse error", figskema.Message(figskema.CodeParseError, nil))
}

func TestOptions_BytesSource(t *testing.T) {
	in := []byte("{\n// note\n\"a\": [1, 2,],\n}")

	_, err := figskema.ReadValue(figskema.Options{}.BytesSource(in))
	require.Error(t, err)

	v, err := figskema.ReadValue(figskema.Options{JSONC: true}.BytesSource(in))
	require.NoError(t, err)
	assert.Len(t, v.(map[string]any)["a"], 2)
}
