package figskema_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figskema "github.com/reoring/figskema"
	drvgojson "github.com/reoring/figskema/source/gojson"
)

func readWith(t *testing.T, data string, opt figskema.Options, sink func(figskema.Issue)) (any, error) {
	t.Helper()
	return figskema.ReadValue(figskema.EnforceSource(figskema.JSONBytes([]byte(data)), opt, sink))
}

func TestReadValue_BuildsRawTree(t *testing.T) {
	v, err := figskema.ReadValue(figskema.JSONBytes([]byte(`{"a":[1,"x",true,null,{"b":2.5}],"c":{}}`)))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	arr, ok := m["a"].([]any)
	require.True(t, ok)
	require.Len(t, arr, 5)
	assert.Equal(t, json.Number("1"), arr[0])
	assert.Equal(t, "x", arr[1])
	assert.Equal(t, true, arr[2])
	assert.Nil(t, arr[3])
	assert.Equal(t, map[string]any{"b": json.Number("2.5")}, arr[4])
	assert.Equal(t, map[string]any{}, m["c"])
}

func TestReadValue_EmptyArrayIsNotNil(t *testing.T) {
	v, err := figskema.ReadValue(figskema.JSONBytes([]byte(`{"a":[]}`)))
	require.NoError(t, err)
	assert.NotNil(t, v.(map[string]any)["a"])
}

func TestReadValue_TruncatedInput(t *testing.T) {
	_, err := figskema.ReadValue(figskema.JSONBytes([]byte(`{"a":[1,2`)))
	iss, ok := figskema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	assert.Equal(t, figskema.CodeParseError, iss[0].Code)
}

func TestEnforce_DuplicateKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		severity figskema.Severity
		wantErr  bool
		wantPath string
	}{
		{name: "error at root", input: `{"a":1,"a":2}`, severity: figskema.Error, wantErr: true, wantPath: "/a"},
		{name: "error nested", input: `[{"a":1,"a":2}]`, severity: figskema.Error, wantErr: true, wantPath: "/0/a"},
		{name: "warn", input: `{"x":{"a":1,"a":2}}`, severity: figskema.Warn, wantPath: "/x/a"},
		{name: "ignore", input: `{"a":1,"a":2}`, severity: figskema.Ignore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warned []figskema.Issue
			opt := figskema.Options{Strictness: figskema.Strictness{OnDuplicateKey: tt.severity}}
			_, err := readWith(t, tt.input, opt, func(is figskema.Issue) { warned = append(warned, is) })
			if tt.wantErr {
				iss, ok := figskema.AsIssues(err)
				require.True(t, ok, "expected Issues, got %v", err)
				assert.Equal(t, figskema.CodeDuplicateKey, iss[0].Code)
				assert.Equal(t, tt.wantPath, iss[0].Path)
				return
			}
			require.NoError(t, err)
			if tt.wantPath == "" {
				assert.Empty(t, warned)
				return
			}
			require.Len(t, warned, 1)
			assert.Equal(t, tt.wantPath, warned[0].Path)
		})
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	_, err := readWith(t, `{"a":{"b":{"c":1}}}`, figskema.Options{MaxDepth: 2}, nil)
	iss, ok := figskema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	assert.Equal(t, figskema.CodeParseError, iss[0].Code)
	assert.Equal(t, "/a/b", iss[0].Path)

	_, err = readWith(t, `{"a":{"b":{"c":1}}}`, figskema.Options{MaxDepth: 3}, nil)
	require.NoError(t, err)
}

func TestEnforce_MaxBytesWithOffsets(t *testing.T) {
	figskema.UseDefaultJSONDriver()
	_, err := readWith(t, `{"name":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}`, figskema.Options{MaxBytes: 16}, nil)
	iss, ok := figskema.AsIssues(err)
	require.True(t, ok, "expected Issues, got %v", err)
	assert.Equal(t, figskema.CodeTruncated, iss[0].Code)
}

func TestReadAllLimited(t *testing.T) {
	data, err := figskema.ReadAllLimited(bytes.NewReader([]byte("12345")), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	_, err = figskema.ReadAllLimited(bytes.NewReader([]byte("123456")), 5)
	iss, ok := figskema.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, figskema.CodeTruncated, iss[0].Code)

	data, err = figskema.ReadAllLimited(bytes.NewReader([]byte("123456")), 0)
	require.NoError(t, err)
	assert.Len(t, data, 6)
}

func TestJSONCBytes_StripsComments(t *testing.T) {
	v, err := figskema.ReadValue(figskema.JSONCBytes([]byte(`{
		// exported from the desktop app
		"name": "Untitled", /* trailing */
		"ids": [1, 2,],
	}`)))
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, "Untitled", m["name"])
	assert.Len(t, m["ids"], 2)
}

func TestDrivers_ProduceSameTree(t *testing.T) {
	input := []byte(`{"document":{"id":"0:0","children":[{"id":"0:1","visible":false}]},"n":-1.5e3}`)

	figskema.UseDefaultJSONDriver()
	want, err := figskema.ReadValue(figskema.JSONBytes(input))
	require.NoError(t, err)

	figskema.SetJSONDriver(drvgojson.Driver())
	t.Cleanup(figskema.UseDefaultJSONDriver)
	assert.Equal(t, drvgojson.Driver().Name(), figskema.JSONDriverName())
	got, err := figskema.ReadValue(figskema.JSONBytes(input))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
