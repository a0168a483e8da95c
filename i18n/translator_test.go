package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_FillsPlaceholders(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	assert.Equal(t, "unknown node variant 'POLYGON'", T("unknown_variant", map[string]string{"space": "node", "tag": "POLYGON"}))
	assert.Equal(t, "parse error", T("parse_error", nil))
	assert.Equal(t, "no_such_code", T("no_such_code", nil))

	SetLanguage("ja")
	assert.Equal(t, "必須フィールド 'id' が不足しています", T("required", map[string]string{"field": "id"}))

	SetLanguage("fr")
	assert.Equal(t, "duplicate key", T("duplicate_key", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })

	SetTranslator(upper{})
	assert.Equal(t, "X:required", T("required", nil))

	SetTranslator(nil)
	assert.Equal(t, "truncated", T("truncated", nil))
}
