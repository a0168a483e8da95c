package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "tag", "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data; unknown placeholders are left as-is.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unknown_variant":       "unknown {space} variant '{tag}'",
		"required":              "required field '{field}' missing",
		"malformed_path":        "malformed path: {reason}",
		"shape_mismatch":        "expected {expected}",
		"discriminator_missing": "discriminator '{field}' missing",
		"unexpected_variant":    "expected {expected} but got '{tag}'",
		"invalid_format":        "invalid {format} value",
		"parse_error":           "parse error",
		"duplicate_key":         "duplicate key",
		"truncated":             "truncated",
		"invalid_config":        "invalid configuration value",
	},
	"ja": {
		"unknown_variant":       "未知の{space}種別 '{tag}' です",
		"required":              "必須フィールド '{field}' が不足しています",
		"malformed_path":        "パスが不正です: {reason}",
		"shape_mismatch":        "{expected} が必要です",
		"discriminator_missing": "判別フィールド '{field}' がありません",
		"unexpected_variant":    "{expected} が必要ですが '{tag}' でした",
		"invalid_format":        "{format} の形式が不正です",
		"parse_error":           "解析エラー",
		"duplicate_key":         "キーが重複しています",
		"truncated":             "打ち切られました",
		"invalid_config":        "設定値が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
