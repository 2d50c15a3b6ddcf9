// Package i18n renders message keys carried by validation errors into
// localized text. The decoding core never renders messages itself; it only
// tags failures with keys and arguments.
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// Translator retrieves localized messages for message keys. args carries the
// error's interpolation arguments rendered as text (for example the expected
// date layout).
type Translator interface {
	Message(key string, args []string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, args []string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch key {
		case "error.expected.jsboolean":
			msg = "真偽値が必要です"
		case "error.expected.jsnumber":
			msg = "数値が必要です"
		case "error.expected.jsstring":
			msg = "文字列が必要です"
		case "error.expected.jsarray":
			msg = "配列が必要です"
		case "error.expected.jsobject":
			msg = "オブジェクトが必要です"
		case "error.expected.jsnull":
			msg = "null が必要です"
		case "error.expected.int":
			msg = "整数が必要です"
		case "error.expected.date":
			msg = "日付が必要です"
		case "error.expected.date.isoformat":
			msg = "日付の形式が不正です (%s)"
		case "error.path.missing":
			msg = "必須プロパティが不足しています"
		case "error.invalid":
			msg = "不正な値です"
		case "error.overflow":
			msg = "値が範囲外です"
		}
	default: // "en"
		switch key {
		case "error.expected.jsboolean":
			msg = "expected boolean"
		case "error.expected.jsnumber":
			msg = "expected number"
		case "error.expected.jsstring":
			msg = "expected string"
		case "error.expected.jsarray":
			msg = "expected array"
		case "error.expected.jsobject":
			msg = "expected object"
		case "error.expected.jsnull":
			msg = "expected null"
		case "error.expected.int":
			msg = "expected integral number"
		case "error.expected.date":
			msg = "expected date"
		case "error.expected.date.isoformat":
			msg = "date does not match format %s"
		case "error.path.missing":
			msg = "required property missing"
		case "error.invalid":
			msg = "invalid value"
		case "error.overflow":
			msg = "value out of range"
		}
	}
	if msg == "" {
		if len(args) == 0 {
			return key
		}
		return key + " (" + strings.Join(args, ", ") + ")"
	}
	if strings.Contains(msg, "%s") {
		anyArgs := make([]any, len(args))
		for i, a := range args {
			anyArgs[i] = a
		}
		return fmt.Sprintf(msg, anyArgs...)
	}
	return msg
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
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the English default.
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given key using the current Translator.
func T(key string, args []string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(key, args)
}
