// Package i18n holds the message catalog used for parse issues.
package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for message keys. data carries
// values substituted for {name} placeholders.
type Translator interface {
	Message(key string, data map[string]string) string
}

// Message keys used by cardkit.
const (
	KeyNotObject          = "json.not_object"
	KeyDecode             = "json.decode"
	KeyFallbackDropOnly   = "fallback.drop_only"
	KeyFallbackUnparsed   = "fallback.content_unparsed"
	KeyFallbackInvalid    = "fallback.invalid"
	KeyFallbackTooDeep    = "fallback.too_deep"
	KeyRequiresNotObject  = "requires.not_object"
	KeyRequiresBadVersion = "requires.invalid_version"
	KeyPropertyType       = "property.invalid_type"
	KeyPropertyRequired   = "property.required"
	KeyPropertyEnum       = "property.invalid_enum"
	KeyUnknownType        = "element.unknown_type"
	KeyDuplicateID        = "element.duplicate_id"
	KeyCardType           = "card.invalid_type"
)

var catalogs = map[string]map[string]string{
	"en": {
		KeyNotObject:          "expected a JSON object",
		KeyDecode:             "could not decode input: {error}",
		KeyFallbackDropOnly:   "The only valid string value for the fallback property is 'drop'.",
		KeyFallbackUnparsed:   "Fallback content did not parse correctly.",
		KeyFallbackInvalid:    "Invalid value for fallback",
		KeyFallbackTooDeep:    "fallback chain is deeper than {max}",
		KeyRequiresNotObject:  "requires must map capability names to version strings",
		KeyRequiresBadVersion: "invalid version {version} for requirement '{capability}'",
		KeyPropertyType:       "property '{key}' must be {expected}",
		KeyPropertyRequired:   "required property '{key}' is missing",
		KeyPropertyEnum:       "invalid value '{value}' for '{key}', using default",
		KeyUnknownType:        "unknown element type '{type}'",
		KeyDuplicateID:        "id '{id}' is used by more than one element",
		KeyCardType:           "card type must be 'AdaptiveCard', got '{type}'",
	},
	"ja": {
		KeyNotObject:          "JSON オブジェクトが必要です",
		KeyDecode:             "入力を解析できません: {error}",
		KeyFallbackDropOnly:   "fallback に指定できる文字列は 'drop' のみです",
		KeyFallbackUnparsed:   "fallback の内容を解析できませんでした",
		KeyFallbackInvalid:    "fallback の値が不正です",
		KeyFallbackTooDeep:    "fallback の入れ子が {max} を超えています",
		KeyRequiresNotObject:  "requires は機能名とバージョン文字列の対応である必要があります",
		KeyRequiresBadVersion: "要件 '{capability}' のバージョン {version} が不正です",
		KeyPropertyType:       "プロパティ '{key}' は {expected} である必要があります",
		KeyPropertyRequired:   "必須プロパティ '{key}' がありません",
		KeyPropertyEnum:       "'{key}' の値 '{value}' は不正です。既定値を使用します",
		KeyUnknownType:        "未知の要素タイプ '{type}' です",
		KeyDuplicateID:        "id '{id}' が複数の要素で使われています",
		KeyCardType:           "カードの type は 'AdaptiveCard' である必要があります ('{type}' が指定されました)",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(key string, data map[string]string) string {
	msg, ok := catalogs[t.lang][key]
	if !ok {
		if msg, ok = catalogs["en"][key]; !ok {
			return key
		}
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation; nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for key using the current Translator.
func T(key string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(key, data)
}
