package i18n

// Translator retrieves localized messages for error codes. data provides
// optional metadata to embed in the message (for example "property" or
// "target").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_property":
			return "プロパティ名が重複しています"
		case "invalid_option":
			return "オプションが不正です"
		case "unresolved_schema":
			return "ネストスキーマを解決できません"
		case "no_factory":
			return "ネスト値のファクトリが未設定です"
		case "depth_exceeded":
			return "ネストが深すぎます"
		case "condition_failed":
			return "条件の評価に失敗しました"
		case "shape_mismatch":
			return "ノード形状が不正です"
		case "type_mismatch":
			return "型変換に失敗しました"
		case "no_accessor":
			return "アクセサがありません"
		case "unassignable":
			return "値を代入できません"
		case "malformed_document":
			return "ドキュメントの構文が不正です"
		}
	default: // "en"
		switch code {
		case "duplicate_property":
			return "property already declared"
		case "invalid_option":
			return "invalid option"
		case "unresolved_schema":
			return "cannot resolve nested schema"
		case "no_factory":
			return "no factory for nested value"
		case "depth_exceeded":
			return "nesting too deep"
		case "condition_failed":
			return "condition evaluation failed"
		case "shape_mismatch":
			return "unexpected node shape"
		case "type_mismatch":
			return "cannot convert value"
		case "no_accessor":
			return "host has no accessor"
		case "unassignable":
			return "cannot assign value"
		case "malformed_document":
			return "malformed document"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator installs a custom Translator; nil values are ignored.
func SetTranslator(tr Translator) {
	if tr == nil {
		return
	}
	currentTranslator = tr
}

// T returns the message for code via the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
