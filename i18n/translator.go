package i18n

// Translator retrieves localized messages for Issue codes. data provides
// values to embed in the message (for example "expected", "got", "keys",
// "value").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string { return data[k] }
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return get("expected") + " を期待しましたが、" + get("got") + " が与えられました"
		case "invalid_literal":
			return "リテラル " + get("expected") + " を期待しましたが、" + get("got") + " が与えられました"
		case "invalid_enum":
			return get("expected") + " のいずれかを期待しましたが、" + get("got") + " が与えられました"
		case "invalid_length":
			return "長さ " + get("expected") + " の配列を期待しましたが、長さ " + get("got") + " の配列が与えられました"
		case "unrecognized_keys":
			return "未知のキーです: " + get("keys")
		case "invalid_union":
			return "どの候補にも一致しませんでした"
		case "discriminator_unknown":
			return "不正な判別値です: " + get("value")
		case "discriminator_ambiguous":
			return "判別値が曖昧です: " + get("value")
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "Expected " + get("expected") + ", got " + get("got")
		case "invalid_literal":
			return "Expected literal " + get("expected") + ", got " + get("got")
		case "invalid_enum":
			return "Expected one of " + get("expected") + ", got " + get("got")
		case "invalid_length":
			return "Expected array of length " + get("expected") + ", got array of length " + get("got")
		case "unrecognized_keys":
			return "Unrecognized keys: " + get("keys")
		case "invalid_union":
			return "Validation failed"
		case "discriminator_unknown":
			return "Invalid discriminator value " + get("value")
		case "discriminator_ambiguous":
			return "Ambiguous discriminator value " + get("value")
		case "parse_error":
			return "parse error"
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

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
