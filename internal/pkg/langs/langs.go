// Package langs - поддерживаемые языки контента и их разрешение.
package langs

const (
	EN = "en"
	RU = "ru"
	HE = "he"

	Default = EN
)

// Supported - языки контента в порядке приоритета выбора источника
// для автоперевода (en, he, ru).
var Supported = []string{EN, HE, RU}

// IsSupported проверяет код языка
func IsSupported(lang string) bool {
	switch lang {
	case EN, RU, HE:
		return true
	}
	return false
}

// Resolve - валидация языка из запроса. Пустое значение отображается
// в язык по умолчанию, неизвестное - в пустую строку.
func Resolve(lang string) string {
	if lang == "" {
		return Default
	}
	if IsSupported(lang) {
		return lang
	}
	return ""
}

// TranslatorCode - код языка для переводчика.
// Google Translate исторически использует 'iw' для иврита.
func TranslatorCode(lang string) string {
	if lang == HE {
		return "iw"
	}
	return lang
}
