package domain

import "github.com/events-directory/internal/pkg/langs"

// LocalizedText - значение одного текстового поля на трёх языках.
// Вход и выход конвейера автозаполнения переводов.
type LocalizedText struct {
	En string
	Ru string
	He string
}

func (t LocalizedText) Get(lang string) string {
	switch lang {
	case langs.RU:
		return t.Ru
	case langs.HE:
		return t.He
	default:
		return t.En
	}
}

func (t *LocalizedText) Set(lang, value string) {
	switch lang {
	case langs.RU:
		t.Ru = value
	case langs.HE:
		t.He = value
	default:
		t.En = value
	}
}

// IsComplete - заполнены ли все три языка
func (t LocalizedText) IsComplete() bool {
	return t.En != "" && t.Ru != "" && t.He != ""
}

// Source выбирает исходный язык перевода в порядке приоритета en, he, ru
func (t LocalizedText) Source() (text string, lang string, ok bool) {
	for _, l := range langs.Supported {
		if v := t.Get(l); v != "" {
			return v, l, true
		}
	}
	return "", "", false
}
