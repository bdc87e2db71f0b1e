// Package translit - детерминированная транслитерация латиницы в
// кириллицу и иврит. Используется как fallback после автоперевода:
// переводчик иногда оставляет имена собственные и аббревиатуры
// латиницей, и их добиваем посимвольной заменой.
package translit

import "strings"

var latinToCyrillic = map[rune]string{
	'a': "а", 'A': "А",
	'b': "б", 'B': "Б",
	'c': "к", 'C': "К",
	'd': "д", 'D': "Д",
	'e': "е", 'E': "Е",
	'f': "ф", 'F': "Ф",
	'g': "г", 'G': "Г",
	'h': "х", 'H': "Х",
	'i': "и", 'I': "И",
	'j': "й", 'J': "Й",
	'k': "к", 'K': "К",
	'l': "л", 'L': "Л",
	'm': "м", 'M': "М",
	'n': "н", 'N': "Н",
	'o': "о", 'O': "О",
	'p': "п", 'P': "П",
	'q': "к", 'Q': "К",
	'r': "р", 'R': "Р",
	's': "с", 'S': "С",
	't': "т", 'T': "Т",
	'u': "у", 'U': "У",
	'v': "в", 'V': "В",
	'w': "в", 'W': "В",
	'x': "кс", 'X': "Кс",
	'y': "й", 'Y': "Й",
	'z': "з", 'Z': "З",
}

// Диграфы обрабатываются до посимвольной замены
var cyrillicDigraphs = []struct{ seq, out string }{
	{"ch", "ч"}, {"Ch", "Ч"}, {"CH", "Ч"},
	{"sh", "ш"}, {"Sh", "Ш"}, {"SH", "Ш"},
	{"th", "т"}, {"Th", "Т"}, {"TH", "Т"},
	{"ts", "ц"}, {"Ts", "Ц"}, {"TS", "Ц"},
}

var latinToHebrew = map[rune]string{
	'a': "א",
	'b': "ב",
	'c': "ק",
	'd': "ד",
	'e': "א",
	'f': "פ",
	'g': "ג",
	'h': "ה",
	'i': "י",
	'j': "ג",
	'k': "ק",
	'l': "ל",
	'm': "מ",
	'n': "נ",
	'o': "ו",
	'p': "פ",
	'q': "ק",
	'r': "ר",
	's': "ס",
	't': "ת",
	'u': "ו",
	'v': "ב",
	'w': "ו",
	'x': "קס",
	'y': "י",
	'z': "ז",
}

var hebrewDigraphs = []struct{ seq, out string }{
	{"ch", "ח"},
	{"sh", "ש"},
	{"th", "ת"},
	{"ts", "צ"},
}

// EnToRu транслитерирует латинские последовательности в кириллицу.
// Кириллица и прочие символы проходят без изменений.
func EnToRu(text string) string {
	for _, d := range cyrillicDigraphs {
		text = strings.ReplaceAll(text, d.seq, d.out)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := latinToCyrillic[r]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EnToHe транслитерирует латинские последовательности в иврит.
// В иврите нет регистра, поэтому вход приводится к нижнему.
func EnToHe(text string) string {
	text = strings.ToLower(text)

	for _, d := range hebrewDigraphs {
		text = strings.ReplaceAll(text, d.seq, d.out)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := latinToHebrew[r]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
