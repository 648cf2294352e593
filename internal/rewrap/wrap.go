package rewrap

import (
	"strings"
)

// pySpace повторяет класс \s хост-языка: перенос строки тоже пробел.
const pySpace = " \t\n\r\v\f"

// leadingWhitespace returns the whitespace-only prefix of s.
func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(pySpace, rune(s[i])) {
			return s[:i]
		}
	}
	return s
}

// wrapWords greedily packs words into lines of at most width bytes,
// joined by single spaces. Слова не режем и не разбиваем по дефисам;
// слово длиннее width занимает отдельную строку и превышает бюджет.
func wrapWords(words []string, width int) []string {
	if len(words) == 0 {
		return nil
	}
	lines := make([]string, 0, 1)
	cur := words[0]
	for _, w := range words[1:] {
		if len(cur)+1+len(w) <= width {
			cur += " " + w
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	return append(lines, cur)
}

// splitLines mirrors the host language's splitlines for '\n'-normalized
// text: no trailing empty element, empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
