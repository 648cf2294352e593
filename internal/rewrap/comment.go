package rewrap

import (
	"strings"

	"pywrap/internal/diag"
	"pywrap/internal/scanner"
	"pywrap/internal/source"
)

// rewrapStandaloneComment reflows a whole-line comment, re-prefixing every
// output line with the original indent and marker. Уже помещающаяся или
// пустая строка возвращается как есть.
func rewrapStandaloneComment(line string, maxLen int, opts Options, sp source.Span) []string {
	cl, ok := scanner.SplitStandalone(line)
	if !ok {
		return []string{line}
	}
	available := maxLen - len(cl.Indent)
	if available <= 0 {
		report(opts, diag.WrapBudgetExhausted, diag.SevInfo, sp, "comment marker leaves no width")
		return []string{line}
	}
	wrapped := wrapWords(strings.Fields(cl.Body), available)
	if len(wrapped) == 0 {
		return []string{line}
	}
	out := make([]string, len(wrapped))
	for i, w := range wrapped {
		if len(w) > available {
			report(opts, diag.WrapUnsplittableToken, diag.SevInfo, sp, "token longer than the line budget")
		}
		out[i] = cl.Indent + w
	}
	return out
}

// rewrapInlineComment keeps the code and the original marker on the first
// line with as many whole words as fit; остальные слова уходят на
// продолжения с отступом строки и стандартным маркером "# ".
func rewrapInlineComment(line string, maxLen int, opts Options, sp source.Span) []string {
	ic, ok := scanner.SplitInline(line)
	if !ok {
		return []string{line}
	}

	leadingWS := leadingWhitespace(line)
	firstWidth := maxLen - len(ic.Code) - len(ic.Marker)
	subsequentWidth := maxLen - len(leadingWS) - 2 // минус "# "
	if firstWidth < 1 {
		report(opts, diag.WrapBudgetExhausted, diag.SevInfo, sp, "code and marker leave no width")
		return []string{line}
	}

	words := strings.Fields(ic.Body)
	if len(words) == 0 {
		return []string{line}
	}

	// первая строка: жадно до firstWidth, первое слово — безусловно
	first := []string{words[0]}
	curLen := len(words[0])
	i := 1
	if curLen <= firstWidth {
		for i < len(words) && curLen+1+len(words[i]) <= firstWidth {
			first = append(first, words[i])
			curLen += 1 + len(words[i])
			i++
		}
	}

	rest := words[i:]
	if len(rest) > 0 && subsequentWidth < 1 {
		// продолжениям некуда помещаться — строку не трогаем
		report(opts, diag.WrapBudgetExhausted, diag.SevInfo, sp, "continuations have no width at this indentation")
		return []string{line}
	}
	if curLen > firstWidth {
		report(opts, diag.WrapUnsplittableToken, diag.SevInfo, sp, "token longer than the line budget")
	}

	out := []string{ic.Code + ic.Marker + strings.Join(first, " ")}
	for _, l := range wrapWords(rest, subsequentWidth) {
		if len(l) > subsequentWidth {
			report(opts, diag.WrapUnsplittableToken, diag.SevInfo, sp, "token longer than the line budget")
		}
		out = append(out, leadingWS+"# "+l)
	}
	return out
}
