package rewrap

import (
	"strings"

	"pywrap/internal/diag"
	"pywrap/internal/source"
)

// rewrapSingle splits an overlong single/double-quoted literal into
// adjacent literals, one per output line. precedingText — текст строки от
// её начала до литерала: он занимает место на первой строке, поэтому у
// первого сегмента свой бюджет.
//
// Continuation segments repeat the prefix only for format-flagged
// literals; implicit concatenation keeps the value identical otherwise.
func rewrapSingle(prefix, quote, content, precedingText string, maxLen int, original string, opts Options, sp source.Span) string {
	// Контент с переводом строки — ложное совпадение (скорее всего текст
	// комментария), а не настоящий однострочный литерал.
	if strings.Contains(content, "\n") {
		return original
	}

	lineIndent := leadingWhitespace(precedingText)
	firstWidth := maxLen - len(precedingText) - 2 // минус две кавычки
	otherWidth := maxLen - len(lineIndent) - 2

	if len(content) <= firstWidth {
		return original
	}
	if firstWidth < 1 || otherWidth < 1 {
		// бюджета на этом отступе нет; безопасного разбиения не существует
		report(opts, diag.WrapBudgetExhausted, diag.SevInfo, sp, "no usable width at this indentation")
		return original
	}

	words := strings.Fields(content)
	if len(words) == 0 {
		return original
	}

	// первый сегмент: жадно до firstWidth, первое слово — безусловно
	first := words[0]
	k := 1
	for k < len(words) && len(first)+1+len(words[k]) <= firstWidth {
		first += " " + words[k]
		k++
	}
	chunks := append([]string{first}, wrapWords(words[k:], otherWidth)...)
	for idx, seg := range chunks {
		width := otherWidth
		if idx == 0 {
			width = firstWidth
		}
		if len(seg) > width {
			report(opts, diag.WrapUnsplittableToken, diag.SevInfo, sp, "token longer than the line budget")
			break
		}
	}
	if len(chunks) == 1 && chunks[0] == content {
		return original
	}

	contPrefix := ""
	if strings.ContainsAny(prefix, "fF") {
		contPrefix = prefix
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(quote)
	b.WriteString(chunks[0])
	b.WriteString(quote)
	for _, seg := range chunks[1:] {
		b.WriteString("\n")
		b.WriteString(lineIndent)
		b.WriteString(contPrefix)
		b.WriteString(quote)
		b.WriteString(seg)
		b.WriteString(quote)
	}
	return b.String()
}
