package rewrap

import (
	"slices"
	"strings"
)

// rewrapTriple reflows a triple-quoted literal so no content line exceeds
// maxLen. Один проход слева направо; значение строки сохраняется с
// точностью до перераспределения пробелов на границах строк.
// Returns original when nothing had to move.
func rewrapTriple(prefix, quote, content string, maxLen int, original string) string {
	hasLeadingNewline := strings.HasPrefix(content, "\n")
	toWrap := content
	if hasLeadingNewline {
		toWrap = strings.TrimLeft(content, "\n")
	}
	lines := splitLines(toWrap)
	if len(lines) == 0 {
		return original
	}

	adjusted := adjustLines(slices.Clone(lines), maxLen)
	if slices.Equal(lines, adjusted) {
		return original
	}

	newContent := strings.Join(adjusted, "\n")
	if hasLeadingNewline {
		// закрывающий разделитель — с отступом последней строки контента
		closingIndent := leadingWhitespace(adjusted[len(adjusted)-1])
		return prefix + quote + "\n" + newContent + "\n" + closingIndent + quote
	}
	return prefix + quote + newContent + quote
}

// adjustLines moves trailing words of overlong lines onto the following
// line, re-indented to that line's indent. Для последней строки контента
// сначала вставляется новая строка с тем же отступом. Строка без пробела
// остаётся длинной — это не ошибка.
//
// Вставленная строка попадает под обработку на следующей итерации того же
// прохода; назад не возвращаемся.
func adjustLines(lines []string, maxLen int) []string {
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if len(line) <= maxLen {
			continue
		}

		if i < len(lines)-1 {
			ownIndent := leadingWhitespace(line)
			for len(line) > maxLen {
				// пробел внутри отступа — не точка разреза
				lastSpace := strings.LastIndex(line, " ")
				if lastSpace < len(ownIndent) {
					break
				}
				lastWord := line[lastSpace+1:]
				line = strings.TrimRight(line[:lastSpace], pySpace)

				next := lines[i+1]
				indent := leadingWhitespace(next)
				rest := strings.TrimLeft(next, pySpace)
				if rest != "" {
					next = indent + lastWord + " " + rest
				} else {
					next = indent + lastWord
				}
				lines[i] = line
				lines[i+1] = next
			}
			continue
		}

		// последняя строка контента: новая строка сразу под ней
		indent := leadingWhitespace(line)
		if strings.LastIndex(line, " ") < len(indent) {
			// один неразрезаемый токен: остаётся длинным, сосед не нужен
			continue
		}
		lines = slices.Insert(lines, i+1, indent)
		for len(line) > maxLen {
			lastSpace := strings.LastIndex(line, " ")
			if lastSpace < len(indent) {
				break
			}
			lastWord := line[lastSpace+1:]
			line = strings.TrimRight(line[:lastSpace], pySpace)

			newLine := lines[i+1]
			rest := newLine
			if strings.HasPrefix(newLine, indent) {
				rest = newLine[len(indent):]
			}
			if rest != "" {
				newLine = indent + lastWord + " " + rest
			} else {
				newLine = indent + lastWord
			}
			lines[i] = line
			lines[i+1] = newLine
		}
	}
	return lines
}
