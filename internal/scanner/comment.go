package scanner

// Классификация строк с комментариями. Чисто лексическая: строка с '#'
// после кода — inline, строка где до маркера только пробелы — standalone.
// Никакого знания о грамматике хоста здесь нет.

// CommentLine is a standalone comment: indentation, the marker with its
// surrounding whitespace, and the body text.
type CommentLine struct {
	Indent string // leading whitespace + '#' + the whitespace run after it
	Body   string
}

// InlineComment is code followed by a trailing comment on the same line.
type InlineComment struct {
	Code   string
	Marker string // whitespace before '#', the '#', and the run after it
	Body   string
}

// isLineSpace matches in-line whitespace (без '\n': строки уже разрезаны).
func isLineSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

// SplitInline splits a line into code, marker and comment body.
// Маркер — самый левый '#', за которым идёт хотя бы один пробел и хотя бы
// один символ тела; пробелы слева от '#' уходят в маркер, не в код.
func SplitInline(line string) (InlineComment, bool) {
	for idx := 0; idx < len(line); idx++ {
		if line[idx] != '#' {
			continue
		}
		if idx+1 >= len(line) || !isLineSpace(line[idx+1]) {
			continue
		}
		if idx+2 >= len(line) {
			continue
		}
		cmStart := idx
		for cmStart > 0 && isLineSpace(line[cmStart-1]) {
			cmStart--
		}
		j := idx + 1
		for j < len(line) && isLineSpace(line[j]) {
			j++
		}
		if j == len(line) {
			// тело не может быть пустым: отдаём один пробел обратно
			j--
		}
		return InlineComment{
			Code:   line[:cmStart],
			Marker: line[cmStart:j],
			Body:   line[j:],
		}, true
	}
	return InlineComment{}, false
}

// SplitStandalone splits a whole-line comment into its indent+marker part
// and the body. Пробелы после '#' забирает Indent; Body может быть пустым.
func SplitStandalone(line string) (CommentLine, bool) {
	i := 0
	for i < len(line) && isLineSpace(line[i]) {
		i++
	}
	if i >= len(line) || line[i] != '#' {
		return CommentLine{}, false
	}
	i++
	for i < len(line) && isLineSpace(line[i]) {
		i++
	}
	return CommentLine{Indent: line[:i], Body: line[i:]}, true
}
