package scanner

import (
	"strings"

	"pywrap/internal/diag"
	"pywrap/internal/source"
)

// Literal describes one located string literal: optional prefix letters,
// the quote delimiter, and the raw content between the delimiters.
// Open and close delimiters are always identical.
type Literal struct {
	Prefix  string
	Quote   string // `"""`, `'''`, `"` or `'`
	Content string
	Span    source.Span // от первой буквы префикса до закрывающей кавычки
}

// Triple reports whether the literal uses a three-character delimiter.
func (l Literal) Triple() bool {
	return len(l.Quote) == 3
}

// Raw reports whether the prefix carries the raw-string flag.
// Такие литералы находим, но не переносим: перенос слов ломает escape-семантику.
func (l Literal) Raw() bool {
	return strings.ContainsAny(l.Prefix, "rR")
}

// Formatted reports whether the prefix carries the format flag.
func (l Literal) Formatted() bool {
	return strings.ContainsAny(l.Prefix, "fF")
}

// Text returns the matched text exactly as it appears in the file.
func (l Literal) Text(f *source.File) string {
	return string(f.Content[l.Span.Start:l.Span.End])
}

// Scanner walks a file and yields every string literal in order.
// Литералы не перекрываются; сканер никогда не возвращается назад
// дальше начала текущего совпадения.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a literal scanner over the provided file.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

func isPrefixByte(b byte) bool {
	switch b {
	case 'f', 'F', 'r', 'R', 'u', 'U', 'b', 'B':
		return true
	}
	return false
}

func isQuoteByte(b byte) bool {
	return b == '"' || b == '\''
}

// Next returns the next literal in the buffer; ok is false at EOF.
// Незакрытый литерал репортится и пропускается — скан продолжается
// со следующего байта (fail-soft).
func (s *Scanner) Next() (Literal, bool) {
	for !s.cursor.EOF() {
		b := s.cursor.Peek()

		if !isPrefixByte(b) && !isQuoteByte(b) {
			s.cursor.Bump()
			continue
		}

		start := s.cursor.Mark()
		for isPrefixByte(s.cursor.Peek()) {
			s.cursor.Bump()
		}
		prefixSpan := s.cursor.SpanFrom(start)
		prefix := string(s.file.Content[prefixSpan.Start:prefixSpan.End])

		q := s.cursor.Peek()
		if !isQuoteByte(q) {
			// буквы префикса без кавычки — обычный идентификатор;
			// следующая попытка с байта после первой буквы
			s.cursor.Reset(start)
			s.cursor.Bump()
			continue
		}

		// тройной разделитель раньше одиночного, иначе """ прочитается
		// как две пустые строки
		triple := string([]byte{q, q, q})
		if s.cursor.StartsWith(triple) {
			if lit, ok := s.scanBody(start, prefix, triple); ok {
				return lit, true
			}
			// незакрытый тройной: пробуем то же место как одиночную кавычку,
			// как сделала бы альтернация в лексической грамматике
		}
		if lit, ok := s.scanBody(start, prefix, string(q)); ok {
			return lit, true
		}

		sp := source.Span{File: s.file.ID, Start: uint32(start) + prefixSpan.Len(), End: s.cursor.limit()}
		s.report(diag.LexUnterminatedString, diag.SevWarning, sp, "unterminated string literal")
		s.cursor.Reset(start)
		s.cursor.Bump()
	}
	return Literal{}, false
}

// scanBody consumes an opening delimiter, the content and the closing
// delimiter. Контент — пары escape-символов либо байты, не начинающие
// закрывающий разделитель; точка матчит перевод строки.
// On failure the cursor is restored to the opening delimiter.
func (s *Scanner) scanBody(start Mark, prefix, quote string) (Literal, bool) {
	open := s.cursor.Mark()
	for i := 0; i < len(quote); i++ {
		s.cursor.Bump()
	}
	contentStart := s.cursor.Mark()

	for !s.cursor.EOF() {
		if s.cursor.StartsWith(quote) {
			contentSpan := s.cursor.SpanFrom(contentStart)
			for i := 0; i < len(quote); i++ {
				s.cursor.Bump()
			}
			return Literal{
				Prefix:  prefix,
				Quote:   quote,
				Content: string(s.file.Content[contentSpan.Start:contentSpan.End]),
				Span:    s.cursor.SpanFrom(start),
			}, true
		}
		if s.cursor.Peek() == '\\' {
			// escape: съесть '\' и следующий байт, глубже не валидируем
			s.cursor.Bump()
			if s.cursor.EOF() {
				break
			}
			s.cursor.Bump()
			continue
		}
		s.cursor.Bump()
	}

	// EOF без закрывающего разделителя
	s.cursor.Reset(open)
	return Literal{}, false
}
