package rewrap

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"pywrap/internal/diag"
	"pywrap/internal/scanner"
	"pywrap/internal/source"
)

// Options настраивает один проход переноса. Reporter может быть nil.
type Options struct {
	Reporter diag.Reporter
}

// Rewrap applies the literal pass and then the comment pass to buffer and
// reports whether anything changed. Чистая функция: никакого состояния
// между вызовами.
func Rewrap(buffer string, maxLen int) (string, bool) {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual("buffer", []byte(buffer))
	return File(fileSet.Get(id), maxLen, Options{})
}

// File rewraps the content of f. Комментарии обрабатываются на выходе
// литерального прохода: перенос комментариев не заглядывает в содержимое
// строк, которое уже разрезал литеральный проход.
func File(f *source.File, maxLen int, opts Options) (string, bool) {
	text := string(f.Content)
	if maxLen <= 0 {
		return text, false
	}
	out := processLiterals(f, maxLen, opts)
	out = processComments(f, out, maxLen, opts)
	return out, out != text
}

// processLiterals rewrites every located literal in place. Отступ литерала
// и позиции совпадений считаются по исходному тексту, как и положено
// последовательной замене.
func processLiterals(f *source.File, maxLen int, opts Options) string {
	sc := scanner.New(f, scanner.Options{Reporter: opts.Reporter})
	text := string(f.Content)

	var b strings.Builder
	b.Grow(len(text))
	last := uint32(0)
	for {
		lit, ok := sc.Next()
		if !ok {
			break
		}
		b.WriteString(text[last:lit.Span.Start])
		b.WriteString(replaceLiteral(text, lit, maxLen, opts))
		last = lit.Span.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func replaceLiteral(text string, lit scanner.Literal, maxLen int, opts Options) string {
	original := text[lit.Span.Start:lit.Span.End]
	if lit.Raw() {
		report(opts, diag.LexRawLiteralSkipped, diag.SevInfo, lit.Span, "raw literal left unchanged")
		return original
	}
	if lit.Triple() {
		return rewrapTriple(lit.Prefix, lit.Quote, lit.Content, maxLen, original)
	}
	if strings.Contains(lit.Content, "\n") {
		// одиночная кавычка через несколько строк — ложное совпадение
		report(opts, diag.WrapSpuriousLiteral, diag.SevInfo, lit.Span, "single-quoted match spans multiple lines")
		return original
	}
	indent := literalIndent(text, lit.Span.Start)
	return rewrapSingle(lit.Prefix, lit.Quote, lit.Content, indent, maxLen, original, opts, lit.Span)
}

// literalIndent returns the text from the start of the line up to pos.
// Только для одиночных кавычек: первый сегмент делит строку с кодом.
func literalIndent(text string, pos uint32) string {
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	return text[lineStart:pos]
}

// processComments reflows standalone and inline comments line by line.
// Строки в бюджете не трогаем вовсе — гарантия no-op. Спаны диагностик
// считаются по тексту после литерального прохода.
func processComments(f *source.File, text string, maxLen int, opts Options) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	off := 0
	for _, line := range lines {
		sp := source.Span{File: f.ID, Start: uint32(off), End: uint32(off + len(line))}
		off += len(line) + 1
		if len(line) <= maxLen || !strings.Contains(line, "#") {
			out = append(out, line)
			continue
		}
		ic, ok := scanner.SplitInline(line)
		if !ok {
			out = append(out, line)
			continue
		}
		if strings.TrimSpace(ic.Code) == "" {
			out = append(out, rewrapStandaloneComment(line, maxLen, opts, sp)...)
		} else {
			out = append(out, rewrapInlineComment(line, maxLen, opts, sp)...)
		}
	}
	return strings.Join(out, "\n")
}

// Overflows reports every line of f longer than maxLen. Строка из одного
// неразрезаемого токена — тоже сюда: мягкая граница ширины.
func Overflows(f *source.File, maxLen int, r diag.Reporter) int {
	if r == nil || maxLen <= 0 {
		return 0
	}
	count := 0
	lineStart := uint32(0)
	content := f.Content
	flush := func(end uint32) {
		length := int(end - lineStart)
		if length > maxLen {
			count++
			r.Report(diag.WrapLineOverflow, diag.SevWarning,
				source.Span{File: f.ID, Start: lineStart, End: end},
				fmt.Sprintf("line is %d bytes, limit is %d", length, maxLen))
		}
	}
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			flush(off)
			lineStart = off + 1
		}
	}
	lenContent, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if lineStart < lenContent {
		flush(lenContent)
	}
	return count
}

func report(opts Options, code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if opts.Reporter != nil {
		opts.Reporter.Report(code, sev, sp, msg)
	}
}
