package scanner

import (
	"pywrap/internal/diag"
	"pywrap/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда диагностики игнорируем (но продолжаем сканить)
}

func (s *Scanner) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if s.opts.Reporter != nil {
		s.opts.Reporter.Report(code, sev, sp, msg)
	}
}
