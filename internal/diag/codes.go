package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические: локатор литералов
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexRawLiteralSkipped  Code = 1002

	// Переносы: рерап строк и комментариев (часть зарезервируем)
	WrapInfo              Code = 2000
	WrapUnsplittableToken Code = 2001
	WrapBudgetExhausted   Code = 2002
	WrapSpuriousLiteral   Code = 2003
	WrapLineOverflow      Code = 2004

	// IO и конфигурация
	IOInfo          Code = 3000
	IOReadFailed    Code = 3001
	IOWriteFailed   Code = 3002
	CfgInvalidValue Code = 3003
	CfgMissingTable Code = 3004
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown error",
	LexInfo:               "lexical info",
	LexUnterminatedString: "unterminated string literal",
	LexRawLiteralSkipped:  "raw literal left unchanged",
	WrapInfo:              "wrap info",
	WrapUnsplittableToken: "token longer than the line budget",
	WrapBudgetExhausted:   "no usable width at this indentation",
	WrapSpuriousLiteral:   "matched span is not a single-line literal",
	WrapLineOverflow:      "line exceeds the configured width",
	IOInfo:                "io info",
	IOReadFailed:          "failed to read file",
	IOWriteFailed:         "failed to write file",
	CfgInvalidValue:       "invalid configuration value",
	CfgMissingTable:       "missing configuration table",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("WRAP%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
