package rewrap

import (
	"strings"
	"testing"

	"pywrap/internal/diag"
	"pywrap/internal/source"
)

// runFile прогоняет File над виртуальным буфером и собирает диагностику.
func runFile(t *testing.T, buffer string, maxLen int) (string, bool, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(buffer))
	bag := diag.NewBag(64)
	out, changed := File(fs.Get(id), maxLen, Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return out, changed, bag
}

func TestRewrapSimpleAssignment(t *testing.T) {
	in := `x = "aaaa bbbb cccc"`
	want := "x = \"aaaa bbbb\"\n\"cccc\""

	got, changed := Rewrap(in, 15)
	if !changed {
		t.Fatal("expected buffer to change")
	}
	if got != want {
		t.Fatalf("rewrap mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapNoOpWithinBudget(t *testing.T) {
	// Буфер в бюджете возвращается байт-в-байт, включая кривые пробелы.
	buffers := []string{
		"x = \"short\"\n",
		"x =  \"odd   spacing\"  # note\n",
		"",
		"\n\n\n",
		"# comment\n",
	}
	for _, in := range buffers {
		got, changed := Rewrap(in, 79)
		if changed {
			t.Errorf("expected no change for %q", in)
		}
		if got != in {
			t.Errorf("buffer altered:\nwant %q\ngot  %q", in, got)
		}
	}
}

func TestRewrapIdempotent(t *testing.T) {
	buffers := []string{
		`x = "aaaa bbbb cccc dddd eeee ffff"`,
		"x = \"\"\"\n    word1 word2 word3 word4 word5\n    \"\"\"\n",
		"# one two three four five six seven eight nine ten\n",
		"x = 1  # alpha beta gamma delta epsilon zeta\n",
	}
	for _, in := range buffers {
		once, _ := Rewrap(in, 20)
		twice, changed := Rewrap(once, 20)
		if changed {
			t.Errorf("second pass still changes %q:\nonce  %q\ntwice %q", in, once, twice)
		}
		if twice != once {
			t.Errorf("not idempotent for %q:\nonce  %q\ntwice %q", in, once, twice)
		}
	}
}

func TestRewrapPreservesWords(t *testing.T) {
	in := `value = "lorem ipsum dolor sit amet consectetur adipiscing elit"`
	got, changed := Rewrap(in, 30)
	if !changed {
		t.Fatal("expected buffer to change")
	}

	// Содержимое сегментов, склеенное одиночными пробелами, совпадает
	// со словами исходного литерала.
	var words []string
	for _, line := range strings.Split(got, "\n") {
		seg := strings.Trim(strings.TrimSpace(line), "\"")
		seg = strings.TrimPrefix(seg, "value = \"")
		words = append(words, strings.Fields(seg)...)
	}
	joined := strings.Join(words, " ")
	if !strings.HasSuffix(joined, "lorem ipsum dolor sit amet consectetur adipiscing elit") {
		t.Fatalf("words lost or reordered: %q", joined)
	}
}

func TestRewrapIndentedSingle(t *testing.T) {
	in := `    y = "aaaa bbbb cccc dddd"`
	want := "    y = \"aaaa bbbb\"\n    \"cccc dddd\""

	got, _ := Rewrap(in, 20)
	if got != want {
		t.Fatalf("indented single mismatch:\nwant %q\ngot  %q", want, got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Errorf("line %q exceeds budget", line)
		}
	}
}

func TestRewrapFormatPrefixRepeats(t *testing.T) {
	in := `x = f"aaaa bbbb cccc"`
	want := "x = f\"aaaa bbbb\"\nf\"cccc\""

	got, _ := Rewrap(in, 15)
	if got != want {
		t.Fatalf("f-string mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapBytesPrefixNotRepeated(t *testing.T) {
	// Неформатный префикс остаётся только на первом сегменте: implicit
	// concatenation соседних литералов сохраняет значение.
	in := `x = u"aaaa bbbb cccc"`
	want := "x = u\"aaaa bbbb\"\n\"cccc\""

	got, _ := Rewrap(in, 15)
	if got != want {
		t.Fatalf("u-string mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapRawLiteralUntouched(t *testing.T) {
	in := `x = r"aaaa bbbb cccc dddd eeee ffff gggg"`

	got, changed, bag := runFile(t, in, 15)
	if changed {
		t.Fatal("raw literal must pass through unchanged")
	}
	if got != in {
		t.Fatalf("raw literal altered:\nwant %q\ngot  %q", in, got)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexRawLiteralSkipped {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a raw-literal-skipped note")
	}
}

func TestRewrapUnterminatedLiteralFailSoft(t *testing.T) {
	in := "s = \"abc def ghi jkl mno pqr stu vwx"

	got, changed, bag := runFile(t, in, 15)
	if changed {
		t.Fatal("unterminated literal must leave the buffer unchanged")
	}
	if got != in {
		t.Fatalf("buffer altered:\nwant %q\ngot  %q", in, got)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an unterminated-string diagnostic")
	}
}

func TestRewrapTripleDocstring(t *testing.T) {
	in := "x = \"\"\"\n    word1 word2 word3\n    \"\"\"\n"
	want := "x = \"\"\"\n    word1 word2\n    word3\n    \"\"\"\n"

	got, changed := Rewrap(in, 15)
	if !changed {
		t.Fatal("expected docstring to change")
	}
	if got != want {
		t.Fatalf("triple mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapTripleGlued(t *testing.T) {
	// Без ведущего перевода строки контент приклеен к кавычкам; закрывающий
	// разделитель остаётся приклеенным к последней строке.
	in := `s = """alpha beta gamma delta"""`
	want := "s = \"\"\"alpha beta\ngamma delta\"\"\""

	got, _ := Rewrap(in, 15)
	if got != want {
		t.Fatalf("glued triple mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapTripleIndentedUnsplittableToken(t *testing.T) {
	// Документационная строка, чья последняя содержательная строка — отступ
	// плюс один неразрезаемый токен: буфер возвращается без изменений.
	in := "x = \"\"\"\n    aaaaaaaaaaaaaaaaaaaaaa\n    \"\"\"\n"
	got, changed := Rewrap(in, 15)
	if changed {
		t.Fatal("expected the buffer to stay unchanged")
	}
	if got != in {
		t.Fatalf("buffer altered:\nwant %q\ngot  %q", in, got)
	}
}

func TestRewrapStandaloneComment(t *testing.T) {
	in := "# one two three four five six seven\n"
	want := "# one two three four\n# five six seven\n"

	got, changed := Rewrap(in, 20)
	if !changed {
		t.Fatal("expected comment to change")
	}
	if got != want {
		t.Fatalf("standalone comment mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapInlineComment(t *testing.T) {
	in := "x = 1  # alpha beta gamma delta\n"
	want := "x = 1  # alpha beta\n# gamma delta\n"

	got, _ := Rewrap(in, 20)
	if got != want {
		t.Fatalf("inline comment mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestRewrapNonPositiveBudget(t *testing.T) {
	in := "x = \"aaaa bbbb cccc\"  # comment\n"
	for _, maxLen := range []int{0, -1, -100} {
		got, changed := Rewrap(in, maxLen)
		if changed || got != in {
			t.Errorf("maxLen=%d: expected untouched buffer, got %q", maxLen, got)
		}
	}
}

func TestRewrapSpuriousSingleWithNewline(t *testing.T) {
	// Одиночный литерал с настоящим переводом строки внутри — ложное
	// совпадение, остаётся как есть.
	in := "x = 'aaaa bbbb\ncccc dddd eeee ffff'"
	got, changed := Rewrap(in, 10)
	if changed || got != in {
		t.Fatalf("spurious literal altered:\nwant %q\ngot  %q", in, got)
	}
}

func TestRewrapKeepsTrailingNewline(t *testing.T) {
	in := "x = \"aaaa bbbb cccc\"\n"
	got, _ := Rewrap(in, 15)
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline lost: %q", got)
	}

	noTrailing := "x = \"aaaa bbbb cccc\""
	got, _ = Rewrap(noTrailing, 15)
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("trailing newline invented: %q", got)
	}
}

func TestOverflows(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("short\naaaaaaaaaaaaaaaaaaaa\nok\naaaaaaaaaaaaaaaaaaaaaaaaa"))
	bag := diag.NewBag(16)

	n := Overflows(fs.Get(id), 10, &diag.BagReporter{Bag: bag})
	if n != 2 {
		t.Fatalf("expected 2 overflowing lines, got %d", n)
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Code != diag.WrapLineOverflow {
			t.Errorf("unexpected code %v", d.Code)
		}
	}

	start, _ := fs.Resolve(bag.Items()[0].Primary)
	if start.Line != 2 {
		t.Errorf("expected first overflow on line 2, got %d", start.Line)
	}
}

// Слишком глубокий отступ: резать некуда, буфер не трогаем, но в сумке
// должна остаться заметка о том, почему строка осталась длинной.
func TestRewrapDeepIndentLiteralReportsBudgetExhausted(t *testing.T) {
	in := "        x = \"aaaa bbbb cccc\"\n"

	got, changed, bag := runFile(t, in, 10)
	if changed {
		t.Fatal("literal without width must leave the buffer unchanged")
	}
	if got != in {
		t.Fatalf("buffer altered:\nwant %q\ngot  %q", in, got)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.WrapBudgetExhausted {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a budget-exhausted diagnostic")
	}
}

func TestRewrapDeepIndentCommentReportsBudgetExhausted(t *testing.T) {
	in := "        # aaaa bbbb cccc\n"

	got, changed, bag := runFile(t, in, 10)
	if changed {
		t.Fatal("comment without width must leave the buffer unchanged")
	}
	if got != in {
		t.Fatalf("buffer altered:\nwant %q\ngot  %q", in, got)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.WrapBudgetExhausted {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a budget-exhausted diagnostic")
	}
}

// Слово шире бюджета остаётся длинным на своей строке; факт фиксируется
// диагностикой, а не тихо глотается.
func TestRewrapLongTokenReportsUnsplittable(t *testing.T) {
	in := "x = \"aaaaaaaaaaaaaaaaaaaaaaaa bb\""
	want := "x = \"aaaaaaaaaaaaaaaaaaaaaaaa\"\n\"bb\""

	got, changed, bag := runFile(t, in, 15)
	if !changed {
		t.Fatal("expected buffer to change")
	}
	if got != want {
		t.Fatalf("rewrap mismatch:\nwant %q\ngot  %q", want, got)
	}

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.WrapUnsplittableToken {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an unsplittable-token diagnostic")
	}
}
