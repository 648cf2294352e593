package rewrap

import (
	"slices"
	"testing"

	"pywrap/internal/source"
)

func TestWrapWords(t *testing.T) {
	got := wrapWords([]string{"one", "two", "three", "four"}, 9)
	want := []string{"one two", "three", "four"}
	if !slices.Equal(got, want) {
		t.Fatalf("wrapWords mismatch:\nwant %q\ngot  %q", want, got)
	}

	if wrapWords(nil, 10) != nil {
		t.Fatal("expected nil for empty input")
	}

	// Слово шире бюджета занимает отдельную строку и остаётся длинным.
	got = wrapWords([]string{"aaaaaaaaaaaa", "b"}, 5)
	want = []string{"aaaaaaaaaaaa", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("long word mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestSplitLines(t *testing.T) {
	if splitLines("") != nil {
		t.Fatal("expected nil for empty string")
	}
	got := splitLines("a\nb\n")
	want := []string{"a", "b"}
	if !slices.Equal(got, want) {
		t.Fatalf("splitLines mismatch:\nwant %q\ngot  %q", want, got)
	}
	// Без завершающего перевода строки последний элемент сохраняется.
	got = splitLines("a\nb")
	if !slices.Equal(got, want) {
		t.Fatalf("splitLines mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestStandaloneCommentKeepsIndentAndMarker(t *testing.T) {
	got := rewrapStandaloneComment("    # one two three four five", 18, Options{}, source.Span{})
	want := []string{"    # one two", "    # three four", "    # five"}
	if !slices.Equal(got, want) {
		t.Fatalf("standalone mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestStandaloneCommentNoBudget(t *testing.T) {
	line := "                    # deep comment"
	got := rewrapStandaloneComment(line, 10, Options{}, source.Span{})
	if !slices.Equal(got, []string{line}) {
		t.Fatalf("expected untouched line, got %q", got)
	}
}

func TestStandaloneCommentEmptyBody(t *testing.T) {
	got := rewrapStandaloneComment("#", 5, Options{}, source.Span{})
	if !slices.Equal(got, []string{"#"}) {
		t.Fatalf("expected untouched marker, got %q", got)
	}
}

func TestInlineCommentKeepsOriginalMarker(t *testing.T) {
	// Оригинальный маркер (с его пробелами) остаётся на первой строке,
	// продолжения получают стандартный "# ".
	got := rewrapInlineComment("x = 1   #   alpha beta gamma delta", 22, Options{}, source.Span{})
	want := []string{"x = 1   #   alpha beta", "# gamma delta"}
	if !slices.Equal(got, want) {
		t.Fatalf("inline mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestInlineCommentIndentedCode(t *testing.T) {
	got := rewrapInlineComment("    y = 2  # alpha beta gamma", 20, Options{}, source.Span{})
	want := []string{"    y = 2  # alpha", "    # beta gamma"}
	if !slices.Equal(got, want) {
		t.Fatalf("inline mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestInlineCommentNoRoomOnFirstLine(t *testing.T) {
	// Код с маркером съедают бюджет первой строки: строку не трогаем.
	line := "some_very_long_name = f()  # x y"
	got := rewrapInlineComment(line, 20, Options{}, source.Span{})
	if !slices.Equal(got, []string{line}) {
		t.Fatalf("expected untouched line, got %q", got)
	}
}
