package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(got) != "a\nb\n" {
		t.Errorf("expected %q, got %q", "a\nb\n", string(got))
	}

	// Одиночный \r не трогаем
	got, changed = normalizeCRLF([]byte("a\rb"))
	if changed {
		t.Error("expected lone \\r to be left alone")
	}
	if string(got) != "a\rb" {
		t.Errorf("lone \\r altered: %q", string(got))
	}

	// Без \r — быстрый путь, тот же слайс
	got, changed = normalizeCRLF([]byte("plain"))
	if changed || string(got) != "plain" {
		t.Errorf("plain content altered: %q", string(got))
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if !had || string(got) != "x" {
		t.Errorf("BOM not removed: %q", string(got))
	}

	got, had = removeBOM([]byte{0xEF, 0xBB})
	if had {
		t.Error("short content misdetected as BOM")
	}
	if len(got) != 2 {
		t.Errorf("short content altered: %v", got)
	}
}

func TestRestoreConventions(t *testing.T) {
	content := []byte("a\nb\n")

	// Без флагов — байт-в-байт
	got := RestoreConventions(content, 0)
	if string(got) != "a\nb\n" {
		t.Errorf("flagless content altered: %q", string(got))
	}

	got = RestoreConventions(content, FileNormalizedCRLF)
	if string(got) != "a\r\nb\r\n" {
		t.Errorf("expected CRLF endings, got %q", string(got))
	}

	got = RestoreConventions(content, FileHadBOM)
	want := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\nb\n")...)
	if string(got) != string(want) {
		t.Errorf("expected BOM prefix, got %v", got)
	}

	// Load → RestoreConventions восстанавливает исходные байты
	original := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x\r\ny\r\n")...)
	normalized, _ := removeBOM(original)
	normalized, _ = normalizeCRLF(normalized)
	restored := RestoreConventions(normalized, FileHadBOM|FileNormalizedCRLF)
	if string(restored) != string(original) {
		t.Errorf("round trip mismatch:\nwant %v\ngot  %v", original, restored)
	}
}

func TestToLineCol(t *testing.T) {
	lineIdx := []uint32{5, 11} // "hello\nworld\nrest"

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{5, LineCol{Line: 1, Col: 6}}, // сам \n — в своей строке
		{6, LineCol{Line: 2, Col: 1}},
		{11, LineCol{Line: 2, Col: 6}},
		{12, LineCol{Line: 3, Col: 1}},
	}
	for _, tc := range cases {
		if got := toLineCol(lineIdx, tc.off); got != tc.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}

	// Пустой индекс — весь файл одна строка
	if got := toLineCol(nil, 7); (got != LineCol{Line: 1, Col: 8}) {
		t.Errorf("empty index: got %+v", got)
	}
}
