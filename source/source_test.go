package source

import (
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-1, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"ä>b\nö+c": {
			{2, 1, 2},
			{3, 1, 3},
			{5, 2, 1},
			{7, 2, 2},
		},
	}

	for text, results := range samples {
		source := New("", text)
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSnippet(t *testing.T) {
	s := New("snippet", "div>span+p+")
	samples := []struct {
		pos, before, size int
		expected          string
	}{
		{10, 5, 9, "pan+p+"},
		{3, 5, 9, "div>span+"},
		{0, 5, 3, "div"},
		{100, 2, 9, "p+"},
		{-3, 0, 2, "di"},
	}
	for i, sample := range samples {
		got := s.Snippet(sample.pos, sample.before, sample.size)
		if got != sample.expected {
			t.Errorf("sample #%d: expected %q, got %q", i, sample.expected, got)
		}
	}

	u := New("", "ää>öö")
	if got := u.Snippet(4, 1, 3); got != "ä>ö" {
		t.Errorf("expected %q, got %q", "ä>ö", got)
	}
}

func TestNewPos(t *testing.T) {
	s := New("tpl", "a>\nb")
	p := NewPos(s, 3)
	if p.SourceName() != "tpl" || p.Line() != 2 || p.Col() != 1 || p.Pos() != 3 || p.Source() != s {
		t.Fatalf("unexpected position %+v", p)
	}

	var empty Pos
	if empty.SourceName() != "" || empty.Line() != 0 {
		t.Fatalf("unexpected zero position %+v", empty)
	}
}
